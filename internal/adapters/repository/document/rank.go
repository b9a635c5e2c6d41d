package document

import (
	"context"

	"github.com/ogurasousui/codex-graphql-clean-arch/internal/core/rank"
	"github.com/ogurasousui/codex-graphql-clean-arch/internal/platform/docstore"
)

type rankDocument struct {
	Name        string `json:"name" bson:"name"`
	Description string `json:"description" bson:"description"`
}

// RankRepository はドキュメントストアを利用した役職永続化の実装です。
type RankRepository struct {
	store docstore.Store
}

// NewRankRepository は RankRepository を生成します。
func NewRankRepository(store docstore.Store) *RankRepository {
	return &RankRepository{store: store}
}

// Create は役職を新規作成します。
func (r *RankRepository) Create(ctx context.Context, rk *rank.Rank) (*rank.Rank, error) {
	doc := rankDocument{Name: rk.Name, Description: rk.Description}

	id, err := r.store.Insert(ctx, docstore.CollectionRank, doc)
	if err != nil {
		return nil, translateRankError(err)
	}
	return &rank.Rank{ID: id, Name: doc.Name, Description: doc.Description}, nil
}

// FindByID は ID で役職を取得します。
func (r *RankRepository) FindByID(ctx context.Context, id string) (*rank.Rank, error) {
	found, err := findOne(ctx, r.store, docstore.CollectionRank, id, decodeRank)
	if err != nil {
		return nil, translateRankError(err)
	}
	return found, nil
}

// List は全役職を取得します。
func (r *RankRepository) List(ctx context.Context) ([]*rank.Rank, error) {
	found, err := findAll(ctx, r.store, docstore.CollectionRank, decodeRank)
	if err != nil {
		return nil, translateRankError(err)
	}
	return found, nil
}

func decodeRank(rec docstore.Record) (*rank.Rank, error) {
	var doc rankDocument
	if err := rec.Decode(&doc); err != nil {
		return nil, err
	}
	return &rank.Rank{ID: rec.ID(), Name: doc.Name, Description: doc.Description}, nil
}

func translateRankError(err error) error {
	return translateDocstoreError(err, rank.ErrRankNotFound, rank.ErrInvalidID)
}
