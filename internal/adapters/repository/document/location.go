package document

import (
	"context"

	"github.com/ogurasousui/codex-graphql-clean-arch/internal/core/location"
	"github.com/ogurasousui/codex-graphql-clean-arch/internal/platform/docstore"
)

type locationDocument struct {
	Country string `json:"country" bson:"country"`
	State   string `json:"state" bson:"state"`
}

// LocationRepository はドキュメントストアを利用した所在地永続化の実装です。
type LocationRepository struct {
	store docstore.Store
}

// NewLocationRepository は LocationRepository を生成します。
func NewLocationRepository(store docstore.Store) *LocationRepository {
	return &LocationRepository{store: store}
}

// Create は所在地を新規作成します。
func (r *LocationRepository) Create(ctx context.Context, l *location.Location) (*location.Location, error) {
	doc := locationDocument{Country: l.Country, State: l.State}

	id, err := r.store.Insert(ctx, docstore.CollectionLocation, doc)
	if err != nil {
		return nil, translateLocationError(err)
	}
	return &location.Location{ID: id, Country: doc.Country, State: doc.State}, nil
}

// FindByID は ID で所在地を取得します。
func (r *LocationRepository) FindByID(ctx context.Context, id string) (*location.Location, error) {
	found, err := findOne(ctx, r.store, docstore.CollectionLocation, id, decodeLocation)
	if err != nil {
		return nil, translateLocationError(err)
	}
	return found, nil
}

// List は全所在地を取得します。
func (r *LocationRepository) List(ctx context.Context) ([]*location.Location, error) {
	found, err := findAll(ctx, r.store, docstore.CollectionLocation, decodeLocation)
	if err != nil {
		return nil, translateLocationError(err)
	}
	return found, nil
}

func decodeLocation(rec docstore.Record) (*location.Location, error) {
	var doc locationDocument
	if err := rec.Decode(&doc); err != nil {
		return nil, err
	}
	return &location.Location{ID: rec.ID(), Country: doc.Country, State: doc.State}, nil
}

func translateLocationError(err error) error {
	return translateDocstoreError(err, location.ErrLocationNotFound, location.ErrInvalidID)
}
