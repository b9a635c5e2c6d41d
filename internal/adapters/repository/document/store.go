package document

import (
	"context"

	"github.com/ogurasousui/codex-graphql-clean-arch/internal/core/store"
	"github.com/ogurasousui/codex-graphql-clean-arch/internal/platform/docstore"
)

type storeDocument struct {
	Name       string `json:"name" bson:"name"`
	LocationID string `json:"location_id" bson:"location_id"`
}

// StoreRepository はドキュメントストアを利用した店舗永続化の実装です。
type StoreRepository struct {
	store docstore.Store
}

// NewStoreRepository は StoreRepository を生成します。
func NewStoreRepository(ds docstore.Store) *StoreRepository {
	return &StoreRepository{store: ds}
}

// Create は店舗を新規作成します。
func (r *StoreRepository) Create(ctx context.Context, s *store.Store) (*store.Store, error) {
	doc := storeDocument{Name: s.Name, LocationID: s.LocationID}

	id, err := r.store.Insert(ctx, docstore.CollectionStore, doc)
	if err != nil {
		return nil, translateStoreError(err)
	}
	return &store.Store{ID: id, Name: doc.Name, LocationID: doc.LocationID}, nil
}

// FindByID は ID で店舗を取得します。
func (r *StoreRepository) FindByID(ctx context.Context, id string) (*store.Store, error) {
	found, err := findOne(ctx, r.store, docstore.CollectionStore, id, decodeStore)
	if err != nil {
		return nil, translateStoreError(err)
	}
	return found, nil
}

// List は全店舗を取得します。
func (r *StoreRepository) List(ctx context.Context) ([]*store.Store, error) {
	found, err := findAll(ctx, r.store, docstore.CollectionStore, decodeStore)
	if err != nil {
		return nil, translateStoreError(err)
	}
	return found, nil
}

func decodeStore(rec docstore.Record) (*store.Store, error) {
	var doc storeDocument
	if err := rec.Decode(&doc); err != nil {
		return nil, err
	}
	return &store.Store{ID: rec.ID(), Name: doc.Name, LocationID: doc.LocationID}, nil
}

func translateStoreError(err error) error {
	return translateDocstoreError(err, store.ErrStoreNotFound, store.ErrInvalidID)
}
