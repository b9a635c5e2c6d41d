package document

import (
	"context"

	"github.com/ogurasousui/codex-graphql-clean-arch/internal/core/owner"
	"github.com/ogurasousui/codex-graphql-clean-arch/internal/platform/docstore"
)

type ownerDocument struct {
	Name  string `json:"name" bson:"name"`
	Email string `json:"email" bson:"email"`
	Phone string `json:"phone" bson:"phone"`
}

// OwnerRepository はドキュメントストアを利用したオーナー永続化の実装です。
type OwnerRepository struct {
	store docstore.Store
}

// NewOwnerRepository は OwnerRepository を生成します。
func NewOwnerRepository(store docstore.Store) *OwnerRepository {
	return &OwnerRepository{store: store}
}

// Create はオーナーを新規作成します。
func (r *OwnerRepository) Create(ctx context.Context, o *owner.Owner) (*owner.Owner, error) {
	doc := ownerDocument{Name: o.Name, Email: o.Email, Phone: o.Phone}

	id, err := r.store.Insert(ctx, docstore.CollectionOwner, doc)
	if err != nil {
		return nil, translateOwnerError(err)
	}
	return toOwner(id, doc), nil
}

// FindByID は ID でオーナーを取得します。
func (r *OwnerRepository) FindByID(ctx context.Context, id string) (*owner.Owner, error) {
	found, err := findOne(ctx, r.store, docstore.CollectionOwner, id, decodeOwner)
	if err != nil {
		return nil, translateOwnerError(err)
	}
	return found, nil
}

// List は全オーナーを取得します。
func (r *OwnerRepository) List(ctx context.Context) ([]*owner.Owner, error) {
	found, err := findAll(ctx, r.store, docstore.CollectionOwner, decodeOwner)
	if err != nil {
		return nil, translateOwnerError(err)
	}
	return found, nil
}

func decodeOwner(rec docstore.Record) (*owner.Owner, error) {
	var doc ownerDocument
	if err := rec.Decode(&doc); err != nil {
		return nil, err
	}
	return toOwner(rec.ID(), doc), nil
}

func toOwner(id string, doc ownerDocument) *owner.Owner {
	return &owner.Owner{ID: id, Name: doc.Name, Email: doc.Email, Phone: doc.Phone}
}

func translateOwnerError(err error) error {
	return translateDocstoreError(err, owner.ErrOwnerNotFound, owner.ErrInvalidID)
}
