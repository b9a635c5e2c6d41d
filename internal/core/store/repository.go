package store

import "context"

// Repository は店舗永続化の抽象です。
type Repository interface {
	Create(ctx context.Context, store *Store) (*Store, error)
	FindByID(ctx context.Context, id string) (*Store, error)
	List(ctx context.Context) ([]*Store, error)
}
