package employee

import "context"

// Repository は社員永続化の抽象です。
type Repository interface {
	Create(ctx context.Context, employee *Employee) (*Employee, error)
	// Update は first_name, last_name, status, stores, rank_id の 5 項目を 1 回の書き込みで置き換えます。
	Update(ctx context.Context, employee *Employee) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*Employee, error)
	List(ctx context.Context) ([]*Employee, error)
}
