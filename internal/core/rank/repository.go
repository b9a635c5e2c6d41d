package rank

import "context"

// Repository は役職永続化の抽象です。
type Repository interface {
	Create(ctx context.Context, rank *Rank) (*Rank, error)
	FindByID(ctx context.Context, id string) (*Rank, error)
	List(ctx context.Context) ([]*Rank, error)
}
