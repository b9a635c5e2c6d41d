package location

import "context"

// Repository は所在地永続化の抽象です。
type Repository interface {
	Create(ctx context.Context, location *Location) (*Location, error)
	FindByID(ctx context.Context, id string) (*Location, error)
	List(ctx context.Context) ([]*Location, error)
}
