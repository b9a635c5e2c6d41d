package owner

import "context"

// Repository はオーナーエンティティの永続化を行うインターフェースです。
type Repository interface {
	Create(ctx context.Context, owner *Owner) (*Owner, error)
	FindByID(ctx context.Context, id string) (*Owner, error)
	List(ctx context.Context) ([]*Owner, error)
}
