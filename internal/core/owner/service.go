package owner

import (
	"context"
	"fmt"
	"strings"
)

// Service はオーナーに関するユースケースをまとめます。
type Service struct {
	repo Repository
}

// UseCase はオーナーユースケースの公開インターフェースです。
type UseCase interface {
	CreateOwner(ctx context.Context, in CreateOwnerInput) (*Owner, error)
	GetOwner(ctx context.Context, in GetOwnerInput) (*Owner, error)
	ListOwners(ctx context.Context) ([]*Owner, error)
}

// NewService は Service を生成します。
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateOwnerInput はオーナー作成時の入力です。
type CreateOwnerInput struct {
	Name  string
	Email string
	Phone string
}

// GetOwnerInput はオーナー取得時の入力です。
type GetOwnerInput struct {
	ID string
}

// CreateOwner は新しいオーナーを作成します。入力値は検証せずそのまま保存します。
func (s *Service) CreateOwner(ctx context.Context, in CreateOwnerInput) (*Owner, error) {
	return s.repo.Create(ctx, &Owner{
		Name:  in.Name,
		Email: in.Email,
		Phone: in.Phone,
	})
}

// GetOwner は ID でオーナーを取得します。
func (s *Service) GetOwner(ctx context.Context, in GetOwnerInput) (*Owner, error) {
	if strings.TrimSpace(in.ID) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}
	return s.repo.FindByID(ctx, in.ID)
}

// ListOwners は全オーナーを取得します。
func (s *Service) ListOwners(ctx context.Context) ([]*Owner, error) {
	return s.repo.List(ctx)
}
