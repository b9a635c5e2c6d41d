package location

import (
	"context"
	"fmt"
	"strings"
)

// Service は所在地に関するユースケースをまとめます。
type Service struct {
	repo Repository
}

// UseCase は所在地ユースケースの公開インターフェースです。
type UseCase interface {
	CreateLocation(ctx context.Context, in CreateLocationInput) (*Location, error)
	GetLocation(ctx context.Context, in GetLocationInput) (*Location, error)
	ListLocations(ctx context.Context) ([]*Location, error)
}

// NewService は Service を生成します。
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateLocationInput は所在地作成時の入力です。
type CreateLocationInput struct {
	Country string
	State   string
}

// GetLocationInput は所在地取得時の入力です。
type GetLocationInput struct {
	ID string
}

// CreateLocation は新しい所在地を作成します。
func (s *Service) CreateLocation(ctx context.Context, in CreateLocationInput) (*Location, error) {
	return s.repo.Create(ctx, &Location{
		Country: in.Country,
		State:   in.State,
	})
}

// GetLocation は ID で所在地を取得します。
func (s *Service) GetLocation(ctx context.Context, in GetLocationInput) (*Location, error) {
	if strings.TrimSpace(in.ID) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}
	return s.repo.FindByID(ctx, in.ID)
}

// ListLocations は全所在地を取得します。
func (s *Service) ListLocations(ctx context.Context) ([]*Location, error) {
	return s.repo.List(ctx)
}
