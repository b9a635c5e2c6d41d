package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/ogurasousui/codex-graphql-clean-arch/internal/core/location"
)

// LocationValidator は所在地参照を解決します。解決できない場合は nil を返します。
type LocationValidator interface {
	ValidateLocation(ctx context.Context, id string) (*location.Location, error)
}

// Service は店舗に関するユースケースをまとめます。
type Service struct {
	repo      Repository
	locations LocationValidator
}

// UseCase は店舗ユースケースの公開インターフェースです。
type UseCase interface {
	CreateStore(ctx context.Context, in CreateStoreInput) (*Store, error)
	GetStore(ctx context.Context, in GetStoreInput) (*Store, error)
	ListStores(ctx context.Context) ([]*Store, error)
}

// NewService は Service を生成します。
func NewService(repo Repository, locations LocationValidator) *Service {
	return &Service{repo: repo, locations: locations}
}

// CreateStoreInput は店舗作成時の入力です。
type CreateStoreInput struct {
	Name       string
	LocationID string
}

// GetStoreInput は店舗取得時の入力です。
type GetStoreInput struct {
	ID string
}

// CreateStore は新しい店舗を作成します。
// 所在地が解決できない場合、location_id は空文字列で保存されます。
func (s *Service) CreateStore(ctx context.Context, in CreateStoreInput) (*Store, error) {
	loc, err := s.locations.ValidateLocation(ctx, in.LocationID)
	if err != nil {
		return nil, err
	}

	locationID := ""
	if loc != nil {
		locationID = loc.ID
	}

	return s.repo.Create(ctx, &Store{
		Name:       in.Name,
		LocationID: locationID,
	})
}

// GetStore は ID で店舗を取得します。
func (s *Service) GetStore(ctx context.Context, in GetStoreInput) (*Store, error) {
	if strings.TrimSpace(in.ID) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}
	return s.repo.FindByID(ctx, in.ID)
}

// ListStores は全店舗を取得します。
func (s *Service) ListStores(ctx context.Context) ([]*Store, error) {
	return s.repo.List(ctx)
}
