package rank

import (
	"context"
	"fmt"
	"strings"
)

// Service は役職に関するユースケースをまとめます。
type Service struct {
	repo Repository
}

// UseCase は役職ユースケースの公開インターフェースです。
type UseCase interface {
	CreateRank(ctx context.Context, in CreateRankInput) (*Rank, error)
	GetRank(ctx context.Context, in GetRankInput) (*Rank, error)
	ListRanks(ctx context.Context) ([]*Rank, error)
}

// NewService は Service を生成します。
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateRankInput は役職作成時の入力です。
type CreateRankInput struct {
	Name        string
	Description string
}

// GetRankInput は役職取得時の入力です。
type GetRankInput struct {
	ID string
}

// CreateRank は新しい役職を作成します。
func (s *Service) CreateRank(ctx context.Context, in CreateRankInput) (*Rank, error) {
	return s.repo.Create(ctx, &Rank{
		Name:        in.Name,
		Description: in.Description,
	})
}

// GetRank は ID で役職を取得します。
func (s *Service) GetRank(ctx context.Context, in GetRankInput) (*Rank, error) {
	if strings.TrimSpace(in.ID) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}
	return s.repo.FindByID(ctx, in.ID)
}

// ListRanks は全役職を取得します。
func (s *Service) ListRanks(ctx context.Context) ([]*Rank, error) {
	return s.repo.List(ctx)
}
