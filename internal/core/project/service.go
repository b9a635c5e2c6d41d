package project

import (
	"context"
	"fmt"
	"strings"
)

// Service はプロジェクトに関するユースケースをまとめます。
type Service struct {
	repo Repository
}

// UseCase はプロジェクトユースケースの公開インターフェースです。
type UseCase interface {
	CreateProject(ctx context.Context, in CreateProjectInput) (*Project, error)
	GetProject(ctx context.Context, in GetProjectInput) (*Project, error)
	ListProjects(ctx context.Context) ([]*Project, error)
}

// NewService は Service を生成します。
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateProjectInput はプロジェクト作成時の入力です。
type CreateProjectInput struct {
	OwnerID     string
	Name        string
	Description string
	Status      *Status
}

// GetProjectInput はプロジェクト取得時の入力です。
type GetProjectInput struct {
	ID string
}

// CreateProject は新しいプロジェクトを作成します。
// OwnerID はオーナーの存在を確認せず、名前と合わせてそのまま保存します。
func (s *Service) CreateProject(ctx context.Context, in CreateProjectInput) (*Project, error) {
	status := StatusNotStarted
	if in.Status != nil {
		if !in.Status.IsValid() {
			return nil, ErrInvalidStatus
		}
		status = *in.Status
	}

	return s.repo.Create(ctx, &Project{
		OwnerID:     in.OwnerID,
		Name:        in.Name,
		Description: in.Description,
		Status:      status,
	})
}

// GetProject は ID でプロジェクトを取得します。
func (s *Service) GetProject(ctx context.Context, in GetProjectInput) (*Project, error) {
	if strings.TrimSpace(in.ID) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}
	return s.repo.FindByID(ctx, in.ID)
}

// ListProjects は全プロジェクトを取得します。
func (s *Service) ListProjects(ctx context.Context) ([]*Project, error) {
	return s.repo.List(ctx)
}
