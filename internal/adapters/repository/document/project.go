package document

import (
	"context"

	"github.com/ogurasousui/codex-graphql-clean-arch/internal/core/project"
	"github.com/ogurasousui/codex-graphql-clean-arch/internal/platform/docstore"
)

type projectDocument struct {
	OwnerID     string `json:"owner_id" bson:"owner_id"`
	Name        string `json:"name" bson:"name"`
	Description string `json:"description" bson:"description"`
	Status      string `json:"status" bson:"status"`
}

// ProjectRepository はドキュメントストアを利用したプロジェクト永続化の実装です。
type ProjectRepository struct {
	store docstore.Store
}

// NewProjectRepository は ProjectRepository を生成します。
func NewProjectRepository(store docstore.Store) *ProjectRepository {
	return &ProjectRepository{store: store}
}

// Create はプロジェクトを新規作成します。
func (r *ProjectRepository) Create(ctx context.Context, p *project.Project) (*project.Project, error) {
	doc := projectDocument{
		OwnerID:     p.OwnerID,
		Name:        p.Name,
		Description: p.Description,
		Status:      string(p.Status),
	}

	id, err := r.store.Insert(ctx, docstore.CollectionProject, doc)
	if err != nil {
		return nil, translateProjectError(err)
	}
	return toProject(id, doc), nil
}

// FindByID は ID でプロジェクトを取得します。
func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*project.Project, error) {
	found, err := findOne(ctx, r.store, docstore.CollectionProject, id, decodeProject)
	if err != nil {
		return nil, translateProjectError(err)
	}
	return found, nil
}

// List は全プロジェクトを取得します。
func (r *ProjectRepository) List(ctx context.Context) ([]*project.Project, error) {
	found, err := findAll(ctx, r.store, docstore.CollectionProject, decodeProject)
	if err != nil {
		return nil, translateProjectError(err)
	}
	return found, nil
}

func decodeProject(rec docstore.Record) (*project.Project, error) {
	var doc projectDocument
	if err := rec.Decode(&doc); err != nil {
		return nil, err
	}
	return toProject(rec.ID(), doc), nil
}

func toProject(id string, doc projectDocument) *project.Project {
	return &project.Project{
		ID:          id,
		OwnerID:     doc.OwnerID,
		Name:        doc.Name,
		Description: doc.Description,
		Status:      project.Status(doc.Status),
	}
}

func translateProjectError(err error) error {
	return translateDocstoreError(err, project.ErrProjectNotFound, project.ErrInvalidID)
}
