package graphql

import (
	"context"

	gql "github.com/graph-gophers/graphql-go"
	"github.com/ogurasousui/codex-graphql-clean-arch/internal/core/owner"
	"github.com/ogurasousui/codex-graphql-clean-arch/internal/core/project"
)

type ownerResolver struct {
	o *owner.Owner
}

func (r ownerResolver) ID() gql.ID    { return gql.ID(r.o.ID) }
func (r ownerResolver) Name() string  { return r.o.Name }
func (r ownerResolver) Email() string { return r.o.Email }
func (r ownerResolver) Phone() string { return r.o.Phone }

type projectResolver struct {
	p *project.Project
}

func (r projectResolver) ID() gql.ID          { return gql.ID(r.p.ID) }
func (r projectResolver) OwnerID() gql.ID     { return gql.ID(r.p.OwnerID) }
func (r projectResolver) Name() string        { return r.p.Name }
func (r projectResolver) Description() string { return r.p.Description }
func (r projectResolver) Status() string      { return projectStatusToEnum(r.p.Status) }

type createOwnerInput struct {
	Name  string
	Email string
	Phone string
}

type createProjectInput struct {
	OwnerID     gql.ID
	Name        string
	Description string
	Status      *string
}

// Owner は ID でオーナーを取得します。
func (r *Resolver) Owner(ctx context.Context, args struct{ Input fetchInput }) (*ownerResolver, error) {
	found, err := r.svc.Owners.GetOwner(ctx, owner.GetOwnerInput{ID: string(args.Input.ID)})
	if err != nil {
		return nil, r.toGraphQLError(err)
	}
	return &ownerResolver{o: found}, nil
}

// GetOwners は全オーナーを取得します。
func (r *Resolver) GetOwners(ctx context.Context) ([]*ownerResolver, error) {
	found, err := r.svc.Owners.ListOwners(ctx)
	if err != nil {
		return nil, r.toGraphQLError(err)
	}
	out := make([]*ownerResolver, 0, len(found))
	for _, o := range found {
		out = append(out, &ownerResolver{o: o})
	}
	return out, nil
}

// CreateOwner はオーナーを作成します。
func (r *Resolver) CreateOwner(ctx context.Context, args struct{ Input createOwnerInput }) (*ownerResolver, error) {
	created, err := r.svc.Owners.CreateOwner(ctx, owner.CreateOwnerInput{
		Name:  args.Input.Name,
		Email: args.Input.Email,
		Phone: args.Input.Phone,
	})
	if err != nil {
		return nil, r.toGraphQLError(err)
	}
	return &ownerResolver{o: created}, nil
}

// Project は ID でプロジェクトを取得します。
func (r *Resolver) Project(ctx context.Context, args struct{ Input fetchInput }) (*projectResolver, error) {
	found, err := r.svc.Projects.GetProject(ctx, project.GetProjectInput{ID: string(args.Input.ID)})
	if err != nil {
		return nil, r.toGraphQLError(err)
	}
	return &projectResolver{p: found}, nil
}

// GetProjects は全プロジェクトを取得します。
func (r *Resolver) GetProjects(ctx context.Context) ([]*projectResolver, error) {
	found, err := r.svc.Projects.ListProjects(ctx)
	if err != nil {
		return nil, r.toGraphQLError(err)
	}
	out := make([]*projectResolver, 0, len(found))
	for _, p := range found {
		out = append(out, &projectResolver{p: p})
	}
	return out, nil
}

// CreateProject はプロジェクトを作成します。
func (r *Resolver) CreateProject(ctx context.Context, args struct{ Input createProjectInput }) (*projectResolver, error) {
	status, err := projectStatusFromEnum(args.Input.Status)
	if err != nil {
		return nil, r.toGraphQLError(err)
	}

	created, err := r.svc.Projects.CreateProject(ctx, project.CreateProjectInput{
		OwnerID:     string(args.Input.OwnerID),
		Name:        args.Input.Name,
		Description: args.Input.Description,
		Status:      status,
	})
	if err != nil {
		return nil, r.toGraphQLError(err)
	}
	return &projectResolver{p: created}, nil
}
