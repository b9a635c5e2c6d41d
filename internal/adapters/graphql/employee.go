package graphql

import (
	"context"

	gql "github.com/graph-gophers/graphql-go"
	"github.com/ogurasousui/codex-graphql-clean-arch/internal/core/employee"
)

type employeeResolver struct {
	e *employee.Employee
}

func (r employeeResolver) ID() gql.ID        { return gql.ID(r.e.ID) }
func (r employeeResolver) FirstName() string { return r.e.FirstName }
func (r employeeResolver) LastName() string  { return r.e.LastName }
func (r employeeResolver) Status() string    { return employeeStatusToEnum(r.e.Status) }
func (r employeeResolver) Stores() []gql.ID  { return toIDs(r.e.Stores) }
func (r employeeResolver) RankID() gql.ID    { return gql.ID(r.e.RankID) }

type createEmployeeInput struct {
	FirstName string
	LastName  string
	Status    *string
	Stores    *[]gql.ID
	RankID    gql.ID
}

type updateEmployeeInput struct {
	ID        gql.ID
	FirstName *string
	LastName  *string
	Status    *string
	Stores    *[]gql.ID
	RankID    *gql.ID
}

// Employee は ID で社員を取得します。
func (r *Resolver) Employee(ctx context.Context, args struct{ Input fetchInput }) (*employeeResolver, error) {
	found, err := r.svc.Employees.GetEmployee(ctx, employee.GetEmployeeInput{ID: string(args.Input.ID)})
	if err != nil {
		return nil, r.toGraphQLError(err)
	}
	return &employeeResolver{e: found}, nil
}

// GetEmployees は全社員を取得します。
func (r *Resolver) GetEmployees(ctx context.Context) ([]*employeeResolver, error) {
	found, err := r.svc.Employees.ListEmployees(ctx)
	if err != nil {
		return nil, r.toGraphQLError(err)
	}
	out := make([]*employeeResolver, 0, len(found))
	for _, e := range found {
		out = append(out, &employeeResolver{e: e})
	}
	return out, nil
}

// CreateEmployee は社員を作成します。
func (r *Resolver) CreateEmployee(ctx context.Context, args struct{ Input createEmployeeInput }) (*employeeResolver, error) {
	status, err := employeeStatusFromEnum(args.Input.Status)
	if err != nil {
		return nil, r.toGraphQLError(err)
	}

	created, err := r.svc.Employees.CreateEmployee(ctx, employee.CreateEmployeeInput{
		FirstName: args.Input.FirstName,
		LastName:  args.Input.LastName,
		Status:    status,
		Stores:    fromIDs(args.Input.Stores),
		RankID:    string(args.Input.RankID),
	})
	if err != nil {
		return nil, r.toGraphQLError(err)
	}
	return &employeeResolver{e: created}, nil
}

// UpdateEmployee は社員を部分更新します。
func (r *Resolver) UpdateEmployee(ctx context.Context, args struct{ Input updateEmployeeInput }) (*employeeResolver, error) {
	status, err := employeeStatusFromEnum(args.Input.Status)
	if err != nil {
		return nil, r.toGraphQLError(err)
	}

	in := employee.UpdateEmployeeInput{
		ID:        string(args.Input.ID),
		FirstName: args.Input.FirstName,
		LastName:  args.Input.LastName,
		Status:    status,
	}
	if args.Input.Stores != nil {
		stores := fromIDs(args.Input.Stores)
		in.Stores = &stores
	}
	if args.Input.RankID != nil {
		rankID := string(*args.Input.RankID)
		in.RankID = &rankID
	}

	updated, err := r.svc.Employees.UpdateEmployee(ctx, in)
	if err != nil {
		return nil, r.toGraphQLError(err)
	}
	return &employeeResolver{e: updated}, nil
}

// DeleteEmployee は社員を削除し、削除前の内容を返します。
func (r *Resolver) DeleteEmployee(ctx context.Context, args struct{ Input fetchInput }) (*employeeResolver, error) {
	deleted, err := r.svc.Employees.DeleteEmployee(ctx, employee.DeleteEmployeeInput{ID: string(args.Input.ID)})
	if err != nil {
		return nil, r.toGraphQLError(err)
	}
	return &employeeResolver{e: deleted}, nil
}
