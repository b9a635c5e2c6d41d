package document

import (
	"context"

	"github.com/ogurasousui/codex-graphql-clean-arch/internal/core/employee"
	"github.com/ogurasousui/codex-graphql-clean-arch/internal/platform/docstore"
)

type employeeDocument struct {
	FirstName string   `json:"first_name" bson:"first_name"`
	LastName  string   `json:"last_name" bson:"last_name"`
	Status    string   `json:"status" bson:"status"`
	Stores    []string `json:"stores" bson:"stores"`
	RankID    string   `json:"rank_id" bson:"rank_id"`
}

// EmployeeRepository はドキュメントストアを利用した社員永続化の実装です。
type EmployeeRepository struct {
	store docstore.Store
}

// NewEmployeeRepository は EmployeeRepository を生成します。
func NewEmployeeRepository(store docstore.Store) *EmployeeRepository {
	return &EmployeeRepository{store: store}
}

// Create は社員を新規作成します。
func (r *EmployeeRepository) Create(ctx context.Context, e *employee.Employee) (*employee.Employee, error) {
	doc := employeeDocument{
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Status:    string(e.Status),
		Stores:    nonNilStores(e.Stores),
		RankID:    e.RankID,
	}

	id, err := r.store.Insert(ctx, docstore.CollectionEmployee, doc)
	if err != nil {
		return nil, translateEmployeeError(err)
	}
	return toEmployee(id, doc), nil
}

// Update は社員の 5 項目を置き換えます。
func (r *EmployeeRepository) Update(ctx context.Context, e *employee.Employee) error {
	err := r.store.ReplaceFields(ctx, docstore.CollectionEmployee, e.ID, docstore.Fields{
		"first_name": e.FirstName,
		"last_name":  e.LastName,
		"status":     string(e.Status),
		"stores":     nonNilStores(e.Stores),
		"rank_id":    e.RankID,
	})
	return translateEmployeeError(err)
}

// Delete は社員を削除します。
func (r *EmployeeRepository) Delete(ctx context.Context, id string) error {
	return translateEmployeeError(r.store.DeleteByID(ctx, docstore.CollectionEmployee, id))
}

// FindByID は ID で社員を取得します。
func (r *EmployeeRepository) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	found, err := findOne(ctx, r.store, docstore.CollectionEmployee, id, decodeEmployee)
	if err != nil {
		return nil, translateEmployeeError(err)
	}
	return found, nil
}

// List は全社員を取得します。
func (r *EmployeeRepository) List(ctx context.Context) ([]*employee.Employee, error) {
	found, err := findAll(ctx, r.store, docstore.CollectionEmployee, decodeEmployee)
	if err != nil {
		return nil, translateEmployeeError(err)
	}
	return found, nil
}

func decodeEmployee(rec docstore.Record) (*employee.Employee, error) {
	var doc employeeDocument
	if err := rec.Decode(&doc); err != nil {
		return nil, err
	}
	return toEmployee(rec.ID(), doc), nil
}

func toEmployee(id string, doc employeeDocument) *employee.Employee {
	status := employee.Status(doc.Status)
	if status == "" {
		status = employee.StatusNone
	}
	return &employee.Employee{
		ID:        id,
		FirstName: doc.FirstName,
		LastName:  doc.LastName,
		Status:    status,
		Stores:    nonNilStores(doc.Stores),
		RankID:    doc.RankID,
	}
}

func nonNilStores(stores []string) []string {
	if stores == nil {
		return []string{}
	}
	return stores
}

func translateEmployeeError(err error) error {
	return translateDocstoreError(err, employee.ErrEmployeeNotFound, employee.ErrInvalidID)
}
