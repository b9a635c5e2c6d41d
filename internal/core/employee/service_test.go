package employee

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"
)

type fakeEmployeeRepo struct {
	employees map[string]*Employee
	sequence  int
	order     []string
	writes    int
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[string]*Employee)}
}

func (r *fakeEmployeeRepo) Create(_ context.Context, e *Employee) (*Employee, error) {
	r.writes++
	clone := cloneEmployee(e)
	r.sequence++
	id := fmt.Sprintf("emp-%d", r.sequence)
	clone.ID = id
	r.employees[id] = clone
	r.order = append(r.order, id)
	return cloneEmployee(clone), nil
}

func (r *fakeEmployeeRepo) Update(_ context.Context, e *Employee) error {
	if _, ok := r.employees[e.ID]; !ok {
		return ErrEmployeeNotFound
	}
	r.writes++
	r.employees[e.ID] = cloneEmployee(e)
	return nil
}

func (r *fakeEmployeeRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.employees[id]; !ok {
		return ErrEmployeeNotFound
	}
	r.writes++
	delete(r.employees, id)
	for idx, existingID := range r.order {
		if existingID == id {
			r.order = append(r.order[:idx], r.order[idx+1:]...)
			break
		}
	}
	return nil
}

func (r *fakeEmployeeRepo) FindByID(_ context.Context, id string) (*Employee, error) {
	if id == "malformed" {
		return nil, ErrInvalidID
	}
	emp, ok := r.employees[id]
	if !ok {
		return nil, ErrEmployeeNotFound
	}
	return cloneEmployee(emp), nil
}

func (r *fakeEmployeeRepo) List(context.Context) ([]*Employee, error) {
	result := make([]*Employee, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, cloneEmployee(r.employees[id]))
	}
	return result, nil
}

func (r *fakeEmployeeRepo) seed(e *Employee) *Employee {
	created, _ := r.Create(context.Background(), e)
	r.writes = 0
	return created
}

type fakeReferences struct {
	ranks  map[string]bool
	stores map[string]bool
	err    error
}

func newFakeReferences() *fakeReferences {
	return &fakeReferences{
		ranks:  map[string]bool{"R1": true, "R2": true},
		stores: map[string]bool{"S1": true, "S3": true},
	}
}

func (f *fakeReferences) ValidateRank(_ context.Context, id string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if f.ranks[id] {
		return id, nil
	}
	return "", nil
}

func (f *fakeReferences) ValidateStoreList(_ context.Context, ids []string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	valid := make([]string, 0, len(ids))
	for _, id := range ids {
		if f.stores[id] {
			valid = append(valid, id)
		}
	}
	return valid, nil
}

type recordingTx struct {
	readWrite int
	readOnly  int
}

func (r *recordingTx) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	r.readOnly++
	return fn(ctx)
}

func (r *recordingTx) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	r.readWrite++
	return fn(ctx)
}

func cloneEmployee(e *Employee) *Employee {
	if e == nil {
		return nil
	}
	c := *e
	c.Stores = append(make([]string, 0, len(e.Stores)), e.Stores...)
	return &c
}

func ptr[T any](v T) *T {
	return &v
}

func TestService_CreateEmployee_FiltersReferences(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	svc := NewService(repo, newFakeReferences(), nil, nil)

	created, err := svc.CreateEmployee(context.Background(), CreateEmployeeInput{
		FirstName: "Ana",
		LastName:  "Popescu",
		Status:    ptr(StatusNone),
		Stores:    []string{"S1", "S2"},
		RankID:    "R1",
	})
	if err != nil {
		t.Fatalf("CreateEmployee returned error: %v", err)
	}

	stored := repo.employees[created.ID]
	if !reflect.DeepEqual(stored.Stores, []string{"S1"}) {
		t.Fatalf("expected stores [S1], got %v", stored.Stores)
	}
	if stored.RankID != "R1" {
		t.Fatalf("expected rank R1, got %q", stored.RankID)
	}
	if repo.writes != 1 {
		t.Fatalf("expected exactly one write, got %d", repo.writes)
	}
}

func TestService_CreateEmployee_Defaults(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	svc := NewService(repo, newFakeReferences(), nil, nil)

	created, err := svc.CreateEmployee(context.Background(), CreateEmployeeInput{
		FirstName: "Ion",
		LastName:  "Ionescu",
		RankID:    "R404",
	})
	if err != nil {
		t.Fatalf("CreateEmployee returned error: %v", err)
	}

	if created.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if created.Status != StatusNone {
		t.Fatalf("expected default status None, got %s", created.Status)
	}
	if created.RankID != "" {
		t.Fatalf("expected empty rank for unresolved reference, got %q", created.RankID)
	}
	if created.Stores == nil || len(created.Stores) != 0 {
		t.Fatalf("expected empty non-nil stores, got %#v", created.Stores)
	}
}

func TestService_CreateEmployee_KeepsStoreOrderAndDuplicates(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	svc := NewService(repo, newFakeReferences(), nil, nil)

	created, err := svc.CreateEmployee(context.Background(), CreateEmployeeInput{
		FirstName: "Dan",
		LastName:  "Pop",
		Stores:    []string{"S3", "S9", "S1", "S3"},
		RankID:    "R2",
	})
	if err != nil {
		t.Fatalf("CreateEmployee returned error: %v", err)
	}

	if want := []string{"S3", "S1", "S3"}; !reflect.DeepEqual(created.Stores, want) {
		t.Fatalf("expected %v, got %v", want, created.Stores)
	}
}

func TestService_CreateEmployee_InvalidStatus(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	svc := NewService(repo, newFakeReferences(), nil, nil)

	_, err := svc.CreateEmployee(context.Background(), CreateEmployeeInput{
		FirstName: "Ana",
		Status:    ptr(Status("Retired")),
	})
	if !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if repo.writes != 0 {
		t.Fatalf("expected no write, got %d", repo.writes)
	}
}

func TestService_CreateEmployee_PersistenceFailureAborts(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	refs := newFakeReferences()
	refs.err = errors.New("backend unavailable")
	svc := NewService(repo, refs, nil, nil)

	_, err := svc.CreateEmployee(context.Background(), CreateEmployeeInput{FirstName: "Ana", RankID: "R1"})
	if !errors.Is(err, refs.err) {
		t.Fatalf("expected backend error, got %v", err)
	}
	if repo.writes != 0 {
		t.Fatalf("expected no write, got %d", repo.writes)
	}
}

func TestService_UpdateEmployee_InvalidRankFallsBack(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	existing := repo.seed(&Employee{FirstName: "Ana", LastName: "Popescu", Status: StatusWorking, Stores: []string{"S1"}, RankID: "R1"})
	svc := NewService(repo, newFakeReferences(), nil, nil)

	updated, err := svc.UpdateEmployee(context.Background(), UpdateEmployeeInput{
		ID:     existing.ID,
		RankID: ptr("Rbad"),
	})
	if err != nil {
		t.Fatalf("UpdateEmployee returned error: %v", err)
	}

	if updated.RankID != "R1" {
		t.Fatalf("expected rank to fall back to R1, got %q", updated.RankID)
	}
	if repo.employees[existing.ID].RankID != "R1" {
		t.Fatalf("expected persisted rank R1, got %q", repo.employees[existing.ID].RankID)
	}
}

func TestService_UpdateEmployee_ValidRankOverride(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	existing := repo.seed(&Employee{FirstName: "Ana", Status: StatusNone, Stores: []string{}, RankID: "R1"})
	svc := NewService(repo, newFakeReferences(), nil, nil)

	updated, err := svc.UpdateEmployee(context.Background(), UpdateEmployeeInput{ID: existing.ID, RankID: ptr("R2")})
	if err != nil {
		t.Fatalf("UpdateEmployee returned error: %v", err)
	}
	if updated.RankID != "R2" {
		t.Fatalf("expected rank R2, got %q", updated.RankID)
	}
}

func TestService_UpdateEmployee_OmittedFieldsReset(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	existing := repo.seed(&Employee{
		FirstName: "Ana",
		LastName:  "Popescu",
		Status:    StatusVacation,
		Stores:    []string{"S1", "S3"},
		RankID:    "R1",
	})
	svc := NewService(repo, newFakeReferences(), nil, nil)

	updated, err := svc.UpdateEmployee(context.Background(), UpdateEmployeeInput{
		ID:        existing.ID,
		FirstName: ptr("Elena"),
	})
	if err != nil {
		t.Fatalf("UpdateEmployee returned error: %v", err)
	}

	if updated.FirstName != "Elena" || updated.LastName != "Popescu" {
		t.Fatalf("unexpected names: %s %s", updated.FirstName, updated.LastName)
	}
	if updated.Status != StatusNone {
		t.Fatalf("expected status reset to None, got %s", updated.Status)
	}
	if len(updated.Stores) != 0 {
		t.Fatalf("expected stores reset to empty, got %v", updated.Stores)
	}
	if updated.RankID != "R1" {
		t.Fatalf("expected rank kept, got %q", updated.RankID)
	}
	if repo.writes != 1 {
		t.Fatalf("expected exactly one write, got %d", repo.writes)
	}
}

func TestService_UpdateEmployee_AllOverrides(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	existing := repo.seed(&Employee{FirstName: "Ana", LastName: "Popescu", Status: StatusNone, Stores: []string{}, RankID: "R1"})
	svc := NewService(repo, newFakeReferences(), nil, nil)

	updated, err := svc.UpdateEmployee(context.Background(), UpdateEmployeeInput{
		ID:        existing.ID,
		FirstName: ptr("Maria"),
		LastName:  ptr("Ionescu"),
		Status:    ptr(StatusIllness),
		Stores:    ptr([]string{"S2", "S3"}),
		RankID:    ptr("R2"),
	})
	if err != nil {
		t.Fatalf("UpdateEmployee returned error: %v", err)
	}

	want := &Employee{
		ID:        existing.ID,
		FirstName: "Maria",
		LastName:  "Ionescu",
		Status:    StatusIllness,
		Stores:    []string{"S3"},
		RankID:    "R2",
	}
	if !reflect.DeepEqual(updated, want) {
		t.Fatalf("expected %+v, got %+v", want, updated)
	}
}

func TestService_UpdateEmployee_ReturnsStoredState(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	existing := repo.seed(&Employee{FirstName: "Ana", Status: StatusNone, Stores: []string{}, RankID: "R1"})
	svc := NewService(repo, newFakeReferences(), nil, nil)

	updated, err := svc.UpdateEmployee(context.Background(), UpdateEmployeeInput{ID: existing.ID, LastName: ptr("Pop")})
	if err != nil {
		t.Fatalf("UpdateEmployee returned error: %v", err)
	}

	updated.LastName = "mutated"
	if repo.employees[existing.ID].LastName != "Pop" {
		t.Fatalf("expected returned entity to be a fresh read")
	}
}

func TestService_UpdateEmployee_NotFoundPerformsNoWrite(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	svc := NewService(repo, newFakeReferences(), nil, nil)

	_, err := svc.UpdateEmployee(context.Background(), UpdateEmployeeInput{ID: "emp-404", FirstName: ptr("X")})
	if !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
	if repo.writes != 0 {
		t.Fatalf("expected no write, got %d", repo.writes)
	}
}

func TestService_UpdateEmployee_InvalidID(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	svc := NewService(repo, newFakeReferences(), nil, nil)

	for _, id := range []string{"", "  ", "malformed"} {
		_, err := svc.UpdateEmployee(context.Background(), UpdateEmployeeInput{ID: id})
		if !errors.Is(err, ErrInvalidID) {
			t.Fatalf("id %q: expected ErrInvalidID, got %v", id, err)
		}
	}
}

func TestService_UpdateEmployee_InvalidStatus(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	existing := repo.seed(&Employee{FirstName: "Ana", RankID: "R1"})
	svc := NewService(repo, newFakeReferences(), nil, nil)

	_, err := svc.UpdateEmployee(context.Background(), UpdateEmployeeInput{ID: existing.ID, Status: ptr(Status("unknown"))})
	if !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if repo.writes != 0 {
		t.Fatalf("expected no write, got %d", repo.writes)
	}
}

func TestService_DeleteEmployee_ReturnsSnapshot(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	existing := repo.seed(&Employee{FirstName: "Ana", LastName: "Popescu", Status: StatusWorking, Stores: []string{"S1"}, RankID: "R1"})
	tx := &recordingTx{}
	svc := NewService(repo, newFakeReferences(), tx, nil)

	deleted, err := svc.DeleteEmployee(context.Background(), DeleteEmployeeInput{ID: existing.ID})
	if err != nil {
		t.Fatalf("DeleteEmployee returned error: %v", err)
	}

	if !reflect.DeepEqual(deleted, existing) {
		t.Fatalf("expected snapshot %+v, got %+v", existing, deleted)
	}
	if _, ok := repo.employees[existing.ID]; ok {
		t.Fatalf("expected employee to be removed")
	}
	if tx.readWrite != 1 {
		t.Fatalf("expected delete to run in a read-write transaction")
	}
}

func TestService_DeleteEmployee_NotFound(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	svc := NewService(repo, newFakeReferences(), nil, nil)

	_, err := svc.DeleteEmployee(context.Background(), DeleteEmployeeInput{ID: "emp-404"})
	if !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}

	_, err = svc.DeleteEmployee(context.Background(), DeleteEmployeeInput{ID: " "})
	if !errors.Is(err, ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
}

func TestService_GetAndListEmployees(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	first := repo.seed(&Employee{FirstName: "A", Stores: []string{}})
	repo.seed(&Employee{FirstName: "B", Stores: []string{}})
	tx := &recordingTx{}
	svc := NewService(repo, newFakeReferences(), tx, nil)

	got, err := svc.GetEmployee(context.Background(), GetEmployeeInput{ID: first.ID})
	if err != nil {
		t.Fatalf("GetEmployee returned error: %v", err)
	}
	if got.FirstName != "A" {
		t.Fatalf("unexpected employee: %+v", got)
	}

	if _, err := svc.GetEmployee(context.Background(), GetEmployeeInput{}); !errors.Is(err, ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}

	all, err := svc.ListEmployees(context.Background())
	if err != nil {
		t.Fatalf("ListEmployees returned error: %v", err)
	}
	if len(all) != 2 || all[0].FirstName != "A" || all[1].FirstName != "B" {
		t.Fatalf("unexpected list: %+v", all)
	}
	if tx.readOnly != 2 {
		t.Fatalf("expected reads to use read-only transactions, got %d", tx.readOnly)
	}
}
