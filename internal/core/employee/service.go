package employee

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// ReferenceValidator は役職・店舗参照を検証します。
// 解決できない参照はエラーではなく、役職は空文字列、店舗は除外で表現されます。
type ReferenceValidator interface {
	ValidateRank(ctx context.Context, id string) (string, error)
	ValidateStoreList(ctx context.Context, ids []string) ([]string, error)
}

// TransactionManager はトランザクション制御の抽象化です。
type TransactionManager interface {
	WithinReadOnly(ctx context.Context, fn func(context.Context) error) error
	WithinReadWrite(ctx context.Context, fn func(context.Context) error) error
}

type noopTransactionManager struct{}

func (noopTransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

func (noopTransactionManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

// Service は社員に関するユースケースをまとめます。
type Service struct {
	repo   Repository
	refs   ReferenceValidator
	tx     TransactionManager
	logger *zap.Logger
}

// UseCase は社員ユースケースの公開インターフェースです。
type UseCase interface {
	CreateEmployee(ctx context.Context, in CreateEmployeeInput) (*Employee, error)
	GetEmployee(ctx context.Context, in GetEmployeeInput) (*Employee, error)
	ListEmployees(ctx context.Context) ([]*Employee, error)
	UpdateEmployee(ctx context.Context, in UpdateEmployeeInput) (*Employee, error)
	DeleteEmployee(ctx context.Context, in DeleteEmployeeInput) (*Employee, error)
}

// NewService は Service を生成します。
func NewService(repo Repository, refs ReferenceValidator, tx TransactionManager, logger *zap.Logger) *Service {
	if tx == nil {
		tx = noopTransactionManager{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, refs: refs, tx: tx, logger: logger}
}

// CreateEmployeeInput は社員作成時の入力です。
type CreateEmployeeInput struct {
	FirstName string
	LastName  string
	Status    *Status
	Stores    []string
	RankID    string
}

// UpdateEmployeeInput は社員更新時の入力です。nil の項目は未指定として扱います。
type UpdateEmployeeInput struct {
	ID        string
	FirstName *string
	LastName  *string
	Status    *Status
	Stores    *[]string
	RankID    *string
}

// DeleteEmployeeInput は社員削除時の入力です。
type DeleteEmployeeInput struct {
	ID string
}

// GetEmployeeInput は社員取得時の入力です。
type GetEmployeeInput struct {
	ID string
}

// CreateEmployee は新しい社員を作成します。
// 解決できない役職は空文字列、解決できない店舗は除外して保存します。
func (s *Service) CreateEmployee(ctx context.Context, in CreateEmployeeInput) (*Employee, error) {
	status := StatusNone
	if in.Status != nil {
		if !in.Status.IsValid() {
			return nil, ErrInvalidStatus
		}
		status = *in.Status
	}

	var created *Employee
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		rankID, err := s.refs.ValidateRank(txCtx, in.RankID)
		if err != nil {
			return err
		}

		stores, err := s.refs.ValidateStoreList(txCtx, in.Stores)
		if err != nil {
			return err
		}

		result, err := s.repo.Create(txCtx, &Employee{
			FirstName: in.FirstName,
			LastName:  in.LastName,
			Status:    status,
			Stores:    stores,
			RankID:    rankID,
		})
		if err != nil {
			return err
		}

		created = result
		return nil
	}); err != nil {
		return nil, err
	}

	return created, nil
}

// UpdateEmployee は社員情報を部分更新します。
//
// status と stores は未指定の場合に既定値 (None と空リスト) へ戻ります。
// 解決できない役職が指定された場合は更新前の役職を保持します。
// 返却値は保存後に再取得した内容です。
func (s *Service) UpdateEmployee(ctx context.Context, in UpdateEmployeeInput) (*Employee, error) {
	if strings.TrimSpace(in.ID) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}
	if in.Status != nil && !in.Status.IsValid() {
		return nil, ErrInvalidStatus
	}

	var updated *Employee
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		current, err := s.repo.FindByID(txCtx, in.ID)
		if err != nil {
			return err
		}

		next := &Employee{
			ID:        current.ID,
			FirstName: current.FirstName,
			LastName:  current.LastName,
			Status:    StatusNone,
			Stores:    []string{},
			RankID:    current.RankID,
		}

		if in.RankID != nil {
			rankID, err := s.refs.ValidateRank(txCtx, *in.RankID)
			if err != nil {
				return err
			}
			if rankID != "" {
				next.RankID = rankID
			} else {
				s.logger.Info("rank override rejected, keeping current rank",
					zap.String("employee_id", current.ID),
					zap.String("rank_id", current.RankID),
				)
			}
		}

		if in.FirstName != nil {
			next.FirstName = *in.FirstName
		}
		if in.LastName != nil {
			next.LastName = *in.LastName
		}
		if in.Status != nil {
			next.Status = *in.Status
		}

		if in.Stores != nil {
			stores, err := s.refs.ValidateStoreList(txCtx, *in.Stores)
			if err != nil {
				return err
			}
			next.Stores = stores
		}

		if err := s.repo.Update(txCtx, next); err != nil {
			return err
		}

		result, err := s.repo.FindByID(txCtx, current.ID)
		if err != nil {
			return err
		}

		updated = result
		return nil
	}); err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteEmployee は社員を削除し、削除前の内容を返します。
func (s *Service) DeleteEmployee(ctx context.Context, in DeleteEmployeeInput) (*Employee, error) {
	if strings.TrimSpace(in.ID) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	var snapshot *Employee
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		found, err := s.repo.FindByID(txCtx, in.ID)
		if err != nil {
			return err
		}

		if err := s.repo.Delete(txCtx, found.ID); err != nil {
			return err
		}

		snapshot = found
		return nil
	}); err != nil {
		return nil, err
	}

	return snapshot, nil
}

// GetEmployee は社員を取得します。
func (s *Service) GetEmployee(ctx context.Context, in GetEmployeeInput) (*Employee, error) {
	if strings.TrimSpace(in.ID) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	var result *Employee
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		found, err := s.repo.FindByID(txCtx, in.ID)
		if err != nil {
			return err
		}
		result = found
		return nil
	}); err != nil {
		return nil, err
	}

	return result, nil
}

// ListEmployees は全社員を取得します。
func (s *Service) ListEmployees(ctx context.Context) ([]*Employee, error) {
	var employees []*Employee
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		found, err := s.repo.List(txCtx)
		if err != nil {
			return err
		}
		employees = found
		return nil
	}); err != nil {
		return nil, err
	}

	return employees, nil
}
