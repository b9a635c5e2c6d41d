package graphql

import (
	"errors"

	"github.com/ogurasousui/codex-graphql-clean-arch/internal/core/employee"
	"github.com/ogurasousui/codex-graphql-clean-arch/internal/core/location"
	"github.com/ogurasousui/codex-graphql-clean-arch/internal/core/owner"
	"github.com/ogurasousui/codex-graphql-clean-arch/internal/core/project"
	"github.com/ogurasousui/codex-graphql-clean-arch/internal/core/rank"
	"github.com/ogurasousui/codex-graphql-clean-arch/internal/core/store"
	"go.uber.org/zap"
)

// GraphQL エラーの extensions.code に設定する値です。
const (
	CodeInvalidIdentifier  = "INVALID_IDENTIFIER"
	CodeNotFound           = "NOT_FOUND"
	CodeValidationFailed   = "VALIDATION_FAILED"
	CodePersistenceFailure = "PERSISTENCE_FAILURE"
)

// Error は extensions.code 付きで返却される GraphQL エラーです。
type Error struct {
	Code    string
	Message string
	cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Extensions は graphql-go がレスポンスの extensions に展開します。
func (e *Error) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.Code}
}

func (r *Resolver) toGraphQLError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, employee.ErrInvalidID),
		errors.Is(err, store.ErrInvalidID),
		errors.Is(err, location.ErrInvalidID),
		errors.Is(err, rank.ErrInvalidID),
		errors.Is(err, owner.ErrInvalidID),
		errors.Is(err, project.ErrInvalidID):
		return &Error{Code: CodeInvalidIdentifier, Message: err.Error(), cause: err}
	case errors.Is(err, employee.ErrEmployeeNotFound),
		errors.Is(err, store.ErrStoreNotFound),
		errors.Is(err, location.ErrLocationNotFound),
		errors.Is(err, rank.ErrRankNotFound),
		errors.Is(err, owner.ErrOwnerNotFound),
		errors.Is(err, project.ErrProjectNotFound):
		return &Error{Code: CodeNotFound, Message: err.Error(), cause: err}
	case errors.Is(err, employee.ErrInvalidStatus),
		errors.Is(err, project.ErrInvalidStatus),
		errors.Is(err, errUnknownEnum):
		return &Error{Code: CodeValidationFailed, Message: err.Error(), cause: err}
	default:
		r.logger.Error("request failed", zap.Error(err))
		return &Error{Code: CodePersistenceFailure, Message: "persistence failure", cause: err}
	}
}
