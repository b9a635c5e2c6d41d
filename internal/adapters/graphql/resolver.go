// Package graphql は GraphQL スキーマとリゾルバを提供します。
package graphql

import (
	"context"
	_ "embed"
	"fmt"
	"net/http"

	"github.com/99designs/gqlgen/graphql/playground"
	gql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	"github.com/ogurasousui/codex-graphql-clean-arch/internal/core/employee"
	"github.com/ogurasousui/codex-graphql-clean-arch/internal/core/location"
	"github.com/ogurasousui/codex-graphql-clean-arch/internal/core/owner"
	"github.com/ogurasousui/codex-graphql-clean-arch/internal/core/project"
	"github.com/ogurasousui/codex-graphql-clean-arch/internal/core/rank"
	"github.com/ogurasousui/codex-graphql-clean-arch/internal/core/store"
	"go.uber.org/zap"
)

//go:embed schema.graphql
var schemaSDL string

const maxQueryDepth = 8

// SchemaSDL はスキーマ定義を返します。
func SchemaSDL() string {
	return schemaSDL
}

// Services はリゾルバが利用するユースケース一式です。
type Services struct {
	Employees employee.UseCase
	Stores    store.UseCase
	Locations location.UseCase
	Ranks     rank.UseCase
	Owners    owner.UseCase
	Projects  project.UseCase
}

// Resolver は Query / Mutation のルートリゾルバです。
type Resolver struct {
	svc    Services
	logger *zap.Logger
}

// NewResolver は Resolver を生成します。
func NewResolver(svc Services, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{svc: svc, logger: logger}
}

// NewSchema はスキーマを解析し Resolver を結び付けます。
func NewSchema(r *Resolver) (*gql.Schema, error) {
	schema, err := gql.ParseSchema(schemaSDL, r,
		gql.Logger(panicLogger{logger: r.logger}),
		gql.MaxDepth(maxQueryDepth),
	)
	if err != nil {
		return nil, fmt.Errorf("graphql: parse schema: %w", err)
	}
	return schema, nil
}

// QueryHandler は POST /query 用のハンドラを返します。
func QueryHandler(schema *gql.Schema) http.Handler {
	return &relay.Handler{Schema: schema}
}

// PlaygroundHandler は GraphQL Playground を返すハンドラです。
func PlaygroundHandler(endpoint string) http.Handler {
	return playground.Handler("opsgraph", endpoint)
}

type panicLogger struct {
	logger *zap.Logger
}

// LogPanic はリゾルバ内の panic を記録します。
func (l panicLogger) LogPanic(_ context.Context, value interface{}) {
	l.logger.Error("graphql resolver panic", zap.Any("panic", value), zap.Stack("stack"))
}

type fetchInput struct {
	ID gql.ID
}

func toIDs(ids []string) []gql.ID {
	out := make([]gql.ID, 0, len(ids))
	for _, id := range ids {
		out = append(out, gql.ID(id))
	}
	return out
}

func fromIDs(ids *[]gql.ID) []string {
	if ids == nil {
		return nil
	}
	out := make([]string, 0, len(*ids))
	for _, id := range *ids {
		out = append(out, string(id))
	}
	return out
}
