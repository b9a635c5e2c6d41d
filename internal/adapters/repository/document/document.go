// Package document はドキュメントストア上に各エンティティのリポジトリを実装します。
package document

import (
	"context"
	"errors"

	"github.com/ogurasousui/codex-graphql-clean-arch/internal/platform/docstore"
)

// translateDocstoreError はドキュメントストアのエラーをドメインのエラーへ変換します。
func translateDocstoreError(err, notFound, invalidID error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, docstore.ErrNotFound):
		return notFound
	case errors.Is(err, docstore.ErrInvalidID):
		return invalidID
	default:
		return err
	}
}

// findOne は 1 件取得して decode で変換します。
func findOne[T any](ctx context.Context, store docstore.Store, collection, id string, decode func(docstore.Record) (*T, error)) (*T, error) {
	rec, err := store.FindByID(ctx, collection, id)
	if err != nil {
		return nil, err
	}
	return decode(rec)
}

// findAll は全件取得して decode で変換します。結果が 0 件でも nil ではないスライスを返します。
func findAll[T any](ctx context.Context, store docstore.Store, collection string, decode func(docstore.Record) (*T, error)) ([]*T, error) {
	records, err := store.FindAll(ctx, collection)
	if err != nil {
		return nil, err
	}

	result := make([]*T, 0, len(records))
	for _, rec := range records {
		item, err := decode(rec)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, nil
}
