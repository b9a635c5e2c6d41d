package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ogurasousui/codex-graphql-clean-arch/internal/platform/docstore"
	pgdb "github.com/ogurasousui/codex-graphql-clean-arch/internal/platform/db/postgres"
	pkgerrors "github.com/pkg/errors"
)

const invalidTextRepresentationCode = "22P02"

type pinger interface {
	Ping(ctx context.Context) error
}

// Store は PostgreSQL の documents テーブルを利用したドキュメントストア実装です。
type Store struct {
	pool pgdb.Queryer
}

// New は Store を生成します。
func New(pool pgdb.Queryer) *Store {
	return &Store{pool: pool}
}

// FindByID は ID でドキュメントを取得します。
func (s *Store) FindByID(ctx context.Context, collection, id string) (docstore.Record, error) {
	docID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	exec := pgdb.QueryerFromContext(ctx, s.pool)
	row := exec.QueryRow(ctx, `
        SELECT id::text, body
          FROM documents
         WHERE collection = $1 AND id = $2::uuid
    `, collection, docID)

	rec, err := scanRecord(row)
	if err != nil {
		return nil, translatePgError(err)
	}
	return rec, nil
}

// FindAll はコレクション内の全ドキュメントを作成順に返します。
func (s *Store) FindAll(ctx context.Context, collection string) ([]docstore.Record, error) {
	exec := pgdb.QueryerFromContext(ctx, s.pool)
	rows, err := exec.Query(ctx, `
        SELECT id::text, body
          FROM documents
         WHERE collection = $1
         ORDER BY created_at, id
    `, collection)
	if err != nil {
		return nil, translatePgError(err)
	}
	defer rows.Close()

	records := make([]docstore.Record, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, translatePgError(err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, translatePgError(err)
	}

	return records, nil
}

// Insert はドキュメントを追加し、採番された ID を返します。
func (s *Store) Insert(ctx context.Context, collection string, doc any) (string, error) {
	body, err := json.Marshal(doc)
	if err != nil {
		return "", pkgerrors.Wrapf(err, "postgres docstore: encode %s document", collection)
	}

	exec := pgdb.QueryerFromContext(ctx, s.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO documents (collection, body)
        VALUES ($1, $2)
        RETURNING id::text
    `, collection, body)

	var id string
	if err := row.Scan(&id); err != nil {
		return "", translatePgError(err)
	}
	return id, nil
}

// ReplaceFields は指定フィールドを上書きします。
func (s *Store) ReplaceFields(ctx context.Context, collection, id string, fields docstore.Fields) error {
	docID, err := parseID(id)
	if err != nil {
		return err
	}

	patch, err := json.Marshal(fields)
	if err != nil {
		return pkgerrors.Wrapf(err, "postgres docstore: encode %s fields", collection)
	}

	exec := pgdb.QueryerFromContext(ctx, s.pool)
	tag, err := exec.Exec(ctx, `
        UPDATE documents
           SET body = body || $3::jsonb,
               updated_at = now()
         WHERE collection = $1 AND id = $2::uuid
    `, collection, docID, patch)
	if err != nil {
		return translatePgError(err)
	}
	if tag.RowsAffected() == 0 {
		return docstore.ErrNotFound
	}
	return nil
}

// DeleteByID はドキュメントを削除します。
func (s *Store) DeleteByID(ctx context.Context, collection, id string) error {
	docID, err := parseID(id)
	if err != nil {
		return err
	}

	exec := pgdb.QueryerFromContext(ctx, s.pool)
	tag, err := exec.Exec(ctx, `DELETE FROM documents WHERE collection = $1 AND id = $2::uuid`, collection, docID)
	if err != nil {
		return translatePgError(err)
	}
	if tag.RowsAffected() == 0 {
		return docstore.ErrNotFound
	}
	return nil
}

// Ping は接続を確認します。
func (s *Store) Ping(ctx context.Context) error {
	if p, ok := s.pool.(pinger); ok {
		return pkgerrors.Wrap(p.Ping(ctx), "postgres docstore: ping")
	}
	if _, err := s.pool.Exec(ctx, `SELECT 1`); err != nil {
		return pkgerrors.Wrap(err, "postgres docstore: ping")
	}
	return nil
}

func parseID(raw string) (string, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", docstore.ErrInvalidID
	}
	return id.String(), nil
}

func scanRecord(row pgx.Row) (docstore.Record, error) {
	var (
		id   string
		body []byte
	)
	if err := row.Scan(&id, &body); err != nil {
		return nil, err
	}
	return docstore.JSONRecord{DocumentID: id, Body: body}, nil
}

func translatePgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return docstore.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == invalidTextRepresentationCode {
		return docstore.ErrInvalidID
	}

	return pkgerrors.Wrap(err, "postgres docstore")
}
