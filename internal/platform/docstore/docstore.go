package docstore

import (
	"context"
	"errors"
)

var (
	// ErrNotFound は指定 ID のドキュメントが存在しない場合に返却されます。
	ErrNotFound = errors.New("docstore: document not found")
	// ErrInvalidID は ID がバックエンドのキー形式として解釈できない場合に返却されます。
	ErrInvalidID = errors.New("docstore: invalid id")
)

// Fields は ReplaceFields で上書きするフィールド集合です。
type Fields map[string]any

// Record は取得したドキュメント 1 件を表します。
type Record interface {
	ID() string
	Decode(out any) error
}

// Store はコレクション単位のドキュメント永続化の抽象です。
type Store interface {
	FindByID(ctx context.Context, collection, id string) (Record, error)
	FindAll(ctx context.Context, collection string) ([]Record, error)
	Insert(ctx context.Context, collection string, doc any) (string, error)
	ReplaceFields(ctx context.Context, collection, id string, fields Fields) error
	DeleteByID(ctx context.Context, collection, id string) error
	Ping(ctx context.Context) error
}

// Collection 名の一覧です。
const (
	CollectionEmployee = "employee"
	CollectionStore    = "store"
	CollectionLocation = "location"
	CollectionRank     = "rank"
	CollectionOwner    = "owner"
	CollectionProject  = "project"
)
