package badger

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/ogurasousui/codex-graphql-clean-arch/internal/platform/docstore"
	pkgerrors "github.com/pkg/errors"
	"go.uber.org/zap"
)

// Store は組み込み KV ストア Badger を利用したドキュメントストア実装です。
// キーは "<collection>/<uuidv7>" で、値は JSON 本文です。
type Store struct {
	db *badger.DB
}

// Open は dir に Badger を開きます。dir が空の場合はインメモリで動作します。
func Open(dir string, logger *zap.Logger) (*Store, error) {
	opts := badger.DefaultOptions(dir).WithLogger(zapLogger{logger.Sugar()})
	if dir == "" {
		opts = opts.WithInMemory(true)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "badger docstore: open")
	}
	return &Store{db: db}, nil
}

// Close は Badger を閉じます。
func (s *Store) Close() error {
	return s.db.Close()
}

// FindByID は ID でドキュメントを取得します。
func (s *Store) FindByID(_ context.Context, collection, id string) (docstore.Record, error) {
	key, docID, err := documentKey(collection, id)
	if err != nil {
		return nil, err
	}

	var body []byte
	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		body, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return nil, translateError(err)
	}
	return docstore.JSONRecord{DocumentID: docID, Body: body}, nil
}

// FindAll はコレクションのプレフィックスを走査します。UUIDv7 のため作成順になります。
func (s *Store) FindAll(_ context.Context, collection string) ([]docstore.Record, error) {
	prefix := []byte(collection + "/")
	records := make([]docstore.Record, 0)

	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			body, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			id := string(item.KeyCopy(nil)[len(prefix):])
			records = append(records, docstore.JSONRecord{DocumentID: id, Body: body})
		}
		return nil
	})
	if err != nil {
		return nil, translateError(err)
	}
	return records, nil
}

// Insert はドキュメントを追加し、採番した ID を返します。
func (s *Store) Insert(_ context.Context, collection string, doc any) (string, error) {
	body, err := json.Marshal(doc)
	if err != nil {
		return "", pkgerrors.Wrapf(err, "badger docstore: encode %s document", collection)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return "", pkgerrors.Wrap(err, "badger docstore: generate id")
	}

	key := []byte(collection + "/" + id.String())
	if err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, body)
	}); err != nil {
		return "", translateError(err)
	}
	return id.String(), nil
}

// ReplaceFields は既存本文に fields を上書きして保存します。
func (s *Store) ReplaceFields(_ context.Context, collection, id string, fields docstore.Fields) error {
	key, _, err := documentKey(collection, id)
	if err != nil {
		return err
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		body, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		merged, err := docstore.MergeJSON(body, fields)
		if err != nil {
			return err
		}
		return txn.Set(key, merged)
	})
	return translateError(err)
}

// DeleteByID はドキュメントを削除します。
func (s *Store) DeleteByID(_ context.Context, collection, id string) error {
	key, _, err := documentKey(collection, id)
	if err != nil {
		return err
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(key); err != nil {
			return err
		}
		return txn.Delete(key)
	})
	return translateError(err)
}

// Ping は DB が開いているか確認します。
func (s *Store) Ping(_ context.Context) error {
	if s.db.IsClosed() {
		return pkgerrors.New("badger docstore: closed")
	}
	return nil
}

// documentKey は id を正規形の UUID に変換し、キーと合わせて返します。
func documentKey(collection, id string) ([]byte, string, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, "", docstore.ErrInvalidID
	}
	canonical := parsed.String()
	return []byte(collection + "/" + canonical), canonical, nil
}

func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, badger.ErrKeyNotFound) {
		return docstore.ErrNotFound
	}
	return pkgerrors.Wrap(err, "badger docstore")
}

type zapLogger struct {
	l *zap.SugaredLogger
}

func (z zapLogger) Errorf(format string, args ...interface{}) {
	z.l.Errorf(format, args...)
}

func (z zapLogger) Warningf(format string, args ...interface{}) {
	z.l.Warnf(format, args...)
}

func (z zapLogger) Infof(format string, args ...interface{}) {
	z.l.Debugf(format, args...)
}

func (z zapLogger) Debugf(format string, args ...interface{}) {
	z.l.Debugf(format, args...)
}
