package mongo

import (
	"context"
	"errors"

	"github.com/ogurasousui/codex-graphql-clean-arch/internal/platform/docstore"
	pkgerrors "github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Store は MongoDB のコレクションを利用したドキュメントストア実装です。
type Store struct {
	db *mongo.Database
}

// New は Store を生成します。
func New(db *mongo.Database) *Store {
	return &Store{db: db}
}

// Connect は uri に接続し、疎通確認したクライアントを返します。
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, pkgerrors.Wrap(err, "mongo docstore: connect")
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, pkgerrors.Wrap(err, "mongo docstore: ping")
	}
	return client, nil
}

type record struct {
	id  string
	raw bson.Raw
}

func (r record) ID() string {
	return r.id
}

func (r record) Decode(out any) error {
	return bson.Unmarshal(r.raw, out)
}

// FindByID は _id でドキュメントを取得します。
func (s *Store) FindByID(ctx context.Context, collection, id string) (docstore.Record, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	raw, err := s.db.Collection(collection).FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Raw()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, docstore.ErrNotFound
		}
		return nil, pkgerrors.Wrapf(err, "mongo docstore: find %s %s", collection, id)
	}
	return toRecord(raw)
}

// FindAll はコレクションを全件走査します。
func (s *Store) FindAll(ctx context.Context, collection string) ([]docstore.Record, error) {
	cur, err := s.db.Collection(collection).Find(ctx, bson.D{})
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "mongo docstore: find all %s", collection)
	}
	defer cur.Close(ctx)

	records := make([]docstore.Record, 0)
	for cur.Next(ctx) {
		// cur.Current は次の Next で再利用される
		raw := make(bson.Raw, len(cur.Current))
		copy(raw, cur.Current)

		rec, err := toRecord(raw)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := cur.Err(); err != nil {
		return nil, pkgerrors.Wrapf(err, "mongo docstore: iterate %s", collection)
	}
	return records, nil
}

// Insert はドキュメントを追加し、採番された ObjectID の16進表現を返します。
func (s *Store) Insert(ctx context.Context, collection string, doc any) (string, error) {
	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", pkgerrors.Wrapf(err, "mongo docstore: insert %s", collection)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", pkgerrors.Errorf("mongo docstore: unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// ReplaceFields は $set で指定フィールドを上書きします。
func (s *Store) ReplaceFields(ctx context.Context, collection, id string, fields docstore.Fields) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	set := bson.M{}
	for key, value := range fields {
		set[key] = value
	}

	res, err := s.db.Collection(collection).UpdateOne(ctx, bson.D{{Key: "_id", Value: oid}}, bson.D{{Key: "$set", Value: set}})
	if err != nil {
		return pkgerrors.Wrapf(err, "mongo docstore: update %s %s", collection, id)
	}
	if res.MatchedCount == 0 {
		return docstore.ErrNotFound
	}
	return nil
}

// DeleteByID はドキュメントを削除します。
func (s *Store) DeleteByID(ctx context.Context, collection, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	res, err := s.db.Collection(collection).DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return pkgerrors.Wrapf(err, "mongo docstore: delete %s %s", collection, id)
	}
	if res.DeletedCount == 0 {
		return docstore.ErrNotFound
	}
	return nil
}

// Ping はプライマリへの疎通を確認します。
func (s *Store) Ping(ctx context.Context) error {
	return pkgerrors.Wrap(s.db.Client().Ping(ctx, readpref.Primary()), "mongo docstore: ping")
}

func parseID(raw string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, docstore.ErrInvalidID
	}
	return oid, nil
}

func toRecord(raw bson.Raw) (docstore.Record, error) {
	oid, ok := raw.Lookup("_id").ObjectIDOK()
	if !ok {
		return nil, pkgerrors.New("mongo docstore: document without ObjectID _id")
	}
	return record{id: oid.Hex(), raw: raw}, nil
}
