package repository

import (
	"context"
	"errors"
	"time"

	"preventa/internal/usecase/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultStoreCollectionName = "store"

type storeDocument struct {
	Key       string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// MongoStorage persists key-value documents in one MongoDB collection, keyed
// by _id.
type MongoStorage struct {
	coll storeCollection
}

// storeCollection is the part of *mongo.Collection used by MongoStorage.
type storeCollection interface {
	FindOne(ctx context.Context, filter any) documentDecoder
	ReplaceOne(ctx context.Context, filter, replacement any, opts ...*options.ReplaceOptions) (*mongo.UpdateResult, error)
	DeleteOne(ctx context.Context, filter any, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error)
}

type documentDecoder interface {
	Decode(v any) error
}

// driverCollection narrows FindOne to its decoder.
type driverCollection struct {
	*mongo.Collection
}

func (c driverCollection) FindOne(ctx context.Context, filter any) documentDecoder {
	return c.Collection.FindOne(ctx, filter)
}

var _ interfaces.IStorage = (*MongoStorage)(nil)

func NewMongoStorage(db *mongo.Database, collection string) *MongoStorage {
	return newMongoStorage(driverCollection{db.Collection(storeName(collection, defaultStoreCollectionName))})
}

func newMongoStorage(coll storeCollection) *MongoStorage {
	return &MongoStorage{coll: coll}
}

func (s *MongoStorage) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var doc storeDocument
	err := s.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(doc.Value), true, nil
}

func (s *MongoStorage) Set(ctx context.Context, key string, value []byte) error {
	doc := storeDocument{Key: key, Value: string(value), UpdatedAt: time.Now().UTC()}
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
	return err
}

func (s *MongoStorage) Delete(ctx context.Context, key string) error {
	_, err := s.coll.DeleteOne(ctx, bson.M{"_id": key})
	return err
}
