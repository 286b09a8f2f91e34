package kv

import (
	"context"
	"errors"

	"room-booking/internal/infra"
	"room-booking/internal/pkg/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoRecord struct {
	Key      string `bson:"_id"`
	Value    string `bson:"value"`
	Revision int64  `bson:"revision"`
}

// MongoBackend keeps one document per key, with the key as _id.
type MongoBackend struct {
	client *mongo.Client
	coll   *mongo.Collection
}

func NewMongoBackend(client *mongo.Client, database, collection string) *MongoBackend {
	return &MongoBackend{
		client: client,
		coll:   client.Database(database).Collection(collection),
	}
}

func DialMongo(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to connect to mongo", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, infra.WrapRepoErr("failed to ping mongo", err)
	}
	return client, nil
}

func (m *MongoBackend) Get(ctx context.Context, key string) (Record, error) {
	var doc mongoRecord
	err := m.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Record{}, notFound(key)
	}
	if err != nil {
		return Record{}, infra.WrapRepoErr("failed to find "+key, err)
	}
	return Record{Value: []byte(doc.Value), Revision: doc.Revision}, nil
}

func (m *MongoBackend) Put(ctx context.Context, key string, value []byte, expected int64) (int64, error) {
	switch expected {
	case 0:
		_, err := m.coll.InsertOne(ctx, mongoRecord{Key: key, Value: string(value), Revision: 1})
		if mongo.IsDuplicateKeyError(err) {
			return 0, staleWrite(key, expected)
		}
		if err != nil {
			return 0, infra.WrapRepoErr("failed to insert "+key, err)
		}
		return 1, nil

	case AnyRevision:
		var doc mongoRecord
		err := m.coll.FindOneAndUpdate(ctx,
			bson.M{"_id": key},
			bson.M{"$set": bson.M{"value": string(value)}, "$inc": bson.M{"revision": int64(1)}},
			options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
		).Decode(&doc)
		if err != nil {
			return 0, infra.WrapRepoErr("failed to upsert "+key, err)
		}
		return doc.Revision, nil

	default:
		res, err := m.coll.UpdateOne(ctx,
			bson.M{"_id": key, "revision": expected},
			bson.M{"$set": bson.M{"value": string(value), "revision": expected + 1}},
		)
		if err != nil {
			return 0, infra.WrapRepoErr("failed to update "+key, err)
		}
		if res.MatchedCount == 0 {
			return 0, staleWrite(key, expected)
		}
		return expected + 1, nil
	}
}

func (m *MongoBackend) Delete(ctx context.Context, key string) error {
	_, err := m.coll.UpdateOne(ctx,
		bson.M{"_id": key},
		bson.M{"$set": bson.M{"value": ""}, "$inc": bson.M{"revision": int64(1)}},
	)
	if err != nil {
		return infra.WrapRepoErr("failed to clear "+key, err)
	}
	return nil
}

func (m *MongoBackend) Close() error {
	return m.client.Disconnect(context.Background())
}
