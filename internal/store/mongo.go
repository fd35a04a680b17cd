package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo implements Store on top of a MongoDB database.
type Mongo struct {
	db *mongo.Database
}

// DialMongo connects to the MongoDB deployment at uri and returns a Store
// backed by the named database. The caller's context bounds the dial and
// the initial ping.
func DialMongo(ctx context.Context, uri, name string) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}
	return &Mongo{db: client.Database(name)}, nil
}

// Close releases the underlying client connections.
func (m *Mongo) Close(ctx context.Context) error {
	return m.db.Client().Disconnect(ctx)
}

// Insert writes a new document and returns the generated identifier.
func (m *Mongo) Insert(ctx context.Context, collection string, doc any) (ID, error) {
	res, err := m.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert into %s: unexpected id type %T", collection, res.InsertedID)
	}
	return ID(oid.Hex()), nil
}

// FindByID fetches a single document. It fails with ErrMalformedID before
// touching the store when id is not valid identifier hex.
func (m *Mongo) FindByID(ctx context.Context, collection string, id ID) (Document, error) {
	oid, err := primitive.ObjectIDFromHex(string(id))
	if err != nil {
		return nil, ErrMalformedID
	}

	var doc bson.M
	err = m.db.Collection(collection).FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", collection, err)
	}
	return Clean(doc), nil
}

// Find returns all documents matching a flat equality filter.
func (m *Mongo) Find(ctx context.Context, collection string, filter Filter) ([]Document, error) {
	cursor, err := m.db.Collection(collection).Find(ctx, bson.M(filter))
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	var raw []bson.M
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, fmt.Errorf("read cursor for %s: %w", collection, err)
	}

	docs := make([]Document, 0, len(raw))
	for _, d := range raw {
		docs = append(docs, Clean(d))
	}
	return docs, nil
}

// Count returns the number of documents matching a flat equality filter.
func (m *Mongo) Count(ctx context.Context, collection string, filter Filter) (int64, error) {
	n, err := m.db.Collection(collection).CountDocuments(ctx, bson.M(filter))
	if err != nil {
		return 0, fmt.Errorf("count in %s: %w", collection, err)
	}
	return n, nil
}

// Collections lists the collection names present in the database.
func (m *Mongo) Collections(ctx context.Context) ([]string, error) {
	names, err := m.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	return names, nil
}

func (m *Mongo) Name() string {
	return m.db.Name()
}

func (m *Mongo) Ping(ctx context.Context) error {
	return m.db.Client().Ping(ctx, nil)
}
