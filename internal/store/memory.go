package store

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Memory implements Store with in-process maps. It generates the same
// identifier format as the real store so that malformed-id handling can be
// exercised without a database. Used by tests.
type Memory struct {
	mu          sync.RWMutex
	collections map[string]map[ID]bson.M
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		collections: make(map[string]map[ID]bson.M),
	}
}

// Insert writes a new document and returns the generated identifier.
func (m *Memory) Insert(ctx context.Context, collection string, doc any) (ID, error) {
	raw, err := toRaw(doc)
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}

	oid := primitive.NewObjectID()
	raw["_id"] = oid

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.collections[collection] == nil {
		m.collections[collection] = make(map[ID]bson.M)
	}
	id := ID(oid.Hex())
	m.collections[collection][id] = raw
	return id, nil
}

// FindByID fetches a single document by identifier.
func (m *Memory) FindByID(ctx context.Context, collection string, id ID) (Document, error) {
	if _, err := primitive.ObjectIDFromHex(string(id)); err != nil {
		return nil, ErrMalformedID
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	doc, ok := m.collections[collection][id]
	if !ok {
		return nil, ErrNotFound
	}
	return Clean(doc), nil
}

// Find returns all documents matching a flat equality filter, in no
// particular order.
func (m *Memory) Find(ctx context.Context, collection string, filter Filter) ([]Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	docs := make([]Document, 0)
	for _, doc := range m.collections[collection] {
		if matches(doc, filter) {
			docs = append(docs, Clean(doc))
		}
	}
	return docs, nil
}

// Count returns the number of documents matching a flat equality filter.
func (m *Memory) Count(ctx context.Context, collection string, filter Filter) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var n int64
	for _, doc := range m.collections[collection] {
		if matches(doc, filter) {
			n++
		}
	}
	return n, nil
}

// Collections lists the collection names present in the store, sorted.
func (m *Memory) Collections(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.collections))
	for name := range m.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (m *Memory) Name() string {
	return "memory"
}

func (m *Memory) Ping(ctx context.Context) error {
	return nil
}

// toRaw converts a typed entity into its stored form through the same
// codec the real store uses, so bson field names and value types match.
func toRaw(doc any) (bson.M, error) {
	data, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var raw bson.M
	if err := bson.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func matches(doc bson.M, filter Filter) bool {
	for k, want := range filter {
		if !reflect.DeepEqual(doc[k], want) {
			return false
		}
	}
	return true
}
