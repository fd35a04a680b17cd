package store

import (
	"context"
	"errors"
)

// ID is an opaque document identifier. The store's native identifier type
// never crosses this package boundary; callers only ever see hex strings.
type ID string

func (id ID) String() string { return string(id) }

// Document is a transport-clean record read from the store: identifier
// fields are strings, never the native identifier type.
type Document = map[string]any

// Filter is a flat equality filter over document fields.
type Filter = map[string]any

var (
	ErrNotFound    = errors.New("document not found")
	ErrMalformedID = errors.New("malformed document id")
	ErrUnavailable = errors.New("store unavailable")
)

// Store is the persistence gateway. Implementations generate identifiers
// on insert and return documents already serialized for transport.
type Store interface {
	Insert(ctx context.Context, collection string, doc any) (ID, error)
	FindByID(ctx context.Context, collection string, id ID) (Document, error)
	Find(ctx context.Context, collection string, filter Filter) ([]Document, error)
	Count(ctx context.Context, collection string, filter Filter) (int64, error)

	// Diagnostics, used by the /test endpoint
	Collections(ctx context.Context) ([]string, error)
	Name() string
	Ping(ctx context.Context) error
}
