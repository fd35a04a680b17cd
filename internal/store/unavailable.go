package store

import "context"

// Unavailable is the Store injected when no database is configured. Every
// operation fails with ErrUnavailable, which handlers surface as a 500.
// Modeling absence as a Store keeps nil checks out of the handlers.
type Unavailable struct{}

func (Unavailable) Insert(ctx context.Context, collection string, doc any) (ID, error) {
	return "", ErrUnavailable
}

func (Unavailable) FindByID(ctx context.Context, collection string, id ID) (Document, error) {
	return nil, ErrUnavailable
}

func (Unavailable) Find(ctx context.Context, collection string, filter Filter) ([]Document, error) {
	return nil, ErrUnavailable
}

func (Unavailable) Count(ctx context.Context, collection string, filter Filter) (int64, error) {
	return 0, ErrUnavailable
}

func (Unavailable) Collections(ctx context.Context) ([]string, error) {
	return nil, ErrUnavailable
}

func (Unavailable) Name() string {
	return ""
}

func (Unavailable) Ping(ctx context.Context) error {
	return ErrUnavailable
}
