package backing

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = errors.New("backing: key not found")

// Store is the durable key-value backing for the contribution store.
// The contribution store uses exactly one key holding one serialized JSON
// document; the backing treats the value as an opaque blob.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
