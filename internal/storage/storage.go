package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get for keys that were never written.
var ErrNotFound = errors.New("storage: key not found")

// Store is durable local key/value storage. Keys are flat namespace strings
// (e.g. "tisso_vison_cart"); values are opaque JSON documents. Writes must
// be atomic per key; readers never observe a partial document.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}
