package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("key not found")

// KV is a flat blob store. The cart is the only writer today: one key
// per session holding the serialized cart lines. There is no schema
// versioning; a blob that no longer parses reads as a load failure.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
