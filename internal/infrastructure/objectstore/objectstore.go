package objectstore

import (
	"context"
	"io"
)

// Store is the opaque blob capability the image service depends on.
// Keys are globally unique and generated by the caller.
type Store interface {
	Put(ctx context.Context, key, contentType string, r io.Reader) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
