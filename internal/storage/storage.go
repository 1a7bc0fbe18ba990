package storage

import (
	"context"
	"io"
)

// Service stores opaque blobs under suggested keys and returns the
// relative path (or object location) clients should record.
type Service interface {
	Put(ctx context.Context, key, contentType string, body io.Reader) (string, error)
	Delete(ctx context.Context, key string) error
}
