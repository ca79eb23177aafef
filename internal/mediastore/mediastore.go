package mediastore

import (
	"context"
	"errors"
	"io"
)

var (
	ErrNotFound         = errors.New("media not found")
	ErrUnsupportedMedia = errors.New("unsupported media type")
)

// Store keeps uploaded place images. Keys are opaque, relative names.
type Store interface {
	Save(ctx context.Context, mimeType string, r io.Reader) (key string, err error)
	Open(ctx context.Context, key string) (io.ReadCloser, string, error)
	Delete(ctx context.Context, key string) error
}
