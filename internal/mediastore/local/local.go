package local

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"pahunapath/internal/mediastore"
)

var extByMime = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

type DiskStore struct {
	root string
}

func NewDiskStore(root string) (*DiskStore, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("create media directory: %w", err)
	}
	return &DiskStore{root: root}, nil
}

func (s *DiskStore) Save(ctx context.Context, mimeType string, r io.Reader) (string, error) {
	ext, ok := extByMime[mimeType]
	if !ok {
		return "", mediastore.ErrUnsupportedMedia
	}
	key := uuid.NewString() + ext
	path := filepath.Join(s.root, key)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return "", fmt.Errorf("create media file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		if rerr := os.Remove(path); rerr != nil {
			slog.Error("remove partial media file", "key", key, "error", rerr)
		}
		return "", fmt.Errorf("write media file: %w", err)
	}
	if err := f.Close(); err != nil {
		if rerr := os.Remove(path); rerr != nil {
			slog.Error("remove partial media file", "key", key, "error", rerr)
		}
		return "", fmt.Errorf("close media file: %w", err)
	}
	return key, nil
}

func (s *DiskStore) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	path, err := s.resolve(key)
	if err != nil {
		return nil, "", err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", mediastore.ErrNotFound
		}
		return nil, "", fmt.Errorf("open media file: %w", err)
	}
	return f, mimeFor(path), nil
}

func (s *DiskStore) Delete(ctx context.Context, key string) error {
	path, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return mediastore.ErrNotFound
		}
		return fmt.Errorf("delete media file: %w", err)
	}
	return nil
}

// resolve maps key under root and refuses anything that escapes it.
func (s *DiskStore) resolve(key string) (string, error) {
	root, err := filepath.Abs(s.root)
	if err != nil {
		return "", fmt.Errorf("media root: %w", err)
	}
	path, err := filepath.Abs(filepath.Join(root, key))
	if err != nil {
		return "", fmt.Errorf("media path: %w", err)
	}
	if !strings.HasPrefix(path, root+string(filepath.Separator)) {
		return "", mediastore.ErrNotFound
	}
	return path, nil
}

func mimeFor(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	for mime, e := range extByMime {
		if e == ext {
			return mime
		}
	}
	return "application/octet-stream"
}
