package storage

import (
	"context"
	"io"
)

// FileStorage abstracts the backing object store for uploaded files.
type FileStorage interface {
	// Upload stores a file and returns the storage key
	Upload(ctx context.Context, file io.Reader, path string) (string, error)

	// Download retrieves a file
	Download(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a file
	Delete(ctx context.Context, path string) error

	// Exists checks if file exists
	Exists(ctx context.Context, path string) (bool, error)

	// URL returns the public URL for a stored file
	URL(path string) string
}
