package file

import (
	"context"
	"io"
)

type FileRepository interface {
	Create(ctx context.Context, f File) (File, error)
	GetByID(ctx context.Context, id string) (File, error)
	ListByProject(ctx context.Context, projectID string) ([]File, error)
	SoftDelete(ctx context.Context, id string, deletedBy string) error
}

// UploadInput carries one fully buffered upload. Uploads are size-capped
// and buffered in memory before they reach storage.
type UploadInput struct {
	ProjectID    *string
	OriginalName string
	ContentType  string
	Content      []byte
}

type FileService interface {
	Upload(ctx context.Context, input UploadInput) (FileResponse, error)
	UploadMultiple(ctx context.Context, inputs []UploadInput) ([]FileResponse, error)
	Get(ctx context.Context, id string) (FileResponse, error)
	ListByProject(ctx context.Context, projectID string) ([]FileResponse, error)

	// Open returns the stored content and its metadata for download or
	// inline preview.
	Open(ctx context.Context, id string) (File, io.ReadCloser, error)

	// Delete soft-deletes the metadata row and removes the stored object.
	Delete(ctx context.Context, id string) error
}
