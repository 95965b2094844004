package file

import "time"

type File struct {
	ID           string
	ProjectID    *string
	OriginalName string
	StorageKey   string
	ContentType  string
	SizeBytes    int64
	UploadedBy   *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}
