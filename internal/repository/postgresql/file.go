package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sitehub/sitehub-backend-go/internal/domain/file"
	"github.com/sitehub/sitehub-backend-go/internal/pkg/database"
)

type fileRepository struct {
	db *database.DB
}

func NewFileRepository(db *database.DB) file.FileRepository {
	return &fileRepository{db: db}
}

const fileColumns = `
	id, project_id, original_name, storage_key, content_type, size_bytes,
	uploaded_by, created_at, updated_at, deleted_at
`

func scanFile(row pgx.Row) (file.File, error) {
	var f file.File
	err := row.Scan(
		&f.ID, &f.ProjectID, &f.OriginalName, &f.StorageKey, &f.ContentType, &f.SizeBytes,
		&f.UploadedBy, &f.CreatedAt, &f.UpdatedAt, &f.DeletedAt,
	)
	return f, err
}

func (r *fileRepository) Create(ctx context.Context, f file.File) (file.File, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO files (project_id, original_name, storage_key, content_type, size_bytes, uploaded_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		f.ProjectID, f.OriginalName, f.StorageKey, f.ContentType, f.SizeBytes, f.UploadedBy,
	).Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return file.File{}, fmt.Errorf("failed to create file record: %w", err)
	}

	return f, nil
}

func (r *fileRepository) GetByID(ctx context.Context, id string) (file.File, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + fileColumns + `
		FROM files
		WHERE id = $1 AND deleted_at IS NULL
	`

	f, err := scanFile(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return file.File{}, file.ErrFileNotFound
		}
		return file.File{}, fmt.Errorf("failed to get file record: %w", err)
	}

	return f, nil
}

func (r *fileRepository) ListByProject(ctx context.Context, projectID string) ([]file.File, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + fileColumns + `
		FROM files
		WHERE project_id = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}
	defer rows.Close()

	var files []file.File
	for rows.Next() {
		f, err := scanFile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan file record: %w", err)
		}
		files = append(files, f)
	}

	return files, rows.Err()
}

func (r *fileRepository) SoftDelete(ctx context.Context, id string, deletedBy string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE files SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`, id)
	if err != nil {
		return fmt.Errorf("failed to delete file record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return file.ErrFileNotFound
	}

	return nil
}
