package file

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sitehub/sitehub-backend-go/internal/domain/file"
	"github.com/sitehub/sitehub-backend-go/internal/pkg/jwt"
	"github.com/sitehub/sitehub-backend-go/internal/pkg/storage"
)

type FileServiceImpl struct {
	file.FileRepository
	storage       storage.FileStorage
	maxUploadSize int64
}

func NewFileService(
	fileRepository file.FileRepository,
	fileStorage storage.FileStorage,
	maxUploadSize int64,
) file.FileService {
	return &FileServiceImpl{
		FileRepository: fileRepository,
		storage:        fileStorage,
		maxUploadSize:  maxUploadSize,
	}
}

// storageKey builds a collision-free key, keeping the original extension
// so downloads get a sensible filename.
func storageKey(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return fmt.Sprintf("%s/%s%s", time.Now().Format("2006/01"), uuid.NewString(), ext)
}

// Upload implements file.FileService.
func (s *FileServiceImpl) Upload(ctx context.Context, input file.UploadInput) (file.FileResponse, error) {
	if len(input.Content) == 0 {
		return file.FileResponse{}, file.ErrNoFilesUploaded
	}
	if int64(len(input.Content)) > s.maxUploadSize {
		return file.FileResponse{}, file.ErrFileTooLarge
	}

	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return file.FileResponse{}, err
	}

	key := storageKey(input.OriginalName)
	if _, err := s.storage.Upload(ctx, bytes.NewReader(input.Content), key); err != nil {
		return file.FileResponse{}, fmt.Errorf("failed to store file: %w", err)
	}

	created, err := s.FileRepository.Create(ctx, file.File{
		ProjectID:    input.ProjectID,
		OriginalName: input.OriginalName,
		StorageKey:   key,
		ContentType:  input.ContentType,
		SizeBytes:    int64(len(input.Content)),
		UploadedBy:   &actor.UserID,
	})
	if err != nil {
		// Don't leave an orphaned object behind.
		if delErr := s.storage.Delete(ctx, key); delErr != nil {
			slog.Warn("failed to clean up stored file after create failure", "key", key, "error", delErr)
		}
		return file.FileResponse{}, err
	}

	return file.ToResponse(created, s.storage.URL(key)), nil
}

// UploadMultiple implements file.FileService.
func (s *FileServiceImpl) UploadMultiple(ctx context.Context, inputs []file.UploadInput) ([]file.FileResponse, error) {
	if len(inputs) == 0 {
		return nil, file.ErrNoFilesUploaded
	}

	responses := make([]file.FileResponse, 0, len(inputs))
	for _, input := range inputs {
		resp, err := s.Upload(ctx, input)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}

	return responses, nil
}

// Get implements file.FileService.
func (s *FileServiceImpl) Get(ctx context.Context, id string) (file.FileResponse, error) {
	f, err := s.FileRepository.GetByID(ctx, id)
	if err != nil {
		return file.FileResponse{}, err
	}

	return file.ToResponse(f, s.storage.URL(f.StorageKey)), nil
}

// ListByProject implements file.FileService.
func (s *FileServiceImpl) ListByProject(ctx context.Context, projectID string) ([]file.FileResponse, error) {
	files, err := s.FileRepository.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	responses := make([]file.FileResponse, 0, len(files))
	for _, f := range files {
		responses = append(responses, file.ToResponse(f, s.storage.URL(f.StorageKey)))
	}

	return responses, nil
}

// Open implements file.FileService.
func (s *FileServiceImpl) Open(ctx context.Context, id string) (file.File, io.ReadCloser, error) {
	f, err := s.FileRepository.GetByID(ctx, id)
	if err != nil {
		return file.File{}, nil, err
	}

	rc, err := s.storage.Download(ctx, f.StorageKey)
	if err != nil {
		return file.File{}, nil, fmt.Errorf("failed to open stored file: %w", err)
	}

	return f, rc, nil
}

// Delete implements file.FileService.
func (s *FileServiceImpl) Delete(ctx context.Context, id string) error {
	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return err
	}

	f, err := s.FileRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.FileRepository.SoftDelete(ctx, id, actor.UserID); err != nil {
		return err
	}

	if err := s.storage.Delete(ctx, f.StorageKey); err != nil {
		slog.Warn("failed to remove stored file", "key", f.StorageKey, "error", err)
	}

	return nil
}
