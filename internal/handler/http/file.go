package http

import (
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sitehub/sitehub-backend-go/internal/domain/file"
	"github.com/sitehub/sitehub-backend-go/internal/handler/http/response"
)

type FileHandler interface {
	UploadFile(w http.ResponseWriter, r *http.Request)
	UploadFiles(w http.ResponseWriter, r *http.Request)
	GetFile(w http.ResponseWriter, r *http.Request)
	DownloadFile(w http.ResponseWriter, r *http.Request)
	PreviewFile(w http.ResponseWriter, r *http.Request)
	ListProjectFiles(w http.ResponseWriter, r *http.Request)
	DeleteFile(w http.ResponseWriter, r *http.Request)
}

type FileHandlerImpl struct {
	fileService   file.FileService
	maxUploadSize int64
}

func NewFileHandler(fileService file.FileService, maxUploadSize int64) FileHandler {
	return &FileHandlerImpl{fileService: fileService, maxUploadSize: maxUploadSize}
}

func (h *FileHandlerImpl) readPart(header *multipart.FileHeader, projectID *string) (file.UploadInput, error) {
	part, err := header.Open()
	if err != nil {
		return file.UploadInput{}, err
	}
	defer part.Close()

	content, err := io.ReadAll(io.LimitReader(part, h.maxUploadSize+1))
	if err != nil {
		return file.UploadInput{}, err
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return file.UploadInput{
		ProjectID:    projectID,
		OriginalName: header.Filename,
		ContentType:  contentType,
		Content:      content,
	}, nil
}

func formProjectID(r *http.Request) *string {
	if projectID := r.FormValue("project_id"); projectID != "" {
		return &projectID
	}
	return nil
}

// UploadFile implements FileHandler.
func (h *FileHandlerImpl) UploadFile(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize+(1<<20))
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		slog.Error("UploadFile parse error", "error", err)
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	_, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "file field is required", nil)
		return
	}

	input, err := h.readPart(header, formProjectID(r))
	if err != nil {
		slog.Error("UploadFile read error", "error", err)
		response.BadRequest(w, "Could not read uploaded file", nil)
		return
	}

	fileResponse, err := h.fileService.Upload(r.Context(), input)
	if err != nil {
		slog.Error("UploadFile service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "File uploaded successfully", fileResponse)
}

// UploadFiles implements FileHandler.
func (h *FileHandlerImpl) UploadFiles(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 10*h.maxUploadSize)
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		slog.Error("UploadFiles parse error", "error", err)
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	headers := r.MultipartForm.File["files"]
	if len(headers) == 0 {
		response.BadRequest(w, "files field is required", nil)
		return
	}

	projectID := formProjectID(r)
	inputs := make([]file.UploadInput, 0, len(headers))
	for _, header := range headers {
		input, err := h.readPart(header, projectID)
		if err != nil {
			slog.Error("UploadFiles read error", "error", err)
			response.BadRequest(w, "Could not read uploaded file", nil)
			return
		}
		inputs = append(inputs, input)
	}

	fileResponses, err := h.fileService.UploadMultiple(r.Context(), inputs)
	if err != nil {
		slog.Error("UploadFiles service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Files uploaded successfully", fileResponses)
}

// GetFile implements FileHandler.
func (h *FileHandlerImpl) GetFile(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	fileResponse, err := h.fileService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, fileResponse)
}

// DownloadFile implements FileHandler.
func (h *FileHandlerImpl) DownloadFile(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	meta, content, err := h.fileService.Open(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	defer content.Close()

	w.Header().Set("Content-Type", meta.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", meta.OriginalName))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", meta.SizeBytes))
	if _, err := io.Copy(w, content); err != nil {
		slog.Error("DownloadFile write error", "error", err)
	}
}

// PreviewFile implements FileHandler. Same stream as DownloadFile but
// served inline so browsers render it in place.
func (h *FileHandlerImpl) PreviewFile(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	meta, content, err := h.fileService.Open(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	defer content.Close()

	w.Header().Set("Content-Type", meta.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", meta.OriginalName))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", meta.SizeBytes))
	if _, err := io.Copy(w, content); err != nil {
		slog.Error("PreviewFile write error", "error", err)
	}
}

// ListProjectFiles implements FileHandler.
func (h *FileHandlerImpl) ListProjectFiles(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "id")

	files, err := h.fileService.ListByProject(r.Context(), projectID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, files)
}

// DeleteFile implements FileHandler.
func (h *FileHandlerImpl) DeleteFile(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.fileService.Delete(r.Context(), id); err != nil {
		slog.Error("DeleteFile service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "File deleted successfully", nil)
}
