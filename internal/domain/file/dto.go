package file

type FileResponse struct {
	ID           string  `json:"id"`
	ProjectID    *string `json:"project_id,omitempty"`
	OriginalName string  `json:"original_name"`
	ContentType  string  `json:"content_type"`
	SizeBytes    int64   `json:"size_bytes"`
	URL          string  `json:"url"`
	UploadedBy   *string `json:"uploaded_by,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

func ToResponse(f File, url string) FileResponse {
	return FileResponse{
		ID:           f.ID,
		ProjectID:    f.ProjectID,
		OriginalName: f.OriginalName,
		ContentType:  f.ContentType,
		SizeBytes:    f.SizeBytes,
		URL:          url,
		UploadedBy:   f.UploadedBy,
		CreatedAt:    f.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
