package file

import "errors"

var (
	ErrFileNotFound    = errors.New("file not found")
	ErrFileTooLarge    = errors.New("file exceeds the maximum upload size")
	ErrNoFilesUploaded = errors.New("no files uploaded")
)
