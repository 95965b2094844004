package project

import "errors"

var (
	ErrProjectNotFound     = errors.New("project not found")
	ErrProjectNumberExists = errors.New("project number already exists")
	ErrClientNotFound      = errors.New("referenced client not found")
)
