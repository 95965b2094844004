package client

import "errors"

var (
	ErrClientNotFound  = errors.New("client not found")
	ErrContactNotFound = errors.New("client contact not found")
)
