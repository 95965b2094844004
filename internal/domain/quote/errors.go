package quote

import "errors"

var (
	ErrQuoteNotFound     = errors.New("quote not found")
	ErrClientNotFound    = errors.New("referenced client not found")
	ErrLineTotalMismatch = errors.New("line item total does not match quantity times unit price")
	ErrInvalidStatus     = errors.New("invalid quote status")
)
