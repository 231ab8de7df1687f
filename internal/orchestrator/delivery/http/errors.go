package http

import "errors"

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrMissingID       = errors.New("id is required")
)
