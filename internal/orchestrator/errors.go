package orchestrator

import "errors"

var (
	ErrMissingUserID    = errors.New("userId is required")
	ErrMissingSessionID = errors.New("sessionId is required")
	ErrEmptyContent     = errors.New("message content is empty")
	ErrMissingFilename  = errors.New("document filename is required")
	ErrNotAuthenticated = errors.New("not authenticated")
)
