package session

import "errors"

var (
	ErrEmptySessionID = errors.New("session id is empty")
	ErrInvalidPhase   = errors.New("invalid session phase")
)
