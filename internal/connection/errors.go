package connection

import "errors"

var (
	ErrAlreadyBound   = errors.New("connection already bound to another session")
	ErrEmptySessionID = errors.New("session id is empty")
)
