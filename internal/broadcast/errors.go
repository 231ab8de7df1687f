package broadcast

import "errors"

var (
	ErrUnknownConnection = errors.New("unknown connection")
	ErrNotDeliverable    = errors.New("connection not deliverable")
)
