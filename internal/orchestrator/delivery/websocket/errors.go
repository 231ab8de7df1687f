package websocket

import "errors"

var (
	ErrSendBufferFull  = errors.New("send buffer full")
	ErrTransportClosed = errors.New("transport closed")
	ErrRateLimited     = errors.New("rate limit exceeded")
	ErrMissingType     = errors.New("message type is required")
)
