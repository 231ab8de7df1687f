package claude

import (
	"errors"
	"time"
)

// Config configures the Anthropic client.
type Config struct {
	APIKey        string
	Model         string
	BaseURL       string
	MaxTokens     int64
	// RetryAttempts is how many times a failed request is retried after the
	// first try. Zero sends each request once.
	RetryAttempts int
	RetryDelay    time.Duration
}

// Completion is the text answer of one request.
type Completion struct {
	Text         string
	StopReason   string
	Model        string
	InputTokens  int64
	OutputTokens int64
}

const (
	DefaultModel     = "claude-sonnet-4-20250514"
	DefaultMaxTokens = 1024

	StopReasonEndTurn = "end_turn"
)

var (
	ErrMissingAPIKey   = errors.New("anthropic API key is required")
	ErrEmptyCompletion = errors.New("empty completion")
)
