package claude

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// Client wraps the Anthropic SDK with a simple retry loop.
type Client struct {
	inner         anthropic.Client
	model         anthropic.Model
	maxTokens     int64
	retries       int
	retryDelay    time.Duration
}

// New creates a client. SDK-level retries are disabled; Complete retries instead.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	retries := cfg.RetryAttempts
	if retries < 0 {
		retries = 0
	}

	return &Client{
		inner:         anthropic.NewClient(opts...),
		model:         anthropic.Model(model),
		maxTokens:     maxTokens,
		retries:       retries,
		retryDelay:    cfg.RetryDelay,
	}, nil
}

// Model returns the configured model name.
func (c *Client) Model() string {
	return string(c.model)
}

// Complete sends one system + user prompt and returns the concatenated text blocks.
func (c *Client) Complete(ctx context.Context, system, prompt string) (Completion, error) {
	var lastErr error
	tries := 0

	for attempt := 0; attempt <= c.retries; attempt++ {
		if attempt > 0 {
			delay := time.Duration(attempt) * c.retryDelay
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return Completion{}, ctx.Err()
			}
		}

		tries++
		out, err := c.complete(ctx, system, prompt)
		if err == nil {
			return out, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			break
		}
	}

	return Completion{}, fmt.Errorf("claude: %d attempt(s) failed: %w", tries, lastErr)
}

func (c *Client) complete(ctx context.Context, system, prompt string) (Completion, error) {
	params := anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}

	resp, err := c.inner.Messages.New(ctx, params)
	if err != nil {
		return Completion{}, err
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		if variant, ok := block.AsAny().(anthropic.TextBlock); ok {
			sb.WriteString(variant.Text)
		}
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return Completion{}, ErrEmptyCompletion
	}

	return Completion{
		Text:         text,
		StopReason:   string(resp.StopReason),
		Model:        string(resp.Model),
		InputTokens:  resp.Usage.InputTokens,
		OutputTokens: resp.Usage.OutputTokens,
	}, nil
}
