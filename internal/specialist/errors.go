package specialist

import "errors"

var (
	ErrUnknownProvider = errors.New("unknown specialist provider")
	ErrMissingLLM      = errors.New("llm client is required for the anthropic provider")
)
