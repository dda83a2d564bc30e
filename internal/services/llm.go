package services

import (
	"context"
	"errors"
)

// ChatClient is the minimal abstraction over a chat-completion LLM provider.
// Implementations issue exactly one synchronous call per invocation; nothing
// is retried or cached here.
type ChatClient interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Provider failure modes. Concrete clients wrap these so callers can map them
// to response codes with errors.Is without knowing the provider.
var (
	ErrAuthentication      = errors.New("provider authentication failed")
	ErrRateLimited         = errors.New("provider rate limited")
	ErrProviderUnavailable = errors.New("provider unavailable")
)
