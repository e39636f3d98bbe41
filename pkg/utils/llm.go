package utils

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const (
	RoleUser  = "user"
	RoleModel = "model"
)

// ChatMessage is one role-tagged turn of a conversation.
type ChatMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// LLMClient is the generative model behind the travel plan and feedback flows.
type LLMClient interface {
	// Generate sends a single-turn prompt and returns the model text verbatim.
	Generate(ctx context.Context, prompt string) (string, error)
	// Chat sends the whole history as multi-turn context. The last entry must be
	// a user turn.
	Chat(ctx context.Context, history []ChatMessage) (string, error)
	Provider() string
	Close() error
}

// LLMOptions are the generation settings shared by every provider.
type LLMOptions struct {
	APIKey string
	Model  string
	// Temperature is left to the provider default when nil.
	Temperature *float32
	// BaseURL overrides the provider endpoint (OpenAI-compatible servers).
	BaseURL string
	// Timeout bounds one provider call. Zero leaves the caller's context alone.
	Timeout time.Duration
}

func (o LLMOptions) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if o.Timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, o.Timeout)
}

// NewLLMClient picks the provider implementation by name.
func NewLLMClient(provider string, opts LLMOptions) (LLMClient, error) {
	switch strings.ToLower(provider) {
	case "gemini":
		return NewGeminiClient(opts)
	case "openai":
		return NewOpenAIClient(opts)
	default:
		return nil, fmt.Errorf("unsupported llm provider: %s. Use 'gemini' or 'openai'", provider)
	}
}

func validateHistory(history []ChatMessage) error {
	if len(history) == 0 {
		return fmt.Errorf("%w: empty chat history", ErrInvalidInput)
	}
	if history[len(history)-1].Role != RoleUser {
		return fmt.Errorf("%w: last chat turn must come from the user", ErrInvalidInput)
	}
	return nil
}
