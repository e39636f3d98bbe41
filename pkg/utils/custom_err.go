package utils

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrProviderQuota       = errors.New("provider quota exceeded")
	ErrProviderUnavailable = errors.New("provider unavailable")
	ErrProviderTimeout     = errors.New("provider timeout or network failure")
	ErrProviderRejected    = errors.New("provider rejected request")
	ErrEmptyResponse       = errors.New("provider returned no content")
)

// ProviderError carries the classified failure of a single model call.
// Kind is one of the provider sentinels above so callers can use errors.Is.
type ProviderError struct {
	Kind     error
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Provider, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.Provider, e.Kind, e.Err)
}

func (e *ProviderError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func newProviderError(provider string, kind, err error) *ProviderError {
	return &ProviderError{Kind: kind, Provider: provider, Err: err}
}
