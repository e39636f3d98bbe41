package utils

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"testing"

	"github.com/google/generative-ai-go/genai"
	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
)

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

var _ net.Error = timeoutErr{}

func TestClassifyProviderError_Kinds(t *testing.T) {
	cases := []struct {
		name string
		err  error
		kind error
	}{
		{name: "deadline", err: fmt.Errorf("call: %w", context.DeadlineExceeded), kind: ErrProviderTimeout},
		{name: "network", err: timeoutErr{}, kind: ErrProviderTimeout},
		{name: "blocked", err: &genai.BlockedError{}, kind: ErrProviderRejected},
		{name: "googleapi quota", err: &googleapi.Error{Code: http.StatusTooManyRequests}, kind: ErrProviderQuota},
		{name: "googleapi outage", err: &googleapi.Error{Code: http.StatusServiceUnavailable}, kind: ErrProviderUnavailable},
		{name: "googleapi bad request", err: &googleapi.Error{Code: http.StatusBadRequest}, kind: ErrProviderRejected},
		{name: "googleapi gateway timeout", err: &googleapi.Error{Code: http.StatusGatewayTimeout}, kind: ErrProviderTimeout},
		{name: "openai rate limited", err: &openai.APIError{HTTPStatusCode: http.StatusTooManyRequests}, kind: ErrProviderQuota},
		{name: "openai server error", err: &openai.APIError{HTTPStatusCode: http.StatusInternalServerError}, kind: ErrProviderUnavailable},
		{name: "openai request error", err: &openai.RequestError{HTTPStatusCode: http.StatusUnauthorized, Err: errors.New("bad key")}, kind: ErrProviderRejected},
		{name: "unknown", err: errors.New("boom"), kind: ErrProviderUnavailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ClassifyProviderError("test", tc.err)

			var pe *ProviderError
			require.ErrorAs(t, err, &pe)
			require.Equal(t, "test", pe.Provider)
			require.ErrorIs(t, err, tc.kind)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestClassifyProviderError_Nil(t *testing.T) {
	require.NoError(t, ClassifyProviderError("test", nil))
}

func TestClassifyProviderError_KeepsClassified(t *testing.T) {
	original := newProviderError("gemini", ErrEmptyResponse, nil)
	err := ClassifyProviderError("other", fmt.Errorf("wrapped: %w", original))

	var pe *ProviderError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, "gemini", pe.Provider)
	require.ErrorIs(t, err, ErrEmptyResponse)
}

func TestProviderError_Message(t *testing.T) {
	require.Equal(t, "gemini: provider returned no content", newProviderError("gemini", ErrEmptyResponse, nil).Error())
	require.Equal(t, "openai: provider quota exceeded: slow down",
		newProviderError("openai", ErrProviderQuota, errors.New("slow down")).Error())
}
