package utils

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/require"
)

func newOpenAITestClient(t *testing.T, handler http.HandlerFunc) *OpenAIClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewOpenAIClient(LLMOptions{APIKey: "test-key", BaseURL: srv.URL + "/v1"})
	require.NoError(t, err)
	return client
}

func writeCompletion(w http.ResponseWriter, content string) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"id":     "chatcmpl-1",
		"object": "chat.completion",
		"model":  openai.GPT4oMini,
		"choices": []map[string]any{{
			"index":         0,
			"finish_reason": "stop",
			"message":       map[string]string{"role": "assistant", "content": content},
		}},
	})
}

func TestOpenAIClient_ChatSendsRoles(t *testing.T) {
	var (
		got        openai.ChatCompletionRequest
		path, auth string
	)
	client := newOpenAITestClient(t, func(w http.ResponseWriter, r *http.Request) {
		path, auth = r.URL.Path, r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&got)
		writeCompletion(w, "second answer")
	})

	reply, err := client.Chat(context.Background(), []ChatMessage{
		{Role: RoleUser, Text: "first"},
		{Role: RoleModel, Text: "first answer"},
		{Role: RoleUser, Text: "second"},
	})
	require.NoError(t, err)
	require.Equal(t, "second answer", reply)

	require.Equal(t, "/v1/chat/completions", path)
	require.Equal(t, "Bearer test-key", auth)
	require.Equal(t, openai.GPT4oMini, got.Model)
	require.Len(t, got.Messages, 3)
	require.Equal(t, openai.ChatMessageRoleUser, got.Messages[0].Role)
	require.Equal(t, openai.ChatMessageRoleAssistant, got.Messages[1].Role)
	require.Equal(t, "second", got.Messages[2].Content)
}

func TestOpenAIClient_GenerateReturnsTextVerbatim(t *testing.T) {
	client := newOpenAITestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeCompletion(w, "  1일차\n오전: 시장  ")
	})

	plan, err := client.Generate(context.Background(), "plan a trip")
	require.NoError(t, err)
	require.Equal(t, "  1일차\n오전: 시장  ", plan)
}

func TestOpenAIClient_RateLimitIsQuota(t *testing.T) {
	client := newOpenAITestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limited","type":"requests","code":"rate_limit_exceeded"}}`))
	})

	_, err := client.Generate(context.Background(), "plan a trip")
	require.ErrorIs(t, err, ErrProviderQuota)

	var pe *ProviderError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, "openai", pe.Provider)
}

func TestOpenAIClient_EmptyChoices(t *testing.T) {
	client := newOpenAITestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeCompletion(w, "")
	})

	_, err := client.Generate(context.Background(), "plan a trip")
	require.ErrorIs(t, err, ErrEmptyResponse)
}

func TestOpenAIClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	t.Cleanup(srv.Close)

	client, err := NewOpenAIClient(LLMOptions{
		APIKey:  "test-key",
		BaseURL: srv.URL + "/v1",
		Timeout: 50 * time.Millisecond,
	})
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), "plan a trip")
	require.ErrorIs(t, err, ErrProviderTimeout)
}

func TestOpenAIClient_RejectsBadInput(t *testing.T) {
	client := newOpenAITestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("provider must not be called")
	})

	_, err := client.Generate(context.Background(), "   ")
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = client.Chat(context.Background(), nil)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = client.Chat(context.Background(), []ChatMessage{{Role: RoleModel, Text: "hi"}})
	require.ErrorIs(t, err, ErrInvalidInput)
}
