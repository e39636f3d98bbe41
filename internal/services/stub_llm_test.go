package services

import (
	"context"
	"fmt"
	"sync"

	"triptalk/pkg/utils"
)

// stubLLM records every request and answers with a numbered reply.
type stubLLM struct {
	mu      sync.Mutex
	prompts []string
	chats   [][]utils.ChatMessage
	err     error
	reply   string
}

func (s *stubLLM) Generate(ctx context.Context, prompt string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	if s.reply != "" {
		return s.reply, nil
	}
	return "1일차 오전: 산책", nil
}

func (s *stubLLM) Chat(ctx context.Context, history []utils.ChatMessage) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chats = append(s.chats, append([]utils.ChatMessage(nil), history...))
	if s.err != nil {
		return "", s.err
	}
	return fmt.Sprintf("reply %d", len(s.chats)), nil
}

func (s *stubLLM) Provider() string { return "stub" }
func (s *stubLLM) Close() error     { return nil }

func (s *stubLLM) lastChat() []utils.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.chats) == 0 {
		return nil
	}
	return s.chats[len(s.chats)-1]
}

func (s *stubLLM) setErr(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}
