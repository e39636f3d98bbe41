package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	mem "triptalk/pkg/memcache"
	"triptalk/pkg/utils"
)

const (
	// DefaultSessionID is shared by callers that send no session id.
	DefaultSessionID = "default"

	maxSessionIDLen = 128
)

type FeedbackServiceInterface interface {
	SendFeedback(ctx context.Context, sessionID, message string) (string, error)
	ResetChat(ctx context.Context, sessionID string) error
}

type FeedbackService struct {
	llm         utils.LLMClient
	store       mem.TranscriptStore
	maxMessages int
	logger      *zap.Logger
}

// NewFeedbackService keeps at most maxMessages turns per session; 0 means no
// bound. Odd bounds are rounded down so user/model pairs are dropped together.
func NewFeedbackService(llm utils.LLMClient, store mem.TranscriptStore, maxMessages int, logger *zap.Logger) FeedbackServiceInterface {
	if maxMessages > 0 {
		maxMessages -= maxMessages % 2
		if maxMessages < 2 {
			maxMessages = 2
		}
	}
	return &FeedbackService{
		llm:         llm,
		store:       store,
		maxMessages: maxMessages,
		logger:      logger,
	}
}

func (s *FeedbackService) SendFeedback(ctx context.Context, sessionID, message string) (string, error) {
	sessionID, err := NormalizeSessionID(sessionID)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(message) == "" {
		return "", fmt.Errorf("%w: message is required", utils.ErrInvalidInput)
	}

	t := s.store.Acquire(sessionID)
	t.Lock()
	defer t.Unlock()

	userTurn := utils.ChatMessage{Role: utils.RoleUser, Text: message}
	history := append(t.Messages(), userTurn)
	// room for the reply that will follow
	if drop := s.overflow(len(history) + 1); drop > 0 {
		history = history[drop:]
	}

	reply, err := s.llm.Chat(ctx, history)
	if err != nil {
		s.logger.Warn("feedback reply failed",
			zap.String("session_id", sessionID),
			zap.String("provider", s.llm.Provider()),
			zap.Int("history_len", len(history)),
			zap.Error(err))
		return "", err
	}

	t.Append(userTurn, utils.ChatMessage{Role: utils.RoleModel, Text: reply})
	if drop := s.overflow(t.Len()); drop > 0 {
		t.DropOldest(drop)
		s.logger.Debug("dropped oldest chat turns",
			zap.String("session_id", sessionID),
			zap.Int("dropped", drop))
	}

	return reply, nil
}

func (s *FeedbackService) ResetChat(ctx context.Context, sessionID string) error {
	sessionID, err := NormalizeSessionID(sessionID)
	if err != nil {
		return err
	}
	s.store.Reset(sessionID)
	s.logger.Info("chat history reset", zap.String("session_id", sessionID))
	return nil
}

// overflow is the number of leading messages to drop so that n fits the
// bound, rounded up to whole user/model pairs.
func (s *FeedbackService) overflow(n int) int {
	if s.maxMessages <= 0 || n <= s.maxMessages {
		return 0
	}
	excess := n - s.maxMessages
	return excess + excess%2
}

// NormalizeSessionID trims the id and falls back to DefaultSessionID.
func NormalizeSessionID(sessionID string) (string, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return DefaultSessionID, nil
	}
	if len(sessionID) > maxSessionIDLen {
		return "", fmt.Errorf("%w: session_id longer than %d characters", utils.ErrInvalidInput, maxSessionIDLen)
	}
	return sessionID, nil
}
