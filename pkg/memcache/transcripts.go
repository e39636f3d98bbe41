// pkg/memcache/transcripts.go
package mem

import (
	"context"
	"sync"
	"time"

	"triptalk/pkg/utils"
)

type TranscriptStore interface {
	// Acquire returns the transcript for sessionID, creating it if missing,
	// and marks the session as active.
	Acquire(sessionID string) *Transcript

	// Reset empties the transcript. It waits for an in-flight exchange on the
	// same session to finish.
	Reset(sessionID string)

	// Sweep drops sessions idle longer than the store TTL and reports how many.
	Sweep(now time.Time) int

	Len() int
}

// Transcript is the ordered chat history of one session. Callers hold Lock
// around a whole user -> model exchange.
type Transcript struct {
	mu       sync.Mutex
	messages []utils.ChatMessage
	// guarded by the owning store's mutex
	lastActive time.Time
}

// Lock and Unlock guard the chat messages for a whole exchange.
func (t *Transcript) Lock()   { t.mu.Lock() }
func (t *Transcript) Unlock() { t.mu.Unlock() }

// Messages returns a copy. Caller must hold the lock.
func (t *Transcript) Messages() []utils.ChatMessage {
	out := make([]utils.ChatMessage, len(t.messages))
	copy(out, t.messages)
	return out
}

// Append adds turns at the end. Caller must hold the lock.
func (t *Transcript) Append(msgs ...utils.ChatMessage) {
	t.messages = append(t.messages, msgs...)
}

// DropOldest removes the first n messages. Caller must hold the lock.
func (t *Transcript) DropOldest(n int) {
	if n <= 0 {
		return
	}
	if n >= len(t.messages) {
		t.messages = nil
		return
	}
	t.messages = append([]utils.ChatMessage(nil), t.messages[n:]...)
}

// Clear empties the transcript. Caller must hold the lock.
func (t *Transcript) Clear() {
	t.messages = nil
}

// Len reports the number of messages. Caller must hold the lock.
func (t *Transcript) Len() int {
	return len(t.messages)
}

type Transcripts struct {
	mu   sync.RWMutex
	data map[string]*Transcript
	ttl  time.Duration
	now  func() time.Time
}

// NewTranscripts creates an empty store. A zero ttl keeps idle sessions forever.
func NewTranscripts(ttl time.Duration) *Transcripts {
	return &Transcripts{
		data: make(map[string]*Transcript),
		ttl:  ttl,
		now:  time.Now,
	}
}

func (s *Transcripts) Acquire(sessionID string) *Transcript {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.data[sessionID]
	if !ok {
		t = &Transcript{}
		s.data[sessionID] = t
	}
	// set under s.mu, the same lock Sweep holds while deleting
	t.lastActive = s.now()
	return t
}

func (s *Transcripts) Reset(sessionID string) {
	s.mu.Lock()
	t, ok := s.data[sessionID]
	if ok {
		t.lastActive = s.now()
	}
	s.mu.Unlock()
	if !ok {
		return
	}

	t.Lock()
	t.Clear()
	t.Unlock()
}

func (s *Transcripts) Sweep(now time.Time) int {
	if s.ttl <= 0 {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, t := range s.data {
		// a held lock means an exchange is running; leave it alone
		if !t.mu.TryLock() {
			continue
		}
		idle := now.Sub(t.lastActive) > s.ttl
		t.mu.Unlock()
		if idle {
			delete(s.data, id)
			removed++
		}
	}
	return removed
}

func (s *Transcripts) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

// Run sweeps idle sessions every interval until ctx is done.
func (s *Transcripts) Run(ctx context.Context, interval time.Duration, onSweep func(removed int)) {
	if s.ttl <= 0 || interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if removed := s.Sweep(now); removed > 0 && onSweep != nil {
				onSweep(removed)
			}
		}
	}
}
