package mem

import (
	"sync"
	"time"
)

// PendingAction is a staged admin operation waiting for confirmation.
type PendingAction struct {
	Kind        string
	Description string
	IDs         []string
	RequestedBy string
	ExpiresAt   time.Time
}

type PendingActionStore interface {
	Put(token string, action PendingAction, ttl time.Duration)

	// Take returns the action for token if not expired and removes it
	// (single-use). ok is false if missing/expired.
	Take(token string) (PendingAction, bool)

	Peek(token string) (PendingAction, bool)
}

type PendingActions struct {
	mu   sync.Mutex
	data map[string]PendingAction
	now  func() time.Time
}

func NewPendingActions() *PendingActions {
	return &PendingActions{
		data: make(map[string]PendingAction),
		now:  time.Now,
	}
}

func (s *PendingActions) Put(token string, action PendingAction, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepLocked()
	action.ExpiresAt = s.now().Add(ttl)
	s.data[token] = action
}

func (s *PendingActions) Take(token string) (PendingAction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.data[token]
	if !ok {
		return PendingAction{}, false
	}
	delete(s.data, token)
	if s.now().After(a.ExpiresAt) {
		return PendingAction{}, false
	}
	return a, true
}

func (s *PendingActions) Peek(token string) (PendingAction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.data[token]
	if !ok || s.now().After(a.ExpiresAt) {
		return PendingAction{}, false
	}
	return a, true
}

// sweepLocked drops expired entries; callers hold mu.
func (s *PendingActions) sweepLocked() {
	now := s.now()
	for k, a := range s.data {
		if now.After(a.ExpiresAt) {
			delete(s.data, k)
		}
	}
}
