package service

import (
	"sync"

	"github.com/parazzit213/chil-life-bot/internal/domain"
)

// SessionStore keeps transient per-user conversation state in memory.
// Sessions are lost on restart; that is an accepted property of this
// state, nothing durable lives here.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[int64]domain.SessionState
}

// NewSessionStore creates an empty store
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[int64]domain.SessionState),
	}
}

// Get returns the user's session, idle if none exists
func (s *SessionStore) Get(userID int64) domain.SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if sess, ok := s.sessions[userID]; ok {
		return sess
	}
	return domain.IdleSession()
}

// Set replaces the user's session
func (s *SessionStore) Set(userID int64, sess domain.SessionState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[userID] = sess
}

// Reset returns the user to the idle state
func (s *SessionStore) Reset(userID int64) {
	s.Set(userID, domain.IdleSession())
}
