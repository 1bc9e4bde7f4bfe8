package simulation

import (
	"My-Supps-Backend/pkg/analyzer"
	"sync"
	"time"
)

// session is one user's simulation. The mutex serialises every
// mutate-then-analyze sequence on the analyzer.
type session struct {
	mu       sync.Mutex
	analyzer *analyzer.Analyzer
	lastUsed time.Time
}

// SessionStore keeps one simulation per user in memory. Sessions idle for
// longer than maxIdle are dropped on the next lookup or insert, whichever
// user it is for.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*session
	maxIdle  time.Duration
	now      func() time.Time
}

func NewSessionStore(maxIdle time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*session),
		maxIdle:  maxIdle,
		now:      time.Now,
	}
}

func (s *SessionStore) get(userID string) (*session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sweep(now)
	sess, ok := s.sessions[userID]
	if ok {
		sess.lastUsed = now
	}
	return sess, ok
}

// put stores a new session unless another request stored one first, in which
// case the existing session wins.
func (s *SessionStore) put(userID string, a *analyzer.Analyzer) *session {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if existing, ok := s.sessions[userID]; ok {
		existing.lastUsed = now
		return existing
	}
	s.sweep(now)

	sess := &session{analyzer: a, lastUsed: now}
	s.sessions[userID] = sess
	return sess
}

func (s *SessionStore) sweep(now time.Time) {
	if s.maxIdle <= 0 {
		return
	}
	for userID, sess := range s.sessions {
		if now.Sub(sess.lastUsed) > s.maxIdle {
			delete(s.sessions, userID)
		}
	}
}

// Len reports the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
