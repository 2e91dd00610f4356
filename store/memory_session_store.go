package store

import (
	"sync"
	"time"

	"github.com/abdukarimov0990/Yangi-bot/types"
)

// MemorySessionStore is the in-process backing used in tests and in
// deployments without Redis. A ttl of zero disables expiry.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[int64]*types.Session
	ttl      time.Duration
}

func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[int64]*types.Session),
		ttl:      ttl,
	}
}

func (s *MemorySessionStore) GetOrCreate(userID, chatID int64) (*types.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session, ok := s.sessions[userID]; ok {
		return session, nil
	}
	now := time.Now().UTC()
	session := &types.Session{
		UserID:    userID,
		ChatID:    chatID,
		Step:      types.StepAskLang,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.sessions[userID] = session
	return session, nil
}

func (s *MemorySessionStore) Update(session *types.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	session.UpdatedAt = time.Now().UTC()
	s.sessions[session.UserID] = session
	return nil
}

func (s *MemorySessionStore) Delete(userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
	return nil
}

// Cleanup drops sessions idle longer than the configured TTL. Called from a
// background ticker; a no-op when expiry is disabled.
func (s *MemorySessionStore) Cleanup() int {
	if s.ttl <= 0 {
		return 0
	}
	cutoff := time.Now().UTC().Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for userID, session := range s.sessions {
		if session.UpdatedAt.Before(cutoff) {
			delete(s.sessions, userID)
			removed++
		}
	}
	return removed
}
