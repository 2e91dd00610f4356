package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/abdukarimov0990/Yangi-bot/types"
)

// RedisSessionStore keeps one session per applicant under
// <prefix>:session:<userID>, refreshed with a sliding TTL on every write so
// an abandoned application eventually evicts itself.
type RedisSessionStore struct {
	client *RedisClient
	ttl    time.Duration
}

func NewRedisSessionStore(client *RedisClient, ttlHours int) *RedisSessionStore {
	ttl := time.Duration(ttlHours) * time.Hour
	if ttlHours <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisSessionStore{client: client, ttl: ttl}
}

func (s *RedisSessionStore) sessionKey(userID int64) string {
	return s.client.key("session", fmt.Sprintf("%d", userID))
}

func (s *RedisSessionStore) GetOrCreate(userID, chatID int64) (*types.Session, error) {
	var session types.Session
	err := s.client.Get(s.sessionKey(userID), &session)
	if err == nil {
		return &session, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	session = types.Session{
		UserID:    userID,
		ChatID:    chatID,
		Step:      types.StepAskLang,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.client.Set(s.sessionKey(userID), &session, s.ttl); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *RedisSessionStore) Update(session *types.Session) error {
	session.UpdatedAt = time.Now().UTC()
	return s.client.Set(s.sessionKey(session.UserID), session, s.ttl)
}

func (s *RedisSessionStore) Delete(userID int64) error {
	return s.client.Del(s.sessionKey(userID))
}
