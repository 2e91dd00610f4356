package middleware

import (
	"context"
	"sync"
	"testing"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdukarimov0990/Yangi-bot/internal/contextkeys"
	"github.com/abdukarimov0990/Yangi-bot/store"
)

func update(userID int64) *models.Update {
	return &models.Update{Message: &models.Message{
		From: &models.User{ID: userID},
		Chat: models.Chat{ID: userID},
	}}
}

func TestSessionMiddlewareReleasesUserLock(t *testing.T) {
	m := NewMessageAnalyzer(store.NewMemorySessionStore(0))

	handled := 0
	next := func(ctx context.Context, b *bot.Bot, upd *models.Update) {
		session, ok := contextkeys.GetSession(ctx)
		require.True(t, ok)
		assert.Equal(t, int64(7), session.UserID)

		// The lock entry exists while the update is being handled.
		m.mu.Lock()
		assert.Len(t, m.locks, 1)
		m.mu.Unlock()
		handled++
	}

	m.SessionMiddleware(next)(context.Background(), nil, update(7))

	assert.Equal(t, 1, handled)
	m.mu.Lock()
	assert.Empty(t, m.locks)
	m.mu.Unlock()
}

func TestUserLocksEvictedUnderConcurrency(t *testing.T) {
	m := NewMessageAnalyzer(store.NewMemorySessionStore(0))
	h := m.SessionMiddleware(func(ctx context.Context, b *bot.Bot, upd *models.Update) {})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		userID := int64(i%4 + 1)
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			h(context.Background(), nil, update(id))
		}(userID)
	}
	wg.Wait()

	m.mu.Lock()
	assert.Empty(t, m.locks)
	m.mu.Unlock()
}
