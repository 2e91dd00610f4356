package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdukarimov0990/Yangi-bot/types"
)

func TestMemorySessionStoreLifecycle(t *testing.T) {
	s := NewMemorySessionStore(0)

	session, err := s.GetOrCreate(42, 100)
	require.NoError(t, err)
	assert.Equal(t, types.StepAskLang, session.Step)
	assert.Equal(t, int64(42), session.UserID)
	assert.Equal(t, int64(100), session.ChatID)

	session.FullName = "Test User"
	require.NoError(t, s.Update(session))

	// Same applicant gets the same live session back.
	again, err := s.GetOrCreate(42, 100)
	require.NoError(t, err)
	assert.Equal(t, "Test User", again.FullName)

	require.NoError(t, s.Delete(42))
	fresh, err := s.GetOrCreate(42, 100)
	require.NoError(t, err)
	assert.Empty(t, fresh.FullName)

	// Delete of a missing session is a no-op.
	require.NoError(t, s.Delete(9999))
}

func TestMemorySessionStoreCleanup(t *testing.T) {
	s := NewMemorySessionStore(time.Hour)

	stale, err := s.GetOrCreate(1, 1)
	require.NoError(t, err)
	stale.UpdatedAt = time.Now().UTC().Add(-2 * time.Hour)
	s.sessions[1] = stale

	live, err := s.GetOrCreate(2, 2)
	require.NoError(t, err)
	require.NoError(t, s.Update(live))

	assert.Equal(t, 1, s.Cleanup())

	_, ok := s.sessions[1]
	assert.False(t, ok)
	_, ok = s.sessions[2]
	assert.True(t, ok)
}

func TestMemorySessionStoreCleanupDisabled(t *testing.T) {
	s := NewMemorySessionStore(0)
	session, err := s.GetOrCreate(1, 1)
	require.NoError(t, err)
	session.UpdatedAt = time.Now().UTC().Add(-1000 * time.Hour)
	assert.Equal(t, 0, s.Cleanup())
}
