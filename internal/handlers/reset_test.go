package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdukarimov0990/Yangi-bot/internal/i18n"
	"github.com/abdukarimov0990/Yangi-bot/store"
	"github.com/abdukarimov0990/Yangi-bot/types"
)

func TestRestartDiscardsProgress(t *testing.T) {
	sessions := store.NewMemorySessionStore(0)
	h := NewHandlers(sessions, nil, "-1001234567890")

	session, err := sessions.GetOrCreate(7, 7)
	require.NoError(t, err)
	session.Lang = i18n.RU
	session.Step = types.StepAskQuestions
	session.FullName = "Иван Петров"
	session.Phone = "+998901234567"
	session.CategoryID = "admin"
	session.QuestionIndex = 3
	session.Answers = []types.QA{{Question: "q", Answer: "a"}}
	require.NoError(t, sessions.Update(session))

	fresh := h.restart(session)

	assert.Equal(t, types.StepAskLang, fresh.Step)
	assert.Empty(t, fresh.FullName)
	assert.Empty(t, fresh.Phone)
	assert.Empty(t, fresh.CategoryID)
	assert.Empty(t, fresh.Answers)
	assert.Zero(t, fresh.QuestionIndex)
	assert.Equal(t, int64(7), fresh.UserID)

	// The store now holds the fresh session, not the old progress.
	stored, err := sessions.GetOrCreate(7, 7)
	require.NoError(t, err)
	assert.Equal(t, types.StepAskLang, stored.Step)
	assert.Empty(t, stored.Answers)
}
