package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abdukarimov0990/Yangi-bot/internal/catalog"
	"github.com/abdukarimov0990/Yangi-bot/internal/flow"
	"github.com/abdukarimov0990/Yangi-bot/internal/i18n"
	"github.com/abdukarimov0990/Yangi-bot/types"
)

func TestCategoryAckNamesAcceptedSelection(t *testing.T) {
	s := &types.Session{UserID: 1, ChatID: 1, Lang: i18n.RU, Step: types.StepChooseCategory}

	out := flow.Apply(s, flow.Event{Kind: flow.EventCategory, CategoryID: "nails"})
	assert.Equal(t, catalog.CategoryLabel(i18n.RU, "nails"), categoryAck(out, s.Lang, "nails"))
	assert.Equal(t, "nails", s.CategoryID)
}

func TestStaleCategoryButtonAckIsNeutral(t *testing.T) {
	// A button left over from an earlier message, tapped after the
	// category was already chosen: the flow re-prompts and the ack must
	// not name a category that was never recorded.
	s := &types.Session{UserID: 2, ChatID: 2, Lang: i18n.RU, Step: types.StepCollectMedia, CategoryID: "admin"}

	out := flow.Apply(s, flow.Event{Kind: flow.EventCategory, CategoryID: "nails"})
	assert.Empty(t, categoryAck(out, s.Lang, "nails"))
	assert.Equal(t, "admin", s.CategoryID)
}
