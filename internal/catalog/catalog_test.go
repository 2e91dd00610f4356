package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdukarimov0990/Yangi-bot/internal/i18n"
)

func TestQuestionListsAlignedAcrossLanguages(t *testing.T) {
	for _, c := range Categories() {
		uz := Questions(i18n.UZ, c.ID)
		ru := Questions(i18n.RU, c.ID)
		require.NotEmpty(t, uz, "category %s has no uz questions", c.ID)
		assert.Equal(t, len(uz), len(ru), "question count mismatch for category %s", c.ID)
	}
}

func TestEveryCategoryHasBothLabels(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range Categories() {
		assert.False(t, seen[c.ID], "duplicate category id %s", c.ID)
		seen[c.ID] = true
		assert.NotEmpty(t, c.Labels[i18n.UZ], "category %s missing uz label", c.ID)
		assert.NotEmpty(t, c.Labels[i18n.RU], "category %s missing ru label", c.ID)
	}
}

func TestCategoryLookup(t *testing.T) {
	c, ok := CategoryByID("admin")
	require.True(t, ok)
	assert.Equal(t, "Администратор", c.Labels[i18n.RU])

	_, ok = CategoryByID("barista")
	assert.False(t, ok)

	assert.Equal(t, "Стилист", CategoryLabel(i18n.RU, "stylist"))
	// Unknown ids fall back to the raw id so reports never show an empty
	// category line.
	assert.Equal(t, "barista", CategoryLabel(i18n.RU, "barista"))
}

func TestUnknownCombinationsReturnNil(t *testing.T) {
	assert.Nil(t, Questions(i18n.RU, "barista"))
	assert.Nil(t, Questions(i18n.Lang("en"), "admin"))
}
