package summary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdukarimov0990/Yangi-bot/internal/i18n"
	"github.com/abdukarimov0990/Yangi-bot/types"
)

func TestFormatCompleteApplication(t *testing.T) {
	s := &types.Session{
		Lang:       i18n.RU,
		FullName:   "Иван Петров",
		Phone:      "+998901234567",
		CategoryID: "admin",
		Answers: []types.QA{
			{Question: "Вопрос один?", Answer: "Ответ один"},
			{Question: "Вопрос два?", Answer: "Ответ два"},
		},
	}

	got := Format(s, "@ivan")

	assert.Contains(t, got, "Новая анкета")
	assert.Contains(t, got, "Имя: Иван Петров")
	assert.Contains(t, got, "Телефон: +998901234567")
	assert.Contains(t, got, "Категория: Администратор")
	assert.Contains(t, got, "Отправитель: @ivan")

	// Q/A pairs stay in asked order.
	first := strings.Index(got, "Вопрос один?")
	second := strings.Index(got, "Вопрос два?")
	require.GreaterOrEqual(t, first, 0)
	require.Greater(t, second, first)
	assert.Contains(t, got, "→ Ответ один")
}

func TestFormatRendersDashesForUnsetFields(t *testing.T) {
	s := &types.Session{Lang: i18n.UZ}

	got := Format(s, "")

	assert.Contains(t, got, "Ism: -")
	assert.Contains(t, got, "Telefon: -")
	assert.Contains(t, got, "Kategoriya: -")
	assert.Contains(t, got, "Yuboruvchi: -")
}

func TestFormatRendersDashForUnsetLanguage(t *testing.T) {
	got := Format(&types.Session{}, "")

	assert.Contains(t, got, "Til: -")
}
