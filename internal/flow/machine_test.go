package flow

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdukarimov0990/Yangi-bot/internal/catalog"
	"github.com/abdukarimov0990/Yangi-bot/internal/i18n"
	"github.com/abdukarimov0990/Yangi-bot/types"
)

func newSession() *types.Session {
	return &types.Session{
		UserID: 1,
		ChatID: 1,
		Step:   types.StepAskLang,
	}
}

func kinds(out Outcome) []PromptKind {
	ks := make([]PromptKind, 0, len(out.Prompts))
	for _, p := range out.Prompts {
		ks = append(ks, p.Kind)
	}
	return ks
}

func TestLanguageSelection(t *testing.T) {
	s := newSession()
	out := Apply(s, Event{Kind: EventLanguage, LangID: "ru"})
	assert.Equal(t, i18n.RU, s.Lang)
	assert.Equal(t, types.StepAskFullName, s.Step)
	assert.Equal(t, []PromptKind{PromptAskFullName}, kinds(out))
}

func TestLanguageInferredFromText(t *testing.T) {
	s := newSession()
	Apply(s, Event{Kind: EventText, Text: "русский"})
	assert.Equal(t, i18n.RU, s.Lang)

	s = newSession()
	Apply(s, Event{Kind: EventText, Text: "Uzbekcha"})
	assert.Equal(t, i18n.UZ, s.Lang)

	// Unmatched text falls back to the default language.
	s = newSession()
	Apply(s, Event{Kind: EventText, Text: "english please"})
	assert.Equal(t, i18n.Default, s.Lang)
}

func TestInvalidPhoneReprompts(t *testing.T) {
	s := newSession()
	s.Lang = i18n.RU
	s.Step = types.StepAskPhone

	out := Apply(s, Event{Kind: EventText, Text: "123"})
	assert.Equal(t, []PromptKind{PromptInvalidPhone}, kinds(out))
	assert.Equal(t, types.StepAskPhone, s.Step)
	assert.Empty(t, s.Phone)

	out = Apply(s, Event{Kind: EventText, Text: "998901234567"})
	assert.Equal(t, "+998901234567", s.Phone)
	assert.Equal(t, types.StepChooseCategory, s.Step)
	assert.Equal(t, []PromptKind{PromptChooseCategory}, kinds(out))
}

func TestContactShareAlwaysAdvances(t *testing.T) {
	s := newSession()
	s.Lang = i18n.UZ
	s.Step = types.StepAskPhone

	// Even a contact number normalization rejects keeps the flow moving.
	Apply(s, Event{Kind: EventContact, Phone: "12"})
	assert.Equal(t, "12", s.Phone)
	assert.Equal(t, types.StepChooseCategory, s.Step)
}

func TestUnknownCategoryRejected(t *testing.T) {
	s := newSession()
	s.Lang = i18n.RU
	s.Step = types.StepChooseCategory

	out := Apply(s, Event{Kind: EventCategory, CategoryID: "barista"})
	assert.Equal(t, []PromptKind{PromptInvalidCategory}, kinds(out))
	assert.Empty(t, s.CategoryID)
	assert.Equal(t, types.StepChooseCategory, s.Step)
}

func TestTextDuringCategoryChoiceReshowsKeyboard(t *testing.T) {
	s := newSession()
	s.Lang = i18n.RU
	s.Step = types.StepChooseCategory

	out := Apply(s, Event{Kind: EventText, Text: "Администратор"})
	assert.Equal(t, []PromptKind{PromptCategoryKeyboard}, kinds(out))
	assert.Empty(t, s.CategoryID)
}

func TestQuestionAdvance(t *testing.T) {
	s := newSession()
	s.Lang = i18n.RU
	s.Step = types.StepChooseCategory

	out := Apply(s, Event{Kind: EventCategory, CategoryID: "admin"})
	require.Equal(t, types.StepAskQuestions, s.Step)
	qs := catalog.Questions(i18n.RU, "admin")
	require.NotEmpty(t, qs)
	require.Len(t, out.Prompts, 2)
	assert.Equal(t, PromptThanks, out.Prompts[0].Kind)
	assert.Equal(t, qs[0], out.Prompts[1].Text)

	out = Apply(s, Event{Kind: EventText, Text: "ответ один"})
	assert.Equal(t, 1, s.QuestionIndex)
	require.Len(t, s.Answers, 1)
	assert.Equal(t, qs[0], s.Answers[0].Question)
	assert.Equal(t, "ответ один", s.Answers[0].Answer)
	require.Len(t, out.Prompts, 1)
	assert.Equal(t, qs[1], out.Prompts[0].Text)

	// Answering the last question moves to media collection instead of
	// running the cursor past the end.
	s.QuestionIndex = len(qs) - 1
	out = Apply(s, Event{Kind: EventText, Text: "последний"})
	assert.Equal(t, types.StepCollectMedia, s.Step)
	assert.Equal(t, []PromptKind{PromptMediaRequirements}, kinds(out))
	assert.Equal(t, s.QuestionIndex, len(qs))
}

func TestEmptyQuestionListSkipsToMedia(t *testing.T) {
	// Stored state can carry a category id whose question list no longer
	// resolves. The flow must move on to media collection instead of
	// asking a question it cannot look up.
	s := newSession()
	s.Lang = i18n.UZ
	s.Step = types.StepAskQuestions
	s.CategoryID = "reception"

	out := Apply(s, Event{Kind: EventText, Text: "salom"})
	assert.Equal(t, types.StepCollectMedia, s.Step)
	assert.Equal(t, []PromptKind{PromptMediaRequirements}, kinds(out))
	assert.Empty(t, s.Answers)
	assert.NotContains(t, kinds(out), PromptQuestion)
}

func TestDoneTokenIsLocaleBound(t *testing.T) {
	s := newSession()
	s.Lang = i18n.RU
	s.Step = types.StepCollectMedia

	out := Apply(s, Event{Kind: EventText, Text: "Tayyor"})
	assert.False(t, out.Finalize)
	assert.Equal(t, []PromptKind{PromptReady}, kinds(out))

	out = Apply(s, Event{Kind: EventText, Text: "ГОТОВО"})
	assert.True(t, out.Finalize)
}

func TestMediaCollection(t *testing.T) {
	s := newSession()
	s.Lang = i18n.UZ
	s.Step = types.StepCollectMedia

	out := Apply(s, Event{Kind: EventMedia, MessageID: 10})
	assert.Equal(t, []PromptKind{PromptMediaAck}, kinds(out))
	out = Apply(s, Event{Kind: EventMedia, MessageID: 11})
	assert.Equal(t, []PromptKind{PromptMediaAck}, kinds(out))
	assert.Equal(t, []int{10, 11}, s.MediaMessageIDs)

	out = Apply(s, Event{Kind: EventText, Text: "tayyor"})
	assert.True(t, out.Finalize)
}

func TestUnexpectedEventReprompts(t *testing.T) {
	s := newSession()
	s.Lang = i18n.RU
	s.Step = types.StepAskFullName

	out := Apply(s, Event{Kind: EventMedia, MessageID: 5})
	assert.Equal(t, []PromptKind{PromptAskFullName}, kinds(out))
	assert.Empty(t, s.MediaMessageIDs)
	assert.Equal(t, types.StepAskFullName, s.Step)
}

func TestFullRussianScenario(t *testing.T) {
	s := newSession()

	Apply(s, Event{Kind: EventLanguage, LangID: "ru"})
	Apply(s, Event{Kind: EventText, Text: "Иван Петров"})
	Apply(s, Event{Kind: EventContact, Phone: "+998901234567"})
	Apply(s, Event{Kind: EventCategory, CategoryID: "admin"})

	qs := catalog.Questions(i18n.RU, "admin")
	for i := range qs {
		out := Apply(s, Event{Kind: EventText, Text: fmt.Sprintf("ответ %d", i+1)})
		if i < len(qs)-1 {
			assert.Equal(t, qs[i+1], out.Prompts[0].Text)
		} else {
			assert.Equal(t, []PromptKind{PromptMediaRequirements}, kinds(out))
		}
	}
	require.Equal(t, types.StepCollectMedia, s.Step)
	require.Len(t, s.Answers, len(qs))

	Apply(s, Event{Kind: EventMedia, MessageID: 100})
	Apply(s, Event{Kind: EventMedia, MessageID: 101})
	out := Apply(s, Event{Kind: EventText, Text: "Готово"})

	assert.True(t, out.Finalize)
	assert.Equal(t, "Иван Петров", s.FullName)
	assert.Equal(t, "+998901234567", s.Phone)
	assert.Equal(t, "admin", s.CategoryID)
	assert.Equal(t, []int{100, 101}, s.MediaMessageIDs)
}
