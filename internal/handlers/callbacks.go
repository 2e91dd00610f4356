package handlers

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/abdukarimov0990/Yangi-bot/internal/catalog"
	"github.com/abdukarimov0990/Yangi-bot/internal/contextkeys"
	"github.com/abdukarimov0990/Yangi-bot/internal/flow"
	"github.com/abdukarimov0990/Yangi-bot/internal/i18n"
	"github.com/abdukarimov0990/Yangi-bot/internal/messages"
	"github.com/abdukarimov0990/Yangi-bot/types"
)

func (h *Handlers) HandleClickButton(ctx context.Context, b *bot.Bot, update *models.Update, session *types.Session) {
	if update.CallbackQuery == nil {
		return
	}
	data, _ := contextkeys.GetCallbackData(ctx)
	if data == "" {
		data = update.CallbackQuery.Data
	}
	data = strings.TrimSpace(data)

	switch {
	case strings.HasPrefix(data, callbackLangPrefix):
		langID := strings.TrimPrefix(data, callbackLangPrefix)
		h.apply(ctx, b, update, session, flow.Event{Kind: flow.EventLanguage, LangID: langID})
		h.answerCallback(ctx, b, update.CallbackQuery.ID, messages.LangChosen(session.Lang), false)

	case strings.HasPrefix(data, callbackCategoryPrefix):
		id := strings.TrimPrefix(data, callbackCategoryPrefix)
		out := h.apply(ctx, b, update, session, flow.Event{Kind: flow.EventCategory, CategoryID: id})
		if rejectedCategory(out) {
			h.answerCallback(ctx, b, update.CallbackQuery.ID, messages.InvalidCategory(), true)
			return
		}
		h.answerCallback(ctx, b, update.CallbackQuery.ID, categoryAck(out, session.Lang, id), false)

	default:
		h.answerCallback(ctx, b, update.CallbackQuery.ID, "", false)
	}
}

func rejectedCategory(out flow.Outcome) bool {
	for _, p := range out.Prompts {
		if p.Kind == flow.PromptInvalidCategory {
			return true
		}
	}
	return false
}

// categoryAck returns the toast shown after a category button press. A
// stale button tapped outside the category step is swallowed by the flow,
// so the toast must not claim the selection took effect.
func categoryAck(out flow.Outcome, lang i18n.Lang, id string) string {
	for _, p := range out.Prompts {
		if p.Kind == flow.PromptThanks {
			return catalog.CategoryLabel(lang, id)
		}
	}
	return ""
}
