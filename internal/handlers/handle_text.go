package handlers

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/abdukarimov0990/Yangi-bot/internal/flow"
	"github.com/abdukarimov0990/Yangi-bot/types"
)

func (h *Handlers) HandleText(ctx context.Context, b *bot.Bot, update *models.Update, session *types.Session) {
	if update.Message == nil {
		return
	}
	text := strings.TrimSpace(update.Message.Text)
	h.apply(ctx, b, update, session, flow.Event{Kind: flow.EventText, Text: text})
}

func (h *Handlers) HandleContact(ctx context.Context, b *bot.Bot, update *models.Update, session *types.Session) {
	if update.Message == nil || update.Message.Contact == nil {
		return
	}
	h.apply(ctx, b, update, session, flow.Event{
		Kind:  flow.EventContact,
		Phone: update.Message.Contact.PhoneNumber,
	})
}

// HandleMedia records the message id of a submitted video/video note/
// document/photo so finalize can relay it to the review channel.
func (h *Handlers) HandleMedia(ctx context.Context, b *bot.Bot, update *models.Update, session *types.Session) {
	if update.Message == nil {
		return
	}
	h.apply(ctx, b, update, session, flow.Event{
		Kind:      flow.EventMedia,
		MessageID: update.Message.ID,
	})
}
