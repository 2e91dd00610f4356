package handlers

import (
	"context"
	"log"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/abdukarimov0990/Yangi-bot/internal/messages"
	"github.com/abdukarimov0990/Yangi-bot/internal/summary"
	"github.com/abdukarimov0990/Yangi-bot/types"
)

// finalizeAndRelay runs the completion sequence: summary to the review
// channel, every submitted media message copied over in submission order,
// archive write, applicant acknowledgement, session deletion. Each step is
// best-effort on its own — a failed summary must not stop media relay, and
// no downstream failure delays the applicant's confirmation.
func (h *Handlers) finalizeAndRelay(ctx context.Context, b *bot.Bot, update *models.Update, session *types.Session) {
	var from *models.User
	if update.Message != nil {
		from = update.Message.From
	}

	report := summary.Format(session, senderLabel(from))
	if _, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: h.reviewChatID,
		Text:   report,
	}); err != nil {
		log.Printf("Failed to send summary to channel: %v", err)
	}

	for _, messageID := range session.MediaMessageIDs {
		if _, err := b.CopyMessage(ctx, &bot.CopyMessageParams{
			ChatID:     h.reviewChatID,
			FromChatID: session.ChatID,
			MessageID:  messageID,
		}); err != nil {
			log.Printf("Copy media %d failed: %v", messageID, err)
		}
	}

	if h.archive != nil {
		app := types.Application{
			UserID:     session.UserID,
			Username:   senderLabel(from),
			Lang:       session.Lang,
			FullName:   session.FullName,
			Phone:      session.Phone,
			CategoryID: session.CategoryID,
			Answers:    session.Answers,
			MediaCount: len(session.MediaMessageIDs),
			CreatedAt:  time.Now().UTC(),
		}
		if err := h.archive.SaveApplication(ctx, app); err != nil {
			log.Printf("Failed to archive application for %d: %v", session.UserID, err)
		}
	}

	h.send(ctx, b, session.ChatID, messages.Done(session.Lang), removeKeyboard())

	if err := h.sessions.Delete(session.UserID); err != nil {
		log.Printf("Error deleting session for %d: %v", session.UserID, err)
	}
}
