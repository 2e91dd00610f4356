package handlers

import (
	"context"
	"fmt"
	"log"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/abdukarimov0990/Yangi-bot/internal/contextkeys"
	"github.com/abdukarimov0990/Yangi-bot/internal/flow"
	"github.com/abdukarimov0990/Yangi-bot/internal/i18n"
	"github.com/abdukarimov0990/Yangi-bot/internal/messages"
	"github.com/abdukarimov0990/Yangi-bot/types"
)

type Handlers struct {
	sessions     types.SessionStore
	archive      types.ApplicationStore
	reviewChatID string
}

// NewHandlers wires the dispatch shell. archive may be nil; the review
// channel id is the only required outbound destination.
func NewHandlers(sessions types.SessionStore, archive types.ApplicationStore, reviewChatID string) *Handlers {
	return &Handlers{
		sessions:     sessions,
		archive:      archive,
		reviewChatID: reviewChatID,
	}
}

// MainHandler routes one classified update into the state machine.
func (h *Handlers) MainHandler(ctx context.Context, b *bot.Bot, update *models.Update) {
	session, ok := contextkeys.GetSession(ctx)
	if !ok {
		log.Printf("Error: session not found in context")
		return
	}
	messageType, _ := contextkeys.GetMessageType(ctx)

	switch messageType {
	case contextkeys.MessageTypeCommand:
		h.HandleCommand(ctx, b, update, session)
	case contextkeys.MessageTypeClickButton:
		h.HandleClickButton(ctx, b, update, session)
	case contextkeys.MessageTypeContact:
		h.HandleContact(ctx, b, update, session)
	case contextkeys.MessageTypeMedia:
		h.HandleMedia(ctx, b, update, session)
	case contextkeys.MessageTypeText:
		h.HandleText(ctx, b, update, session)
	default:
		// Stickers, polls, locations and the like: re-issue the prompt for
		// the current step instead of failing.
		h.apply(ctx, b, update, session, flow.Event{})
	}
}

// apply feeds one event through the machine, persists the session and
// renders the outcome.
func (h *Handlers) apply(ctx context.Context, b *bot.Bot, update *models.Update, session *types.Session, ev flow.Event) flow.Outcome {
	out := flow.Apply(session, ev)

	if out.Finalize {
		h.finalizeAndRelay(ctx, b, update, session)
		return out
	}

	if err := h.sessions.Update(session); err != nil {
		log.Printf("Error updating session for %d: %v", session.UserID, err)
	}
	h.render(ctx, b, session, out)
	return out
}

func (h *Handlers) render(ctx context.Context, b *bot.Bot, session *types.Session, out flow.Outcome) {
	lang := session.Lang
	if lang == "" {
		lang = i18n.Default
	}

	for _, p := range out.Prompts {
		switch p.Kind {
		case flow.PromptAskLanguage:
			h.sendLanguagePrompt(ctx, b, session.ChatID)
		case flow.PromptAskFullName:
			h.send(ctx, b, session.ChatID, messages.AskFullName(lang), nil)
		case flow.PromptAskPhone:
			h.send(ctx, b, session.ChatID, messages.AskPhone(lang), contactKeyboard(lang))
		case flow.PromptChooseCategory:
			h.send(ctx, b, session.ChatID, messages.ChooseCategory(lang), removeKeyboard())
			h.send(ctx, b, session.ChatID, "—", categoryKeyboard(lang))
		case flow.PromptCategoryKeyboard:
			h.send(ctx, b, session.ChatID, messages.UseButtonsHint(), categoryKeyboard(lang))
		case flow.PromptInvalidCategory:
			// Surfaced through the callback acknowledgement; nothing to send
			// into the chat.
		case flow.PromptThanks:
			h.send(ctx, b, session.ChatID, messages.Thanks(lang), nil)
		case flow.PromptQuestion:
			h.send(ctx, b, session.ChatID, p.Text, nil)
		case flow.PromptMediaRequirements:
			h.send(ctx, b, session.ChatID, messages.MediaRequirements(lang), nil)
		case flow.PromptMediaAck:
			h.send(ctx, b, session.ChatID, messages.MediaAck(), nil)
		case flow.PromptReady:
			h.send(ctx, b, session.ChatID, messages.PromptReady(lang), nil)
		case flow.PromptInvalidPhone:
			h.send(ctx, b, session.ChatID, messages.InvalidPhone(lang), nil)
		}
	}
}

// sendLanguagePrompt mirrors the start sequence: the question with any old
// reply keyboard removed, then the language chooser.
func (h *Handlers) sendLanguagePrompt(ctx context.Context, b *bot.Bot, chatID int64) {
	text := messages.AskLang(i18n.Default) + "\n\n" + messages.LangName(i18n.UZ) + " / " + messages.LangName(i18n.RU)
	h.send(ctx, b, chatID, text, removeKeyboard())
	h.send(ctx, b, chatID, "—", languageKeyboard())
}

func (h *Handlers) send(ctx context.Context, b *bot.Bot, chatID int64, text string, markup models.ReplyMarkup) {
	params := &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	}
	if markup != nil {
		params.ReplyMarkup = markup
	}
	if _, err := b.SendMessage(ctx, params); err != nil {
		log.Printf("Error sending message to %d: %v", chatID, err)
	}
}

func (h *Handlers) answerCallback(ctx context.Context, b *bot.Bot, callbackID, text string, alert bool) {
	_, err := b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       alert,
	})
	if err != nil {
		log.Printf("Error answering callback: %v", err)
	}
}

func senderLabel(from *models.User) string {
	if from == nil {
		return ""
	}
	if from.Username != "" {
		return "@" + from.Username
	}
	return fmt.Sprintf("%d", from.ID)
}
