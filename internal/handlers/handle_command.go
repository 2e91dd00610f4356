package handlers

import (
	"context"
	"log"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/abdukarimov0990/Yangi-bot/internal/i18n"
	"github.com/abdukarimov0990/Yangi-bot/internal/messages"
	"github.com/abdukarimov0990/Yangi-bot/types"
)

func (h *Handlers) HandleCommand(ctx context.Context, b *bot.Bot, update *models.Update, session *types.Session) {
	if update.Message == nil {
		return
	}
	fields := strings.Fields(strings.TrimSpace(update.Message.Text))
	if len(fields) == 0 {
		return
	}
	cmd := fields[0]
	if strings.Contains(cmd, "@") {
		cmd = strings.SplitN(cmd, "@", 2)[0]
	}

	switch cmd {
	case "/start":
		fresh := h.restart(session)
		h.send(ctx, b, fresh.ChatID, messages.Start(i18n.Default), nil)
		h.sendLanguagePrompt(ctx, b, fresh.ChatID)
	case "/reset":
		// Confirm in the language the applicant was using, then start over.
		lang := session.Lang
		if lang == "" {
			lang = i18n.Default
		}
		fresh := h.restart(session)
		h.send(ctx, b, fresh.ChatID, messages.Reset(lang), nil)
		h.sendLanguagePrompt(ctx, b, fresh.ChatID)
	default:
		// Unknown commands nudge back into the flow.
		h.send(ctx, b, session.ChatID, messages.RestartHint(), nil)
	}
}

// restart discards any collected progress and returns a fresh session at
// the language step.
func (h *Handlers) restart(session *types.Session) *types.Session {
	if err := h.sessions.Delete(session.UserID); err != nil {
		log.Printf("Error deleting session for %d: %v", session.UserID, err)
	}
	fresh, err := h.sessions.GetOrCreate(session.UserID, session.ChatID)
	if err != nil {
		log.Printf("Error recreating session for %d: %v", session.UserID, err)
		// Fall back to resetting in place so the conversation can continue.
		*session = types.Session{
			UserID: session.UserID,
			ChatID: session.ChatID,
			Step:   types.StepAskLang,
		}
		return session
	}
	*session = *fresh
	return session
}
