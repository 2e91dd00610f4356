package middleware

import (
	"context"
	"log"
	"runtime/debug"
	"strings"
	"sync"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/abdukarimov0990/Yangi-bot/internal/contextkeys"
	"github.com/abdukarimov0990/Yangi-bot/internal/messages"
	"github.com/abdukarimov0990/Yangi-bot/types"
)

type Middlewares struct {
	store types.SessionStore

	mu    sync.Mutex
	locks map[int64]*userLock
}

// userLock serializes event processing for one applicant. Entries are
// reference counted so the map does not accumulate a mutex for every
// applicant ever seen.
type userLock struct {
	mu   sync.Mutex
	refs int
}

func NewMessageAnalyzer(store types.SessionStore) *Middlewares {
	return &Middlewares{
		store: store,
		locks: make(map[int64]*userLock),
	}
}

// acquireLock returns the applicant's lock, held. Events from different
// applicants run concurrently; two events from the same applicant never
// interleave mid-session.
func (m *Middlewares) acquireLock(userID int64) *userLock {
	m.mu.Lock()
	l, ok := m.locks[userID]
	if !ok {
		l = &userLock{}
		m.locks[userID] = l
	}
	l.refs++
	m.mu.Unlock()

	l.mu.Lock()
	return l
}

func (m *Middlewares) releaseLock(userID int64, l *userLock) {
	l.mu.Unlock()

	m.mu.Lock()
	l.refs--
	if l.refs == 0 {
		delete(m.locks, userID)
	}
	m.mu.Unlock()
}

// SessionMiddleware identifies the applicant, serializes their events,
// loads or creates the session and passes it down in context. Panics in
// downstream handlers are recovered here so one broken update cannot take
// the bot down; the applicant gets the bilingual apology and the session is
// left untouched.
func (m *Middlewares) SessionMiddleware(next bot.HandlerFunc) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		var (
			userID int64
			chatID int64
		)

		switch {
		case update.Message != nil && update.Message.From != nil:
			userID = update.Message.From.ID
			chatID = update.Message.Chat.ID
		case update.CallbackQuery != nil:
			userID = update.CallbackQuery.From.ID
			chatID = getChatIDFromMaybeInaccessibleMessage(update.CallbackQuery.Message)
		}
		if userID == 0 || chatID == 0 {
			return
		}

		lock := m.acquireLock(userID)
		defer m.releaseLock(userID, lock)

		defer func() {
			if r := recover(); r != nil {
				log.Printf("panic while handling update from %d: %v\n%s", userID, r, debug.Stack())
				_, _ = b.SendMessage(ctx, &bot.SendMessageParams{
					ChatID: chatID,
					Text:   messages.GenericError(),
				})
			}
		}()

		session, err := m.store.GetOrCreate(userID, chatID)
		if err != nil {
			log.Printf("Error loading session for %d: %v", userID, err)
			_, _ = b.SendMessage(ctx, &bot.SendMessageParams{
				ChatID: chatID,
				Text:   messages.GenericError(),
			})
			return
		}

		next(contextkeys.WithSession(ctx, session), b, update)
	}
}

func getChatIDFromMaybeInaccessibleMessage(m models.MaybeInaccessibleMessage) int64 {
	if m.Message != nil {
		return m.Message.Chat.ID
	}
	if m.InaccessibleMessage != nil {
		return m.InaccessibleMessage.Chat.ID
	}
	return 0
}

// AnalyzeMessageMiddleware classifies the update into a message type before
// the dispatcher sees it.
func (m *Middlewares) AnalyzeMessageMiddleware(next bot.HandlerFunc) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		next(m.analyze(ctx, update), b, update)
	}
}

func (m *Middlewares) analyze(ctx context.Context, update *models.Update) context.Context {
	if update.CallbackQuery != nil && update.CallbackQuery.Data != "" {
		ctx = contextkeys.WithMessageType(ctx, contextkeys.MessageTypeClickButton)
		return contextkeys.WithCallbackData(ctx, update.CallbackQuery.Data)
	}

	msg := update.Message
	if msg == nil {
		return contextkeys.WithMessageType(ctx, contextkeys.MessageTypeUnknown)
	}

	switch {
	case msg.Text != "" && strings.HasPrefix(msg.Text, "/"):
		return contextkeys.WithMessageType(ctx, contextkeys.MessageTypeCommand)
	case msg.Contact != nil:
		return contextkeys.WithMessageType(ctx, contextkeys.MessageTypeContact)
	case msg.Video != nil, msg.VideoNote != nil, msg.Document != nil, len(msg.Photo) > 0:
		return contextkeys.WithMessageType(ctx, contextkeys.MessageTypeMedia)
	case msg.Text != "":
		return contextkeys.WithMessageType(ctx, contextkeys.MessageTypeText)
	default:
		return contextkeys.WithMessageType(ctx, contextkeys.MessageTypeUnknown)
	}
}
