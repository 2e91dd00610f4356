package types

import (
	"context"
	"time"

	"github.com/abdukarimov0990/Yangi-bot/internal/i18n"
)

// QA is one answered questionnaire entry. Answers are kept as an ordered
// slice, not a map: the review summary must list them in the order asked.
type QA struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type Session struct {
	UserID          int64     `json:"user_id"`
	ChatID          int64     `json:"chat_id"`
	Lang            i18n.Lang `json:"lang,omitempty"`
	Step            Step      `json:"step"`
	FullName        string    `json:"full_name,omitempty"`
	Phone           string    `json:"phone,omitempty"`
	CategoryID      string    `json:"category_id,omitempty"`
	QuestionIndex   int       `json:"question_index"`
	Answers         []QA      `json:"answers,omitempty"`
	MediaMessageIDs []int     `json:"media_message_ids,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Answer records the reply to question q. Repeating a question overwrites
// the earlier answer instead of appending a duplicate entry.
func (s *Session) Answer(q, a string) {
	for i := range s.Answers {
		if s.Answers[i].Question == q {
			s.Answers[i].Answer = a
			return
		}
	}
	s.Answers = append(s.Answers, QA{Question: q, Answer: a})
}

type SessionStore interface {
	GetOrCreate(userID, chatID int64) (*Session, error)
	Update(session *Session) error
	Delete(userID int64) error
}

// Application is the durable record of a completed questionnaire, written
// to the archive after the summary has been relayed to the review channel.
type Application struct {
	ID         string    `json:"id"`
	UserID     int64     `json:"user_id"`
	Username   string    `json:"username,omitempty"`
	Lang       i18n.Lang `json:"lang"`
	FullName   string    `json:"full_name"`
	Phone      string    `json:"phone"`
	CategoryID string    `json:"category_id"`
	Answers    []QA      `json:"answers"`
	MediaCount int       `json:"media_count"`
	CreatedAt  time.Time `json:"created_at"`
}

type ApplicationStore interface {
	SaveApplication(ctx context.Context, app Application) error
}
