package flow

import (
	"strings"

	"github.com/abdukarimov0990/Yangi-bot/internal/catalog"
	"github.com/abdukarimov0990/Yangi-bot/internal/i18n"
	"github.com/abdukarimov0990/Yangi-bot/types"
)

// Apply runs one inbound event against the session, mutating it in place.
// Callers must serialize events per user; Apply itself is not reentrant for
// the same session.
func Apply(s *types.Session, ev Event) Outcome {
	switch s.Step {
	case types.StepAskLang:
		return applyAskLang(s, ev)
	case types.StepAskFullName:
		return applyAskFullName(s, ev)
	case types.StepAskPhone:
		return applyAskPhone(s, ev)
	case types.StepChooseCategory:
		return applyChooseCategory(s, ev)
	case types.StepAskQuestions:
		return applyAskQuestions(s, ev)
	case types.StepCollectMedia:
		return applyCollectMedia(s, ev)
	default:
		// Unknown step only happens on corrupted stored state; start over.
		s.Step = types.StepAskLang
		return prompts(PromptAskLanguage)
	}
}

func applyAskLang(s *types.Session, ev Event) Outcome {
	switch ev.Kind {
	case EventLanguage:
		s.Lang = i18n.Parse(ev.LangID)
	case EventText:
		s.Lang = i18n.Infer(ev.Text)
	default:
		return prompts(PromptAskLanguage)
	}
	s.Step = types.StepAskFullName
	return prompts(PromptAskFullName)
}

func applyAskFullName(s *types.Session, ev Event) Outcome {
	if ev.Kind != EventText || strings.TrimSpace(ev.Text) == "" {
		return prompts(PromptAskFullName)
	}
	s.FullName = strings.TrimSpace(ev.Text)
	s.Step = types.StepAskPhone
	return prompts(PromptAskPhone)
}

func applyAskPhone(s *types.Session, ev Event) Outcome {
	switch ev.Kind {
	case EventContact:
		// A platform-shared contact is trusted; keep the raw number when
		// normalization cannot improve it.
		phone, ok := NormalizePhone(ev.Phone)
		if !ok {
			phone = ev.Phone
		}
		s.Phone = phone
	case EventText:
		phone, ok := NormalizePhone(ev.Text)
		if !ok {
			return prompts(PromptInvalidPhone)
		}
		s.Phone = phone
	default:
		return prompts(PromptAskPhone)
	}
	s.Step = types.StepChooseCategory
	return prompts(PromptChooseCategory)
}

func applyChooseCategory(s *types.Session, ev Event) Outcome {
	if ev.Kind != EventCategory {
		// Typed text instead of tapping a button: re-show the keyboard.
		return prompts(PromptCategoryKeyboard)
	}
	if _, ok := catalog.CategoryByID(ev.CategoryID); !ok {
		return prompts(PromptInvalidCategory)
	}
	s.CategoryID = ev.CategoryID
	s.QuestionIndex = 0
	s.Step = types.StepAskQuestions

	qs := catalog.Questions(s.Lang, s.CategoryID)
	if len(qs) == 0 {
		// A category without questions goes straight to media collection.
		s.Step = types.StepCollectMedia
		return prompts(PromptThanks, PromptMediaRequirements)
	}
	out := prompts(PromptThanks)
	out.Prompts = append(out.Prompts, Prompt{Kind: PromptQuestion, Text: qs[0]})
	return out
}

func applyAskQuestions(s *types.Session, ev Event) Outcome {
	qs := catalog.Questions(s.Lang, s.CategoryID)
	if s.QuestionIndex >= len(qs) {
		s.Step = types.StepCollectMedia
		return prompts(PromptMediaRequirements)
	}
	if ev.Kind != EventText || strings.TrimSpace(ev.Text) == "" {
		return Outcome{Prompts: []Prompt{{Kind: PromptQuestion, Text: qs[s.QuestionIndex]}}}
	}

	s.Answer(qs[s.QuestionIndex], strings.TrimSpace(ev.Text))
	s.QuestionIndex++
	if s.QuestionIndex < len(qs) {
		return Outcome{Prompts: []Prompt{{Kind: PromptQuestion, Text: qs[s.QuestionIndex]}}}
	}
	s.Step = types.StepCollectMedia
	return prompts(PromptMediaRequirements)
}

func applyCollectMedia(s *types.Session, ev Event) Outcome {
	switch ev.Kind {
	case EventMedia:
		s.MediaMessageIDs = append(s.MediaMessageIDs, ev.MessageID)
		return prompts(PromptMediaAck)
	case EventText:
		if i18n.IsDone(s.Lang, ev.Text) {
			return Outcome{Finalize: true}
		}
		return prompts(PromptReady)
	default:
		return prompts(PromptReady)
	}
}
