// Package flow implements the intake conversation state machine. It is
// transport-free: it consumes one normalized inbound event, mutates the
// session, and returns the prompts to send. Rendering (keyboards, callback
// acks, channel relay) belongs to the handlers.
package flow

type EventKind string

const (
	EventText     EventKind = "text"
	EventLanguage EventKind = "language"
	EventCategory EventKind = "category"
	EventContact  EventKind = "contact"
	EventMedia    EventKind = "media"
)

type Event struct {
	Kind EventKind

	// Text carries the trimmed message text for EventText.
	Text string
	// LangID is the short selection token from a language button.
	LangID string
	// CategoryID is the short selection token from a category button.
	CategoryID string
	// Phone is the number from a shared contact.
	Phone string
	// MessageID identifies a submitted media message for later relay.
	MessageID int
}

type PromptKind string

const (
	PromptAskLanguage       PromptKind = "ask_language"
	PromptAskFullName       PromptKind = "ask_full_name"
	PromptAskPhone          PromptKind = "ask_phone"
	PromptChooseCategory    PromptKind = "choose_category"
	PromptCategoryKeyboard  PromptKind = "category_keyboard"
	PromptInvalidCategory   PromptKind = "invalid_category"
	PromptThanks            PromptKind = "thanks"
	PromptQuestion          PromptKind = "question"
	PromptMediaRequirements PromptKind = "media_requirements"
	PromptMediaAck          PromptKind = "media_ack"
	PromptReady             PromptKind = "prompt_ready"
	PromptInvalidPhone      PromptKind = "invalid_phone"
)

type Prompt struct {
	Kind PromptKind
	// Text is set only for PromptQuestion.
	Text string
}

// Outcome is what one event produced: the ordered prompts to deliver and,
// on the terminal transition, the Finalize flag. When Finalize is set the
// caller runs the relay sequence and deletes the session.
type Outcome struct {
	Prompts  []Prompt
	Finalize bool
}

func prompts(kinds ...PromptKind) Outcome {
	out := Outcome{Prompts: make([]Prompt, 0, len(kinds))}
	for _, k := range kinds {
		out.Prompts = append(out.Prompts, Prompt{Kind: k})
	}
	return out
}
