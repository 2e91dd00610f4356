package i18n

import "strings"

type Lang string

const (
	UZ Lang = "uz"
	RU Lang = "ru"
)

// Default is used whenever the applicant has not chosen a language yet.
const Default = UZ

func Parse(s string) Lang {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "uz":
		return UZ
	case "ru":
		return RU
	default:
		return Default
	}
}

// langPrefixes is the bounded fallback for applicants who type a language
// name instead of tapping a button. Deliberately a fixed table, not
// anything smarter.
var langPrefixes = map[Lang][]string{
	RU: {"ru", "rus", "рус"},
	UZ: {"uz", "o'z", "ozb", "uzb", "узб"},
}

// Infer matches free text against the known language prefixes,
// case-insensitively. Falls back to the default language.
func Infer(text string) Lang {
	t := strings.ToLower(strings.TrimSpace(text))
	for lang, prefixes := range langPrefixes {
		for _, p := range prefixes {
			if strings.HasPrefix(t, p) {
				return lang
			}
		}
	}
	return Default
}

// doneTokens enumerates, per language, the words that end the media
// collection step. A token of one language never completes a session held
// in the other.
var doneTokens = map[Lang][]string{
	UZ: {"tayyor"},
	RU: {"готово", "готов", "готова"},
}

func IsDone(lang Lang, text string) bool {
	t := strings.ToLower(strings.TrimSpace(text))
	for _, tok := range doneTokens[lang] {
		if t == tok {
			return true
		}
	}
	return false
}
