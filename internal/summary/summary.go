// Package summary renders a completed session into the report text posted
// to the review channel.
package summary

import (
	"fmt"
	"strings"

	"github.com/abdukarimov0990/Yangi-bot/internal/catalog"
	"github.com/abdukarimov0990/Yangi-bot/internal/i18n"
	"github.com/abdukarimov0990/Yangi-bot/internal/messages"
	"github.com/abdukarimov0990/Yangi-bot/types"
)

type labels struct {
	title, name, phone, lang, cat, q, from string
}

var labelsByLang = map[i18n.Lang]labels{
	i18n.UZ: {title: "Yangi anketa", name: "Ism", phone: "Telefon", lang: "Til", cat: "Kategoriya", q: "Savollarga javoblar", from: "Yuboruvchi"},
	i18n.RU: {title: "Новая анкета", name: "Имя", phone: "Телефон", lang: "Язык", cat: "Категория", q: "Ответы на вопросы", from: "Отправитель"},
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

// Format builds the review report. Unset scalar fields render as "-" so the
// channel always receives the same layout. Pure; never touches the
// transport.
func Format(s *types.Session, sender string) string {
	l, ok := labelsByLang[s.Lang]
	if !ok {
		l = labelsByLang[i18n.Default]
	}

	var lines []string
	lines = append(lines, fmt.Sprintf("📝 %s", l.title))
	lines = append(lines, fmt.Sprintf("• %s: %s", l.name, orDash(s.FullName)))
	lines = append(lines, fmt.Sprintf("• %s: %s", l.phone, orDash(s.Phone)))
	langName := "-"
	if strings.TrimSpace(string(s.Lang)) != "" {
		langName = messages.LangName(s.Lang)
	}
	lines = append(lines, fmt.Sprintf("• %s: %s", l.lang, langName))
	lines = append(lines, fmt.Sprintf("• %s: %s", l.cat, orDash(catalog.CategoryLabel(s.Lang, s.CategoryID))))
	lines = append(lines, fmt.Sprintf("\n%s:", l.q))
	for _, qa := range s.Answers {
		lines = append(lines, fmt.Sprintf("- %s\n  → %s", qa.Question, qa.Answer))
	}
	lines = append(lines, fmt.Sprintf("\n%s: %s", l.from, orDash(sender)))
	return strings.Join(lines, "\n")
}
