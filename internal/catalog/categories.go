// Package catalog holds the static hiring data: job categories and their
// per-language question sets.
package catalog

import "github.com/abdukarimov0990/Yangi-bot/internal/i18n"

// Category ids are short and stable because they travel inside Telegram
// callback_data, which is limited to 64 bytes. Localized labels are for
// display only and must never be used as selection tokens.
type Category struct {
	ID     string
	Labels map[i18n.Lang]string
}

var categories = []Category{
	{ID: "stylist", Labels: map[i18n.Lang]string{i18n.UZ: "Stilist", i18n.RU: "Стилист"}},
	{ID: "colorist", Labels: map[i18n.Lang]string{i18n.UZ: "Kolorit (soch bo'yash bo'yicha mutaxassis)", i18n.RU: "Колорист (специалист по окрашиванию волос)"}},
	{ID: "mua", Labels: map[i18n.Lang]string{i18n.UZ: "Vizajist (make-up artist)", i18n.RU: "Визажист (make-up artist)"}},
	{ID: "nails", Labels: map[i18n.Lang]string{i18n.UZ: "Manikyur/pedikyur ustasi", i18n.RU: "Мастер маникюра/педикюра"}},
	{ID: "lash", Labels: map[i18n.Lang]string{i18n.UZ: "Kiprikchi (lashmaker)", i18n.RU: "Лэшмейкер (наращивание ресниц)"}},
	{ID: "depil", Labels: map[i18n.Lang]string{i18n.UZ: "Depilatsiya mutaxassisi", i18n.RU: "Специалист по депиляции"}},
	{ID: "admin", Labels: map[i18n.Lang]string{i18n.UZ: "Administrator", i18n.RU: "Администратор"}},
}

var categoryByID = func() map[string]Category {
	m := make(map[string]Category, len(categories))
	for _, c := range categories {
		m[c.ID] = c
	}
	return m
}()

// Categories returns all job categories in fixed display order.
func Categories() []Category {
	return categories
}

func CategoryByID(id string) (Category, bool) {
	c, ok := categoryByID[id]
	return c, ok
}

// CategoryLabel returns the localized label, or the raw id when the id is
// unknown so the summary never renders empty.
func CategoryLabel(lang i18n.Lang, id string) string {
	c, ok := categoryByID[id]
	if !ok {
		return id
	}
	return c.Labels[lang]
}

// Questions returns the ordered question list for a language and category.
// Unknown combinations return nil.
func Questions(lang i18n.Lang, categoryID string) []string {
	byCat, ok := questions[lang]
	if !ok {
		return nil
	}
	return byCat[categoryID]
}
