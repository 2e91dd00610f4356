package handlers

import (
	"github.com/go-telegram/bot/models"

	"github.com/abdukarimov0990/Yangi-bot/internal/catalog"
	"github.com/abdukarimov0990/Yangi-bot/internal/i18n"
	"github.com/abdukarimov0990/Yangi-bot/internal/messages"
)

const (
	callbackLangPrefix     = "lang_"
	callbackCategoryPrefix = "cat_"
)

func languageKeyboard() *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{{
			{Text: messages.LangName(i18n.UZ), CallbackData: callbackLangPrefix + string(i18n.UZ)},
			{Text: messages.LangName(i18n.RU), CallbackData: callbackLangPrefix + string(i18n.RU)},
		}},
	}
}

// categoryKeyboard shows one localized label per row. callback_data carries
// only the short category id, never the label.
func categoryKeyboard(lang i18n.Lang) *models.InlineKeyboardMarkup {
	cats := catalog.Categories()
	rows := make([][]models.InlineKeyboardButton, 0, len(cats))
	for _, c := range cats {
		rows = append(rows, []models.InlineKeyboardButton{
			{Text: c.Labels[lang], CallbackData: callbackCategoryPrefix + c.ID},
		})
	}
	return &models.InlineKeyboardMarkup{InlineKeyboard: rows}
}

func contactKeyboard(lang i18n.Lang) *models.ReplyKeyboardMarkup {
	return &models.ReplyKeyboardMarkup{
		Keyboard: [][]models.KeyboardButton{{
			{Text: messages.AskPhoneButton(lang), RequestContact: true},
		}},
		ResizeKeyboard: true,
	}
}

func removeKeyboard() *models.ReplyKeyboardRemove {
	return &models.ReplyKeyboardRemove{RemoveKeyboard: true}
}
