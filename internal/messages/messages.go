// Package messages holds every applicant-facing string, one function per
// prompt, localized by i18n.Lang.
package messages

import "github.com/abdukarimov0990/Yangi-bot/internal/i18n"

func pick(lang i18n.Lang, uz, ru string) string {
	if lang == i18n.RU {
		return ru
	}
	return uz
}

func Start(lang i18n.Lang) string {
	return pick(lang,
		"Assalomu alaykum! Men salon uchun ishga qabul botiman. Keling, arizani boshlaymiz.",
		"Здравствуйте! Я бот для набора персонала салона. Давайте начнём вашу заявку.")
}

func AskLang(lang i18n.Lang) string {
	return pick(lang,
		"Qaysi tilda davom etamiz?",
		"На каком языке продолжим?")
}

func AskFullName(lang i18n.Lang) string {
	return pick(lang,
		"Iltimos, to'liq ismingizni kiriting (Ism Familiya).",
		"Пожалуйста, введите ваше полное имя (Имя Фамилия).")
}

func AskPhone(lang i18n.Lang) string {
	return pick(lang,
		"Telefon raqamingizni yuboring yoki tugmadan foydalaning.",
		"Отправьте номер телефона или используйте кнопку ниже.")
}

func AskPhoneButton(lang i18n.Lang) string {
	return pick(lang,
		"📱 Telefon raqamni ulashish",
		"📱 Поделиться телефоном")
}

func ChooseCategory(lang i18n.Lang) string {
	return pick(lang,
		"Iltimos, yo'nalishni tanlang:",
		"Пожалуйста, выберите направление:")
}

func Thanks(lang i18n.Lang) string {
	return pick(lang,
		"Rahmat! Endi savollarga javob bering.",
		"Спасибо! Теперь ответьте на вопросы.")
}

func MediaRequirements(lang i18n.Lang) string {
	return pick(lang,
		"Endi umumiy video talablar: 1) O'zingiz haqingizda qisqa video; 2) Uydagilaringiz haqida video; 3) Qilgan ishlaringiz video (manikyur/pedikyur/qosh/kiprik va h.k.). Videoni shu yerga yuboring — bir nechta bo'lsa ketma-ket yuboring. Tugallagach, 'Tayyor' deb yozing.",
		"Теперь общие видео-требования: 1) Короткое видео о себе; 2) Видео о вашей семье/домашних; 3) Видео ваших работ (маникюр/педикюр/брови/ресницы и т.д.). Пришлите видео сюда — если несколько, отправляйте по очереди. Когда закончите, напишите 'Готово'.")
}

func PromptReady(lang i18n.Lang) string {
	return pick(lang,
		"Agar hammasini yuborgan bo'lsangiz, 'Tayyor' deb yozing.",
		"Если всё отправили, напишите 'Готово'.")
}

func Done(lang i18n.Lang) string {
	return pick(lang,
		"Tugadi! Arizangiz kanalga yuborildi. Javobni kuting. Rahmat! ✅",
		"Готово! Ваша анкета отправлена в канал. Ожидайте ответ. Спасибо! ✅")
}

func Reset(lang i18n.Lang) string {
	return pick(lang,
		"Sessiya yangilandi. /start buyrug'ini bosing.",
		"Сессия сброшена. Нажмите /start.")
}

func InvalidPhone(lang i18n.Lang) string {
	return pick(lang,
		"Telefon raqam formati noto'g'ri. Masalan: +998901234567 yoki 90 123 45 67.",
		"Неверный формат номера. Например: +998901234567 или 90 123 45 67.")
}

func MediaAck() string { return "✅" }

// UseButtonsHint is sent when the applicant types text while the category
// keyboard is waiting.
func UseButtonsHint() string { return "👇" }

func LangChosen(lang i18n.Lang) string {
	return pick(lang, "Til: O'zbekcha", "Язык: Русский")
}

func InvalidCategory() string { return "Invalid category" }

func RestartHint() string { return "/start" }

// GenericError is intentionally bilingual: when event processing blows up
// the chosen language may be the thing that is broken.
func GenericError() string {
	return "⚠️ Botda xatolik yuz berdi / Произошла ошибка. Попробуйте /start"
}

// LangName returns the display name used on the language keyboard and in
// the summary.
func LangName(lang i18n.Lang) string {
	return pick(lang, "O'zbekcha 🇺🇿", "Русский 🇷🇺")
}
