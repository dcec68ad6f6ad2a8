package telegram

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

// BuildAuthKeyboard — клавиатура из одной кнопки, которая шлёт
// контакт пользователя (request_contact).
func (app *BotApp) BuildAuthKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButtonContact(BtnAuthorize),
		),
	)
	kb.OneTimeKeyboard = true
	kb.ResizeKeyboard = true
	return kb
}
