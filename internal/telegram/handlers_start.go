package telegram

import (
	"context"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (app *BotApp) handleStart(
	ctx context.Context,
	bot sender,
	msg *tgbotapi.Message,
) {
	chatID := msg.Chat.ID
	tgID := msg.From.ID

	log.Printf("[start] tgID=%d", tgID)

	// схема создаётся на каждом /start, DDL идемпотентный
	app.UserService.EnsureSchema(ctx)
	app.MessageService.EnsureSchema(ctx)

	found, _ := app.UserService.Exists(ctx, tgID)

	if found {
		m := tgbotapi.NewMessage(chatID, MsgAlreadyAuthorized)
		m.ReplyMarkup = tgbotapi.NewRemoveKeyboard(false)
		bot.Send(m)
		return
	}

	m := tgbotapi.NewMessage(chatID, MsgPleaseAuthorize)
	m.ReplyMarkup = app.BuildAuthKeyboard()
	bot.Send(m)
}
