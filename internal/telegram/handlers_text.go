package telegram

import (
	"context"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (app *BotApp) handleText(
	ctx context.Context,
	bot sender,
	msg *tgbotapi.Message,
) {
	chatID := msg.Chat.ID
	tgID := msg.From.ID
	userText := msg.Text

	log.Printf("[text] start tgID=%d", tgID)

	// === 1. провайдер ===
	// Complete не падает: сбой приходит строкой-ошибкой
	reply := app.Relay.Complete(ctx, userText)

	// === 2. отправляем ответ ===
	bot.Send(tgbotapi.NewMessage(chatID, reply))

	// === 3. пишем журнал ===
	// авторизация здесь не проверяется; у незарегистрированного
	// вставка упадёт на FK и будет погашена сервисом журнала
	app.MessageService.Log(ctx, tgID, userText, reply)

	log.Printf("[text] done tgID=%d", tgID)
}
