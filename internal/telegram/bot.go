package telegram

import (
	"context"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Run — главный цикл получения апдейтов
func (app *BotApp) Run() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30

	updates := app.bot.GetUpdatesChan(u)
	log.Printf("[bot_loop] started username=@%s", app.bot.Self.UserName)

	for update := range updates {
		go app.routeUpdate(context.Background(), update)
	}
}

func (app *BotApp) routeUpdate(ctx context.Context, update tgbotapi.Update) {
	msg := update.Message
	if msg == nil || msg.From == nil {
		return
	}

	log.Printf("[bot_touch] fromTG=%d updateID=%d", msg.From.ID, update.UpdateID)

	switch {
	case msg.IsCommand() && msg.Command() == "start":
		app.handleStart(ctx, app.bot, msg)
	case msg.Contact != nil:
		app.handleContact(ctx, app.bot, msg)
	case msg.Text != "" && !msg.IsCommand():
		app.handleText(ctx, app.bot, msg)
	}
}
