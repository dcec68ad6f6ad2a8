package telegram

import (
	"github.com/dkoroteev/telegpt/internal/ai"
	"github.com/dkoroteev/telegpt/internal/messages"
	"github.com/dkoroteev/telegpt/internal/user"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type BotApp struct {
	UserService    user.Service
	MessageService messages.Service
	Relay          ai.Relay

	bot *tgbotapi.BotAPI
}

// sender — то, что умеет *tgbotapi.BotAPI; в тестах подменяется фейком.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

func NewBotApp(
	bot *tgbotapi.BotAPI,
	userSvc user.Service,
	messageSvc messages.Service,
	relay ai.Relay,
) *BotApp {
	return &BotApp{
		UserService:    userSvc,
		MessageService: messageSvc,
		Relay:          relay,
		bot:            bot,
	}
}
