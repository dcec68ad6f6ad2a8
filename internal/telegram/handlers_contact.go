package telegram

import (
	"context"
	"log"

	"github.com/dkoroteev/telegpt/internal/user"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// handleContact принимает контакт как есть: принадлежность карточки
// отправителю не проверяется, user_id берётся у отправителя.
func (app *BotApp) handleContact(
	ctx context.Context,
	bot sender,
	msg *tgbotapi.Message,
) {
	contact := msg.Contact
	if contact == nil {
		return
	}

	tgID := msg.From.ID
	log.Printf("[contact] tgID=%d", tgID)

	phone := contact.PhoneNumber

	app.UserService.Register(ctx, &user.AuthorizedUser{
		UserID:      tgID,
		Username:    msg.From.UserName,
		FirstName:   contact.FirstName,
		LastName:    contact.LastName,
		PhoneNumber: &phone,
	})

	bot.Send(tgbotapi.NewMessage(msg.Chat.ID, MsgThanks))
}
