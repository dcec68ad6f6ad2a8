package telegram

const (
	MsgAlreadyAuthorized = "Вы уже авторизованы. Чем могу помочь?"
	MsgPleaseAuthorize   = "Пожалуйста, авторизуйтесь!"
	MsgThanks            = "Спасибо! Чем я сегодня могу Вам помочь?"

	BtnAuthorize = "🕵️ Авторизация"
)
