package ai

import "context"

// Relay прокидывает текст пользователя внешнему провайдеру.
// Complete всегда возвращает строку: при сбое — форматированную
// строку с именем провайдера и описанием ошибки, она же уходит
// пользователю и в журнал как обычный ответ.
type Relay interface {
	Complete(ctx context.Context, userText string) string
}

type completer interface {
	GetCompletion(ctx context.Context, userText string) (string, error)
}
