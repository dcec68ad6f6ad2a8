package messages

import "context"

// Repo — работа с БД
type Repo interface {
	EnsureSchema(ctx context.Context) error
	Insert(ctx context.Context, userID int64, request, response string) error
	ListByUser(ctx context.Context, userID int64) ([]*Entry, error)
}

// Service — журнал переписки. Log — fire-and-forget:
// ошибка записи логируется и не влияет на ответ пользователю.
type Service interface {
	EnsureSchema(ctx context.Context)
	Log(ctx context.Context, userID int64, request, response string)
	ListByUser(ctx context.Context, userID int64) ([]*Entry, error)
}
