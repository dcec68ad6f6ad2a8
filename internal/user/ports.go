package user

import "context"

// Repo — работа с БД. Возвращает реальные ошибки,
// политику «гасить и логировать» применяет сервис.
type Repo interface {
	EnsureSchema(ctx context.Context) error
	Add(ctx context.Context, u *AuthorizedUser) (int64, error)
	Exists(ctx context.Context, userID int64) (bool, int64, error)
	FindByPhone(ctx context.Context, phone string) (bool, int64, string, error)
	ListAll(ctx context.Context) ([]*AuthorizedUser, error)
	UpdatePhone(ctx context.Context, userID int64, phone string) error
}

// Service — операции, которые зовут хендлеры бота и HTTP.
// Ошибки хранилища не доходят до чат-границы: методы чат-флоу
// деградируют до безопасного дефолта (false/0/пусто).
type Service interface {
	EnsureSchema(ctx context.Context)
	Register(ctx context.Context, u *AuthorizedUser) (int64, bool)
	Exists(ctx context.Context, userID int64) (bool, int64)
	FindByPhone(ctx context.Context, phone string) (bool, int64, string)
	ListAll(ctx context.Context) ([]ListItem, error)
	UpdatePhone(ctx context.Context, userID int64, phone string)
}
