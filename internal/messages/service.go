package messages

import (
	"context"
	"log"
)

type service struct {
	repo Repo
}

func NewService(repo Repo) Service {
	return &service{repo: repo}
}

func (s *service) EnsureSchema(ctx context.Context) {
	if err := s.repo.EnsureSchema(ctx); err != nil {
		log.Printf("[messages] ensure schema fail: %v", err)
	}
}

// Log никогда не возвращает ошибку наружу: запись в журнал
// не должна ломать чат-флоу, максимум — сообщение не залогируется.
func (s *service) Log(ctx context.Context, userID int64, request, response string) {
	if err := s.repo.Insert(ctx, userID, request, response); err != nil {
		log.Printf("[messages] insert fail userID=%d: %v", userID, err)
	}
}

func (s *service) ListByUser(ctx context.Context, userID int64) ([]*Entry, error) {
	return s.repo.ListByUser(ctx, userID)
}
