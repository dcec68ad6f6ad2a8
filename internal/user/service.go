package user

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
		log.Printf("[user] ensure schema fail: %v", err)
	}
}

// Register гасит ошибку вставки (дубль user_id/username, обрыв соединения):
// пользователю в таком случае просто предложат авторизоваться ещё раз.
func (s *service) Register(ctx context.Context, u *AuthorizedUser) (int64, bool) {
	id, err := s.repo.Add(ctx, u)
	if err != nil {
		log.Printf("[user] add fail userID=%d: %v", u.UserID, err)
		return 0, false
	}
	return id, true
}

// Exists деградирует до «не найден» при любой ошибке хранилища:
// лучше лишний раз попросить авторизацию, чем поверить непроверенному.
func (s *service) Exists(ctx context.Context, userID int64) (bool, int64) {
	found, id, err := s.repo.Exists(ctx, userID)
	if err != nil {
		log.Printf("[user] exists fail userID=%d: %v", userID, err)
		return false, 0
	}
	return found, id
}

func (s *service) FindByPhone(ctx context.Context, phone string) (bool, int64, string) {
	found, id, stored, err := s.repo.FindByPhone(ctx, phone)
	if err != nil {
		log.Printf("[user] find by phone fail: %v", err)
		return false, 0, ""
	}
	return found, id, stored
}

func (s *service) ListAll(ctx context.Context) ([]ListItem, error) {
	users, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]ListItem, 0, len(users))
	for _, u := range users {
		phone := "None"
		if u.PhoneNumber != nil {
			phone = *u.PhoneNumber
		}
		out = append(out, ListItem{
			Username:    u.Username,
			PhoneNumber: phone,
		})
	}

	return out, nil
}

func (s *service) UpdatePhone(ctx context.Context, userID int64, phone string) {
	if err := s.repo.UpdatePhone(ctx, userID, phone); err != nil {
		log.Printf("[user] update phone fail userID=%d: %v", userID, err)
	}
}
