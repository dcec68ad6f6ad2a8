package ai

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"
)

type Service struct {
	client   completer
	provider Provider
}

func NewService(client completer, p Provider) *Service {
	return &Service{
		client:   client,
		provider: p,
	}
}

// диагностика ошибок провайдера
func analyzeProviderError(err error) string {
	msg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(msg, "status code: 401"):
		return "Неверный API-ключ провайдера."
	case strings.Contains(msg, "status code: 404"):
		return "Модель не найдена."
	case strings.Contains(msg, "status code: 429"):
		return "Превышен лимит провайдера."
	case strings.Contains(msg, "status code: 400") && strings.Contains(msg, "model"):
		return "Неверно указана модель."
	case strings.Contains(msg, "status code: 400"):
		return "Некорректный запрос к провайдеру."
	case strings.Contains(msg, "status code: 500"):
		return "Внутренняя ошибка провайдера."
	}
	return "Неизвестная ошибка провайдера: " + err.Error()
}

// Complete отправляет текст активному провайдеру. Ошибка не
// возвращается: она сворачивается в строку вида
// "<Provider>: Error - <err>", и ровно эта строка уходит
// пользователю и в журнал.
func (s *Service) Complete(ctx context.Context, userText string) string {
	start := time.Now()

	reply, err := s.client.GetCompletion(ctx, userText)
	log.Printf("[ai][%.1fs] %s done err=%v", time.Since(start).Seconds(), s.provider.Name, err)

	if err != nil {
		log.Printf("[ai] %s fail: %s", s.provider.Name, analyzeProviderError(err))
		return fmt.Sprintf("%s: Error - %v", s.provider.Name, err)
	}

	return reply
}
