package ai

import (
	"context"

	openai "github.com/sashabaranov/go-openai"
)

type Client struct {
	client   *openai.Client
	provider Provider
}

// NewClient собирает клиента под конкретного провайдера.
// Пустой apiKey допустим: часть провайдеров из таблицы ключа не требует.
func NewClient(apiKey string, p Provider) *Client {
	cfg := openai.DefaultConfig(apiKey)
	if p.BaseURL != "" {
		cfg.BaseURL = p.BaseURL
	}
	return &Client{
		client:   openai.NewClientWithConfig(cfg),
		provider: p,
	}
}

func (c *Client) GetCompletion(ctx context.Context, userText string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.provider.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: userText},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
