package ai

import "fmt"

// Provider — внешний completion-сервис с OpenAI-совместимым API.
type Provider struct {
	Name    string
	BaseURL string
	Model   string
}

// Providers — таблица известных провайдеров. Активный выбирается
// переменной окружения ACTIVE_PROVIDER; запрос всегда уходит ровно
// одному провайдеру, фолбэка по списку нет.
var Providers = map[string]Provider{
	"bing": {
		Name:    "Bing",
		BaseURL: "https://bing-proxy.gpt4free.io/v1",
		Model:   "gpt-4",
	},
	"geekgpt": {
		Name:    "GeekGpt",
		BaseURL: "https://ai.fakeopen.com/v1",
		Model:   "gpt-3.5-turbo",
	},
	"gptchatly": {
		Name:    "GptChatly",
		BaseURL: "https://gptchatly.com/v1",
		Model:   "gpt-3.5-turbo",
	},
	"liaobots": {
		Name:    "Liaobots",
		BaseURL: "https://liaobots.site/v1",
		Model:   "gpt-3.5-turbo",
	},
	"phind": {
		Name:    "Phind",
		BaseURL: "https://www.phind.com/v1",
		Model:   "phind-model",
	},
	"raycast": {
		Name:    "Raycast",
		BaseURL: "https://backend.raycast.com/v1",
		Model:   "gpt-3.5-turbo",
	},
}

const DefaultProvider = "geekgpt"

func GetProvider(key string) (Provider, error) {
	if key == "" {
		key = DefaultProvider
	}
	p, ok := Providers[key]
	if !ok {
		return Provider{}, fmt.Errorf("unknown provider %q", key)
	}
	return p, nil
}
