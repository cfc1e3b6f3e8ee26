package gemini

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sashabaranov/go-openai"

	"storysketch-server/internal/model"
)

// OpenAI-совместимый endpoint Gemini API
const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"

// Config содержит конфигурацию для клиента Gemini
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout int // Таймаут одного запроса в секундах
}

// Client представляет клиент для взаимодействия с Gemini API
// через его OpenAI-совместимый интерфейс.
type Client struct {
	openaiClient *openai.Client
	modelName    string
	timeout      time.Duration
}

// New создает новый экземпляр клиента
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("не указан API ключ для Gemini")
	}

	if cfg.Model == "" {
		cfg.Model = "gemini-2.0-flash"
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = 120
	}

	config := openai.DefaultConfig(cfg.APIKey)
	config.BaseURL = cfg.BaseURL

	return &Client{
		openaiClient: openai.NewClientWithConfig(config),
		modelName:    cfg.Model,
		timeout:      time.Duration(cfg.Timeout) * time.Second,
	}, nil
}

// ChatCompletion отправляет всю историю диалога вместе с новым сообщением
// и возвращает ответ модели.
func (c *Client) ChatCompletion(ctx context.Context, messages []model.ChatMessage) (string, error) {
	if len(messages) == 0 {
		return "", fmt.Errorf("messages cannot be empty")
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	chatMessages := make([]openai.ChatCompletionMessage, len(messages))
	for i, m := range messages {
		chatMessages[i] = openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		}
	}

	resp, err := c.openaiClient.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model:    c.modelName,
			Messages: chatMessages,
		},
	)
	if err != nil {
		return "", fmt.Errorf("gemini chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("received empty response from API")
	}

	return resp.Choices[0].Message.Content, nil
}
