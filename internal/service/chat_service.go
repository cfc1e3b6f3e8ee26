package service

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog/log"

	"storysketch-server/internal/model"
)

// ChatClient описывает удаленный чат-сервис
type ChatClient interface {
	ChatCompletion(ctx context.Context, messages []model.ChatMessage) (string, error)
}

// Промпт для обновления текстового файла. Ответ модели целиком заменяет содержимое файла.
const updatePromptTemplate = `Please update the following text based on this request: "%s"

Current text content:
%s

Please provide only the updated text content without any additional explanations or formatting.`

// Подтверждающее сообщение, чтобы в истории чата была человекочитаемая запись
// об обновлении, а не сырой текст файла.
const confirmationTemplate = "I've updated the text file according to your request: %s"

// ChatService поддерживает один общий диалог с удаленным чат-сервисом
// и реализует обновление текстовых файлов через инструкции на естественном языке.
// Разделения по сессиям нет: весь процесс работает с единственной историей.
type ChatService struct {
	client ChatClient

	mu      sync.Mutex
	history []model.ChatMessage
}

// NewChatService создает новый экземпляр сервиса чата
func NewChatService(client ChatClient) *ChatService {
	return &ChatService{client: client}
}

// SendMessage отправляет сообщение в диалог. Если указан textFile, содержимое файла
// обновляется по инструкции и записывается в файл со следующим номером версии;
// возвращается имя нового файла. Без textFile — обычный обмен сообщениями.
func (s *ChatService) SendMessage(ctx context.Context, message, textFile string) (string, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if textFile == "" {
		reply, err := s.exchange(ctx, message)
		return reply, "", err
	}

	// Читаем текущее содержимое файла. Ошибка чтения фатальна для запроса:
	// ни одного обращения к удаленному сервису еще не было, история не тронута.
	current, err := os.ReadFile(textFile)
	if err != nil {
		return "", "", fmt.Errorf("не удалось прочитать файл %s: %w", textFile, err)
	}

	// Имя новой версии вычисляем до обращения к удаленному сервису,
	// чтобы некорректный суффикс версии отсекался без побочных эффектов
	newFilename, err := NextVersion(textFile)
	if err != nil {
		return "", "", err
	}

	updatePrompt := fmt.Sprintf(updatePromptTemplate, message, string(current))
	updated, err := s.exchange(ctx, updatePrompt)
	if err != nil {
		return "", "", err
	}

	// Ответ модели — полное новое содержимое файла, без diff-семантики
	if err := os.WriteFile(newFilename, []byte(updated), 0o644); err != nil {
		return "", "", fmt.Errorf("не удалось записать файл %s: %w", newFilename, err)
	}

	log.Info().Str("file", textFile).Str("updated_file", newFilename).Msg("Файл обновлен по инструкции из чата")

	reply, err := s.exchange(ctx, fmt.Sprintf(confirmationTemplate, message))
	if err != nil {
		return "", "", err
	}

	return reply, newFilename, nil
}

// exchange выполняет один обмен с удаленным сервисом. Пара сообщений
// (пользователь + ассистент) попадает в историю только после успешного ответа.
func (s *ChatService) exchange(ctx context.Context, content string) (string, error) {
	userMsg := model.ChatMessage{Role: model.ChatRoleUser, Content: content}

	messages := make([]model.ChatMessage, len(s.history), len(s.history)+1)
	copy(messages, s.history)
	messages = append(messages, userMsg)

	reply, err := s.client.ChatCompletion(ctx, messages)
	if err != nil {
		return "", err
	}

	s.history = append(s.history,
		userMsg,
		model.ChatMessage{Role: model.ChatRoleAssistant, Content: reply},
	)
	return reply, nil
}

// History возвращает копию истории диалога в хронологическом порядке
func (s *ChatService) History() []model.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := make([]model.ChatMessage, len(s.history))
	copy(history, s.history)
	return history
}
