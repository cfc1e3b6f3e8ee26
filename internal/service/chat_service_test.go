package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storysketch-server/internal/model"
)

// fakeChatClient возвращает заранее заданные ответы и запоминает отправленные сообщения
type fakeChatClient struct {
	replies []string
	err     error
	calls   [][]model.ChatMessage
}

func (f *fakeChatClient) ChatCompletion(_ context.Context, messages []model.ChatMessage) (string, error) {
	f.calls = append(f.calls, messages)
	if f.err != nil {
		return "", f.err
	}
	return f.replies[len(f.calls)-1], nil
}

func TestChatService_PlainMessage(t *testing.T) {
	client := &fakeChatClient{replies: []string{"привет!"}}
	svc := NewChatService(client)

	reply, updatedFile, err := svc.SendMessage(context.Background(), "hello", "")
	require.NoError(t, err)

	assert.Equal(t, "привет!", reply)
	assert.Empty(t, updatedFile, "обычное сообщение не должно создавать файлов")

	// Ровно одна пара сообщений в истории
	history := svc.History()
	require.Len(t, history, 2)
	assert.Equal(t, model.ChatMessage{Role: model.ChatRoleUser, Content: "hello"}, history[0])
	assert.Equal(t, model.ChatMessage{Role: model.ChatRoleAssistant, Content: "привет!"}, history[1])
}

func TestChatService_FileUpdate(t *testing.T) {
	dir := t.TempDir()
	textFile := filepath.Join(dir, "draft.txt")
	require.NoError(t, os.WriteFile(textFile, []byte("Hello, world"), 0o644))

	client := &fakeChatClient{replies: []string{"Bonjour, le monde", "Готово, файл переведен"}}
	svc := NewChatService(client)

	reply, updatedFile, err := svc.SendMessage(context.Background(), "translate to French", textFile)
	require.NoError(t, err)

	// Возвращается подтверждение, а не содержимое файла
	assert.Equal(t, "Готово, файл переведен", reply)
	assert.Equal(t, filepath.Join(dir, "draft_v1.txt"), updatedFile)

	// Новая версия содержит буквальный ответ удаленного сервиса
	content, err := os.ReadFile(updatedFile)
	require.NoError(t, err)
	assert.Equal(t, "Bonjour, le monde", string(content))

	// Два обмена: обновление содержимого + подтверждение
	require.Len(t, client.calls, 2)
	assert.Contains(t, client.calls[0][len(client.calls[0])-1].Content, "translate to French")
	assert.Contains(t, client.calls[0][len(client.calls[0])-1].Content, "Hello, world")

	// Второй обмен видит историю первого
	assert.Len(t, client.calls[1], 3)

	history := svc.History()
	assert.Len(t, history, 4)
}

func TestChatService_MissingFile(t *testing.T) {
	client := &fakeChatClient{replies: []string{"не должно быть вызвано"}}
	svc := NewChatService(client)

	_, _, err := svc.SendMessage(context.Background(), "translate", filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)

	// Ошибка до обращения к удаленному сервису и до изменения истории
	assert.Empty(t, client.calls)
	assert.Empty(t, svc.History())
}

func TestChatService_MalformedVersionSuffix(t *testing.T) {
	dir := t.TempDir()
	textFile := filepath.Join(dir, "draft_vX.txt")
	require.NoError(t, os.WriteFile(textFile, []byte("text"), 0o644))

	client := &fakeChatClient{replies: []string{"не должно быть вызвано"}}
	svc := NewChatService(client)

	_, _, err := svc.SendMessage(context.Background(), "update", textFile)
	require.Error(t, err)

	// Валидация имени отсекается до побочных эффектов
	assert.Empty(t, client.calls)
	assert.Empty(t, svc.History())
}

func TestChatService_RemoteErrorKeepsHistoryIntact(t *testing.T) {
	client := &fakeChatClient{err: errors.New("upstream down")}
	svc := NewChatService(client)

	_, _, err := svc.SendMessage(context.Background(), "hello", "")
	require.Error(t, err)

	// Неудачный обмен не оставляет полузаписанной пары
	assert.Empty(t, svc.History())

	// После восстановления сервиса история растет как обычно
	client.err = nil
	client.replies = []string{"", "ok"} // первый слот уже израсходован неудачным вызовом
	_, _, err = svc.SendMessage(context.Background(), "hello again", "")
	require.NoError(t, err)
	assert.Len(t, svc.History(), 2)
}
