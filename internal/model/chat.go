package model

// Роли участников диалога
const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

// ChatMessage представляет одно сообщение в истории диалога
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest представляет тело запроса к чату
type ChatRequest struct {
	Message  string `json:"message"`
	TextFile string `json:"text_file"`
}

// ChatResponse представляет ответ чата вместе с полной историей диалога
type ChatResponse struct {
	Response    string        `json:"response"`
	History     []ChatMessage `json:"history"`
	UpdatedFile string        `json:"updated_file"`
}
