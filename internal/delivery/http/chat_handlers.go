package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"storysketch-server/internal/model"
)

// CreateChat отправляет сообщение в общий диалог. Если указан text_file,
// содержимое файла обновляется по инструкции и записывается в новую версию.
// Любая внутренняя ошибка возвращается как 500 с текстом ошибки.
func (h *Handler) CreateChat(w http.ResponseWriter, r *http.Request) {
	var req model.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondWithError(w, http.StatusBadRequest, fmt.Sprintf("неверный формат запроса: %v", err))
		return
	}

	reply, updatedFile, err := h.chat.SendMessage(r.Context(), req.Message, req.TextFile)
	if err != nil {
		log.Error().Err(err).Str("text_file", req.TextFile).Msg("Ошибка при обработке сообщения чата")
		RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	chatMessagesTotal.Inc()
	if updatedFile != "" {
		fileUpdatesTotal.Inc()
	} else {
		// Для обычного сообщения возвращаем имя файла из запроса без изменений
		updatedFile = req.TextFile
	}

	RespondWithJSON(w, http.StatusOK, model.ChatResponse{
		Response:    reply,
		History:     h.chat.History(),
		UpdatedFile: updatedFile,
	})
}
