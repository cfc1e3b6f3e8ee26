package http

import (
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"
)

// Максимальный размер multipart-запроса при загрузке аудио
const maxUploadSize = 32 << 20 // 32 MB

// readUploadedFile извлекает файл из multipart-формы
func readUploadedFile(r *http.Request) (string, []byte, error) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return "", nil, fmt.Errorf("неверный формат multipart-запроса: %w", err)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return "", nil, fmt.Errorf("файл не найден в запросе: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", nil, fmt.Errorf("не удалось прочитать файл: %w", err)
	}

	return header.Filename, data, nil
}

// UploadVoice загружает MP3-файл, распознает речь и сохраняет запись
func (h *Handler) UploadVoice(w http.ResponseWriter, r *http.Request) {
	filename, data, err := readUploadedFile(r)
	if err != nil {
		RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	voice, err := h.voices.Upload(r.Context(), filename, data)
	if err != nil {
		log.Error().Err(err).Str("filename", filename).Msg("Ошибка при загрузке голосовой записи")
		transcriptionsTotal.WithLabelValues("error").Inc()
		respondServiceError(w, err)
		return
	}

	transcriptionsTotal.WithLabelValues("ok").Inc()
	RespondWithJSON(w, http.StatusOK, voice)
}

// TranscribeVoice распознает речь в MP3-файле без сохранения записи
func (h *Handler) TranscribeVoice(w http.ResponseWriter, r *http.Request) {
	filename, data, err := readUploadedFile(r)
	if err != nil {
		RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	text, err := h.voices.Transcribe(r.Context(), filename, data)
	if err != nil {
		log.Error().Err(err).Str("filename", filename).Msg("Ошибка при распознавании речи")
		transcriptionsTotal.WithLabelValues("error").Inc()
		respondServiceError(w, err)
		return
	}

	transcriptionsTotal.WithLabelValues("ok").Inc()
	RespondWithJSON(w, http.StatusOK, map[string]string{"text": text})
}

// ListVoices возвращает список голосовых записей
func (h *Handler) ListVoices(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePagination(r)

	voices, err := h.voices.List(r.Context(), limit, offset)
	if err != nil {
		log.Error().Err(err).Msg("Ошибка при получении списка голосовых записей")
		RespondWithError(w, http.StatusInternalServerError, fmt.Sprintf("ошибка при получении списка голосовых записей: %v", err))
		return
	}

	RespondWithJSON(w, http.StatusOK, voices)
}

// GetVoice возвращает голосовую запись по ID
func (h *Handler) GetVoice(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		RespondWithError(w, http.StatusBadRequest, "неверный формат ID голосовой записи")
		return
	}

	voice, err := h.voices.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, voice)
}

// DeleteVoice удаляет голосовую запись вместе с файлом на диске
func (h *Handler) DeleteVoice(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		RespondWithError(w, http.StatusBadRequest, "неверный формат ID голосовой записи")
		return
	}

	if err := h.voices.Delete(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Voice deleted successfully"})
}
