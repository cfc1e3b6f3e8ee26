package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"storysketch-server/internal/service"
)

// Handler представляет HTTP обработчик
type Handler struct {
	stories *service.StoryService
	voices  *service.VoiceService
	chat    *service.ChatService
}

// New создает новый экземпляр обработчика
func New(stories *service.StoryService, voices *service.VoiceService, chat *service.ChatService) *Handler {
	return &Handler{
		stories: stories,
		voices:  voices,
		chat:    chat,
	}
}

// RegisterRoutes регистрирует маршруты API
func (h *Handler) RegisterRoutes(router *mux.Router) {
	// Маршруты для работы с историями
	router.HandleFunc("/stories", h.ListStories).Methods("GET")
	router.HandleFunc("/stories", h.CreateStory).Methods("POST")
	router.HandleFunc("/stories/{id}", h.GetStory).Methods("GET")
	router.HandleFunc("/stories/{id}", h.UpdateStory).Methods("PUT")
	router.HandleFunc("/stories/{id}", h.DeleteStory).Methods("DELETE")

	// Маршруты для работы с голосовыми записями.
	// upload/transcribe регистрируются раньше маршрута с {id}
	router.HandleFunc("/voices/upload/", h.UploadVoice).Methods("POST")
	router.HandleFunc("/voices/transcribe", h.TranscribeVoice).Methods("POST")
	router.HandleFunc("/voices", h.ListVoices).Methods("GET")
	router.HandleFunc("/voices/{id}", h.GetVoice).Methods("GET")
	router.HandleFunc("/voices/{id}", h.DeleteVoice).Methods("DELETE")

	// Маршрут чата
	router.HandleFunc("/chats", h.CreateChat).Methods("POST")
}

// parseID извлекает числовой ID из параметров маршрута
func parseID(r *http.Request) (int64, error) {
	vars := mux.Vars(r)
	return strconv.ParseInt(vars["id"], 10, 64)
}

// parsePagination извлекает limit/offset из query-параметров запроса
func parsePagination(r *http.Request) (limit, offset int) {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = 100 // Значение по умолчанию
	}

	offset, err = strconv.Atoi(r.URL.Query().Get("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}

	return limit, offset
}

// respondServiceError транслирует ошибки бизнес-логики в HTTP-коды
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrStoryNotFound), errors.Is(err, service.ErrVoiceNotFound):
		RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidAudioFormat):
		RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		RespondWithError(w, http.StatusInternalServerError, err.Error())
	}
}

// RespondWithError отправляет ошибку в формате JSON
func RespondWithError(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, map[string]string{"error": message})
}

// RespondWithJSON отправляет ответ в формате JSON
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
