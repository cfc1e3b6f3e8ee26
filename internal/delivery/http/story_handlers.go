package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"storysketch-server/internal/model"
)

// ListStories возвращает список историй
func (h *Handler) ListStories(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePagination(r)

	stories, err := h.stories.List(r.Context(), limit, offset)
	if err != nil {
		log.Error().Err(err).Msg("Ошибка при получении списка историй")
		RespondWithError(w, http.StatusInternalServerError, fmt.Sprintf("ошибка при получении списка историй: %v", err))
		return
	}

	RespondWithJSON(w, http.StatusOK, stories)
}

// CreateStory создает новую историю
func (h *Handler) CreateStory(w http.ResponseWriter, r *http.Request) {
	var story model.Story
	if err := json.NewDecoder(r.Body).Decode(&story); err != nil {
		RespondWithError(w, http.StatusBadRequest, fmt.Sprintf("неверный формат запроса: %v", err))
		return
	}

	created, err := h.stories.Create(r.Context(), story)
	if err != nil {
		log.Error().Err(err).Msg("Ошибка при создании истории")
		RespondWithError(w, http.StatusInternalServerError, fmt.Sprintf("ошибка при создании истории: %v", err))
		return
	}

	RespondWithJSON(w, http.StatusCreated, created)
}

// GetStory возвращает историю по ID
func (h *Handler) GetStory(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		RespondWithError(w, http.StatusBadRequest, "неверный формат ID истории")
		return
	}

	story, err := h.stories.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, story)
}

// UpdateStory полностью заменяет историю
func (h *Handler) UpdateStory(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		RespondWithError(w, http.StatusBadRequest, "неверный формат ID истории")
		return
	}

	var story model.Story
	if err := json.NewDecoder(r.Body).Decode(&story); err != nil {
		RespondWithError(w, http.StatusBadRequest, fmt.Sprintf("неверный формат запроса: %v", err))
		return
	}

	updated, err := h.stories.Update(r.Context(), id, story)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, updated)
}

// DeleteStory удаляет историю по ID
func (h *Handler) DeleteStory(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		RespondWithError(w, http.StatusBadRequest, "неверный формат ID истории")
		return
	}

	if err := h.stories.Delete(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Story deleted successfully"})
}
