package service

import (
	"context"
	"database/sql"
	"errors"

	"storysketch-server/internal/model"
	"storysketch-server/internal/repository"
)

// StoryService реализует бизнес-логику для работы с историями
type StoryService struct {
	repo *repository.StoryRepository
}

// NewStoryService создает новый экземпляр сервиса историй
func NewStoryService(repo *repository.StoryRepository) *StoryService {
	return &StoryService{repo: repo}
}

// Create создает новую историю
func (s *StoryService) Create(ctx context.Context, story model.Story) (model.Story, error) {
	return s.repo.Create(ctx, story)
}

// GetByID возвращает историю по ID
func (s *StoryService) GetByID(ctx context.Context, id int64) (model.Story, error) {
	story, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Story{}, ErrStoryNotFound
		}
		return model.Story{}, err
	}
	return story, nil
}

// List возвращает список историй с пагинацией
func (s *StoryService) List(ctx context.Context, limit, offset int) ([]model.Story, error) {
	return s.repo.List(ctx, limit, offset)
}

// Update полностью заменяет историю (частичных обновлений нет)
func (s *StoryService) Update(ctx context.Context, id int64, story model.Story) (model.Story, error) {
	updated, err := s.repo.Update(ctx, id, story)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Story{}, ErrStoryNotFound
		}
		return model.Story{}, err
	}
	return updated, nil
}

// Delete удаляет историю по ID
func (s *StoryService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrStoryNotFound
		}
		return err
	}
	return nil
}
