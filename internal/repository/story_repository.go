package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"storysketch-server/internal/model"
)

// StoryRepository представляет репозиторий для работы с историями
type StoryRepository struct {
	db *sqlx.DB
}

// NewStoryRepository создает новый экземпляр репозитория для работы с историями
func NewStoryRepository(db *sqlx.DB) *StoryRepository {
	return &StoryRepository{db: db}
}

// Create создает новую историю в базе данных
func (r *StoryRepository) Create(ctx context.Context, story model.Story) (model.Story, error) {
	query := `
		INSERT INTO stories (title, input_type, output_type, content, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	now := time.Now().UTC()

	res, err := r.db.ExecContext(ctx, query,
		story.Title,
		story.InputType,
		story.OutputType,
		story.Content,
		now,
	)
	if err != nil {
		return model.Story{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return model.Story{}, err
	}

	return r.GetByID(ctx, id)
}

// GetByID получает историю по ID
func (r *StoryRepository) GetByID(ctx context.Context, id int64) (model.Story, error) {
	query := `
		SELECT id, title, input_type, output_type, content, created_at, updated_at
		FROM stories
		WHERE id = ?
	`

	var story model.Story
	if err := r.db.GetContext(ctx, &story, query, id); err != nil {
		return model.Story{}, err
	}

	return story, nil
}

// List возвращает список историй с пагинацией
func (r *StoryRepository) List(ctx context.Context, limit, offset int) ([]model.Story, error) {
	query := `
		SELECT id, title, input_type, output_type, content, created_at, updated_at
		FROM stories
		ORDER BY id
		LIMIT ? OFFSET ?
	`

	stories := []model.Story{}
	if err := r.db.SelectContext(ctx, &stories, query, limit, offset); err != nil {
		return nil, err
	}

	return stories, nil
}

// Update полностью заменяет поля истории
func (r *StoryRepository) Update(ctx context.Context, id int64, story model.Story) (model.Story, error) {
	query := `
		UPDATE stories
		SET title = ?, input_type = ?, output_type = ?, content = ?, updated_at = ?
		WHERE id = ?
	`

	now := time.Now().UTC()

	res, err := r.db.ExecContext(ctx, query,
		story.Title,
		story.InputType,
		story.OutputType,
		story.Content,
		now,
		id,
	)
	if err != nil {
		return model.Story{}, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return model.Story{}, err
	}
	if affected == 0 {
		return model.Story{}, sql.ErrNoRows
	}

	return r.GetByID(ctx, id)
}

// Delete удаляет историю по ID
func (r *StoryRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM stories WHERE id = ?`, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}
