package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"storysketch-server/internal/model"
)

// VoiceRepository представляет репозиторий для работы с голосовыми записями
type VoiceRepository struct {
	db *sqlx.DB
}

// NewVoiceRepository создает новый экземпляр репозитория для работы с голосовыми записями
func NewVoiceRepository(db *sqlx.DB) *VoiceRepository {
	return &VoiceRepository{db: db}
}

// Create создает новую голосовую запись в базе данных
func (r *VoiceRepository) Create(ctx context.Context, voice model.Voice) (model.Voice, error) {
	query := `
		INSERT INTO voices (filename, file_path, duration, transcription, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	now := time.Now().UTC()

	res, err := r.db.ExecContext(ctx, query,
		voice.Filename,
		voice.FilePath,
		voice.Duration,
		voice.Transcription,
		now,
	)
	if err != nil {
		return model.Voice{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return model.Voice{}, err
	}

	return r.GetByID(ctx, id)
}

// GetByID получает голосовую запись по ID
func (r *VoiceRepository) GetByID(ctx context.Context, id int64) (model.Voice, error) {
	query := `
		SELECT id, filename, file_path, duration, transcription, created_at, updated_at
		FROM voices
		WHERE id = ?
	`

	var voice model.Voice
	if err := r.db.GetContext(ctx, &voice, query, id); err != nil {
		return model.Voice{}, err
	}

	return voice, nil
}

// List возвращает список голосовых записей с пагинацией
func (r *VoiceRepository) List(ctx context.Context, limit, offset int) ([]model.Voice, error) {
	query := `
		SELECT id, filename, file_path, duration, transcription, created_at, updated_at
		FROM voices
		ORDER BY id
		LIMIT ? OFFSET ?
	`

	voices := []model.Voice{}
	if err := r.db.SelectContext(ctx, &voices, query, limit, offset); err != nil {
		return nil, err
	}

	return voices, nil
}

// Delete удаляет голосовую запись по ID
func (r *VoiceRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM voices WHERE id = ?`, id)
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
