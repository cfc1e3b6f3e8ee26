package service

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"storysketch-server/internal/audio"
	"storysketch-server/internal/model"
	"storysketch-server/internal/repository"
	"storysketch-server/internal/whisper"
)

// Transcriber описывает адаптер распознавания речи
type Transcriber interface {
	Transcribe(ctx context.Context, filePath string) (whisper.Result, error)
}

// VoiceService реализует бизнес-логику для работы с голосовыми записями
type VoiceService struct {
	repo        *repository.VoiceRepository
	transcriber Transcriber
	uploadDir   string
}

// NewVoiceService создает новый экземпляр сервиса голосовых записей
func NewVoiceService(repo *repository.VoiceRepository, transcriber Transcriber, uploadDir string) *VoiceService {
	return &VoiceService{
		repo:        repo,
		transcriber: transcriber,
		uploadDir:   uploadDir,
	}
}

// Upload сохраняет MP3-файл в директорию загрузок, определяет длительность,
// распознает речь и создает запись в базе данных.
func (s *VoiceService) Upload(ctx context.Context, filename string, data []byte) (model.Voice, error) {
	// Формат проверяется до любых побочных эффектов и до вызова модели
	if !strings.HasSuffix(filename, ".mp3") {
		return model.Voice{}, ErrInvalidAudioFormat
	}

	duration, err := audio.MP3Duration(bytes.NewReader(data))
	if err != nil {
		return model.Voice{}, fmt.Errorf("не удалось определить длительность MP3: %w", err)
	}

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return model.Voice{}, fmt.Errorf("не удалось создать директорию загрузок: %w", err)
	}

	savePath := filepath.Join(s.uploadDir, filepath.Base(filename))
	if err := os.WriteFile(savePath, data, 0o644); err != nil {
		return model.Voice{}, fmt.Errorf("не удалось сохранить файл %s: %w", savePath, err)
	}

	result, err := s.transcriber.Transcribe(ctx, savePath)
	if err != nil {
		return model.Voice{}, fmt.Errorf("ошибка распознавания речи: %w", err)
	}

	return s.repo.Create(ctx, model.Voice{
		Filename:      filename,
		FilePath:      savePath,
		Duration:      duration,
		Transcription: result.Text,
	})
}

// Transcribe распознает речь в MP3-файле без сохранения записи.
// Файл кладется во временную директорию и удаляется после распознавания.
func (s *VoiceService) Transcribe(ctx context.Context, filename string, data []byte) (string, error) {
	if !strings.HasSuffix(filename, ".mp3") {
		return "", ErrInvalidAudioFormat
	}

	tmpPath := filepath.Join(os.TempDir(), uuid.New().String()+".mp3")
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return "", fmt.Errorf("не удалось сохранить временный файл: %w", err)
	}
	defer os.Remove(tmpPath)

	result, err := s.transcriber.Transcribe(ctx, tmpPath)
	if err != nil {
		return "", fmt.Errorf("ошибка распознавания речи: %w", err)
	}

	return result.Text, nil
}

// GetByID возвращает голосовую запись по ID
func (s *VoiceService) GetByID(ctx context.Context, id int64) (model.Voice, error) {
	voice, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Voice{}, ErrVoiceNotFound
		}
		return model.Voice{}, err
	}
	return voice, nil
}

// List возвращает список голосовых записей с пагинацией
func (s *VoiceService) List(ctx context.Context, limit, offset int) ([]model.Voice, error) {
	return s.repo.List(ctx, limit, offset)
}

// Delete удаляет запись вместе с файлом на диске.
// Отсутствие файла не считается ошибкой: удаление идемпотентно для клиента.
func (s *VoiceService) Delete(ctx context.Context, id int64) error {
	voice, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrVoiceNotFound
		}
		return err
	}

	if err := os.Remove(voice.FilePath); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Str("path", voice.FilePath).Msg("Не удалось удалить файл голосовой записи")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrVoiceNotFound
		}
		return err
	}
	return nil
}
