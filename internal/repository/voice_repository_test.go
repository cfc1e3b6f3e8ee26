package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storysketch-server/internal/model"
)

func TestVoiceRepository_CreateAndGet(t *testing.T) {
	repo := NewVoiceRepository(newTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, model.Voice{
		Filename:      "story.mp3",
		FilePath:      "uploads/story.mp3",
		Duration:      12.5,
		Transcription: "жил-был кот",
	})
	require.NoError(t, err)

	assert.EqualValues(t, 1, created.ID)
	assert.Equal(t, "story.mp3", created.Filename)
	assert.Equal(t, "uploads/story.mp3", created.FilePath)
	assert.InDelta(t, 12.5, created.Duration, 0.001)
	assert.Equal(t, "жил-был кот", created.Transcription)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Filename, got.Filename)
}

func TestVoiceRepository_GetNotFound(t *testing.T) {
	repo := NewVoiceRepository(newTestDB(t))

	_, err := repo.GetByID(context.Background(), 7)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestVoiceRepository_ListAndDelete(t *testing.T) {
	repo := NewVoiceRepository(newTestDB(t))
	ctx := context.Background()

	first, err := repo.Create(ctx, model.Voice{Filename: "a.mp3", FilePath: "uploads/a.mp3", Duration: 1})
	require.NoError(t, err)
	_, err = repo.Create(ctx, model.Voice{Filename: "b.mp3", FilePath: "uploads/b.mp3", Duration: 2})
	require.NoError(t, err)

	voices, err := repo.List(ctx, 100, 0)
	require.NoError(t, err)
	assert.Len(t, voices, 2)

	require.NoError(t, repo.Delete(ctx, first.ID))

	voices, err = repo.List(ctx, 100, 0)
	require.NoError(t, err)
	require.Len(t, voices, 1)
	assert.Equal(t, "b.mp3", voices[0].Filename)

	assert.ErrorIs(t, repo.Delete(ctx, first.ID), sql.ErrNoRows)
}
