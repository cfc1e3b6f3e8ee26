package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storysketch-server/internal/model"
)

func TestStoryRepository_CreateAndGet(t *testing.T) {
	repo := NewStoryRepository(newTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, model.Story{
		Title:      "Моя история",
		InputType:  "voice",
		OutputType: "webtoon",
		Content: model.ContentBlocks{
			{"type": "paragraph", "text": "Жил-был кот"},
		},
	})
	require.NoError(t, err)

	assert.EqualValues(t, 1, created.ID)
	assert.Equal(t, "Моя история", created.Title)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Nil(t, created.UpdatedAt)
	require.Len(t, created.Content, 1)
	assert.Equal(t, "Жил-был кот", created.Content[0]["text"])

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.Content, got.Content)
}

func TestStoryRepository_GetNotFound(t *testing.T) {
	repo := NewStoryRepository(newTestDB(t))

	_, err := repo.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestStoryRepository_Update(t *testing.T) {
	repo := NewStoryRepository(newTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, model.Story{Title: "до", InputType: "text", OutputType: "summary"})
	require.NoError(t, err)

	// Обновление заменяет запись целиком и выставляет updated_at
	updated, err := repo.Update(ctx, created.ID, model.Story{
		Title:      "после",
		InputType:  "voice",
		OutputType: "webtoon",
		Content:    model.ContentBlocks{{"type": "heading", "text": "Глава 1"}},
	})
	require.NoError(t, err)

	assert.Equal(t, "после", updated.Title)
	assert.Equal(t, "voice", updated.InputType)
	require.NotNil(t, updated.UpdatedAt)

	// Обновление несуществующей записи
	_, err = repo.Update(ctx, 99, model.Story{Title: "x"})
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestStoryRepository_ListPagination(t *testing.T) {
	repo := NewStoryRepository(newTestDB(t))
	ctx := context.Background()

	for _, title := range []string{"первая", "вторая", "третья"} {
		_, err := repo.Create(ctx, model.Story{Title: title, InputType: "text", OutputType: "summary"})
		require.NoError(t, err)
	}

	page, err := repo.List(ctx, 2, 1)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "вторая", page[0].Title)
	assert.Equal(t, "третья", page[1].Title)
}

func TestStoryRepository_Delete(t *testing.T) {
	repo := NewStoryRepository(newTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, model.Story{Title: "удаляемая", InputType: "text", OutputType: "summary"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, sql.ErrNoRows)

	// Повторное удаление — не найдено
	assert.ErrorIs(t, repo.Delete(ctx, created.ID), sql.ErrNoRows)
}
