package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextVersion(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{name: "без версии", filename: "draft.txt", want: "draft_v1.txt"},
		{name: "первая версия", filename: "draft_v1.txt", want: "draft_v2.txt"},
		{name: "переход через десяток", filename: "draft_v9.txt", want: "draft_v10.txt"},
		{name: "двузначная версия", filename: "draft_v10.txt", want: "draft_v11.txt"},
		{name: "расширение всегда становится txt", filename: "report.md", want: "report_v1.txt"},
		{name: "без расширения", filename: "notes", want: "notes_v1.txt"},
		{name: "путь с директорией", filename: "docs/letter_v3.txt", want: "docs/letter_v4.txt"},
		{name: "подчеркивания в имени", filename: "my_file_v2.txt", want: "my_file_v3.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextVersion(tt.filename)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNextVersion_Sequence(t *testing.T) {
	// Каждый вызов строго увеличивает номер версии
	name := "draft.txt"
	for i := 1; i <= 5; i++ {
		next, err := NextVersion(name)
		require.NoError(t, err)
		assert.NotEqual(t, name, next)
		name = next
	}
	assert.Equal(t, "draft_v5.txt", name)
}

func TestNextVersion_MalformedSuffix(t *testing.T) {
	// Нечисловой суффикс после "_v" — ошибка, а не сброс на v1
	for _, filename := range []string{"draft_vX.txt", "my_video.mp4", "draft_v.txt"} {
		_, err := NextVersion(filename)
		assert.Error(t, err, "filename %q", filename)
	}
}
