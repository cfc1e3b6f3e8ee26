package service

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// NextVersion вычисляет имя следующей версии файла.
// "draft.txt" -> "draft_v1.txt", "draft_v1.txt" -> "draft_v2.txt".
// Расширение результата всегда .txt, независимо от исходного.
// Некорректный номер версии после "_v" — ошибка, а не молчаливый сброс на v1.
func NextVersion(filename string) (string, error) {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))

	idx := strings.LastIndex(base, "_v")
	if idx == -1 {
		return base + "_v1.txt", nil
	}

	version, err := strconv.Atoi(base[idx+2:])
	if err != nil {
		return "", fmt.Errorf("некорректный номер версии в имени файла %q: %w", filename, err)
	}

	return fmt.Sprintf("%s_v%d.txt", base[:idx], version+1), nil
}
