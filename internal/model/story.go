package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// ContentBlocks представляет упорядоченный список блоков контента истории.
// Хранится в БД как JSON-колонка.
type ContentBlocks []map[string]interface{}

// Value сериализует блоки контента в JSON для записи в БД
func (c ContentBlocks) Value() (driver.Value, error) {
	if c == nil {
		return "[]", nil
	}
	data, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("не удалось сериализовать контент истории: %w", err)
	}
	return string(data), nil
}

// Scan десериализует JSON из БД в блоки контента
func (c *ContentBlocks) Scan(src interface{}) error {
	if src == nil {
		*c = nil
		return nil
	}

	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("неожиданный тип контента истории: %T", src)
	}

	if len(data) == 0 {
		*c = nil
		return nil
	}

	return json.Unmarshal(data, c)
}

// Story представляет историю, созданную пользователем
type Story struct {
	ID         int64         `db:"id" json:"id"`
	Title      string        `db:"title" json:"title"`
	InputType  string        `db:"input_type" json:"input_type"`
	OutputType string        `db:"output_type" json:"output_type"`
	Content    ContentBlocks `db:"content" json:"content"`
	CreatedAt  time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt  *time.Time    `db:"updated_at" json:"updated_at,omitempty"`
}
