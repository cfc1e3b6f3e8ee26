package model

import "time"

// Voice представляет загруженную голосовую запись с её транскрипцией
type Voice struct {
	ID            int64      `db:"id" json:"id"`
	Filename      string     `db:"filename" json:"filename"`
	FilePath      string     `db:"file_path" json:"file_path"`
	Duration      float64    `db:"duration" json:"duration"` // Длительность в секундах
	Transcription string     `db:"transcription" json:"transcription,omitempty"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}
