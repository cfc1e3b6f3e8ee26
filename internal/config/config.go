package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Config содержит конфигурацию приложения
type Config struct {
	// Настройки сервера
	Port                int    `envconfig:"SERVER_PORT" default:"8000"`
	BasePath            string `envconfig:"SERVER_BASE_PATH" default:"/api/v1"`
	ReadTimeoutSeconds  int    `envconfig:"SERVER_READ_TIMEOUT" default:"15"`
	WriteTimeoutSeconds int    `envconfig:"SERVER_WRITE_TIMEOUT" default:"15"`
	IdleTimeoutSeconds  int    `envconfig:"SERVER_IDLE_TIMEOUT" default:"60"`
	LogLevel            string `envconfig:"LOG_LEVEL" default:"info"`

	// Настройки базы данных (SQLite)
	DatabasePath string `envconfig:"DATABASE_PATH" default:"./storysketch.db"`

	// Директория для загруженных голосовых файлов
	UploadDir string `envconfig:"UPLOAD_DIR" default:"uploads"`

	// Настройки Gemini API
	GeminiAPIKey  string `envconfig:"GEMINI_API_KEY"`
	GeminiModel   string `envconfig:"GEMINI_MODEL" default:"gemini-2.0-flash"`
	GeminiBaseURL string `envconfig:"GEMINI_BASE_URL" default:"https://generativelanguage.googleapis.com/v1beta/openai/"`
	GeminiTimeout int    `envconfig:"GEMINI_TIMEOUT" default:"120"`

	// Модель для распознавания речи (whisper CLI)
	WhisperModel string `envconfig:"WHISPER_MODEL" default:"base"`

	// Настройки CORS
	CORSAllowedOrigins string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:3000,http://localhost:8000,http://localhost:8080"`

	// Секрет JWT пока не используется, но оставлен для совместимости с клиентом
	JWTSecret string `envconfig:"JWT_SECRET" default:"your-secret-key"`
}

// AllowedOrigins возвращает список разрешенных origin'ов для CORS
func (c *Config) AllowedOrigins() []string {
	return strings.Split(c.CORSAllowedOrigins, ",")
}

// Load загружает конфигурацию из переменных окружения
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	// Проверка обязательных настроек
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}

	return &cfg, nil
}
