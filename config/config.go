package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorageMemory   = "memory"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
)

type Config struct {
	TelegramToken string
	TelegramDebug bool

	OpenWeatherAPIKey string
	OpenWeatherURL    string
	OpenFoodFactsURL  string
	HTTPTimeout       time.Duration

	// TurnTimeout ограничивает обработку одного сообщения пользователя
	TurnTimeout time.Duration

	Storage     string
	DatabaseDSN string

	// Если WebhookURL пуст, бот работает через long polling
	WebhookURL    string
	WebhookListen string

	LogLevel  string
	LogFormat string
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		TelegramToken:     os.Getenv("TELEGRAM_TOKEN"),
		OpenWeatherAPIKey: os.Getenv("OPENWEATHER_API_KEY"),
		OpenWeatherURL:    os.Getenv("OPENWEATHER_URL"),
		OpenFoodFactsURL:  os.Getenv("OPENFOODFACTS_URL"),
		Storage:           getEnv("STORAGE", StorageMemory),
		DatabaseDSN:       os.Getenv("DATABASE_DSN"),
		WebhookURL:        os.Getenv("WEBHOOK_URL"),
		WebhookListen:     getEnv("WEBHOOK_LISTEN", ":8443"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "text"),
	}

	var err error
	if cfg.TelegramDebug, err = getBool("TELEGRAM_DEBUG", false); err != nil {
		return nil, err
	}
	if cfg.HTTPTimeout, err = getDuration("HTTP_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.TurnTimeout, err = getDuration("TURN_TIMEOUT", 30*time.Second); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет обязательные параметры.
func (c *Config) Validate() error {
	var errs []error
	if c.TelegramToken == "" {
		errs = append(errs, errors.New("TELEGRAM_TOKEN is required"))
	}

	switch c.Storage {
	case StorageMemory, StorageSQLite:
	case StoragePostgres:
		if c.DatabaseDSN == "" {
			errs = append(errs, errors.New("DATABASE_DSN is required for postgres storage"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown STORAGE %q", c.Storage))
	}

	if c.LogFormat != "text" && c.LogFormat != "json" {
		errs = append(errs, fmt.Errorf("unknown LOG_FORMAT %q", c.LogFormat))
	}

	return errors.Join(errs...)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", key, err)
	}
	return b, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return d, nil
}
