package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"STORAGE", "WEBHOOK_LISTEN", "LOG_LEVEL", "LOG_FORMAT", "HTTP_TIMEOUT", "TURN_TIMEOUT", "TELEGRAM_DEBUG"} {
		t.Setenv(key, "")
	}
	t.Setenv("TELEGRAM_TOKEN", "token")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "token", cfg.TelegramToken)
	require.Equal(t, StorageMemory, cfg.Storage)
	require.Equal(t, ":8443", cfg.WebhookListen)
	require.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	require.Equal(t, 30*time.Second, cfg.TurnTimeout)
	require.False(t, cfg.TelegramDebug)
	require.NoError(t, cfg.Validate())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "token")
	t.Setenv("STORAGE", StorageSQLite)
	t.Setenv("HTTP_TIMEOUT", "3s")
	t.Setenv("TURN_TIMEOUT", "1m")
	t.Setenv("TELEGRAM_DEBUG", "true")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, StorageSQLite, cfg.Storage)
	require.Equal(t, 3*time.Second, cfg.HTTPTimeout)
	require.Equal(t, time.Minute, cfg.TurnTimeout)
	require.True(t, cfg.TelegramDebug)
	require.NoError(t, cfg.Validate())
}

func TestLoad_BadValues(t *testing.T) {
	t.Setenv("HTTP_TIMEOUT", "soon")
	_, err := Load()
	require.ErrorContains(t, err, "HTTP_TIMEOUT")

	t.Setenv("HTTP_TIMEOUT", "")
	t.Setenv("TELEGRAM_DEBUG", "maybe")
	_, err = Load()
	require.ErrorContains(t, err, "TELEGRAM_DEBUG")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"no token", Config{Storage: StorageMemory, LogFormat: "text"}, "TELEGRAM_TOKEN"},
		{"postgres without dsn", Config{TelegramToken: "t", Storage: StoragePostgres, LogFormat: "text"}, "DATABASE_DSN"},
		{"unknown storage", Config{TelegramToken: "t", Storage: "redis", LogFormat: "text"}, "unknown STORAGE"},
		{"unknown log format", Config{TelegramToken: "t", Storage: StorageMemory, LogFormat: "xml"}, "LOG_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorContains(t, tt.cfg.Validate(), tt.wantErr)
		})
	}
}
