package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"fitness-bot/config"
	telegram "fitness-bot/internal/api"
	"fitness-bot/internal/container"
	"fitness-bot/internal/domain/port"
	"fitness-bot/internal/infrastructure/chart"
	"fitness-bot/internal/infrastructure/nutrition"
	"fitness-bot/internal/infrastructure/storage"
	"fitness-bot/internal/infrastructure/weather"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Bot stopped with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	setupLogger(os.Stderr, cfg)

	if cfg.OpenWeatherAPIKey == "" {
		slog.Warn("OPENWEATHER_API_KEY is not set, profile setup will fail on the city step")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Создаём хранилище пользователей
	userRepo, closeRepo, err := openRepository(cfg)
	if err != nil {
		return err
	}
	defer closeRepo()

	foodFacts := nutrition.NewClient(cfg.OpenFoodFactsURL, cfg.HTTPTimeout)

	// Собираем сервисы приложения
	appContainer := container.New(
		userRepo,
		weather.NewClient(cfg.OpenWeatherAPIKey, cfg.OpenWeatherURL, cfg.HTTPTimeout),
		foodFacts,
		foodFacts,
		chart.NewRenderer(),
	)

	// Создаём бота
	bot, err := telegram.NewBot(cfg.TelegramToken, appContainer, telegram.Options{
		Debug:       cfg.TelegramDebug,
		TurnTimeout: cfg.TurnTimeout,
	})
	if err != nil {
		return err
	}

	if cfg.WebhookURL != "" {
		slog.Info("Bot is running", "mode", "webhook", "storage", cfg.Storage)
		return bot.RunWebhook(ctx, cfg.WebhookURL, cfg.WebhookListen)
	}

	slog.Info("Bot is running", "mode", "polling", "storage", cfg.Storage)
	return bot.Run(ctx)
}

func openRepository(cfg *config.Config) (port.UserRepository, func(), error) {
	switch cfg.Storage {
	case config.StorageSQLite, config.StoragePostgres:
		driver := storage.DriverSQLite
		if cfg.Storage == config.StoragePostgres {
			driver = storage.DriverPostgres
		}
		repo, err := storage.NewSQLUserRepository(driver, cfg.DatabaseDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("open %s storage: %w", cfg.Storage, err)
		}
		return repo, func() {
			if err := repo.Close(); err != nil {
				slog.Error("Failed to close storage", "error", err)
			}
		}, nil
	default:
		return storage.NewMemoryUserRepository(), func() {}, nil
	}
}

func setupLogger(w io.Writer, cfg *config.Config) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	slog.SetDefault(slog.New(handler))
}
