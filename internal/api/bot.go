package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"fitness-bot/internal/container"
)

// Options задаёт параметры запуска бота.
type Options struct {
	Debug       bool
	TurnTimeout time.Duration
}

// Bot представляет Telegram-бота
type Bot struct {
	api     *tgbotapi.BotAPI
	handler *Handler
	wg      sync.WaitGroup
}

// NewBot создаёт нового бота
func NewBot(token string, c *container.Container, opts Options) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create bot api: %w", err)
	}
	api.Debug = opts.Debug

	slog.Info("Authorized on account", "username", api.Self.UserName)

	return &Bot{
		api:     api,
		handler: NewHandler(api, c, opts.TurnTimeout),
	}, nil
}

// Run получает обновления через long polling до отмены ctx.
// Обновления обрабатываются параллельно, порядок ходов одного пользователя
// обеспечивает блокировка в ядре.
func (b *Bot) Run(ctx context.Context) error {
	// Polling не работает при установленном webhook
	if _, err := b.api.Request(tgbotapi.DeleteWebhookConfig{}); err != nil {
		return fmt.Errorf("delete webhook: %w", err)
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	defer b.wg.Wait()
	defer b.api.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.dispatch(ctx, update)
		}
	}
}

// RunWebhook регистрирует webhook и принимает обновления по HTTP до отмены ctx.
func (b *Bot) RunWebhook(ctx context.Context, publicURL, listen string) error {
	u, err := url.Parse(publicURL)
	if err != nil {
		return fmt.Errorf("parse webhook url: %w", err)
	}

	wh, err := tgbotapi.NewWebhook(publicURL)
	if err != nil {
		return fmt.Errorf("build webhook: %w", err)
	}
	if _, err := b.api.Request(wh); err != nil {
		return fmt.Errorf("set webhook: %w", err)
	}

	path := u.Path
	if path == "" {
		path = "/"
	}

	mux := http.NewServeMux()
	mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		update, err := b.api.HandleUpdate(r)
		if err != nil {
			slog.Warn("Bad webhook request", "error", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusOK)
		b.dispatch(ctx, *update)
	})

	srv := &http.Server{
		Addr:              listen,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Webhook server shutdown failed", "error", err)
		}
	}()

	slog.Info("Webhook server listening", "addr", listen, "path", path)

	defer b.wg.Wait()
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("webhook server: %w", err)
	}
	return nil
}

// dispatch запускает обработку обновления. Начатый ход доводится до конца
// и после остановки бота, его ограничивает только TurnTimeout.
func (b *Bot) dispatch(ctx context.Context, update tgbotapi.Update) {
	ctx = context.WithoutCancel(ctx)
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		b.handler.HandleUpdate(ctx, update)
	}()
}
