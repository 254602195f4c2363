package telegram

import (
	"context"
	"errors"
	"log/slog"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"

	app "fitness-bot/internal/application"
	"fitness-bot/internal/container"
	"fitness-bot/internal/domain/entity"
	"fitness-bot/internal/domain/port"
	"fitness-bot/internal/infrastructure/chart"
)

// sender отправляет ответы; его реализует *tgbotapi.BotAPI.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// Handler обрабатывает обновления Telegram независимо от способа их получения.
type Handler struct {
	out         sender
	engine      *app.Engine
	food        *app.FoodService
	renderer    port.ProgressRenderer
	turnTimeout time.Duration
}

type turn struct {
	userID int64
	chatID int64
	log    *slog.Logger
}

func NewHandler(out sender, c *container.Container, turnTimeout time.Duration) *Handler {
	return &Handler{
		out:         out,
		engine:      c.Engine,
		food:        c.FoodService,
		renderer:    c.Renderer,
		turnTimeout: turnTimeout,
	}
}

var mainMenu = tgbotapi.NewInlineKeyboardMarkup(
	tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("Настроить профиль", cbSetProfile)),
	tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("Записать воду", cbLogWater)),
	tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("Записать еду", cbLogFood)),
	tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("Записать тренировку", cbLogWorkout)),
	tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("Посмотреть прогресс", cbCheckProgress)),
	tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("Команды", cbShowCommands)),
	tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("Получить рекомендации", cbRecommendations)),
)

// HandleUpdate обрабатывает одно обновление.
func (h *Handler) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	if h.turnTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.turnTimeout)
		defer cancel()
	}

	log := slog.With("requestID", uuid.NewString(), "updateID", update.UpdateID)

	switch {
	case update.CallbackQuery != nil:
		h.handleCallback(ctx, log, update.CallbackQuery)
	case update.Message != nil:
		h.handleMessage(ctx, log, update.Message)
	}
}

// handleMessage обрабатывает входящее сообщение
func (h *Handler) handleMessage(ctx context.Context, log *slog.Logger, msg *tgbotapi.Message) {
	if msg.From == nil || msg.Chat == nil {
		return
	}

	t := turn{userID: msg.From.ID, chatID: msg.Chat.ID}
	t.log = log.With("userID", t.userID)

	if !msg.IsCommand() {
		h.dispatch(ctx, t, entity.FreeText{Text: msg.Text})
		return
	}

	t.log.Debug("Command received", "command", msg.Command())

	switch msg.Command() {
	case "start":
		h.sendMenu(t, msgStart)
	case "help":
		h.send(t, msgHelp)
	case "get_recommendations":
		h.recommend(ctx, t)
	default:
		intent, err := parseCommand(msg.Command(), msg.CommandArguments())
		if errors.Is(err, errUnknownCommand) {
			h.send(t, msgUnknownCommand)
			return
		}
		if err != nil {
			text, _ := renderError(nil, err)
			h.send(t, text)
			return
		}
		h.dispatch(ctx, t, intent)
	}
}

// handleCallback обрабатывает нажатия кнопок главного меню
func (h *Handler) handleCallback(ctx context.Context, log *slog.Logger, cb *tgbotapi.CallbackQuery) {
	if cb.From == nil {
		return
	}

	// Отвечаем на callback чтобы убрать "часики"
	if _, err := h.out.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
		log.Warn("Failed to answer callback", "error", err)
	}

	t := turn{userID: cb.From.ID, chatID: cb.From.ID}
	if cb.Message != nil && cb.Message.Chat != nil {
		t.chatID = cb.Message.Chat.ID
	}
	t.log = log.With("userID", t.userID)

	switch cb.Data {
	case cbSetProfile:
		h.dispatch(ctx, t, entity.StartProfileSetup{})
	case cbLogWater:
		h.send(t, msgHintWater)
	case cbLogFood:
		h.send(t, msgHintFood)
	case cbLogWorkout:
		h.send(t, msgHintWorkout)
	case cbCheckProgress:
		h.dispatch(ctx, t, entity.QueryProgress{})
	case cbShowCommands:
		h.send(t, msgCommands)
	case cbRecommendations:
		h.recommend(ctx, t)
	default:
		t.log.Warn("Unknown callback", "data", cb.Data)
	}
}

// dispatch передаёт намерение в ядро и отвечает пользователю.
func (h *Handler) dispatch(ctx context.Context, t turn, intent entity.Intent) {
	out, err := h.engine.Handle(ctx, t.userID, t.chatID, intent)
	if err != nil {
		text, internal := renderError(intent, err)
		if internal {
			t.log.Error("Turn failed", "intent", intent.Name(), "error", err)
		} else {
			t.log.Debug("Turn rejected", "intent", intent.Name(), "error", err)
		}
		h.send(t, text)
		return
	}

	h.send(t, renderOutcome(out))

	if snapshot, ok := out.(entity.Snapshot); ok {
		h.sendChart(t, snapshot)
	}
}

func (h *Handler) recommend(ctx context.Context, t turn) {
	foods, err := h.food.Recommendations(ctx)
	if err != nil || len(foods) == 0 {
		if err != nil {
			t.log.Warn("Recommendations unavailable", "error", err)
		}
		h.send(t, msgNoRecommendation)
		return
	}
	h.send(t, renderRecommendations(foods))
}

func (h *Handler) sendChart(t turn, s entity.Snapshot) {
	png, err := h.renderer.RenderProgress(s)
	if err != nil {
		if errors.Is(err, chart.ErrRendererDisabled) {
			t.log.Debug("Chart renderer disabled")
		} else {
			t.log.Error("Failed to render chart", "error", err)
		}
		h.send(t, msgChartFailed)
		return
	}

	photo := tgbotapi.NewPhoto(t.chatID, tgbotapi.FileBytes{Name: "progress.png", Bytes: png})
	if _, err := h.out.Send(photo); err != nil {
		t.log.Error("Failed to send chart", "error", err)
	}
}

func (h *Handler) sendMenu(t turn, text string) {
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ReplyMarkup = mainMenu
	if _, err := h.out.Send(msg); err != nil {
		t.log.Error("Failed to send message", "error", err)
	}
}

// send отправляет текстовое сообщение
func (h *Handler) send(t turn, text string) {
	if _, err := h.out.Send(tgbotapi.NewMessage(t.chatID, text)); err != nil {
		t.log.Error("Failed to send message", "error", err)
	}
}
