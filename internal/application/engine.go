package app

import (
	"context"
	"fmt"
	"log/slog"

	"fitness-bot/internal/domain/entity"
)

// Engine направляет намерения пользователя в нужный сервис.
// Ход одного пользователя выполняется целиком под его блокировкой,
// ходы разных пользователей идут параллельно.
type Engine struct {
	users   *UserService
	profile *ProfileService
	food    *FoodService
	tracker *TrackerService
	locks   *keyedMutex
}

func NewEngine(users *UserService, profile *ProfileService, food *FoodService, tracker *TrackerService) *Engine {
	return &Engine{
		users:   users,
		profile: profile,
		food:    food,
		tracker: tracker,
		locks:   newKeyedMutex(),
	}
}

// Handle обрабатывает одно намерение. Возвращает результат либо ошибку одного из видов:
// *entity.ValidationError, *entity.UnknownWorkoutError, entity.ErrProfileRequired,
// entity.ErrLookupUnavailable, entity.ErrNoActiveDialog или ошибку хранилища.
func (e *Engine) Handle(ctx context.Context, userID, chatID int64, intent entity.Intent) (entity.Outcome, error) {
	unlock := e.locks.Lock(userID)
	defer unlock()

	slog.Debug("Engine Handle", "userID", userID, "intent", intent.Name())

	switch in := intent.(type) {
	case entity.StartProfileSetup:
		return outcome(e.profile.Start(ctx, userID, chatID))
	case entity.ProfileAnswer:
		return e.profile.Answer(ctx, userID, chatID, in.Text)
	case entity.LogWater:
		return outcome(e.tracker.LogWater(ctx, userID, chatID, in.Amount))
	case entity.LogWorkout:
		return outcome(e.tracker.LogWorkout(ctx, userID, chatID, in.Kind, in.Minutes))
	case entity.StartFoodLookup:
		return outcome(e.food.Lookup(ctx, userID, chatID, in.Query))
	case entity.FoodQuantityAnswer:
		return outcome(e.food.Quantity(ctx, userID, chatID, in.Text))
	case entity.QueryProgress:
		return outcome(e.tracker.Progress(ctx, userID, chatID))
	case entity.FreeText:
		return e.routeText(ctx, userID, chatID, in.Text)
	case entity.Cancel:
		if _, err := e.users.Cancel(ctx, userID, chatID); err != nil {
			return nil, err
		}
		return entity.Cancelled{}, nil
	default:
		return nil, fmt.Errorf("unsupported intent %T", intent)
	}
}

// routeText определяет по состоянию диалога, на какой вопрос отвечает пользователь.
func (e *Engine) routeText(ctx context.Context, userID, chatID int64, text string) (entity.Outcome, error) {
	user, err := e.users.Get(ctx, userID, chatID)
	if err != nil {
		return nil, err
	}

	switch {
	case user.Dialog.State.InSetup():
		return e.profile.Answer(ctx, userID, chatID, text)
	case user.Dialog.State == entity.StateAwaitingFoodQuantity:
		return outcome(e.food.Quantity(ctx, userID, chatID, text))
	default:
		return nil, entity.ErrNoActiveDialog
	}
}

func outcome[T entity.Outcome](o T, err error) (entity.Outcome, error) {
	if err != nil {
		return nil, err
	}
	return o, nil
}
