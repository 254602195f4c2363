package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"fitness-bot/internal/domain/entity"
	"fitness-bot/internal/domain/port"
)

// setupStep описывает числовой шаг настройки профиля.
type setupStep struct {
	next  entity.DialogState
	parse func(text string) (int, error)
	apply func(d *entity.ProfileDraft, v int)
}

var setupSteps = map[entity.DialogState]setupStep{
	entity.StateAwaitingWeight: {
		next:  entity.StateAwaitingHeight,
		parse: func(text string) (int, error) { return entity.ParsePositive(entity.FieldWeight, text) },
		apply: func(d *entity.ProfileDraft, v int) { d.WeightKg = v },
	},
	entity.StateAwaitingHeight: {
		next:  entity.StateAwaitingAge,
		parse: func(text string) (int, error) { return entity.ParsePositive(entity.FieldHeight, text) },
		apply: func(d *entity.ProfileDraft, v int) { d.HeightCm = v },
	},
	entity.StateAwaitingAge: {
		next:  entity.StateAwaitingActivity,
		parse: func(text string) (int, error) { return entity.ParsePositive(entity.FieldAge, text) },
		apply: func(d *entity.ProfileDraft, v int) { d.AgeYears = v },
	},
	entity.StateAwaitingActivity: {
		next:  entity.StateAwaitingCity,
		parse: func(text string) (int, error) { return entity.ParseNonNegative(entity.FieldActivity, text) },
		apply: func(d *entity.ProfileDraft, v int) { d.ActivityMinutes = v },
	},
}

// advanceSetup применяет ответ на числовой шаг. При ошибке диалог возвращается без изменений.
func advanceSetup(d entity.Dialog, text string) (entity.Dialog, error) {
	step, ok := setupSteps[d.State]
	if !ok {
		return d, entity.ErrNoActiveDialog
	}

	v, err := step.parse(text)
	if err != nil {
		return d, err
	}

	step.apply(&d.Draft, v)
	d.State = step.next
	return d, nil
}

// ProfileService ведёт пользователя по шагам настройки профиля.
type ProfileService struct {
	users   *UserService
	weather port.WeatherLookup
}

func NewProfileService(users *UserService, weather port.WeatherLookup) *ProfileService {
	return &ProfileService{users: users, weather: weather}
}

// Start начинает настройку заново из любого состояния.
func (s *ProfileService) Start(ctx context.Context, userID, chatID int64) (entity.SetupPrompt, error) {
	user, err := s.users.Get(ctx, userID, chatID)
	if err != nil {
		return entity.SetupPrompt{}, err
	}

	user.Dialog = entity.Dialog{State: entity.StateAwaitingWeight}
	if err := s.users.Save(ctx, user); err != nil {
		return entity.SetupPrompt{}, err
	}

	return entity.SetupPrompt{State: entity.StateAwaitingWeight}, nil
}

// Answer принимает ответ на текущий шаг. Возвращает SetupPrompt со следующим
// шагом или ProfileSaved после ввода города.
func (s *ProfileService) Answer(ctx context.Context, userID, chatID int64, text string) (entity.Outcome, error) {
	user, err := s.users.Get(ctx, userID, chatID)
	if err != nil {
		return nil, err
	}

	if user.Dialog.State == entity.StateAwaitingCity {
		return s.complete(ctx, user, text)
	}

	dialog, err := advanceSetup(user.Dialog, text)
	if err != nil {
		return nil, err
	}

	user.Dialog = dialog
	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}

	return entity.SetupPrompt{State: dialog.State}, nil
}

// complete запрашивает погоду, рассчитывает нормы и заменяет профиль целиком.
func (s *ProfileService) complete(ctx context.Context, user *entity.User, text string) (entity.Outcome, error) {
	city := strings.TrimSpace(text)
	if city == "" {
		return nil, &entity.ValidationError{Field: entity.FieldCity, Message: "Пожалуйста, введите название города."}
	}

	temperature, err := s.weather.Temperature(ctx, city)
	if err != nil {
		slog.Warn("Weather lookup failed, setup aborted", "error", err, "userID", user.ID, "city", city)

		// Сброс сохраняем, даже если истёк контекст хода
		user.Dialog.Reset()
		if saveErr := s.users.Save(context.WithoutCancel(ctx), user); saveErr != nil {
			return nil, saveErr
		}
		return nil, fmt.Errorf("weather for %q: %w: %w", city, entity.ErrLookupUnavailable, err)
	}

	profile := user.Dialog.Draft.Complete(city)
	goals := entity.ComputeGoals(profile, temperature)

	user.Account = entity.NewAccount(profile, goals)
	user.Dialog.Reset()
	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}

	slog.Info("Profile saved", "userID", user.ID, "waterGoal", goals.WaterML, "calorieGoal", goals.CaloriesKcal)
	return entity.ProfileSaved{Profile: profile, Goals: goals, TemperatureC: temperature}, nil
}
