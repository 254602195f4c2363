package app

import (
	"context"

	"fitness-bot/internal/domain/entity"
)

// TrackerService записывает воду и тренировки и показывает прогресс.
type TrackerService struct {
	users *UserService
}

func NewTrackerService(users *UserService) *TrackerService {
	return &TrackerService{users: users}
}

// LogWater добавляет выпитую воду в журнал.
func (s *TrackerService) LogWater(ctx context.Context, userID, chatID int64, amount string) (entity.WaterLogged, error) {
	ml, err := entity.ParseNonNegative(entity.FieldWater, amount)
	if err != nil {
		return entity.WaterLogged{}, err
	}

	user, err := s.configuredUser(ctx, userID, chatID)
	if err != nil {
		return entity.WaterLogged{}, err
	}

	user.Account.Ledger.WaterML += ml
	if err := s.users.Save(ctx, user); err != nil {
		return entity.WaterLogged{}, err
	}

	return entity.WaterLogged{AddedML: ml, RemainingML: user.Account.WaterRemaining()}, nil
}

// LogWorkout записывает тренировку: сожжённые калории и дополнительную воду.
func (s *TrackerService) LogWorkout(ctx context.Context, userID, chatID int64, kind, minutes string) (entity.WorkoutLogged, error) {
	workout, err := entity.LookupWorkout(kind)
	if err != nil {
		return entity.WorkoutLogged{}, err
	}

	mins, err := entity.ParsePositive(entity.FieldMinutes, minutes)
	if err != nil {
		return entity.WorkoutLogged{}, err
	}

	user, err := s.configuredUser(ctx, userID, chatID)
	if err != nil {
		return entity.WorkoutLogged{}, err
	}

	burned := workout.Burned(mins)
	water := workout.ExtraWater(mins)
	user.Account.Ledger.BurnedKcal += burned
	user.Account.Ledger.WaterML += water
	if err := s.users.Save(ctx, user); err != nil {
		return entity.WorkoutLogged{}, err
	}

	return entity.WorkoutLogged{
		Workout:     workout,
		Minutes:     mins,
		BurnedKcal:  burned,
		WaterML:     water,
		RemainingML: user.Account.WaterRemaining(),
	}, nil
}

// Progress возвращает срез прогресса без изменения состояния.
func (s *TrackerService) Progress(ctx context.Context, userID, chatID int64) (entity.Snapshot, error) {
	user, err := s.configuredUser(ctx, userID, chatID)
	if err != nil {
		return entity.Snapshot{}, err
	}
	return user.Account.Snapshot(), nil
}

func (s *TrackerService) configuredUser(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	user, err := s.users.Get(ctx, userID, chatID)
	if err != nil {
		return nil, err
	}
	if !user.Configured() {
		return nil, entity.ErrProfileRequired
	}
	return user, nil
}
