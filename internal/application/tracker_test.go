package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"fitness-bot/internal/domain/entity"
)

func TestTrackerService_RequiresProfile(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.tracker.LogWater(ctx, 1, 1, "200")
	require.ErrorIs(t, err, entity.ErrProfileRequired)

	_, err = f.tracker.LogWorkout(ctx, 1, 1, "бег", "30")
	require.ErrorIs(t, err, entity.ErrProfileRequired)

	_, err = f.tracker.Progress(ctx, 1, 1)
	require.ErrorIs(t, err, entity.ErrProfileRequired)

	user, err := f.users.Get(ctx, 1, 1)
	require.NoError(t, err)
	require.Nil(t, user.Account)
}

func TestTrackerService_LogWater(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	_, err := f.setup(ctx, 1, "70", "175", "25", "60", "Москва")
	require.NoError(t, err)

	logged, err := f.tracker.LogWater(ctx, 1, 1, "200")
	require.NoError(t, err)
	require.Equal(t, entity.WaterLogged{AddedML: 200, RemainingML: 3400}, logged)

	logged, err = f.tracker.LogWater(ctx, 1, 1, "5000")
	require.NoError(t, err)
	require.Equal(t, 0, logged.RemainingML)

	snap, err := f.tracker.Progress(ctx, 1, 1)
	require.NoError(t, err)
	require.Equal(t, 5200, snap.WaterLogged)

	_, err = f.tracker.LogWater(ctx, 1, 1, "-50")
	var verr *entity.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, entity.FieldWater, verr.Field)
}

func TestTrackerService_LogWorkoutRejectsWithoutMutation(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	_, err := f.setup(ctx, 1, "70", "175", "25", "60", "Москва")
	require.NoError(t, err)

	_, err = f.tracker.LogWorkout(ctx, 1, 1, "йога", "30")
	var unknown *entity.UnknownWorkoutError
	require.ErrorAs(t, err, &unknown)

	for _, minutes := range []string{"0", "-30", "полчаса"} {
		_, err = f.tracker.LogWorkout(ctx, 1, 1, "бег", minutes)
		var verr *entity.ValidationError
		require.ErrorAs(t, err, &verr, minutes)
	}

	snap, err := f.tracker.Progress(ctx, 1, 1)
	require.NoError(t, err)
	require.Equal(t, 0, snap.CaloriesBurned)
	require.Equal(t, 0, snap.WaterLogged)
}

func TestTrackerService_LogWorkout(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	_, err := f.setup(ctx, 1, "70", "175", "25", "60", "Москва")
	require.NoError(t, err)

	logged, err := f.tracker.LogWorkout(ctx, 1, 1, "Плавание", "65")
	require.NoError(t, err)
	require.Equal(t, entity.WorkoutLogged{
		Workout:     entity.WorkoutSwimming,
		Minutes:     65,
		BurnedKcal:  520,
		WaterML:     400,
		RemainingML: 3200,
	}, logged)
}

func TestTrackerService_ProgressIsIdempotent(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	_, err := f.setup(ctx, 1, "70", "175", "25", "60", "Москва")
	require.NoError(t, err)
	_, err = f.tracker.LogWater(ctx, 1, 1, "250")
	require.NoError(t, err)

	first, err := f.tracker.Progress(ctx, 1, 1)
	require.NoError(t, err)
	second, err := f.tracker.Progress(ctx, 1, 1)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestTrackerService_HugeValuesRejectedWithoutMutation(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	_, err := f.setup(ctx, 1, "70", "175", "25", "60", "Москва")
	require.NoError(t, err)

	for _, amount := range []string{"9223372036854775807", "10001"} {
		_, err = f.tracker.LogWater(ctx, 1, 1, amount)
		var verr *entity.ValidationError
		require.ErrorAs(t, err, &verr, amount)
		require.Equal(t, entity.FieldWater, verr.Field)
	}

	_, err = f.tracker.LogWorkout(ctx, 1, 1, "бег", "1000000000000000000")
	var verr *entity.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, entity.FieldMinutes, verr.Field)

	logged, err := f.tracker.LogWater(ctx, 1, 1, "1")
	require.NoError(t, err)
	require.Equal(t, 3599, logged.RemainingML)

	snap, err := f.tracker.Progress(ctx, 1, 1)
	require.NoError(t, err)
	require.Equal(t, 1, snap.WaterLogged)
	require.Equal(t, 0, snap.CaloriesBurned)
}
