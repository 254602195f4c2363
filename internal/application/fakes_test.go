package app

import (
	"context"
	"errors"
	"sync"

	"fitness-bot/internal/domain/entity"
	"fitness-bot/internal/infrastructure/storage"
)

var errServiceDown = errors.New("service down")

type fakeWeather struct {
	mu    sync.Mutex
	temps map[string]float64
	calls []string
}

func (f *fakeWeather) Temperature(ctx context.Context, city string) (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, city)
	t, ok := f.temps[city]
	if !ok {
		return 0, errServiceDown
	}
	return t, nil
}

type fakeNutrition struct {
	foods map[string]entity.Food
}

func (f *fakeNutrition) Lookup(ctx context.Context, query string) (entity.Food, error) {
	food, ok := f.foods[query]
	if !ok {
		return entity.Food{}, errors.New("not found")
	}
	return food, nil
}

type fakeRecommender struct {
	foods []entity.Food
	err   error
}

func (f *fakeRecommender) LowCalorie(ctx context.Context) ([]entity.Food, error) {
	return f.foods, f.err
}

type fixture struct {
	users   *UserService
	profile *ProfileService
	food    *FoodService
	tracker *TrackerService
	engine  *Engine
	weather *fakeWeather
}

func newFixture() *fixture {
	weather := &fakeWeather{temps: map[string]float64{"Москва": 30, "Мурманск": 5}}
	nutrition := &fakeNutrition{foods: map[string]entity.Food{
		"банан": {Name: "Банан", KcalPer100g: 89},
		"рис":   {Name: "Рис отварной", KcalPer100g: 130},
	}}

	users := NewUserService(storage.NewMemoryUserRepository())
	profile := NewProfileService(users, weather)
	food := NewFoodService(users, nutrition, &fakeRecommender{})
	tracker := NewTrackerService(users)

	return &fixture{
		users:   users,
		profile: profile,
		food:    food,
		tracker: tracker,
		engine:  NewEngine(users, profile, food, tracker),
		weather: weather,
	}
}

// setup проходит настройку профиля целиком.
func (f *fixture) setup(ctx context.Context, userID int64, answers ...string) (entity.Outcome, error) {
	if _, err := f.profile.Start(ctx, userID, userID); err != nil {
		return nil, err
	}
	var (
		out entity.Outcome
		err error
	)
	for _, a := range answers {
		out, err = f.profile.Answer(ctx, userID, userID, a)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
