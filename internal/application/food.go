package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"fitness-bot/internal/domain/entity"
	"fitness-bot/internal/domain/port"
)

const maxRecommendations = 5

// FoodService ищет продукты и записывает съеденные калории.
type FoodService struct {
	users       *UserService
	nutrition   port.NutritionLookup
	recommender port.FoodRecommender
}

func NewFoodService(users *UserService, nutrition port.NutritionLookup, recommender port.FoodRecommender) *FoodService {
	return &FoodService{users: users, nutrition: nutrition, recommender: recommender}
}

// Lookup ищет продукт и переводит пользователя к вводу граммов.
// Если продукт не найден, состояние диалога не меняется.
func (s *FoodService) Lookup(ctx context.Context, userID, chatID int64, query string) (entity.FoodFound, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return entity.FoodFound{}, &entity.ValidationError{Field: entity.FieldFood, Message: "Пожалуйста, укажите название продукта."}
	}

	user, err := s.users.Get(ctx, userID, chatID)
	if err != nil {
		return entity.FoodFound{}, err
	}

	food, err := s.nutrition.Lookup(ctx, query)
	if err != nil {
		slog.Warn("Food lookup failed", "error", err, "userID", userID, "query", query)
		return entity.FoodFound{}, fmt.Errorf("food %q: %w: %w", query, entity.ErrLookupUnavailable, err)
	}

	user.Dialog = entity.Dialog{State: entity.StateAwaitingFoodQuantity, Food: &food}
	if err := s.users.Save(ctx, user); err != nil {
		return entity.FoodFound{}, err
	}

	return entity.FoodFound{Food: food}, nil
}

// Quantity принимает количество грамм и записывает калории в журнал.
// После корректного ввода диалог закрывается, даже если профиля нет.
func (s *FoodService) Quantity(ctx context.Context, userID, chatID int64, text string) (entity.FoodLogged, error) {
	user, err := s.users.Get(ctx, userID, chatID)
	if err != nil {
		return entity.FoodLogged{}, err
	}

	food := user.Dialog.Food
	if user.Dialog.State != entity.StateAwaitingFoodQuantity || food == nil {
		return entity.FoodLogged{}, entity.ErrNoActiveDialog
	}

	grams, err := entity.ParseNonNegative(entity.FieldGrams, text)
	if err != nil {
		return entity.FoodLogged{}, err
	}

	consumed := food.Calories(grams)
	user.Dialog.Reset()

	if !user.Configured() {
		if err := s.users.Save(ctx, user); err != nil {
			return entity.FoodLogged{}, err
		}
		return entity.FoodLogged{}, entity.ErrProfileRequired
	}

	user.Account.Ledger.CaloriesKcal += consumed
	if err := s.users.Save(ctx, user); err != nil {
		return entity.FoodLogged{}, err
	}

	return entity.FoodLogged{
		Food:         *food,
		Grams:        grams,
		ConsumedKcal: consumed,
		TotalKcal:    user.Account.Ledger.CaloriesKcal,
	}, nil
}

// Recommendations возвращает несколько низкокалорийных продуктов.
func (s *FoodService) Recommendations(ctx context.Context) ([]entity.Food, error) {
	if s.recommender == nil {
		return nil, errors.New("food recommender is not configured")
	}

	foods, err := s.recommender.LowCalorie(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entity.ErrLookupUnavailable, err)
	}
	if len(foods) > maxRecommendations {
		foods = foods[:maxRecommendations]
	}
	return foods, nil
}
