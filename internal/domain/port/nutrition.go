package port

import (
	"context"

	"fitness-bot/internal/domain/entity"
)

// NutritionLookup ищет продукт и его калорийность на 100 г.
type NutritionLookup interface {
	Lookup(ctx context.Context, query string) (entity.Food, error)
}

// FoodRecommender подбирает низкокалорийные продукты.
type FoodRecommender interface {
	LowCalorie(ctx context.Context) ([]entity.Food, error)
}
