package port

import (
	"context"

	"fitness-bot/internal/domain/entity"
)

// UserRepository интерфейс хранилища пользователей
type UserRepository interface {
	// Get возвращает копию пользователя по ID, создаёт нового если не найден
	Get(ctx context.Context, userID, chatID int64) (*entity.User, error)

	// Save атомарно сохраняет пользователя целиком
	Save(ctx context.Context, user *entity.User) error
}
