package storage

import (
	"context"
	"sync"

	"fitness-bot/internal/domain/entity"
	"fitness-bot/internal/domain/port"
)

// MemoryUserRepository in-memory хранилище пользователей.
// Наружу отдаются только копии: изменения видны другим читателям лишь после Save.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[int64]*entity.User
}

// NewMemoryUserRepository создаёт новое in-memory хранилище
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		users: make(map[int64]*entity.User),
	}
}

// Get возвращает пользователя по ID, создаёт нового если не найден
func (r *MemoryUserRepository) Get(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	r.mu.RLock()
	user, exists := r.users[userID]
	r.mu.RUnlock()

	if exists {
		return user.Clone(), nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Пользователя могли создать, пока мы ждали блокировку
	if user, exists := r.users[userID]; exists {
		return user.Clone(), nil
	}

	newUser := entity.NewUser(userID, chatID)
	r.users[userID] = newUser

	return newUser.Clone(), nil
}

// Save сохраняет состояние пользователя
func (r *MemoryUserRepository) Save(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	r.users[user.ID] = user.Clone()
	r.mu.Unlock()

	return nil
}

// Проверка реализации интерфейса
var _ port.UserRepository = (*MemoryUserRepository)(nil)
