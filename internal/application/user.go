package app

import (
	"context"
	"fmt"

	"fitness-bot/internal/domain/entity"
	"fitness-bot/internal/domain/port"
)

type UserService struct {
	repo port.UserRepository
}

func NewUserService(repo port.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) Get(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	user, err := s.repo.Get(ctx, userID, chatID)
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", userID, err)
	}
	return user, nil
}

func (s *UserService) Save(ctx context.Context, user *entity.User) error {
	if err := s.repo.Save(ctx, user); err != nil {
		return fmt.Errorf("save user %d: %w", user.ID, err)
	}
	return nil
}

// Cancel прерывает диалог и стирает черновик; профиль и журнал не трогает.
func (s *UserService) Cancel(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	user, err := s.Get(ctx, userID, chatID)
	if err != nil {
		return nil, err
	}

	user.Dialog.Reset()
	if err := s.Save(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
