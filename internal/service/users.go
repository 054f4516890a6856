package service

import (
	"context"
	"fmt"

	"github.com/pribylovaa/go-crm-service/internal/models"
)

// ListUsers возвращает всех пользователей, новые первыми.
// Хэши паролей в ответ не попадают: поле помечено json:"-" в модели.
func (s *Service) ListUsers(ctx context.Context) ([]models.User, error) {
	const op = "service.users.ListUsers"

	users, err := s.storage.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return users, nil
}
