package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/pribylovaa/go-crm-service/internal/models"
	"github.com/pribylovaa/go-crm-service/internal/pkg/log"
	"github.com/pribylovaa/go-crm-service/internal/storage"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// RegisterUser регистрирует нового пользователя.
// Формат полей уже проверен валидацией на транспорте; здесь только
// нормализация email, проверка занятости и запись.
//
// Предварительный lookup даёт быстрый путь для дубликата, но гарантия
// уникальности — уникальный индекс в БД: storage.ErrAlreadyExists при
// вставке тоже маппится в ErrEmailTaken.
func (s *Service) RegisterUser(ctx context.Context, name, email, password string) (*models.User, error) {
	const op = "service.auth.RegisterUser"

	normEmail := normalizeEmail(email)

	_, err := s.storage.UserByEmail(ctx, normEmail)
	if err == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrEmailTaken)
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	hashedPassword, err := hashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	user := &models.User{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(name),
		Email:        normEmail,
		PasswordHash: hashedPassword,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.storage.SaveUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, fmt.Errorf("%s: %w", op, ErrEmailTaken)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// LoginUser выполняет вход по email+пароль и выпускает access-токен.
// Любая причина отказа (нет пользователя, неверный пароль, битый хэш)
// схлопывается в ErrInvalidCredentials.
func (s *Service) LoginUser(ctx context.Context, email, password string) (*models.User, string, error) {
	const op = "service.auth.LoginUser"

	lg := log.From(ctx)

	user, err := s.storage.UserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, "", fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}

		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	if !checkPassword(user.PasswordHash, password) {
		return nil, "", fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	now := time.Now().UTC()

	token, err := s.issueToken(user, now)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	// Фиксация last_login не должна валить успешный вход.
	if err := s.storage.TouchLastLogin(ctx, user.ID, now); err != nil {
		lg.Warn("touch_last_login_failed",
			slog.String("op", op),
			slog.String("user_id", user.ID.String()),
			slog.String("err", err.Error()),
		)
	} else {
		user.LastLogin = &now
	}

	return user, token, nil
}

// hashPassword хэширует пароль с помощью bcrypt.
// Соль случайна на каждый вызов: повторные хэши одного пароля различаются.
func hashPassword(password string) (string, error) {
	const op = "service.auth.hashPassword"

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return string(bytes), nil
}

// checkPassword сравнивает пароль с хэшем.
// Любая ошибка bcrypt (включая битый хэш) — это false, без деталей наружу.
func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// normalizeEmail обрезает пробелы снаружи. Регистр не трогаем:
// email хранится и сравнивается ровно так, как его ввели.
func normalizeEmail(raw string) string {
	return strings.TrimSpace(raw)
}
