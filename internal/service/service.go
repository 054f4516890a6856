// service содержит бизнес-логику CRM-сервиса:
// регистрацию/аутентификацию пользователей, выпуск/проверку токенов
// и операции над визитами и подписками через интерфейсы из пакета storage.
//
// Основные аспекты:
//   - Пакет не хранит состояние запроса внутри Service; экземпляр Service
//     безопасен для конкурентного использования из разных горутин при условии,
//     что переданное хранилище (storage.Storage) потокобезопасно.
//   - Секрет подписи токенов читается из конфигурации один раз и не меняется.
//   - Ошибки возвращаются и далее маппятся HTTP-слоем на статусы
//     (см. комментарии к переменным ошибок ниже).
package service

import (
	"errors"

	"github.com/pribylovaa/go-crm-service/internal/config"
	"github.com/pribylovaa/go-crm-service/internal/storage"
)

var (
	// ErrInvalidCredentials — пара email/пароль неверна или пользователь не найден.
	// Причина намеренно не уточняется, чтобы не давать оракула перебора. HTTP 401.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken — токен некорректен по формату/подписи. HTTP 401.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired — срок действия токена истёк. HTTP 401.
	ErrTokenExpired = errors.New("token expired")

	// ErrEmailTaken — e-mail уже занят другим пользователем. HTTP 409.
	ErrEmailTaken = errors.New("email already taken")
)

// Service описывает бизнес-логику CRM-сервиса.
type Service struct {
	storage storage.Storage
	cfg     config.AuthConfig
}

// New создаёт новый экземпляр Service.
func New(storage storage.Storage, cfg config.AuthConfig) *Service {
	return &Service{
		storage: storage,
		cfg:     cfg,
	}
}
