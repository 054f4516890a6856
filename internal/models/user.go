package models

import (
	"time"

	"github.com/google/uuid"
)

// User — модель пользователя (сотрудника) в системе.
// PasswordHash никогда не сериализуется наружу (json:"-").
type User struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
}
