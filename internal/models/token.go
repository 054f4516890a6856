package models

import (
	"time"

	"github.com/google/uuid"
)

// AuthClaims — проверенные утверждения из access-токена.
// Не персистятся: живут только в рамках одного запроса.
type AuthClaims struct {
	UserID    uuid.UUID
	Email     string
	Name      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
