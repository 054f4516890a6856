package models

import (
	"time"

	"github.com/google/uuid"
)

// NewsletterBlog — подписка на рассылку/блог.
// SubscribedAt может отсутствовать (подписка без явной даты).
type NewsletterBlog struct {
	ID           uuid.UUID  `json:"id"`
	Email        string     `json:"email"`
	Name         string     `json:"name,omitempty"`
	SubscribedAt *time.Time `json:"subscribed_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}
