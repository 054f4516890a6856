package models

import (
	"time"

	"github.com/google/uuid"
)

// WebsiteVisit — запись о визите на сайт.
// Поля кроме URL опциональны и могут быть пустыми.
type WebsiteVisit struct {
	ID        uuid.UUID `json:"id"`
	URL       string    `json:"url"`
	Referrer  string    `json:"referrer,omitempty"`
	UserAgent string    `json:"user_agent,omitempty"`
	IPAddress string    `json:"ip_address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
