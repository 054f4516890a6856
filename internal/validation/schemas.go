package validation

import "time"

// Схемы эндпойнтов. Каждая структура — это и контракт тела запроса,
// и его нормализованный результат: лишние поля отсекаются строгим
// декодером на транспорте, отсутствующие опциональные остаются нулевыми.

// RegisterRequest — тело POST /auth/register.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=1"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest — тело POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// WebsiteVisitRequest — тело POST /website-visits.
type WebsiteVisitRequest struct {
	URL       string `json:"url" validate:"required,url"`
	Referrer  string `json:"referrer,omitempty"`
	UserAgent string `json:"user_agent,omitempty"`
	IPAddress string `json:"ip_address,omitempty"`
}

// NewsletterBlogRequest — тело POST /newsletter-blogs.
type NewsletterBlogRequest struct {
	Email        string     `json:"email" validate:"required,email"`
	Name         string     `json:"name,omitempty"`
	SubscribedAt *time.Time `json:"subscribed_at,omitempty"`
}
