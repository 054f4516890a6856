package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pribylovaa/go-crm-service/internal/service"
	"github.com/pribylovaa/go-crm-service/internal/transport/http/handlers"
	"github.com/pribylovaa/go-crm-service/internal/transport/http/middleware"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger  *slog.Logger
	Timeout time.Duration
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc *service.Service, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),            // безопасно ловим паники
		middleware.RequestID(),          // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // кладём request-scoped логгер в контекст и логируем
	)
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}

	h := handlers.New(svc)

	// Публичные маршруты: регистрация и вход.
	root.Post("/auth/register", h.Register)
	root.Post("/auth/login", h.Login)

	// Защищённые маршруты: короткое замыкание на 401 происходит в Auth,
	// до валидации тела и до обращения к хранилищу.
	root.Group(func(r chi.Router) {
		r.Use(middleware.Auth(svc))

		r.Get("/website-visits", h.ListVisits)
		r.Post("/website-visits", h.CreateVisit)

		r.Get("/newsletter-blogs", h.ListSubscriptions)
		r.Post("/newsletter-blogs", h.CreateSubscription)

		r.Get("/users", h.ListUsers)
	})

	return root
}
