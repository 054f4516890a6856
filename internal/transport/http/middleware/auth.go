package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/pribylovaa/go-crm-service/internal/httperr"
	"github.com/pribylovaa/go-crm-service/internal/models"
)

// TokenVerifier проверяет access-токен и возвращает его утверждения.
// Реализуется сервисным слоем (service.Service).
type TokenVerifier interface {
	VerifyToken(token string) (*models.AuthClaims, error)
}

type claimsKey struct{}

// Auth требует валидный Bearer-токен в Authorization.
// Префикс "Bearer " проверяется буквально (регистр и единственный пробел
// значимы); отсутствие заголовка, чужая схема или пустой токен — 401 ещё
// до того, как запрос дойдёт до валидации тела или хранилища.
// Проверенные claims кладутся в контекст запроса.
func Auth(verifier TokenVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const prefix = "Bearer "

			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, prefix) {
				httperr.WriteUnauthorized(w, r, "authorization required")
				return
			}

			token := header[len(prefix):]
			if token == "" {
				httperr.WriteUnauthorized(w, r, "authorization required")
				return
			}

			claims, err := verifier.VerifyToken(token)
			if err != nil {
				httperr.WriteError(w, r, err)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey{}, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext достаёт утверждения аутентифицированного пользователя,
// положенные мидлваром Auth.
func ClaimsFromContext(ctx context.Context) (*models.AuthClaims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*models.AuthClaims)
	return claims, ok
}
