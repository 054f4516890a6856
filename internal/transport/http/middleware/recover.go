package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/pribylovaa/go-crm-service/internal/httperr"
	logctx "github.com/pribylovaa/go-crm-service/internal/pkg/log"
)

// Recover перехватывает panic, конвертирует в 500 и пишет унифицированный ответ.
// Детали паники не утекают на клиент.
func Recover() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logctx.From(r.Context()).
						LogAttrs(r.Context(), slog.LevelError, "panic",
							slog.String("path", r.URL.Path),
							slog.Any("reason", rec),
						)
					httperr.WriteError(w, r, fmt.Errorf("internal"))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
