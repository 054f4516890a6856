// httperr стандартизирует ответы об ошибках HTTP-слоя.
// На вход он принимает доменную ошибку (сентинелы пакетов service/storage),
// а на выход даёт:
//   - корректный HTTP-статус;
//   - краткое безопасное message без утечки деталей.
//
// Для 500 детали не покидают процесс: подлинная ошибка пишется
// в операторский лог, клиент видит единое "internal server error".
package httperr

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/pribylovaa/go-crm-service/internal/pkg/log"
	"github.com/pribylovaa/go-crm-service/internal/service"
	"github.com/pribylovaa/go-crm-service/internal/storage"
)

// Response — единый формат тела ошибки.
// Details присутствует только у ошибок валидации (карта "поле -> сообщение").
// RequestID прокидывается из X-Request-Id, если он есть (для трассировки).
type Response struct {
	Error     string            `json:"error"`
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}

// ToHTTP конвертирует доменную ошибку в HTTP-статус и безопасное сообщение.
//
// Маппинг:
//   - ErrInvalidCredentials/ErrInvalidToken/ErrTokenExpired -> 401;
//   - ErrEmailTaken -> 409;
//   - storage.ErrNotFound -> 404;
//   - прочее (включая err == nil — программная ошибка вызова) -> 500.
func ToHTTP(err error) (int, Response) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, Response{Error: "internal server error"}
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized, Response{Error: "invalid credentials"}
	case errors.Is(err, service.ErrTokenExpired):
		return http.StatusUnauthorized, Response{Error: "token expired"}
	case errors.Is(err, service.ErrInvalidToken):
		return http.StatusUnauthorized, Response{Error: "invalid token"}
	case errors.Is(err, service.ErrEmailTaken):
		return http.StatusConflict, Response{Error: "user with this email already exists"}
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound, Response{Error: "not found"}
	default:
		return http.StatusInternalServerError, Response{Error: "internal server error"}
	}
}

// WriteError — хелпер для HTTP-хендлеров.
// Пишет корректный статус/тело, добавляет request_id из заголовка, если он есть.
// Для 500 логирует исходную ошибку.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)

	if status == http.StatusInternalServerError && err != nil {
		log.From(r.Context()).LogAttrs(r.Context(), slog.LevelError, "internal_error",
			slog.String("path", r.URL.Path),
			slog.String("err", err.Error()),
		)
	}

	writeResponse(w, r, status, resp)
}

// WriteValidation пишет ответ 400 с картой ошибок по полям.
func WriteValidation(w http.ResponseWriter, r *http.Request, details map[string]string) {
	writeResponse(w, r, http.StatusBadRequest, Response{
		Error:   "validation failed",
		Details: details,
	})
}

// WriteUnauthorized пишет ответ 401 с заданной причиной.
// Используется мидлваром аутентификации для случаев "токена нет/формат не тот",
// когда доменной ошибки ещё не существует.
func WriteUnauthorized(w http.ResponseWriter, r *http.Request, reason string) {
	writeResponse(w, r, http.StatusUnauthorized, Response{Error: reason})
}

// WriteBadRequest пишет ответ 400 с заданной причиной (битый JSON и т.п.).
func WriteBadRequest(w http.ResponseWriter, r *http.Request, reason string) {
	writeResponse(w, r, http.StatusBadRequest, Response{Error: reason})
}

func writeResponse(w http.ResponseWriter, r *http.Request, status int, resp Response) {
	// Прокидываем request_id, чтобы фронт мог репортить баги с привязкой.
	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
