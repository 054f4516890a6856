// handlers содержит REST-эндпойнты CRM-сервиса.
// Здесь выполняется только декодирование/валидация тела и маппинг данных
// и ошибок доменного слоя (service) в HTTP. Вся бизнес-логика — в service.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/pribylovaa/go-crm-service/internal/service"
)

// Handlers агрегирует зависимости (сервисный слой).
type Handlers struct {
	Service *service.Service
}

func New(s *service.Service) *Handlers {
	return &Handlers{Service: s}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через httperr.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeBody — JSON-декодер тела запроса в типизированную структуру.
// Неизвестные поля молча отбрасываются: типизированная структура и есть
// граница нормализации, дальше неё лишние данные не проходят.
func decodeBody(r *http.Request, value any) error {
	return json.NewDecoder(r.Body).Decode(value)
}
