package handlers

import (
	"net/http"

	"github.com/pribylovaa/go-crm-service/internal/httperr"
	"github.com/pribylovaa/go-crm-service/internal/models"
)

// usersResponse — тело ответа на GET /users.
type usersResponse struct {
	Users []models.User `json:"users"`
}

// ListUsers — GET /users.
// Защищён тем же Bearer-мидлваром, что и остальные ресурсы.
func (h *Handlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Service.ListUsers(r.Context())
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	if users == nil {
		users = []models.User{}
	}

	writeJSON(w, http.StatusOK, usersResponse{Users: users})
}
