package handlers

import (
	"net/http"

	"github.com/pribylovaa/go-crm-service/internal/httperr"
	"github.com/pribylovaa/go-crm-service/internal/models"
	"github.com/pribylovaa/go-crm-service/internal/validation"
)

// registerResponse — тело ответа 201 на регистрацию.
// Хэш пароля не попадает в ответ: поле модели помечено json:"-".
type registerResponse struct {
	Message string       `json:"message"`
	User    *models.User `json:"user"`
}

// loginUser — усечённое представление пользователя в ответе на вход.
type loginUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// loginResponse — тело ответа 200 на вход.
type loginResponse struct {
	User  loginUser `json:"user"`
	Token string    `json:"token"`
}

// Register — POST /auth/register.
// 400 + details при непрошедшей схеме; 409 при занятом email.
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var in validation.RegisterRequest
	if err := decodeBody(r, &in); err != nil {
		httperr.WriteBadRequest(w, r, "invalid request body")
		return
	}

	if details := validation.Check(&in); details != nil {
		httperr.WriteValidation(w, r, details)
		return
	}

	user, err := h.Service.RegisterUser(r.Context(), in.Name, in.Email, in.Password)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, registerResponse{
		Message: "User registered successfully",
		User:    user,
	})
}

// Login — POST /auth/login.
// 401 и для неизвестного email, и для неверного пароля — без различий.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var in validation.LoginRequest
	if err := decodeBody(r, &in); err != nil {
		httperr.WriteBadRequest(w, r, "invalid request body")
		return
	}

	if details := validation.Check(&in); details != nil {
		httperr.WriteValidation(w, r, details)
		return
	}

	user, token, err := h.Service.LoginUser(r.Context(), in.Email, in.Password)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		User: loginUser{
			ID:    user.ID.String(),
			Email: user.Email,
			Name:  user.Name,
		},
		Token: token,
	})
}
