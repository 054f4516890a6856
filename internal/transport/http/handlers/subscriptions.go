package handlers

import (
	"net/http"

	"github.com/pribylovaa/go-crm-service/internal/httperr"
	"github.com/pribylovaa/go-crm-service/internal/models"
	"github.com/pribylovaa/go-crm-service/internal/validation"
)

// ListSubscriptions — GET /newsletter-blogs.
// Отдаёт список как есть, без обёртки.
func (h *Handlers) ListSubscriptions(w http.ResponseWriter, r *http.Request) {
	subs, err := h.Service.ListSubscriptions(r.Context())
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	if subs == nil {
		subs = []models.NewsletterBlog{}
	}

	writeJSON(w, http.StatusOK, subs)
}

// CreateSubscription — POST /newsletter-blogs.
// 201 с созданной записью.
func (h *Handlers) CreateSubscription(w http.ResponseWriter, r *http.Request) {
	var in validation.NewsletterBlogRequest
	if err := decodeBody(r, &in); err != nil {
		httperr.WriteBadRequest(w, r, "invalid request body")
		return
	}

	if details := validation.Check(&in); details != nil {
		httperr.WriteValidation(w, r, details)
		return
	}

	sub, err := h.Service.CreateSubscription(r.Context(), &models.NewsletterBlog{
		Email:        in.Email,
		Name:         in.Name,
		SubscribedAt: in.SubscribedAt,
	})
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, sub)
}
