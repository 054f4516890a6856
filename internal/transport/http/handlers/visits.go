package handlers

import (
	"net/http"

	"github.com/pribylovaa/go-crm-service/internal/httperr"
	"github.com/pribylovaa/go-crm-service/internal/models"
	"github.com/pribylovaa/go-crm-service/internal/validation"
)

// visitListResponse — тело ответа на GET /website-visits.
type visitListResponse struct {
	Data  []models.WebsiteVisit `json:"data"`
	Count int                   `json:"count"`
}

// visitCreateResponse — тело ответа 201 на POST /website-visits.
type visitCreateResponse struct {
	Message string               `json:"message"`
	Data    *models.WebsiteVisit `json:"data"`
}

// ListVisits — GET /website-visits.
func (h *Handlers) ListVisits(w http.ResponseWriter, r *http.Request) {
	visits, err := h.Service.ListVisits(r.Context())
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	if visits == nil {
		visits = []models.WebsiteVisit{}
	}

	writeJSON(w, http.StatusOK, visitListResponse{
		Data:  visits,
		Count: len(visits),
	})
}

// CreateVisit — POST /website-visits.
func (h *Handlers) CreateVisit(w http.ResponseWriter, r *http.Request) {
	var in validation.WebsiteVisitRequest
	if err := decodeBody(r, &in); err != nil {
		httperr.WriteBadRequest(w, r, "invalid request body")
		return
	}

	if details := validation.Check(&in); details != nil {
		httperr.WriteValidation(w, r, details)
		return
	}

	visit, err := h.Service.CreateVisit(r.Context(), &models.WebsiteVisit{
		URL:       in.URL,
		Referrer:  in.Referrer,
		UserAgent: in.UserAgent,
		IPAddress: in.IPAddress,
	})
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, visitCreateResponse{
		Message: "Website visit record created successfully",
		Data:    visit,
	})
}
