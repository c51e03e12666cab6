package handler

import (
	"net/http"

	"github.com/storylens/storylens-go/internal/middleware"
	"github.com/storylens/storylens-go/internal/service"
)

// FilterHandler handles HTTP requests for filter presets.
type FilterHandler struct {
	service *service.FilterService
}

// NewFilterHandler creates a new FilterHandler.
func NewFilterHandler(svc *service.FilterService) *FilterHandler {
	return &FilterHandler{service: svc}
}

// HandleList handles GET /api/filters requests.
func (h *FilterHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.UserIDFromContext(r.Context()); !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	writeJSON(w, http.StatusOK, h.service.List())
}
