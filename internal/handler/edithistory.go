package handler

import (
	"errors"
	"net/http"

	"github.com/storylens/storylens-go/internal/middleware"
	"github.com/storylens/storylens-go/internal/model"
	"github.com/storylens/storylens-go/internal/service"
)

// EditHistoryHandler handles HTTP requests for a photo's edit log.
type EditHistoryHandler struct {
	service *service.EditHistoryService
}

// NewEditHistoryHandler creates a new EditHistoryHandler.
func NewEditHistoryHandler(svc *service.EditHistoryService) *EditHistoryHandler {
	return &EditHistoryHandler{service: svc}
}

// HandleList handles GET /api/photos/{photo_id}/edits requests.
func (h *EditHistoryHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	photoID, ok := photoIDParam(w, r)
	if !ok {
		return
	}

	resp, err := h.service.List(r.Context(), userID, photoID)
	if err != nil {
		writeEditHistoryError(w, err)
		return
	}

	if resp == nil {
		resp = []model.EditHistoryResponse{}
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleCreate handles POST /api/photos/{photo_id}/edits requests.
func (h *EditHistoryHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	photoID, ok := photoIDParam(w, r)
	if !ok {
		return
	}

	var req model.CreateEditRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.Create(r.Context(), userID, photoID, req)
	if err != nil {
		writeEditHistoryError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// writeEditHistoryError maps edit history errors onto status codes. Here a
// foreign photo is a 403, not a 404: the photo's existence is acknowledged
// but access refused.
func writeEditHistoryError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrPhotoNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
	case errors.Is(err, service.ErrNotPhotoOwner):
		writeJSON(w, http.StatusForbidden, errorResponse(err.Error()))
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
	}
}
