package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/storylens/storylens-go/internal/middleware"
	"github.com/storylens/storylens-go/internal/model"
	"github.com/storylens/storylens-go/internal/service"
)

// SessionHandler handles HTTP requests for shooting sessions.
type SessionHandler struct {
	service *service.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(svc *service.SessionService) *SessionHandler {
	return &SessionHandler{service: svc}
}

// HandleCreate handles POST /api/v1/sessions requests.
func (h *SessionHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	var req model.CreateSessionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		if isSessionValidationError(err) {
			writeJSON(w, http.StatusUnprocessableEntity, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleList handles GET /api/v1/sessions requests with optional skip,
// limit, year and month query parameters.
func (h *SessionHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	query := service.ListSessionsQuery{}
	var err error
	if query.Skip, err = intParam(r, "skip", 0); err == nil {
		query.Limit, err = intParam(r, "limit", 0)
	}
	if err == nil {
		query.Year, err = optionalIntParam(r, "year")
	}
	if err == nil {
		query.Month, err = optionalIntParam(r, "month")
	}
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse(err.Error()))
		return
	}

	resp, err := h.service.List(r.Context(), userID, query)
	if err != nil {
		if isSessionValidationError(err) {
			writeJSON(w, http.StatusUnprocessableEntity, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	if resp == nil {
		resp = []model.SessionResponse{}
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleUpdateKeywords handles PATCH /api/v1/sessions/{session_id}/keywords requests.
func (h *SessionHandler) HandleUpdateKeywords(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	sessionID := chi.URLParam(r, "session_id")

	var req model.UpdateKeywordsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.UpdateKeywords(r.Context(), userID, sessionID, req.Keywords)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		case isSessionValidationError(err):
			writeJSON(w, http.StatusUnprocessableEntity, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func isSessionValidationError(err error) bool {
	return errors.Is(err, service.ErrTitleRequired) ||
		errors.Is(err, service.ErrInvalidDate) ||
		errors.Is(err, service.ErrKeywordTooLong) ||
		errors.Is(err, service.ErrTooManyKeywords) ||
		errors.Is(err, service.ErrMonthWithoutYear) ||
		errors.Is(err, service.ErrYearOutOfRange) ||
		errors.Is(err, service.ErrMonthOutOfRange)
}

func intParam(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New(name + " must be an integer")
	}
	return n, nil
}

func optionalIntParam(r *http.Request, name string) (*int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errors.New(name + " must be an integer")
	}
	return &n, nil
}
