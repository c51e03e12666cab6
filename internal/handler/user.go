package handler

import (
	"errors"
	"net/http"

	"github.com/storylens/storylens-go/internal/middleware"
	"github.com/storylens/storylens-go/internal/model"
	"github.com/storylens/storylens-go/internal/service"
)

// UserHandler handles HTTP requests for user profiles and student accounts.
type UserHandler struct {
	service *service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{service: svc}
}

// HandleMe handles GET /api/v1/users/me requests.
func (h *UserHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	resp, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleCreateStudent handles POST /api/v1/users requests. Teacher only:
// the new student is linked to the calling teacher.
func (h *UserHandler) HandleCreateStudent(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	var req model.CreateStudentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.CreateStudent(r.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTeacherRequired):
			writeJSON(w, http.StatusForbidden, errorResponse(err.Error()))
		case errors.Is(err, service.ErrEmailTaken):
			writeJSON(w, http.StatusConflict, errorResponse(err.Error()))
		case errors.Is(err, service.ErrNameRequired),
			errors.Is(err, service.ErrEmailRequired),
			errors.Is(err, service.ErrPasswordRequired):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleListStudents handles GET /api/v1/users requests. Teacher only:
// returns the caller's own students.
func (h *UserHandler) HandleListStudents(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	resp, err := h.service.ListStudents(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrTeacherRequired) {
			writeJSON(w, http.StatusForbidden, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	if resp == nil {
		resp = []model.UserResponse{}
	}
	writeJSON(w, http.StatusOK, resp)
}
