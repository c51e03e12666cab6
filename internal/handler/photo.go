package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/storylens/storylens-go/internal/middleware"
	"github.com/storylens/storylens-go/internal/model"
	"github.com/storylens/storylens-go/internal/service"
	"github.com/storylens/storylens-go/internal/storage"
)

// multipartFormMemory is the in-memory budget for multipart parsing;
// anything larger spools to temp files.
const multipartFormMemory = 1 << 20

// PhotoHandler handles HTTP requests for photos.
type PhotoHandler struct {
	service       *service.PhotoService
	maxUploadSize int64
}

// NewPhotoHandler creates a new PhotoHandler.
func NewPhotoHandler(svc *service.PhotoService, maxUploadSize int64) *PhotoHandler {
	return &PhotoHandler{service: svc, maxUploadSize: maxUploadSize}
}

// HandleUpload handles POST /api/v1/photos multipart requests.
func (h *PhotoHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	// Cap the transport read slightly above the file cap so multipart
	// framing and form fields fit; an oversized body aborts mid-stream
	// instead of being buffered whole.
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize+multipartFormMemory)

	if err := r.ParseMultipartForm(multipartFormMemory); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("file too large"))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid multipart form"))
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("file is required"))
		return
	}
	defer file.Close()

	resp, err := h.service.Upload(r.Context(), userID, service.UploadInput{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Title:       r.FormValue("title"),
		Topic:       r.FormValue("topic"),
		SessionID:   r.FormValue("session_id"),
		File:        file,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotAnImage),
			errors.Is(err, service.ErrInvalidExtension),
			errors.Is(err, service.ErrInvalidSessionID):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrSessionNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse("session not found or does not belong to you"))
		case errors.Is(err, storage.ErrFileTooLarge):
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("file too large"))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleList handles GET /api/v1/photos requests.
func (h *PhotoHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	skip, err := intParam(r, "skip", 0)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse(err.Error()))
		return
	}
	limit, err := intParam(r, "limit", 0)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse(err.Error()))
		return
	}

	resp, err := h.service.List(r.Context(), userID, skip, limit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	if resp == nil {
		resp = []model.PhotoResponse{}
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleGet handles GET /api/v1/photos/{photo_id} requests.
func (h *PhotoHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	photoID, ok := photoIDParam(w, r)
	if !ok {
		return
	}

	resp, err := h.service.Get(r.Context(), userID, photoID)
	if err != nil {
		writePhotoError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleUpdate handles PUT /api/v1/photos/{photo_id} requests.
func (h *PhotoHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	photoID, ok := photoIDParam(w, r)
	if !ok {
		return
	}

	var req model.UpdatePhotoRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.Update(r.Context(), userID, photoID, req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidEditedURL) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writePhotoError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleDelete handles DELETE /api/v1/photos/{photo_id} requests.
func (h *PhotoHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	photoID, ok := photoIDParam(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), userID, photoID); err != nil {
		writePhotoError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// photoIDParam extracts the photo_id path parameter, rejecting anything
// that does not parse as a UUID before it reaches a query.
func photoIDParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "photo_id")
	if _, err := uuid.Parse(id); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid photo_id format"))
		return "", false
	}
	return id, true
}

// writePhotoError maps photo service errors onto status codes. A photo
// owned by someone else deliberately reads as not found.
func writePhotoError(w http.ResponseWriter, err error) {
	if errors.Is(err, service.ErrPhotoNotFound) {
		writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		return
	}
	writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
}
