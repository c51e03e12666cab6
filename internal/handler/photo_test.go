package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/storylens/storylens-go/internal/crypto"
	"github.com/storylens/storylens-go/internal/middleware"
	"github.com/storylens/storylens-go/internal/repository"
	"github.com/storylens/storylens-go/internal/service"
)

const testSecret = "test-secret"

// photoRouter mounts the photo and edit history routes behind auth the way
// the server does, with repositories that are never reached by these tests.
func photoRouter(t *testing.T) chi.Router {
	t.Helper()

	photoSvc := service.NewPhotoService(repository.NewPhotoRepository(nil), repository.NewSessionRepository(nil), nil)
	editSvc := service.NewEditHistoryService(repository.NewEditHistoryRepository(nil), repository.NewPhotoRepository(nil))

	photoHandler := NewPhotoHandler(photoSvc, 1<<20)
	editHandler := NewEditHistoryHandler(editSvc)

	r := chi.NewRouter()
	r.Use(middleware.JWTAuth(testSecret))
	r.Get("/photos/{photo_id}", photoHandler.HandleGet)
	r.Delete("/photos/{photo_id}", photoHandler.HandleDelete)
	r.Get("/photos/{photo_id}/edits", editHandler.HandleList)
	return r
}

func authedRequest(t *testing.T, method, target string) *http.Request {
	t.Helper()

	token, err := crypto.GenerateAccessToken("user-1", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateAccessToken() unexpected error: %v", err)
	}

	req := httptest.NewRequest(method, target, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestPhotoGet_MalformedID(t *testing.T) {
	r := photoRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, authedRequest(t, http.MethodGet, "/photos/not-a-uuid"))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestPhotoDelete_MalformedID(t *testing.T) {
	r := photoRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, authedRequest(t, http.MethodDelete, "/photos/1234"))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestEditHistoryList_MalformedPhotoID(t *testing.T) {
	r := photoRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, authedRequest(t, http.MethodGet, "/photos/not-a-uuid/edits"))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
