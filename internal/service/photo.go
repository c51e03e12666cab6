package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/storylens/storylens-go/internal/model"
	"github.com/storylens/storylens-go/internal/repository"
	"github.com/storylens/storylens-go/internal/storage"
)

var (
	ErrNotAnImage       = errors.New("file must be an image")
	ErrInvalidExtension = errors.New("invalid file type, allowed: .jpg, .jpeg, .png, .gif, .webp")
	ErrInvalidSessionID = errors.New("invalid session_id format")
	ErrPhotoNotFound    = errors.New("photo not found")
	ErrInvalidEditedURL = errors.New("invalid edited_url")
)

var allowedExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".webp": {},
}

const maxTopicLength = 100

// UploadInput carries the multipart fields of a photo upload.
type UploadInput struct {
	Filename    string
	ContentType string
	Title       string
	Topic       string
	SessionID   string
	File        io.Reader
}

// PhotoService handles photo business logic.
type PhotoService struct {
	photos   *repository.PhotoRepository
	sessions *repository.SessionRepository
	store    *storage.Store
}

// NewPhotoService creates a new PhotoService.
func NewPhotoService(photos *repository.PhotoRepository, sessions *repository.SessionRepository, store *storage.Store) *PhotoService {
	return &PhotoService{photos: photos, sessions: sessions, store: store}
}

// Upload validates and stores an uploaded photo. When a session id is
// supplied the session must parse as a UUID and belong to the caller.
func (s *PhotoService) Upload(ctx context.Context, userID string, in UploadInput) (model.PhotoResponse, error) {
	if !strings.HasPrefix(in.ContentType, "image/") {
		return model.PhotoResponse{}, ErrNotAnImage
	}

	filename := in.Filename
	if filename == "" {
		filename = "image.jpg"
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return model.PhotoResponse{}, ErrInvalidExtension
	}

	var sessionID *string
	if in.SessionID != "" {
		if _, err := uuid.Parse(in.SessionID); err != nil {
			return model.PhotoResponse{}, ErrInvalidSessionID
		}
		session, err := s.sessions.GetOwned(ctx, in.SessionID, userID)
		if err != nil {
			if errors.Is(err, repository.ErrSessionNotFound) {
				return model.PhotoResponse{}, ErrSessionNotFound
			}
			return model.PhotoResponse{}, err
		}
		sessionID = &session.ID
	}

	originalURL, err := s.store.SavePhoto(userID, ext, in.File)
	if err != nil {
		return model.PhotoResponse{}, err
	}

	now := time.Now().UTC()
	photo := &model.Photo{
		ID:          uuid.New().String(),
		UserID:      userID,
		SessionID:   sessionID,
		OriginalURL: originalURL,
		Title:       optionalString(in.Title),
		Topic:       normalizeTopic(&in.Topic),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.photos.Create(ctx, photo); err != nil {
		// The row never existed; remove the stored file so a failed upload
		// leaves nothing behind.
		if rmErr := s.store.Remove(originalURL); rmErr != nil {
			slog.Warn("failed to remove orphaned upload", "url", originalURL, "error", rmErr)
		}
		return model.PhotoResponse{}, err
	}

	return model.NewPhotoResponse(photo), nil
}

// List returns the caller's photos, newest first.
func (s *PhotoService) List(ctx context.Context, userID string, skip, limit int) ([]model.PhotoResponse, error) {
	photos, err := s.photos.List(ctx, userID, max(skip, 0), normalizeLimit(limit))
	if err != nil {
		return nil, err
	}

	result := make([]model.PhotoResponse, len(photos))
	for i := range photos {
		result[i] = model.NewPhotoResponse(&photos[i])
	}
	return result, nil
}

// Get returns a single photo owned by the caller. A photo belonging to
// another user reports not found.
func (s *PhotoService) Get(ctx context.Context, userID, photoID string) (model.PhotoResponse, error) {
	photo, err := s.getOwned(ctx, userID, photoID)
	if err != nil {
		return model.PhotoResponse{}, err
	}
	return model.NewPhotoResponse(photo), nil
}

// Update changes a photo's metadata. Only fields present in the request
// are touched; edited_url must point into the photo uploads tree.
func (s *PhotoService) Update(ctx context.Context, userID, photoID string, req model.UpdatePhotoRequest) (model.PhotoResponse, error) {
	photo, err := s.getOwned(ctx, userID, photoID)
	if err != nil {
		return model.PhotoResponse{}, err
	}

	if req.Title != nil {
		photo.Title = req.Title
	}
	if req.Topic != nil {
		photo.Topic = normalizeTopic(req.Topic)
	}
	if req.EditedURL != nil {
		if !strings.HasPrefix(*req.EditedURL, "/uploads/photos/") {
			return model.PhotoResponse{}, ErrInvalidEditedURL
		}
		photo.EditedURL = req.EditedURL
	}

	photo.UpdatedAt = time.Now().UTC()
	if err := s.photos.Update(ctx, photo); err != nil {
		return model.PhotoResponse{}, err
	}

	return model.NewPhotoResponse(photo), nil
}

// Delete removes a photo row and best-effort deletes its files. File
// removal failures are logged and swallowed; the database delete is what
// counts.
func (s *PhotoService) Delete(ctx context.Context, userID, photoID string) error {
	photo, err := s.getOwned(ctx, userID, photoID)
	if err != nil {
		return err
	}

	if err := s.store.Remove(photo.OriginalURL); err != nil {
		slog.Warn("failed to delete photo file", "url", photo.OriginalURL, "error", err)
	}
	if photo.EditedURL != nil {
		if err := s.store.Remove(*photo.EditedURL); err != nil {
			slog.Warn("failed to delete edited file", "url", *photo.EditedURL, "error", err)
		}
	}

	err = s.photos.Delete(ctx, photo.ID)
	if errors.Is(err, repository.ErrPhotoNotFound) {
		return ErrPhotoNotFound
	}
	return err
}

func (s *PhotoService) getOwned(ctx context.Context, userID, photoID string) (*model.Photo, error) {
	photo, err := s.photos.GetOwned(ctx, photoID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrPhotoNotFound) {
			return nil, ErrPhotoNotFound
		}
		return nil, err
	}
	return photo, nil
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// normalizeTopic trims a topic, mapping blank values to null and capping
// the length the schema allows.
func normalizeTopic(topic *string) *string {
	if topic == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*topic)
	if trimmed == "" {
		return nil
	}
	if len([]rune(trimmed)) > maxTopicLength {
		trimmed = string([]rune(trimmed)[:maxTopicLength])
	}
	return &trimmed
}
