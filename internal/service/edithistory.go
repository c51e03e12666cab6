package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/storylens/storylens-go/internal/model"
	"github.com/storylens/storylens-go/internal/repository"
)

// ErrNotPhotoOwner reports an edit history request against someone else's
// photo. Unlike photo lookups, which hide foreign photos behind not found,
// edit history acknowledges the photo exists and refuses access.
var ErrNotPhotoOwner = errors.New("you can only access edit history for your own photos")

// EditHistoryService handles the append-only edit log of a photo.
type EditHistoryService struct {
	edits  *repository.EditHistoryRepository
	photos *repository.PhotoRepository
}

// NewEditHistoryService creates a new EditHistoryService.
func NewEditHistoryService(edits *repository.EditHistoryRepository, photos *repository.PhotoRepository) *EditHistoryService {
	return &EditHistoryService{edits: edits, photos: photos}
}

// Create appends an edit history entry to a photo the caller owns. All
// payload fields are optional; nothing is merged with prior entries.
func (s *EditHistoryService) Create(ctx context.Context, userID, photoID string, req model.CreateEditRequest) (model.EditHistoryResponse, error) {
	photo, err := s.verifyOwnership(ctx, userID, photoID)
	if err != nil {
		return model.EditHistoryResponse{}, err
	}

	entry := &model.EditHistory{
		ID:          uuid.New().String(),
		PhotoID:     photo.ID,
		FilterName:  req.FilterName,
		Adjustments: req.Adjustments,
		CropData:    req.CropData,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.edits.Create(ctx, entry); err != nil {
		return model.EditHistoryResponse{}, err
	}

	return model.NewEditHistoryResponse(entry), nil
}

// List returns a photo's edit history, newest first.
func (s *EditHistoryService) List(ctx context.Context, userID, photoID string) ([]model.EditHistoryResponse, error) {
	photo, err := s.verifyOwnership(ctx, userID, photoID)
	if err != nil {
		return nil, err
	}

	entries, err := s.edits.ListByPhoto(ctx, photo.ID)
	if err != nil {
		return nil, err
	}

	result := make([]model.EditHistoryResponse, len(entries))
	for i := range entries {
		result[i] = model.NewEditHistoryResponse(&entries[i])
	}
	return result, nil
}

// verifyOwnership loads the photo unscoped so a missing photo and a
// foreign photo produce distinct failures.
func (s *EditHistoryService) verifyOwnership(ctx context.Context, userID, photoID string) (*model.Photo, error) {
	photo, err := s.photos.GetByID(ctx, photoID)
	if err != nil {
		if errors.Is(err, repository.ErrPhotoNotFound) {
			return nil, ErrPhotoNotFound
		}
		return nil, err
	}
	if photo.UserID != userID {
		return nil, ErrNotPhotoOwner
	}
	return photo, nil
}
