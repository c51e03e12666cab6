package model

import "time"

// Photo represents an uploaded photo. OriginalURL is set at upload and
// never changes; EditedURL is set when an edited copy is saved.
// ThumbnailURL is reserved and currently never populated.
type Photo struct {
	ID           string
	UserID       string
	SessionID    *string
	OriginalURL  string
	EditedURL    *string
	Title        *string
	Topic        *string
	ThumbnailURL *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UpdatePhotoRequest represents a photo metadata update. Only fields
// present in the request are changed.
type UpdatePhotoRequest struct {
	Title     *string `json:"title"`
	Topic     *string `json:"topic"`
	EditedURL *string `json:"edited_url"`
}

// PhotoResponse represents a photo in API responses.
type PhotoResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	SessionID    *string   `json:"session_id"`
	OriginalURL  string    `json:"original_url"`
	EditedURL    *string   `json:"edited_url"`
	Title        *string   `json:"title"`
	Topic        *string   `json:"topic"`
	ThumbnailURL *string   `json:"thumbnail_url"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewPhotoResponse converts a Photo to its API representation.
func NewPhotoResponse(p *Photo) PhotoResponse {
	return PhotoResponse{
		ID:           p.ID,
		UserID:       p.UserID,
		SessionID:    p.SessionID,
		OriginalURL:  p.OriginalURL,
		EditedURL:    p.EditedURL,
		Title:        p.Title,
		Topic:        p.Topic,
		ThumbnailURL: p.ThumbnailURL,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
