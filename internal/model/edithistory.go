package model

import "time"

// EditHistory is one entry of a photo's append-only edit log. All three
// payload fields are independently optional.
type EditHistory struct {
	ID          string
	PhotoID     string
	FilterName  *string
	Adjustments JSONMap
	CropData    JSONMap
	CreatedAt   time.Time
}

// CreateEditRequest represents a new edit history entry.
type CreateEditRequest struct {
	FilterName  *string `json:"filter_name"`
	Adjustments JSONMap `json:"adjustments"`
	CropData    JSONMap `json:"crop_data"`
}

// EditHistoryResponse represents an edit history entry in API responses.
type EditHistoryResponse struct {
	ID          string    `json:"id"`
	PhotoID     string    `json:"photo_id"`
	FilterName  *string   `json:"filter_name"`
	Adjustments JSONMap   `json:"adjustments"`
	CropData    JSONMap   `json:"crop_data"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewEditHistoryResponse converts an EditHistory to its API representation.
func NewEditHistoryResponse(e *EditHistory) EditHistoryResponse {
	return EditHistoryResponse{
		ID:          e.ID,
		PhotoID:     e.PhotoID,
		FilterName:  e.FilterName,
		Adjustments: e.Adjustments,
		CropData:    e.CropData,
		CreatedAt:   e.CreatedAt,
	}
}
