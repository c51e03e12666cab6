package repository

import (
	"context"
	"database/sql"

	"github.com/storylens/storylens-go/internal/model"
)

// EditHistoryRepository handles edit history persistence. The table is an
// append-only log: rows are inserted and listed, never updated.
type EditHistoryRepository struct {
	db *sql.DB
}

// NewEditHistoryRepository creates a new EditHistoryRepository.
func NewEditHistoryRepository(db *sql.DB) *EditHistoryRepository {
	return &EditHistoryRepository{db: db}
}

// Create appends an edit history entry.
func (r *EditHistoryRepository) Create(ctx context.Context, e *model.EditHistory) error {
	query := `INSERT INTO edit_history (id, photo_id, filter_name, adjustments, crop_data, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		e.ID, e.PhotoID, e.FilterName, e.Adjustments, e.CropData, e.CreatedAt,
	)
	return err
}

// ListByPhoto retrieves all edit history entries for a photo, newest first.
func (r *EditHistoryRepository) ListByPhoto(ctx context.Context, photoID string) ([]model.EditHistory, error) {
	query := `SELECT id, photo_id, filter_name, adjustments, crop_data, created_at
		FROM edit_history WHERE photo_id = ? ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, photoID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.EditHistory
	for rows.Next() {
		var e model.EditHistory
		if err := rows.Scan(
			&e.ID, &e.PhotoID, &e.FilterName, &e.Adjustments, &e.CropData, &e.CreatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
