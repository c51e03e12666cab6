package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/storylens/storylens-go/internal/model"
)

var ErrPhotoNotFound = errors.New("photo not found")

const photoColumns = `id, user_id, session_id, original_url, edited_url, title, topic, thumbnail_url, created_at, updated_at`

// PhotoRepository handles photo persistence operations.
type PhotoRepository struct {
	db *sql.DB
}

// NewPhotoRepository creates a new PhotoRepository.
func NewPhotoRepository(db *sql.DB) *PhotoRepository {
	return &PhotoRepository{db: db}
}

// Create inserts a new photo row.
func (r *PhotoRepository) Create(ctx context.Context, p *model.Photo) error {
	query := `INSERT INTO photos (id, user_id, session_id, original_url, edited_url, title, topic, thumbnail_url, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.UserID, p.SessionID, p.OriginalURL, p.EditedURL, p.Title, p.Topic, p.ThumbnailURL,
		p.CreatedAt, p.UpdatedAt,
	)
	return err
}

// GetByID retrieves a photo by id regardless of owner. Used where the
// caller distinguishes a missing photo from a foreign one.
func (r *PhotoRepository) GetByID(ctx context.Context, id string) (*model.Photo, error) {
	query := `SELECT ` + photoColumns + ` FROM photos WHERE id = ?`
	return r.scanPhoto(r.db.QueryRowContext(ctx, query, id))
}

// GetOwned retrieves a photo only if it belongs to the given user. A
// foreign photo is indistinguishable from a missing one.
func (r *PhotoRepository) GetOwned(ctx context.Context, id, userID string) (*model.Photo, error) {
	query := `SELECT ` + photoColumns + ` FROM photos WHERE id = ? AND user_id = ?`
	return r.scanPhoto(r.db.QueryRowContext(ctx, query, id, userID))
}

// List retrieves a user's photos, newest first.
func (r *PhotoRepository) List(ctx context.Context, userID string, skip, limit int) ([]model.Photo, error) {
	query := `SELECT ` + photoColumns + ` FROM photos WHERE user_id = ?
		ORDER BY created_at DESC LIMIT ? OFFSET ?`

	rows, err := r.db.QueryContext(ctx, query, userID, limit, skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var photos []model.Photo
	for rows.Next() {
		var p model.Photo
		if err := scanPhotoRow(rows, &p); err != nil {
			return nil, err
		}
		photos = append(photos, p)
	}

	return photos, rows.Err()
}

// Update persists a photo's mutable fields. The updated_at value is written
// explicitly so the row matches what the caller returns in its response.
func (r *PhotoRepository) Update(ctx context.Context, p *model.Photo) error {
	query := `UPDATE photos SET title = ?, topic = ?, edited_url = ?, updated_at = ? WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query, p.Title, p.Topic, p.EditedURL, p.UpdatedAt, p.ID)
	return err
}

// Delete removes a photo row together with its edit history entries.
func (r *PhotoRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM edit_history WHERE photo_id = ?`, id); err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM photos WHERE id = ?`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrPhotoNotFound
	}

	return tx.Commit()
}

func (r *PhotoRepository) scanPhoto(row rowScanner) (*model.Photo, error) {
	p := &model.Photo{}
	if err := scanPhotoRow(row, p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPhotoNotFound
		}
		return nil, err
	}
	return p, nil
}

func scanPhotoRow(row rowScanner, p *model.Photo) error {
	return row.Scan(
		&p.ID, &p.UserID, &p.SessionID, &p.OriginalURL, &p.EditedURL,
		&p.Title, &p.Topic, &p.ThumbnailURL, &p.CreatedAt, &p.UpdatedAt,
	)
}
