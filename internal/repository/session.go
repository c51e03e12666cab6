package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/storylens/storylens-go/internal/model"
)

var ErrSessionNotFound = errors.New("session not found")

const sessionColumns = `id, user_id, location, date, title, keywords, created_at`

// SessionListFilter narrows a session listing to a half-open date range
// with pagination. A nil bound leaves that side of the range open.
type SessionListFilter struct {
	From  *time.Time
	To    *time.Time
	Skip  int
	Limit int
}

// SessionRepository handles shooting session persistence operations.
type SessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a new SessionRepository.
func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create inserts a new session row.
func (r *SessionRepository) Create(ctx context.Context, s *model.Session) error {
	query := `INSERT INTO sessions (id, user_id, location, date, title, keywords, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		s.ID, s.UserID, s.Location, s.Date, s.Title, s.Keywords, s.CreatedAt,
	)
	return err
}

// GetOwned retrieves a session only if it belongs to the given user.
func (r *SessionRepository) GetOwned(ctx context.Context, id, userID string) (*model.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE id = ? AND user_id = ?`

	s := &model.Session{}
	err := scanSessionRow(r.db.QueryRowContext(ctx, query, id, userID), s)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return s, nil
}

// List retrieves a user's sessions within the filter's date range, ordered
// by session date ascending with newest-created first as the tie-break.
func (r *SessionRepository) List(ctx context.Context, userID string, filter SessionListFilter) ([]model.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE user_id = ?`
	args := []any{userID}

	if filter.From != nil {
		query += ` AND date >= ?`
		args = append(args, *filter.From)
	}
	if filter.To != nil {
		query += ` AND date < ?`
		args = append(args, *filter.To)
	}

	query += ` ORDER BY date ASC, created_at DESC LIMIT ? OFFSET ?`
	args = append(args, filter.Limit, filter.Skip)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []model.Session
	for rows.Next() {
		var s model.Session
		if err := scanSessionRow(rows, &s); err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}

	return sessions, rows.Err()
}

// UpdateKeywords replaces a session's keyword list. Ownership is checked
// by the caller; MySQL reports zero affected rows for a no-op update, so
// the row count is not inspected here.
func (r *SessionRepository) UpdateKeywords(ctx context.Context, id string, keywords model.StringList) error {
	query := `UPDATE sessions SET keywords = ? WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query, keywords, id)
	return err
}

func scanSessionRow(row rowScanner, s *model.Session) error {
	return row.Scan(
		&s.ID, &s.UserID, &s.Location, &s.Date, &s.Title, &s.Keywords, &s.CreatedAt,
	)
}
