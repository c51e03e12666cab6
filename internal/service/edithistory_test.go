package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/storylens/storylens-go/internal/model"
	"github.com/storylens/storylens-go/internal/repository"
)

func newEditHistoryMock(t *testing.T) (*EditHistoryService, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() unexpected error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	svc := NewEditHistoryService(repository.NewEditHistoryRepository(db), repository.NewPhotoRepository(db))
	return svc, mock
}

func photoRow(id, userID string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "user_id", "session_id", "original_url", "edited_url",
		"title", "topic", "thumbnail_url", "created_at", "updated_at",
	}).AddRow(id, userID, nil, "/uploads/photos/"+userID+"/a.jpg", nil, nil, nil, nil, now, now)
}

func TestEditHistoryList_ForeignPhotoForbidden(t *testing.T) {
	svc, mock := newEditHistoryMock(t)

	// The photo exists, so its edit history must answer with forbidden
	// rather than hiding it behind not found.
	mock.ExpectQuery(`SELECT (.+) FROM photos WHERE id = \?`).
		WithArgs("photo-1").
		WillReturnRows(photoRow("photo-1", "owner-1"))

	_, err := svc.List(context.Background(), "intruder", "photo-1")
	if err != ErrNotPhotoOwner {
		t.Errorf("expected ErrNotPhotoOwner, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestEditHistoryCreate_MissingPhoto(t *testing.T) {
	svc, mock := newEditHistoryMock(t)

	mock.ExpectQuery(`SELECT (.+) FROM photos WHERE id = \?`).
		WithArgs("photo-1").
		WillReturnError(sql.ErrNoRows)

	_, err := svc.Create(context.Background(), "user-1", "photo-1", model.CreateEditRequest{})
	if err != ErrPhotoNotFound {
		t.Errorf("expected ErrPhotoNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestEditHistoryList_OwnPhoto(t *testing.T) {
	svc, mock := newEditHistoryMock(t)

	mock.ExpectQuery(`SELECT (.+) FROM photos WHERE id = \?`).
		WithArgs("photo-1").
		WillReturnRows(photoRow("photo-1", "user-1"))
	mock.ExpectQuery(`SELECT (.+) FROM edit_history WHERE photo_id = \?`).
		WithArgs("photo-1").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "photo_id", "filter_name", "adjustments", "crop_data", "created_at",
		}))

	entries, err := svc.List(context.Background(), "user-1", "photo-1")
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("got %d entries, want 0", len(entries))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPhotoGet_ForeignPhotoReadsAsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() unexpected error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	svc := NewPhotoService(repository.NewPhotoRepository(db), repository.NewSessionRepository(db), nil)

	// Photo lookups are scoped by owner, so a foreign photo matches no row.
	mock.ExpectQuery(`SELECT (.+) FROM photos WHERE id = \? AND user_id = \?`).
		WithArgs("photo-1", "intruder").
		WillReturnError(sql.ErrNoRows)

	_, err = svc.Get(context.Background(), "intruder", "photo-1")
	if err != ErrPhotoNotFound {
		t.Errorf("expected ErrPhotoNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
