package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/storylens/storylens-go/internal/model"
)

func TestSessionCreate_PersistsCreatedAt(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() unexpected error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	repo := NewSessionRepository(db)

	title := "spring shoot"
	now := time.Now().UTC()
	session := &model.Session{
		ID:        "session-1",
		UserID:    "user-1",
		Title:     &title,
		Date:      time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC),
		Keywords:  model.StringList{"spring"},
		CreatedAt: now,
	}

	mock.ExpectExec(`INSERT INTO sessions \(id, user_id, location, date, title, keywords, created_at\)`).
		WithArgs("session-1", "user-1", nil, session.Date, title, []byte(`["spring"]`), now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Create(context.Background(), session); err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
