// Seeds the database with a demo teacher and three students, all sharing
// the password "password123". Existing emails are left untouched.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/storylens/storylens-go/internal/config"
	"github.com/storylens/storylens-go/internal/crypto"
	"github.com/storylens/storylens-go/internal/model"
	"github.com/storylens/storylens-go/internal/repository"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := repository.Migrate(db); err != nil {
		slog.Error("database migration failed", "error", err)
		os.Exit(1)
	}

	users := repository.NewUserRepository(db)
	ctx := context.Background()

	hash, err := crypto.HashPassword("password123")
	if err != nil {
		slog.Error("hashing seed password failed", "error", err)
		os.Exit(1)
	}

	now := time.Now().UTC()
	teacherID := seedUser(ctx, users, &model.User{
		ID:           uuid.New().String(),
		Name:         "선생님",
		Email:        "teacher@storylens.com",
		PasswordHash: hash,
		Role:         model.RoleTeacher,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})

	students := []struct{ name, email string }{
		{"학생1", "student1@storylens.com"},
		{"학생2", "student2@storylens.com"},
		{"학생3", "student3@storylens.com"},
	}
	for _, s := range students {
		seedUser(ctx, users, &model.User{
			ID:           uuid.New().String(),
			Name:         s.name,
			Email:        s.email,
			PasswordHash: hash,
			Role:         model.RoleStudent,
			TeacherID:    &teacherID,
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}

	slog.Info("seeding complete")
}

// seedUser inserts a user unless the email is already taken, returning the
// ID of the row that ends up representing that email.
func seedUser(ctx context.Context, users *repository.UserRepository, u *model.User) string {
	err := users.Create(ctx, u)
	if err == nil {
		slog.Info("seeded user", "email", u.Email, "role", u.Role)
		return u.ID
	}
	if errors.Is(err, repository.ErrDuplicateEmail) {
		existing, getErr := users.GetByEmail(ctx, u.Email)
		if getErr != nil {
			slog.Error("looking up existing user failed", "email", u.Email, "error", getErr)
			os.Exit(1)
		}
		slog.Info("user already exists, skipping", "email", u.Email)
		return existing.ID
	}
	slog.Error("seeding user failed", "email", u.Email, "error", err)
	os.Exit(1)
	return ""
}
