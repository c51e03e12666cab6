package service

import (
	"context"
	"testing"
	"time"

	"github.com/storylens/storylens-go/internal/crypto"
	"github.com/storylens/storylens-go/internal/model"
	"github.com/storylens/storylens-go/internal/repository"
)

func newAuthService() *AuthService {
	return NewAuthService(repository.NewUserRepository(nil), "test-secret", 15*time.Minute, 7*24*time.Hour)
}

func TestRegister_EmptyName(t *testing.T) {
	svc := newAuthService()

	_, err := svc.Register(context.Background(), model.RegisterRequest{
		Email:    "t@example.com",
		Password: "secret123",
	})
	if err != ErrNameRequired {
		t.Errorf("expected ErrNameRequired, got %v", err)
	}
}

func TestRegister_EmptyEmail(t *testing.T) {
	svc := newAuthService()

	_, err := svc.Register(context.Background(), model.RegisterRequest{
		Name:     "Teacher",
		Password: "secret123",
	})
	if err != ErrEmailRequired {
		t.Errorf("expected ErrEmailRequired, got %v", err)
	}
}

func TestRegister_EmptyPassword(t *testing.T) {
	svc := newAuthService()

	_, err := svc.Register(context.Background(), model.RegisterRequest{
		Name:  "Teacher",
		Email: "t@example.com",
	})
	if err != ErrPasswordRequired {
		t.Errorf("expected ErrPasswordRequired, got %v", err)
	}
}

func TestChangePassword_EmptyNewPassword(t *testing.T) {
	svc := newAuthService()

	err := svc.ChangePassword(context.Background(), "user-1", model.PasswordChangeRequest{
		CurrentPassword: "old-password",
	})
	if err != ErrPasswordRequired {
		t.Errorf("expected ErrPasswordRequired, got %v", err)
	}
}

func TestRefresh_MalformedToken(t *testing.T) {
	svc := newAuthService()

	_, err := svc.Refresh(context.Background(), "garbage")
	if err != ErrInvalidRefreshToken {
		t.Errorf("expected ErrInvalidRefreshToken, got %v", err)
	}
}

func TestRefresh_RejectsAccessToken(t *testing.T) {
	svc := newAuthService()

	// A signed, unexpired access token is still the wrong token type here.
	access, err := crypto.GenerateAccessToken("user-1", "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateAccessToken() unexpected error: %v", err)
	}

	_, err = svc.Refresh(context.Background(), access)
	if err != ErrInvalidRefreshToken {
		t.Errorf("expected ErrInvalidRefreshToken, got %v", err)
	}
}

func TestRefresh_WrongSecret(t *testing.T) {
	svc := newAuthService()

	refresh, err := crypto.GenerateRefreshToken("user-1", "other-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateRefreshToken() unexpected error: %v", err)
	}

	_, err = svc.Refresh(context.Background(), refresh)
	if err != ErrInvalidRefreshToken {
		t.Errorf("expected ErrInvalidRefreshToken, got %v", err)
	}
}
