package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/storylens/storylens-go/internal/crypto"
	"github.com/storylens/storylens-go/internal/model"
	"github.com/storylens/storylens-go/internal/repository"
)

var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
	ErrWrongPassword       = errors.New("incorrect current password")
	ErrEmailTaken          = errors.New("email already registered")
	ErrNameRequired        = errors.New("name is required")
	ErrEmailRequired       = errors.New("email is required")
	ErrPasswordRequired    = errors.New("password is required")
)

// AuthService handles authentication business logic.
type AuthService struct {
	users         *repository.UserRepository
	jwtSecret     string
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(users *repository.UserRepository, secret string, accessExpiry, refreshExpiry time.Duration) *AuthService {
	return &AuthService{
		users:         users,
		jwtSecret:     secret,
		accessExpiry:  accessExpiry,
		refreshExpiry: refreshExpiry,
	}
}

// Login authenticates a user and returns a fresh access/refresh token pair.
// Unknown emails, wrong passwords and deactivated accounts are all reported
// as the same credential failure.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.LoginResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.LoginResponse{}, ErrInvalidCredentials
		}
		return model.LoginResponse{}, err
	}

	match, err := crypto.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		return model.LoginResponse{}, err
	}
	if !match || !user.IsActive {
		return model.LoginResponse{}, ErrInvalidCredentials
	}

	access, refresh, err := s.issueTokens(user.ID)
	if err != nil {
		return model.LoginResponse{}, err
	}

	return model.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User: model.UserInToken{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
		},
	}, nil
}

// Refresh exchanges a valid refresh token for a new token pair. An access
// token presented here is rejected even when its signature and expiry are
// valid: the type check is the caller's responsibility by design.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (model.RefreshResponse, error) {
	claims, err := crypto.ValidateToken(refreshToken, s.jwtSecret)
	if err != nil || claims.TokenType != crypto.TokenTypeRefresh {
		return model.RefreshResponse{}, ErrInvalidRefreshToken
	}

	user, err := s.users.GetByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.RefreshResponse{}, ErrInvalidRefreshToken
		}
		return model.RefreshResponse{}, err
	}
	if !user.IsActive {
		return model.RefreshResponse{}, ErrInvalidRefreshToken
	}

	access, refresh, err := s.issueTokens(user.ID)
	if err != nil {
		return model.RefreshResponse{}, err
	}

	return model.RefreshResponse{AccessToken: access, RefreshToken: refresh}, nil
}

// Register creates a new teacher account.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (model.UserResponse, error) {
	if err := validateAccountFields(req.Name, req.Email, req.Password); err != nil {
		return model.UserResponse{}, err
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return model.UserResponse{}, err
	}

	now := time.Now().UTC()
	user := &model.User{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         model.RoleTeacher,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.UserResponse{}, ErrEmailTaken
		}
		return model.UserResponse{}, err
	}

	return model.NewUserResponse(user), nil
}

// ChangePassword verifies the current password and stores a new hash.
func (s *AuthService) ChangePassword(ctx context.Context, userID string, req model.PasswordChangeRequest) error {
	if req.NewPassword == "" {
		return ErrPasswordRequired
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	match, err := crypto.VerifyPassword(req.CurrentPassword, user.PasswordHash)
	if err != nil {
		return err
	}
	if !match {
		return ErrWrongPassword
	}

	hash, err := crypto.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	return s.users.UpdatePassword(ctx, userID, hash)
}

func (s *AuthService) issueTokens(userID string) (access, refresh string, err error) {
	access, err = crypto.GenerateAccessToken(userID, s.jwtSecret, s.accessExpiry)
	if err != nil {
		return "", "", err
	}
	refresh, err = crypto.GenerateRefreshToken(userID, s.jwtSecret, s.refreshExpiry)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func validateAccountFields(name, email, password string) error {
	if name == "" {
		return ErrNameRequired
	}
	if email == "" {
		return ErrEmailRequired
	}
	if password == "" {
		return ErrPasswordRequired
	}
	return nil
}
