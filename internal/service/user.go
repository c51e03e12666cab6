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

var ErrTeacherRequired = errors.New("only teachers can manage student accounts")

// UserService handles user profile and student account management.
type UserService struct {
	users *repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(users *repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// GetProfile returns the caller's own profile.
func (s *UserService) GetProfile(ctx context.Context, userID string) (model.UserResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return model.UserResponse{}, err
	}
	return model.NewUserResponse(user), nil
}

// CreateStudent creates a student account owned by the calling teacher.
func (s *UserService) CreateStudent(ctx context.Context, callerID string, req model.CreateStudentRequest) (model.UserResponse, error) {
	caller, err := s.users.GetByID(ctx, callerID)
	if err != nil {
		return model.UserResponse{}, err
	}
	if caller.Role != model.RoleTeacher {
		return model.UserResponse{}, ErrTeacherRequired
	}

	if err := validateAccountFields(req.Name, req.Email, req.Password); err != nil {
		return model.UserResponse{}, err
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return model.UserResponse{}, err
	}

	now := time.Now().UTC()
	student := &model.User{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         model.RoleStudent,
		TeacherID:    &caller.ID,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, student); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.UserResponse{}, ErrEmailTaken
		}
		return model.UserResponse{}, err
	}

	return model.NewUserResponse(student), nil
}

// ListStudents returns the students created by the calling teacher.
func (s *UserService) ListStudents(ctx context.Context, callerID string) ([]model.UserResponse, error) {
	caller, err := s.users.GetByID(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if caller.Role != model.RoleTeacher {
		return nil, ErrTeacherRequired
	}

	students, err := s.users.ListStudents(ctx, caller.ID)
	if err != nil {
		return nil, err
	}

	result := make([]model.UserResponse, len(students))
	for i := range students {
		result[i] = model.NewUserResponse(&students[i])
	}
	return result, nil
}
