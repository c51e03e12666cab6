package model

import "time"

// User roles.
const (
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

// User represents a user in the database. Students carry the ID of the
// teacher who created them; teachers have a nil TeacherID.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string
	TeacherID    *string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest represents a teacher self-registration request.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateStudentRequest represents a teacher creating a student account.
type CreateStudentRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshRequest represents a token refresh request.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// PasswordChangeRequest represents a password change request.
type PasswordChangeRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// UserInToken is the compact user payload returned alongside tokens.
type UserInToken struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// UserResponse represents user data safe for API responses (no credential).
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	TeacherID *string   `json:"teacher_id"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginResponse represents a successful login with both tokens.
type LoginResponse struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	User         UserInToken `json:"user"`
}

// RefreshResponse represents a successful token refresh.
type RefreshResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// MessageResponse represents a simple acknowledgment.
type MessageResponse struct {
	Message string `json:"message"`
}

// NewUserResponse converts a User to its API representation.
func NewUserResponse(u *User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		TeacherID: u.TeacherID,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
