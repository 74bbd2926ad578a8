package auth

import (
	"time"

	"github.com/touchlinehq/touchline/internal/user"
)

type RegisterRequest struct {
	Name          string `json:"name" binding:"required" example:"Jamie Carter"`
	Username      string `json:"username" binding:"required,min=3,max=30" example:"jcarter"`
	Email         string `json:"email" binding:"required,email" example:"jamie@example.com"`
	Password      string `json:"password" binding:"required,min=8,max=72" example:"password123"`
	Qualification string `json:"qualification,omitempty" example:"UEFA B"`
	Bio           string `json:"bio,omitempty"`
}

type LoginRequest struct {
	LoginIdentifier string `json:"login_identifier" binding:"required" example:"jamie@example.com"` // email or username
	Password        string `json:"password" binding:"required" example:"password123"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type ChangePasswordRequest struct {
	OldPassword     string `json:"old_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8,max=72"`
	PasswordConfirm string `json:"password_confirm" binding:"required,eqfield=NewPassword"`
}

type UpdateProfileRequest struct {
	Name          *string `json:"name,omitempty"`
	Username      *string `json:"username,omitempty" binding:"omitempty,min=3,max=30"`
	Bio           *string `json:"bio,omitempty"`
	Qualification *string `json:"qualification,omitempty"`
}

type LogoutRequest struct {
	RefreshToken          string `json:"refresh_token"`
	InvalidateAllSessions bool   `json:"invalidate_all_sessions"`
}

type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

type UserResponse struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	Bio           string    `json:"bio"`
	Qualification string    `json:"qualification"`
	EmailVerified bool      `json:"email_verified"`
	LastActive    time.Time `json:"last_active"`
	Roles         []string  `json:"roles"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FilterUserRecord(u *user.User) UserResponse {
	var roles []string
	for _, role := range u.Roles {
		roles = append(roles, role.Name)
	}
	return UserResponse{
		ID:            u.ID,
		Name:          u.Name,
		Username:      u.Username,
		Email:         u.Email,
		Bio:           u.Bio,
		Qualification: u.Qualification,
		EmailVerified: u.EmailVerified,
		LastActive:    u.LastActive,
		Roles:         roles,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}
