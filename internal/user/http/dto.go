package http

import (
	"time"

	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/response"
	"github.com/nekogravitycat/hotel-booking-backend/internal/user"
)

// UserResponse is the shape of user data returned in API responses.
type UserResponse struct {
	ID          string     `json:"id"`
	Username    string     `json:"username"`
	CreatedAt   time.Time  `json:"created_at"`
	LastLoginAt *time.Time `json:"last_login_at"`
}

// NewUserResponse converts domain user.User to UserResponse used by the API.
func NewUserResponse(u *user.User) UserResponse {
	var lastLoginAt *time.Time
	if u.LastLoginAt != nil {
		ll := *u.LastLoginAt
		lastLoginAt = &ll
	}

	return UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		CreatedAt:   u.CreatedAt,
		LastLoginAt: lastLoginAt,
	}
}

// CredentialsRequest is the payload for both signup and login.
// Emptiness is checked by the service so both modes report the same message.
type CredentialsRequest struct {
	Username string `json:"username" binding:"max=150"`
	Password string `json:"password"`
}

// RegisterResponse tells the client to continue with login.
type RegisterResponse struct {
	User UserResponse         `json:"user"`
	Next response.Destination `json:"next"`
}

// LoginResponse returns the token and user info.
type LoginResponse struct {
	AccessToken string               `json:"access_token"`
	User        UserResponse         `json:"user"`
	Next        response.Destination `json:"next"`
}

// MeResponse returns the current user info.
type MeResponse struct {
	User UserResponse `json:"user"`
}
