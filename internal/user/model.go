package user

import (
	"net/http"
	"time"

	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound           = apperror.New(http.StatusNotFound, "user not found")
	ErrUsernameTaken      = apperror.New(http.StatusConflict, "username already exists")
	ErrCredentialsMissing = apperror.New(http.StatusBadRequest, "please provide both username and password")
	ErrPasswordTooShort   = apperror.New(http.StatusBadRequest, "password is too short")
	ErrInvalidCredentials = apperror.New(http.StatusUnauthorized, "invalid credentials")
)

// User represents an account that can hold bookings.
type User struct {
	ID           string // UUID
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	LastLoginAt  *time.Time
	IsActive     bool
}
