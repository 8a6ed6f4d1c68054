package hotel

import (
	"net/http"
	"time"

	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound  = apperror.New(http.StatusNotFound, "hotel not found")
	ErrEmptyName = apperror.New(http.StatusBadRequest, "name cannot be empty")
)

// Hotel is reference data: a property that owns rooms.
type Hotel struct {
	ID          string
	Name        string
	City        string
	Address     string
	Description string
	CreatedAt   time.Time
}

