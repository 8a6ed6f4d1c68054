package room

import (
	"net/http"
	"time"

	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/apperror"
	"github.com/shopspring/decimal"
)

const DefaultRoomType = "Standard"

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "room not found")
	ErrEmptyNumber     = apperror.New(http.StatusBadRequest, "room number cannot be empty")
	ErrInvalidPrice    = apperror.New(http.StatusBadRequest, "price per night must be non-negative")
	ErrInvalidCapacity = apperror.New(http.StatusBadRequest, "capacity must be positive")
	ErrInvalidHotel    = apperror.New(http.StatusBadRequest, "invalid hotel_id")
)

// Room is a bookable unit of a hotel.
// Number is not unique within a hotel.
type Room struct {
	ID            string
	HotelID       string
	HotelName     string
	Number        string
	RoomType      string
	PricePerNight decimal.Decimal
	Capacity      int
	CreatedAt     time.Time
}
