package booking

import (
	"net/http"
	"time"

	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/apperror"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "booking not found")
	ErrRoomNotFound     = apperror.New(http.StatusNotFound, "room not found")
	// ErrUserNotFound means the principal no longer exists, e.g. a deleted account with a live token.
	ErrUserNotFound = apperror.New(http.StatusUnauthorized, "authentication required")
	ErrRoomUnavailable  = apperror.New(http.StatusConflict, "room is not available for the selected dates")
	ErrInvalidDate      = apperror.New(http.StatusBadRequest, "dates must use the YYYY-MM-DD format")
	ErrInvalidDateRange = apperror.New(http.StatusBadRequest, "check-out must be after check-in")
)

// DateLayout is the calendar date format accepted from clients.
const DateLayout = "2006-01-02"

type Booking struct {
	ID        string
	RoomID    string
	UserID    string
	CheckIn   time.Time
	CheckOut  time.Time
	Paid      bool
	CreatedAt time.Time

	// Joined from the catalog.
	RoomNumber    string
	RoomType      string
	HotelID       string
	HotelName     string
	PricePerNight decimal.Decimal
}

func (b *Booking) Range() DateRange {
	return DateRange{CheckIn: b.CheckIn, CheckOut: b.CheckOut}
}

// Nights is never negative.
func (b *Booking) Nights() int {
	return NightsBetween(b.CheckIn, b.CheckOut)
}

func (b *Booking) TotalAmount() decimal.Decimal {
	return b.PricePerNight.Mul(decimal.NewFromInt(int64(b.Nights())))
}

// DateRange is a half-open stay [CheckIn, CheckOut).
type DateRange struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// Overlaps reports whether two stays share at least one night.
// Back-to-back stays do not overlap.
func (r DateRange) Overlaps(other DateRange) bool {
	return r.CheckIn.Before(other.CheckOut) && r.CheckOut.After(other.CheckIn)
}

// ParseDate parses a YYYY-MM-DD calendar date as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate.WithCause(err)
	}
	return t, nil
}

// NightsBetween counts whole days from checkIn to checkOut, floored at zero.
func NightsBetween(checkIn, checkOut time.Time) int {
	in := truncateDay(checkIn)
	out := truncateDay(checkOut)
	if !out.After(in) {
		return 0
	}
	// Duration overflows past ~292 years; whole UTC days are exact in seconds.
	return int((out.Unix() - in.Unix()) / secondsPerDay)
}

const secondsPerDay = 24 * 60 * 60

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
