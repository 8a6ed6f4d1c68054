package http

import (
	"time"

	"github.com/nekogravitycat/hotel-booking-backend/internal/booking"
	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/response"
)

type RoomTag struct {
	ID            string `json:"id"`
	Number        string `json:"number"`
	RoomType      string `json:"room_type"`
	PricePerNight string `json:"price_per_night"`
}

type HotelTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type BookingResponse struct {
	ID          string    `json:"id"`
	Room        RoomTag   `json:"room"`
	Hotel       HotelTag  `json:"hotel"`
	CheckIn     string    `json:"check_in"`
	CheckOut    string    `json:"check_out"`
	Nights      int       `json:"nights"`
	TotalAmount string    `json:"total_amount"`
	Paid        bool      `json:"paid"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID: b.ID,
		Room: RoomTag{
			ID:            b.RoomID,
			Number:        b.RoomNumber,
			RoomType:      b.RoomType,
			PricePerNight: b.PricePerNight.StringFixed(2),
		},
		Hotel:       HotelTag{ID: b.HotelID, Name: b.HotelName},
		CheckIn:     b.CheckIn.Format(booking.DateLayout),
		CheckOut:    b.CheckOut.Format(booking.DateLayout),
		Nights:      b.Nights(),
		TotalAmount: b.TotalAmount().StringFixed(2),
		Paid:        b.Paid,
		CreatedAt:   b.CreatedAt,
	}
}

// CreateBookingRequest is validated by the service so date errors keep their order.
type CreateBookingRequest struct {
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
}

type CreateBookingResponse struct {
	Booking BookingResponse      `json:"booking"`
	Next    response.Destination `json:"next"`
}

type ListBookingsResponse struct {
	Items []BookingResponse `json:"items"`
}
