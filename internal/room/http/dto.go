package http

import (
	"time"

	"github.com/nekogravitycat/hotel-booking-backend/internal/room"
)

type RoomResponse struct {
	ID            string    `json:"id"`
	HotelID       string    `json:"hotel_id"`
	HotelName     string    `json:"hotel_name"`
	Number        string    `json:"number"`
	RoomType      string    `json:"room_type"`
	PricePerNight string    `json:"price_per_night"`
	Capacity      int       `json:"capacity"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewRoomResponse renders the price with two decimal places.
func NewRoomResponse(r *room.Room) RoomResponse {
	return RoomResponse{
		ID:            r.ID,
		HotelID:       r.HotelID,
		HotelName:     r.HotelName,
		Number:        r.Number,
		RoomType:      r.RoomType,
		PricePerNight: r.PricePerNight.StringFixed(2),
		Capacity:      r.Capacity,
		CreatedAt:     r.CreatedAt,
	}
}
