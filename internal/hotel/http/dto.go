package http

import (
	"time"

	"github.com/nekogravitycat/hotel-booking-backend/internal/hotel"
	"github.com/nekogravitycat/hotel-booking-backend/internal/room"
	roomhttp "github.com/nekogravitycat/hotel-booking-backend/internal/room/http"
)

type HotelResponse struct {
	ID          string                  `json:"id"`
	Name        string                  `json:"name"`
	City        string                  `json:"city"`
	Address     string                  `json:"address"`
	Description string                  `json:"description"`
	CreatedAt   time.Time               `json:"created_at"`
	Rooms       []roomhttp.RoomResponse `json:"rooms"`
}

func NewHotelResponse(h *hotel.Hotel, rooms []*room.Room) HotelResponse {
	items := make([]roomhttp.RoomResponse, len(rooms))
	for i, r := range rooms {
		items[i] = roomhttp.NewRoomResponse(r)
	}

	return HotelResponse{
		ID:          h.ID,
		Name:        h.Name,
		City:        h.City,
		Address:     h.Address,
		Description: h.Description,
		CreatedAt:   h.CreatedAt,
		Rooms:       items,
	}
}

type ListHotelsResponse struct {
	Items []HotelResponse `json:"items"`
}
