package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nekogravitycat/hotel-booking-backend/internal/hotel"
	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/request"
	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/response"
	"github.com/nekogravitycat/hotel-booking-backend/internal/room"
)

type Handler struct {
	service     hotel.Service
	roomService room.Service
}

func NewHandler(service hotel.Service, roomService room.Service) *Handler {
	return &Handler{
		service:     service,
		roomService: roomService,
	}
}

// List returns every hotel with its rooms.
func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	hotels, err := h.service.List(ctx)
	if err != nil {
		response.Error(c, err)
		return
	}

	ids := make([]string, len(hotels))
	for i, ht := range hotels {
		ids[i] = ht.ID
	}

	rooms, err := h.roomService.ListByHotels(ctx, ids)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]HotelResponse, len(hotels))
	for i, ht := range hotels {
		items[i] = NewHotelResponse(ht, rooms[ht.ID])
	}

	c.JSON(http.StatusOK, ListHotelsResponse{Items: items})
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := request.BindID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	ht, err := h.service.GetByID(ctx, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	rooms, err := h.roomService.ListByHotels(ctx, []string{ht.ID})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewHotelResponse(ht, rooms[ht.ID]))
}
