package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nekogravitycat/hotel-booking-backend/internal/auth"
	"github.com/nekogravitycat/hotel-booking-backend/internal/booking"
	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/request"
	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/response"
)

type Handler struct {
	service booking.Service
}

func NewHandler(service booking.Service) *Handler {
	return &Handler{service: service}
}

// Create books the room in the path for the current user.
func (h *Handler) Create(c *gin.Context) {
	id, ok := request.BindID(c)
	if !ok {
		return
	}

	var body CreateBookingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "invalid request body", err)
		return
	}

	userID := auth.GetUserID(c)
	if userID == "" {
		response.Unauthenticated(c)
		return
	}

	b, err := h.service.Create(c.Request.Context(), booking.CreateRequest{
		UserID:   userID,
		RoomID:   id,
		CheckIn:  body.CheckIn,
		CheckOut: body.CheckOut,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, CreateBookingResponse{
		Booking: NewBookingResponse(b),
		Next:    response.DestBookingDetail,
	})
}

// List returns the current user's bookings, newest first.
func (h *Handler) List(c *gin.Context) {
	userID := auth.GetUserID(c)
	if userID == "" {
		response.Unauthenticated(c)
		return
	}

	bookings, err := h.service.ListForUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}

	c.JSON(http.StatusOK, ListBookingsResponse{Items: items})
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := request.BindID(c)
	if !ok {
		return
	}

	userID := auth.GetUserID(c)
	if userID == "" {
		response.Unauthenticated(c)
		return
	}

	b, err := h.service.GetForUser(c.Request.Context(), id, userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}
