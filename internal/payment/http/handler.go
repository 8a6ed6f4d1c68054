package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nekogravitycat/hotel-booking-backend/internal/auth"
	"github.com/nekogravitycat/hotel-booking-backend/internal/payment"
	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/request"
	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/response"
)

type Handler struct {
	service payment.Service
}

func NewHandler(service payment.Service) *Handler {
	return &Handler{service: service}
}

// Pay starts a hosted checkout, or points to demo payment when the provider cannot be used.
func (h *Handler) Pay(c *gin.Context) {
	id, ok := request.BindID(c)
	if !ok {
		return
	}

	userID := auth.GetUserID(c)
	if userID == "" {
		response.Unauthenticated(c)
		return
	}

	in, err := h.service.Initiate(c.Request.Context(), id, userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewInitiateResponse(id, in))
}

// DemoPayScreen returns the booking and amount shown before a demo confirmation.
func (h *Handler) DemoPayScreen(c *gin.Context) {
	id, ok := request.BindID(c)
	if !ok {
		return
	}

	userID := auth.GetUserID(c)
	if userID == "" {
		response.Unauthenticated(c)
		return
	}

	d, err := h.service.DemoCheckout(c.Request.Context(), id, userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewDemoCheckoutResponse(d))
}

func (h *Handler) DemoPay(c *gin.Context) {
	id, ok := request.BindID(c)
	if !ok {
		return
	}

	userID := auth.GetUserID(c)
	if userID == "" {
		response.Unauthenticated(c)
		return
	}

	conf, err := h.service.DemoConfirm(c.Request.Context(), id, userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewConfirmationResponse(conf))
}

// Success is where the provider sends the user back after checkout.
func (h *Handler) Success(c *gin.Context) {
	var q SuccessQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "invalid query parameters", err)
		return
	}

	userID := auth.GetUserID(c)
	if userID == "" {
		response.Unauthenticated(c)
		return
	}

	conf, err := h.service.Confirm(c.Request.Context(), q.SessionID, userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewConfirmationResponse(conf))
}

func (h *Handler) Cancel(c *gin.Context) {
	c.JSON(http.StatusOK, NewConfirmationResponse(h.service.Cancel()))
}
