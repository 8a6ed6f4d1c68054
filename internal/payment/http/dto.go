package http

import (
	bookinghttp "github.com/nekogravitycat/hotel-booking-backend/internal/booking/http"
	"github.com/nekogravitycat/hotel-booking-backend/internal/payment"
	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/response"
)

type InitiateResponse struct {
	BookingID   string               `json:"booking_id"`
	Next        response.Destination `json:"next"`
	Message     string               `json:"message,omitempty"`
	CheckoutURL string               `json:"checkout_url,omitempty"`
	SessionID   string               `json:"session_id,omitempty"`
	AlreadyPaid bool                 `json:"already_paid"`
	Fallback    bool                 `json:"fallback"`
}

func NewInitiateResponse(bookingID string, in *payment.Initiation) InitiateResponse {
	return InitiateResponse{
		BookingID:   bookingID,
		Next:        in.Next,
		Message:     in.Message,
		CheckoutURL: in.CheckoutURL,
		SessionID:   in.SessionID,
		AlreadyPaid: in.AlreadyPaid,
		Fallback:    in.Fallback,
	}
}

type ConfirmationResponse struct {
	Outcome   payment.Outcome      `json:"outcome"`
	Next      response.Destination `json:"next"`
	Message   string               `json:"message"`
	BookingID string               `json:"booking_id,omitempty"`
}

func NewConfirmationResponse(c *payment.Confirmation) ConfirmationResponse {
	return ConfirmationResponse{
		Outcome:   c.Outcome,
		Next:      c.Next,
		Message:   c.Message,
		BookingID: c.BookingID,
	}
}

type DemoCheckoutResponse struct {
	Booking     bookinghttp.BookingResponse `json:"booking"`
	Amount      string                      `json:"amount"`
	AlreadyPaid bool                        `json:"already_paid"`
	Next        response.Destination        `json:"next"`
}

func NewDemoCheckoutResponse(d *payment.DemoCheckout) DemoCheckoutResponse {
	next := response.DestDemoPay
	if d.AlreadyPaid {
		next = response.DestMyBookings
	}
	return DemoCheckoutResponse{
		Booking:     bookinghttp.NewBookingResponse(d.Booking),
		Amount:      d.Amount.StringFixed(2),
		AlreadyPaid: d.AlreadyPaid,
		Next:        next,
	}
}

type SuccessQuery struct {
	SessionID string `form:"session_id"`
}
