package payment

import (
	"net/http"

	"github.com/nekogravitycat/hotel-booking-backend/internal/booking"
	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/apperror"
	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/response"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount  = apperror.New(http.StatusBadRequest, "invalid booking dates")
	ErrMissingSession = apperror.New(http.StatusBadRequest, "missing payment session")
	ErrPaymentFailed  = apperror.New(http.StatusBadGateway, "payment error")
)

// State is the payment state of a booking. PendingExternal is never stored.
type State string

const (
	StateUnpaid          State = "unpaid"
	StatePendingExternal State = "pending_external"
	StatePaid            State = "paid"
)

func StateOf(b *booking.Booking) State {
	if b.Paid {
		return StatePaid
	}
	return StateUnpaid
}

type Outcome string

const (
	OutcomePaid         Outcome = "paid"
	OutcomeAlreadyPaid  Outcome = "already_paid"
	OutcomeNotCompleted Outcome = "not_completed"
	OutcomeCanceled     Outcome = "canceled"
)

// Initiation tells the caller where to send the user after starting a payment.
type Initiation struct {
	Next        response.Destination
	Message     string
	CheckoutURL string
	SessionID   string
	AlreadyPaid bool
	Fallback    bool
}

type Confirmation struct {
	Outcome   Outcome
	Next      response.Destination
	Message   string
	BookingID string
}

// DemoCheckout is what the demo payment screen shows before confirming.
type DemoCheckout struct {
	Booking     *booking.Booking
	Amount      decimal.Decimal
	AlreadyPaid bool
}
