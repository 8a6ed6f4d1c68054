package event

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nekogravitycat/hotel-booking-backend/internal/logging"
	"github.com/shopspring/decimal"
)

type Header struct {
	ID            string    `json:"id"`
	CorrelationID string    `json:"correlation_id,omitempty"`
	PublishedAt   time.Time `json:"published_at"`
}

func NewHeader(ctx context.Context) Header {
	return Header{
		ID:            uuid.NewString(),
		CorrelationID: logging.CorrelationIDFromContext(ctx),
		PublishedAt:   time.Now().UTC(),
	}
}

// BookingCreated is published once a booking is committed.
type BookingCreated struct {
	Header      Header          `json:"header"`
	BookingID   string          `json:"booking_id"`
	RoomID      string          `json:"room_id"`
	UserID      string          `json:"user_id"`
	CheckIn     string          `json:"check_in"`
	CheckOut    string          `json:"check_out"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

type PaymentMethod string

const (
	MethodStripe PaymentMethod = "stripe"
	MethodDemo   PaymentMethod = "demo"
)

// BookingPaid is published when a booking flips to paid.
type BookingPaid struct {
	Header    Header          `json:"header"`
	BookingID string          `json:"booking_id"`
	UserID    string          `json:"user_id"`
	Amount    decimal.Decimal `json:"amount"`
	Method    PaymentMethod   `json:"method"`
}
