package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nekogravitycat/hotel-booking-backend/internal/booking"
	"github.com/nekogravitycat/hotel-booking-backend/internal/event"
	"github.com/nekogravitycat/hotel-booking-backend/internal/logging"
	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/response"
	"github.com/sirupsen/logrus"
)

const (
	defaultTimeout = 10 * time.Second

	successPath = "/v1/payments/success?session_id={CHECKOUT_SESSION_ID}"
	cancelPath  = "/v1/payments/cancel"
)

type Config struct {
	Currency string
	// BaseURL is the public origin used to build provider redirect URLs.
	BaseURL string
	Timeout time.Duration
}

// Bookings is the part of the booking ledger the coordinator needs.
type Bookings interface {
	GetForUser(ctx context.Context, id, userID string) (*booking.Booking, error)
	MarkPaid(ctx context.Context, id, userID string) (bool, error)
}

// Service is the payment surface used by the HTTP layer.
type Service interface {
	Initiate(ctx context.Context, bookingID, userID string) (*Initiation, error)
	Confirm(ctx context.Context, sessionID, userID string) (*Confirmation, error)
	DemoConfirm(ctx context.Context, bookingID, userID string) (*Confirmation, error)
	DemoCheckout(ctx context.Context, bookingID, userID string) (*DemoCheckout, error)
	Cancel() *Confirmation
}

type Coordinator struct {
	bookings  Bookings
	checkout  Checkout
	publisher event.Publisher
	cfg       Config
}

func NewCoordinator(bookings Bookings, checkout Checkout, publisher event.Publisher, cfg Config) *Coordinator {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Coordinator{
		bookings:  bookings,
		checkout:  checkout,
		publisher: publisher,
		cfg:       cfg,
	}
}

// Initiate starts paying for a booking: Unpaid -> PendingExternal, or the demo path.
func (c *Coordinator) Initiate(ctx context.Context, bookingID, userID string) (*Initiation, error) {
	b, err := c.bookings.GetForUser(ctx, bookingID, userID)
	if err != nil {
		return nil, err
	}

	logger := logging.FromContext(ctx).WithField("booking_id", b.ID)

	if b.Paid {
		return &Initiation{
			Next:        response.DestMyBookings,
			Message:     "This booking is already paid.",
			AlreadyPaid: true,
		}, nil
	}

	if !c.checkout.Configured() {
		logger.Info("payment provider not configured, using demo payment")
		return demoFallback("Payment provider not configured. Switching to Demo Pay."), nil
	}

	total := b.TotalAmount()
	if b.Nights() < 1 || !total.IsPositive() {
		return nil, ErrInvalidAmount
	}

	reqCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	session, err := c.checkout.CreateSession(reqCtx, SessionRequest{
		AmountMinor: MinorUnits(total),
		Currency:    c.cfg.Currency,
		Description: fmt.Sprintf("Room %s @ %s", b.RoomNumber, b.HotelName),
		Metadata:    map[string]string{"booking_id": b.ID},
		SuccessURL:  c.cfg.BaseURL + successPath,
		CancelURL:   c.cfg.BaseURL + cancelPath,
	})
	switch {
	case err == nil:
	case errors.Is(err, ErrProviderAuth):
		logger.WithError(err).Warn("payment provider rejected credentials, using demo payment")
		return demoFallback("Payment provider key invalid. Switching to Demo Pay."), nil
	case errors.Is(err, ErrProviderUnavailable):
		logger.WithError(err).Warn("payment provider unavailable, using demo payment")
		return demoFallback("Payment provider unavailable. Switching to Demo Pay."), nil
	default:
		logger.WithError(err).Error("failed to create checkout session")
		return nil, ErrPaymentFailed.WithCause(err)
	}

	logger.WithFields(logrus.Fields{
		"session_id": session.ID,
		"state":      StatePendingExternal,
	}).Info("checkout session created")

	return &Initiation{
		Next:        response.DestCheckout,
		CheckoutURL: session.URL,
		SessionID:   session.ID,
	}, nil
}

func demoFallback(message string) *Initiation {
	return &Initiation{
		Next:     response.DestDemoPay,
		Message:  message,
		Fallback: true,
	}
}

// Confirm settles a returning checkout session: PendingExternal -> Paid.
// It never creates a session.
func (c *Coordinator) Confirm(ctx context.Context, sessionID, userID string) (*Confirmation, error) {
	if sessionID == "" {
		return nil, ErrMissingSession
	}

	reqCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	session, err := c.checkout.RetrieveSession(reqCtx, sessionID)
	if err != nil {
		logging.FromContext(ctx).WithError(err).WithField("session_id", sessionID).Error("failed to retrieve checkout session")
		return nil, ErrPaymentFailed.WithCause(err)
	}

	bookingID := session.Metadata["booking_id"]
	logger := logging.FromContext(ctx).WithFields(logrus.Fields{
		"session_id": sessionID,
		"booking_id": bookingID,
	})

	if err := uuid.Validate(bookingID); err != nil {
		logger.Warn("checkout session carries no valid booking id")
		return nil, booking.ErrNotFound
	}

	// Sessions for someone else's booking reveal nothing, whatever their status.
	b, err := c.bookings.GetForUser(ctx, bookingID, userID)
	if err != nil {
		return nil, err
	}

	if session.PaymentStatus != SessionStatusPaid {
		logger.WithField("payment_status", session.PaymentStatus).Warn("payment not completed")
		return &Confirmation{
			Outcome:   OutcomeNotCompleted,
			Next:      response.DestMyBookings,
			Message:   "Payment not completed.",
			BookingID: b.ID,
		}, nil
	}

	return c.settle(ctx, b, userID, event.MethodStripe)
}

// DemoConfirm marks a booking paid without the provider: Unpaid -> Paid.
func (c *Coordinator) DemoConfirm(ctx context.Context, bookingID, userID string) (*Confirmation, error) {
	b, err := c.bookings.GetForUser(ctx, bookingID, userID)
	if err != nil {
		return nil, err
	}
	return c.settle(ctx, b, userID, event.MethodDemo)
}

// DemoCheckout loads what the demo payment screen shows.
func (c *Coordinator) DemoCheckout(ctx context.Context, bookingID, userID string) (*DemoCheckout, error) {
	b, err := c.bookings.GetForUser(ctx, bookingID, userID)
	if err != nil {
		return nil, err
	}
	return &DemoCheckout{
		Booking:     b,
		Amount:      b.TotalAmount(),
		AlreadyPaid: b.Paid,
	}, nil
}

// Cancel is the landing for an abandoned checkout. Nothing changes.
func (c *Coordinator) Cancel() *Confirmation {
	return &Confirmation{
		Outcome: OutcomeCanceled,
		Next:    response.DestMyBookings,
		Message: "Payment canceled.",
	}
}

func (c *Coordinator) settle(ctx context.Context, b *booking.Booking, userID string, method event.PaymentMethod) (*Confirmation, error) {
	alreadyPaid := &Confirmation{
		Outcome:   OutcomeAlreadyPaid,
		Next:      response.DestMyBookings,
		Message:   "This booking is already paid.",
		BookingID: b.ID,
	}
	if b.Paid {
		return alreadyPaid, nil
	}

	changed, err := c.bookings.MarkPaid(ctx, b.ID, userID)
	if err != nil {
		return nil, err
	}
	// Another confirmation won the race.
	if !changed {
		return alreadyPaid, nil
	}

	logger := logging.FromContext(ctx).WithFields(logrus.Fields{
		"booking_id": b.ID,
		"method":     method,
		"state":      StatePaid,
	})
	logger.Info("booking paid")

	if err := c.publisher.Publish(ctx, &event.BookingPaid{
		Header:    event.NewHeader(ctx),
		BookingID: b.ID,
		UserID:    b.UserID,
		Amount:    b.TotalAmount(),
		Method:    method,
	}); err != nil {
		logger.WithError(err).Warn("failed to publish BookingPaid")
	}

	message := "Payment successful! Booking is now PAID."
	if method == event.MethodDemo {
		message = "Demo payment successful. Booking marked as PAID."
	}

	return &Confirmation{
		Outcome:   OutcomePaid,
		Next:      response.DestBookingDetail,
		Message:   message,
		BookingID: b.ID,
	}, nil
}
