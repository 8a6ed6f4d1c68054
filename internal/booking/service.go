package booking

import (
	"context"
	"errors"

	"github.com/nekogravitycat/hotel-booking-backend/internal/event"
	"github.com/nekogravitycat/hotel-booking-backend/internal/logging"
	"github.com/nekogravitycat/hotel-booking-backend/internal/room"
)

// CreateRequest carries raw client input; dates are YYYY-MM-DD strings.
type CreateRequest struct {
	UserID   string
	RoomID   string
	CheckIn  string
	CheckOut string
}

// RoomCatalog is the part of the room service the ledger needs.
type RoomCatalog interface {
	GetByID(ctx context.Context, id string) (*room.Room, error)
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	ListForUser(ctx context.Context, userID string) ([]*Booking, error)
	// GetForUser reports bookings of other users as not found.
	GetForUser(ctx context.Context, id, userID string) (*Booking, error)
	MarkPaid(ctx context.Context, id, userID string) (bool, error)
}

type service struct {
	repo      Repository
	rooms     RoomCatalog
	publisher event.Publisher
}

func NewService(repo Repository, rooms RoomCatalog, publisher event.Publisher) Service {
	return &service{
		repo:      repo,
		rooms:     rooms,
		publisher: publisher,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	// 1. Parse dates
	checkIn, err := ParseDate(req.CheckIn)
	if err != nil {
		return nil, err
	}
	checkOut, err := ParseDate(req.CheckOut)
	if err != nil {
		return nil, err
	}

	// 2. Validate range
	if !checkIn.Before(checkOut) {
		return nil, ErrInvalidDateRange
	}

	// 3. Validate room exists
	if _, err := s.rooms.GetByID(ctx, req.RoomID); err != nil {
		if errors.Is(err, room.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	// 4. Check overlap and insert atomically
	b := &Booking{
		RoomID:   req.RoomID,
		UserID:   req.UserID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
	}
	if err := s.repo.CreateIfAvailable(ctx, b); err != nil {
		return nil, err
	}

	logger := logging.FromContext(ctx).WithField("booking_id", b.ID)
	logger.Info("booking created")

	if err := s.publisher.Publish(ctx, &event.BookingCreated{
		Header:      event.NewHeader(ctx),
		BookingID:   b.ID,
		RoomID:      b.RoomID,
		UserID:      b.UserID,
		CheckIn:     b.CheckIn.Format(DateLayout),
		CheckOut:    b.CheckOut.Format(DateLayout),
		TotalAmount: b.TotalAmount(),
	}); err != nil {
		logger.WithError(err).Warn("failed to publish BookingCreated")
	}

	return b, nil
}

func (s *service) ListForUser(ctx context.Context, userID string) ([]*Booking, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) GetForUser(ctx context.Context, id, userID string) (*Booking, error) {
	return s.repo.GetByIDForUser(ctx, id, userID)
}

func (s *service) MarkPaid(ctx context.Context, id, userID string) (bool, error) {
	return s.repo.MarkPaid(ctx, id, userID)
}
