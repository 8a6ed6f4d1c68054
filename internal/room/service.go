package room

import (
	"context"
	"errors"
	"strings"

	"github.com/nekogravitycat/hotel-booking-backend/internal/hotel"
	"github.com/shopspring/decimal"
)

type CreateRequest struct {
	HotelID       string
	Number        string
	RoomType      string
	PricePerNight decimal.Decimal
	Capacity      int
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Room, error)
	// GetOrCreate returns the hotel's room with the same number, creating it if missing.
	GetOrCreate(ctx context.Context, req CreateRequest) (*Room, bool, error)
	GetByID(ctx context.Context, id string) (*Room, error)
	// ListByHotels groups rooms by hotel ID.
	ListByHotels(ctx context.Context, hotelIDs []string) (map[string][]*Room, error)
}

type service struct {
	repo         Repository
	hotelService hotel.Service
}

func NewService(repo Repository, hotelService hotel.Service) Service {
	return &service{
		repo:         repo,
		hotelService: hotelService,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Room, error) {
	number := strings.TrimSpace(req.Number)
	if number == "" {
		return nil, ErrEmptyNumber
	}
	if req.PricePerNight.IsNegative() {
		return nil, ErrInvalidPrice
	}
	if req.Capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	roomType := strings.TrimSpace(req.RoomType)
	if roomType == "" {
		roomType = DefaultRoomType
	}

	// Validation: Check if Hotel exists
	h, err := s.hotelService.GetByID(ctx, req.HotelID)
	if err != nil {
		if errors.Is(err, hotel.ErrNotFound) {
			return nil, ErrInvalidHotel
		}
		return nil, err
	}

	rm := &Room{
		HotelID:       h.ID,
		HotelName:     h.Name,
		Number:        number,
		RoomType:      roomType,
		PricePerNight: req.PricePerNight.Round(2),
		Capacity:      req.Capacity,
	}

	if err := s.repo.Create(ctx, rm); err != nil {
		return nil, err
	}
	return rm, nil
}

func (s *service) GetOrCreate(ctx context.Context, req CreateRequest) (*Room, bool, error) {
	rm, err := s.repo.GetByNumber(ctx, req.HotelID, strings.TrimSpace(req.Number))
	if err == nil {
		return rm, false, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, false, err
	}

	rm, err = s.Create(ctx, req)
	if err != nil {
		return nil, false, err
	}
	return rm, true, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Room, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListByHotels(ctx context.Context, hotelIDs []string) (map[string][]*Room, error) {
	rooms, err := s.repo.ListByHotels(ctx, hotelIDs)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]*Room, len(hotelIDs))
	for _, rm := range rooms {
		grouped[rm.HotelID] = append(grouped[rm.HotelID], rm)
	}
	return grouped, nil
}
