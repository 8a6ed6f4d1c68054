package room

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/nekogravitycat/hotel-booking-backend/internal/hotel"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubHotels struct {
	hotels map[string]*hotel.Hotel
}

func (s *stubHotels) Create(context.Context, hotel.CreateRequest) (*hotel.Hotel, error) {
	return nil, fmt.Errorf("not implemented")
}

func (s *stubHotels) GetOrCreate(context.Context, hotel.CreateRequest) (*hotel.Hotel, bool, error) {
	return nil, false, fmt.Errorf("not implemented")
}

func (s *stubHotels) GetByID(_ context.Context, id string) (*hotel.Hotel, error) {
	h, ok := s.hotels[id]
	if !ok {
		return nil, hotel.ErrNotFound
	}
	return h, nil
}

func (s *stubHotels) List(context.Context) ([]*hotel.Hotel, error) {
	return nil, nil
}

type memoryRepo struct {
	lock  sync.Mutex
	rooms []*Room
}

func (m *memoryRepo) Create(_ context.Context, r *Room) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	r.ID = fmt.Sprintf("room-%d", len(m.rooms)+1)
	r.CreatedAt = time.Now().UTC()
	cp := *r
	m.rooms = append(m.rooms, &cp)
	return nil
}

func (m *memoryRepo) GetByID(_ context.Context, id string) (*Room, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	for _, r := range m.rooms {
		if r.ID == id {
			cp := *r
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memoryRepo) GetByNumber(_ context.Context, hotelID, number string) (*Room, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	for _, r := range m.rooms {
		if r.HotelID == hotelID && r.Number == number {
			cp := *r
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memoryRepo) ListByHotels(_ context.Context, hotelIDs []string) ([]*Room, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	wanted := map[string]bool{}
	for _, id := range hotelIDs {
		wanted[id] = true
	}
	var out []*Room
	for _, r := range m.rooms {
		if wanted[r.HotelID] {
			cp := *r
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out, nil
}

func newTestService() (Service, *memoryRepo) {
	repo := &memoryRepo{}
	hotels := &stubHotels{hotels: map[string]*hotel.Hotel{
		"hotel-1": {ID: "hotel-1", Name: "Demo Hotel"},
		"hotel-2": {ID: "hotel-2", Name: "Harbour Inn"},
	}}
	return NewService(repo, hotels), repo
}

func TestCreateRoom(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	r, err := svc.Create(ctx, CreateRequest{
		HotelID:       "hotel-1",
		Number:        " 101 ",
		PricePerNight: decimal.RequireFromString("99.999"),
		Capacity:      2,
	})
	require.NoError(t, err)
	assert.Equal(t, "101", r.Number)
	assert.Equal(t, DefaultRoomType, r.RoomType)
	assert.Equal(t, "Demo Hotel", r.HotelName)
	assert.Equal(t, "100.00", r.PricePerNight.StringFixed(2))

	got, err := svc.GetByID(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, r.ID, got.ID)

	_, err = svc.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateRoomValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateRequest
		wantErr error
	}{
		{name: "empty number", req: CreateRequest{HotelID: "hotel-1", Number: " ", Capacity: 2}, wantErr: ErrEmptyNumber},
		{name: "negative price", req: CreateRequest{HotelID: "hotel-1", Number: "1", PricePerNight: decimal.NewFromInt(-1), Capacity: 2}, wantErr: ErrInvalidPrice},
		{name: "zero capacity", req: CreateRequest{HotelID: "hotel-1", Number: "1", Capacity: 0}, wantErr: ErrInvalidCapacity},
		{name: "unknown hotel", req: CreateRequest{HotelID: "hotel-9", Number: "1", Capacity: 2}, wantErr: ErrInvalidHotel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestService()
			_, err := svc.Create(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, repo.rooms)
		})
	}
}

func TestGetOrCreateAndListByHotels(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	for _, number := range []string{"102", "101", "101"} {
		_, _, err := svc.GetOrCreate(ctx, CreateRequest{HotelID: "hotel-1", Number: number, PricePerNight: decimal.NewFromInt(100), Capacity: 2})
		require.NoError(t, err)
	}
	_, created, err := svc.GetOrCreate(ctx, CreateRequest{HotelID: "hotel-2", Number: "101", PricePerNight: decimal.NewFromInt(80), Capacity: 1})
	require.NoError(t, err)
	assert.True(t, created)

	grouped, err := svc.ListByHotels(ctx, []string{"hotel-1", "hotel-2", "hotel-3"})
	require.NoError(t, err)
	require.Len(t, grouped["hotel-1"], 2)
	assert.Equal(t, "101", grouped["hotel-1"][0].Number)
	assert.Equal(t, "102", grouped["hotel-1"][1].Number)
	assert.Len(t, grouped["hotel-2"], 1)
	assert.Empty(t, grouped["hotel-3"])
}
