package hotel

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRepo struct {
	lock   sync.Mutex
	hotels map[string]*Hotel
	seq    int
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{hotels: map[string]*Hotel{}}
}

func (m *memoryRepo) Create(_ context.Context, h *Hotel) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.seq++
	h.ID = fmt.Sprintf("hotel-%d", m.seq)
	h.CreatedAt = time.Now().UTC()
	cp := *h
	m.hotels[h.ID] = &cp
	return nil
}

func (m *memoryRepo) GetByID(_ context.Context, id string) (*Hotel, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	h, ok := m.hotels[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *h
	return &cp, nil
}

func (m *memoryRepo) GetByName(_ context.Context, name, city string) (*Hotel, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	for _, h := range m.hotels {
		if h.Name == name && h.City == city {
			cp := *h
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memoryRepo) List(_ context.Context) ([]*Hotel, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	var out []*Hotel
	for _, h := range m.hotels {
		cp := *h
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func TestCreateHotel(t *testing.T) {
	svc := NewService(newMemoryRepo())
	ctx := context.Background()

	h, err := svc.Create(ctx, CreateRequest{Name: "  Demo Hotel ", City: "Melbourne"})
	require.NoError(t, err)
	assert.Equal(t, "Demo Hotel", h.Name)
	assert.NotEmpty(t, h.ID)

	_, err = svc.Create(ctx, CreateRequest{Name: "   "})
	assert.ErrorIs(t, err, ErrEmptyName)

	got, err := svc.GetByID(ctx, h.ID)
	require.NoError(t, err)
	assert.Equal(t, "Melbourne", got.City)

	_, err = svc.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetOrCreateHotel(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)
	ctx := context.Background()

	req := CreateRequest{Name: "Demo Hotel", City: "Melbourne"}
	first, created, err := svc.GetOrCreate(ctx, req)
	require.NoError(t, err)
	assert.True(t, created)

	second, created, err := svc.GetOrCreate(ctx, req)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
