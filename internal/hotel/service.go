package hotel

import (
	"context"
	"errors"
	"strings"
)

// CreateRequest carries data to create a hotel.
type CreateRequest struct {
	Name        string
	City        string
	Address     string
	Description string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Hotel, error)
	// GetOrCreate returns the hotel with the same name and city, creating it if missing.
	GetOrCreate(ctx context.Context, req CreateRequest) (*Hotel, bool, error)
	GetByID(ctx context.Context, id string) (*Hotel, error)
	List(ctx context.Context) ([]*Hotel, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Hotel, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrEmptyName
	}

	h := &Hotel{
		Name:        name,
		City:        strings.TrimSpace(req.City),
		Address:     strings.TrimSpace(req.Address),
		Description: req.Description,
	}
	if err := s.repo.Create(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *service) GetOrCreate(ctx context.Context, req CreateRequest) (*Hotel, bool, error) {
	h, err := s.repo.GetByName(ctx, strings.TrimSpace(req.Name), strings.TrimSpace(req.City))
	if err == nil {
		return h, false, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, false, err
	}

	h, err = s.Create(ctx, req)
	if err != nil {
		return nil, false, err
	}
	return h, true, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Hotel, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*Hotel, error) {
	return s.repo.List(ctx)
}
