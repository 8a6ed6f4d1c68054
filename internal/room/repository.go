package room

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, r *Room) error
	GetByID(ctx context.Context, id string) (*Room, error)
	GetByNumber(ctx context.Context, hotelID, number string) (*Room, error)
	// ListByHotels returns the rooms of the given hotels ordered by number.
	ListByHotels(ctx context.Context, hotelIDs []string) ([]*Room, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

func selectRooms() squirrel.SelectBuilder {
	return psql.Select(
		"r.id", "r.hotel_id", "h.name", "r.number", "r.room_type",
		"r.price_per_night", "r.capacity", "r.created_at",
	).
		From("public.rooms r").
		Join("public.hotels h ON r.hotel_id = h.id")
}

func scanRoom(row pgx.Row) (*Room, error) {
	var rm Room
	if err := row.Scan(
		&rm.ID, &rm.HotelID, &rm.HotelName, &rm.Number, &rm.RoomType,
		&rm.PricePerNight, &rm.Capacity, &rm.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &rm, nil
}

func (r *pgxRepository) Create(ctx context.Context, rm *Room) error {
	query, args, err := psql.Insert("public.rooms").
		Columns("hotel_id", "number", "room_type", "price_per_night", "capacity").
		Values(rm.HotelID, rm.Number, rm.RoomType, rm.PricePerNight, rm.Capacity).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create room query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&rm.ID, &rm.CreatedAt); err != nil {
		return fmt.Errorf("create room failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Room, error) {
	return r.getOne(ctx, squirrel.Eq{"r.id": id})
}

func (r *pgxRepository) GetByNumber(ctx context.Context, hotelID, number string) (*Room, error) {
	return r.getOne(ctx, squirrel.Eq{"r.hotel_id": hotelID, "r.number": number})
}

func (r *pgxRepository) getOne(ctx context.Context, where squirrel.Eq) (*Room, error) {
	query, args, err := selectRooms().Where(where).OrderBy("r.created_at").Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get room query failed: %w", err)
	}

	rm, err := scanRoom(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get room failed: %w", err)
	}
	return rm, nil
}

func (r *pgxRepository) ListByHotels(ctx context.Context, hotelIDs []string) ([]*Room, error) {
	if len(hotelIDs) == 0 {
		return nil, nil
	}

	query, args, err := selectRooms().
		Where(squirrel.Eq{"r.hotel_id": hotelIDs}).
		OrderBy("r.hotel_id", "r.number ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list rooms query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list rooms failed: %w", err)
	}
	defer rows.Close()

	var rooms []*Room
	for rows.Next() {
		rm, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("scan room failed: %w", err)
		}
		rooms = append(rooms, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list rooms failed: %w", err)
	}

	return rooms, nil
}
