package hotel

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, h *Hotel) error
	GetByID(ctx context.Context, id string) (*Hotel, error)
	GetByName(ctx context.Context, name, city string) (*Hotel, error)
	List(ctx context.Context) ([]*Hotel, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

func selectHotels() squirrel.SelectBuilder {
	return psql.Select("id", "name", "city", "address", "description", "created_at").
		From("public.hotels")
}

func scanHotel(row pgx.Row) (*Hotel, error) {
	var h Hotel
	if err := row.Scan(&h.ID, &h.Name, &h.City, &h.Address, &h.Description, &h.CreatedAt); err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *pgxRepository) Create(ctx context.Context, h *Hotel) error {
	query, args, err := psql.Insert("public.hotels").
		Columns("name", "city", "address", "description").
		Values(h.Name, h.City, h.Address, h.Description).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create hotel query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&h.ID, &h.CreatedAt); err != nil {
		return fmt.Errorf("create hotel failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Hotel, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

func (r *pgxRepository) GetByName(ctx context.Context, name, city string) (*Hotel, error) {
	return r.getOne(ctx, squirrel.Eq{"name": name, "city": city})
}

func (r *pgxRepository) getOne(ctx context.Context, where squirrel.Eq) (*Hotel, error) {
	query, args, err := selectHotels().Where(where).OrderBy("created_at").Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get hotel query failed: %w", err)
	}

	h, err := scanHotel(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get hotel failed: %w", err)
	}
	return h, nil
}

func (r *pgxRepository) List(ctx context.Context) ([]*Hotel, error) {
	query, args, err := selectHotels().OrderBy("name ASC", "created_at ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list hotels query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list hotels failed: %w", err)
	}
	defer rows.Close()

	var hotels []*Hotel
	for rows.Next() {
		h, err := scanHotel(rows)
		if err != nil {
			return nil, fmt.Errorf("scan hotel failed: %w", err)
		}
		hotels = append(hotels, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list hotels failed: %w", err)
	}

	return hotels, nil
}
