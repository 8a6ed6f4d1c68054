package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	// CreateIfAvailable inserts b unless another booking of the same room overlaps it.
	// It fills in the generated and joined fields of b.
	CreateIfAvailable(ctx context.Context, b *Booking) error
	GetByIDForUser(ctx context.Context, id, userID string) (*Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*Booking, error)
	// MarkPaid flips paid to true and reports whether this call did it.
	MarkPaid(ctx context.Context, id, userID string) (bool, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

func selectBookings() squirrel.SelectBuilder {
	return psql.Select(
		"b.id", "b.room_id", "b.user_id", "b.check_in", "b.check_out", "b.paid", "b.created_at",
		"r.number", "r.room_type", "h.id", "h.name", "r.price_per_night",
	).
		From("public.bookings b").
		Join("public.rooms r ON b.room_id = r.id").
		Join("public.hotels h ON r.hotel_id = h.id")
}

func scanBooking(row pgx.Row) (*Booking, error) {
	var b Booking
	if err := row.Scan(
		&b.ID, &b.RoomID, &b.UserID, &b.CheckIn, &b.CheckOut, &b.Paid, &b.CreatedAt,
		&b.RoomNumber, &b.RoomType, &b.HotelID, &b.HotelName, &b.PricePerNight,
	); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *pgxRepository) CreateIfAvailable(ctx context.Context, b *Booking) error {
	return pgx.BeginTxFunc(ctx, r.pool, pgx.TxOptions{}, func(tx pgx.Tx) error {
		// Locking the room row serializes concurrent bookings of the same room.
		lockQuery, args, err := psql.Select("r.number", "r.room_type", "h.id", "h.name", "r.price_per_night").
			From("public.rooms r").
			Join("public.hotels h ON r.hotel_id = h.id").
			Where(squirrel.Eq{"r.id": b.RoomID}).
			Suffix("FOR UPDATE OF r").
			ToSql()
		if err != nil {
			return fmt.Errorf("build lock room query failed: %w", err)
		}

		if err := tx.QueryRow(ctx, lockQuery, args...).Scan(
			&b.RoomNumber, &b.RoomType, &b.HotelID, &b.HotelName, &b.PricePerNight,
		); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrRoomNotFound
			}
			return fmt.Errorf("lock room failed: %w", err)
		}

		// existing.check_in < new.check_out AND existing.check_out > new.check_in
		overlapSQL, args, err := psql.Select("1").
			From("public.bookings").
			Where(squirrel.Eq{"room_id": b.RoomID}).
			Where(squirrel.Lt{"check_in": b.CheckOut}).
			Where(squirrel.Gt{"check_out": b.CheckIn}).
			ToSql()
		if err != nil {
			return fmt.Errorf("build check overlap query failed: %w", err)
		}

		var exists bool
		if err := tx.QueryRow(ctx, "SELECT EXISTS ("+overlapSQL+")", args...).Scan(&exists); err != nil {
			return fmt.Errorf("check overlap failed: %w", err)
		}
		if exists {
			return ErrRoomUnavailable
		}

		insertQuery, args, err := psql.Insert("public.bookings").
			Columns("room_id", "user_id", "check_in", "check_out", "paid").
			Values(b.RoomID, b.UserID, b.CheckIn, b.CheckOut, false).
			Suffix("RETURNING id, paid, created_at").
			ToSql()
		if err != nil {
			return fmt.Errorf("build create booking query failed: %w", err)
		}

		if err := tx.QueryRow(ctx, insertQuery, args...).Scan(&b.ID, &b.Paid, &b.CreatedAt); err != nil {
			return mapInsertError(err)
		}
		return nil
	})
}

const (
	roomForeignKey = "bookings_room_id_fkey"
	userForeignKey = "bookings_user_id_fkey"
)

func mapInsertError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
		switch pgErr.ConstraintName {
		case roomForeignKey:
			return ErrRoomNotFound
		case userForeignKey:
			return ErrUserNotFound
		}
	}
	return fmt.Errorf("create booking failed: %w", err)
}

func (r *pgxRepository) GetByIDForUser(ctx context.Context, id, userID string) (*Booking, error) {
	query, args, err := selectBookings().
		Where(squirrel.Eq{"b.id": id, "b.user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	b, err := scanBooking(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return b, nil
}

func (r *pgxRepository) ListByUser(ctx context.Context, userID string) ([]*Booking, error) {
	query, args, err := selectBookings().
		Where(squirrel.Eq{"b.user_id": userID}).
		OrderBy("b.created_at DESC", "b.id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list bookings failed: %w", err)
	}

	return bookings, nil
}

func (r *pgxRepository) MarkPaid(ctx context.Context, id, userID string) (bool, error) {
	query, args, err := psql.Update("public.bookings").
		Set("paid", true).
		Where(squirrel.Eq{"id": id, "user_id": userID, "paid": false}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build mark paid query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("mark booking paid failed: %w", err)
	}
	return ct.RowsAffected() == 1, nil
}
