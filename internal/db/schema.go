package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema is applied in order on start-up. Every statement is idempotent.
var schema = []string{
	`CREATE EXTENSION IF NOT EXISTS pgcrypto`,
	`CREATE TABLE IF NOT EXISTS public.users (
		id            UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		username      VARCHAR(150) NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
		last_login_at TIMESTAMPTZ,
		is_active     BOOLEAN NOT NULL DEFAULT true
	)`,
	`CREATE TABLE IF NOT EXISTS public.hotels (
		id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name        VARCHAR(120) NOT NULL,
		city        VARCHAR(120) NOT NULL DEFAULT '',
		address     VARCHAR(255) NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS public.rooms (
		id              UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		hotel_id        UUID NOT NULL REFERENCES public.hotels(id) ON DELETE CASCADE,
		number          VARCHAR(20) NOT NULL,
		room_type       VARCHAR(50) NOT NULL DEFAULT 'Standard',
		price_per_night NUMERIC(8, 2) NOT NULL CHECK (price_per_night >= 0),
		capacity        INTEGER NOT NULL DEFAULT 2 CHECK (capacity > 0),
		created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS public.bookings (
		id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		room_id    UUID NOT NULL CONSTRAINT bookings_room_id_fkey REFERENCES public.rooms(id) ON DELETE CASCADE,
		user_id    UUID NOT NULL CONSTRAINT bookings_user_id_fkey REFERENCES public.users(id) ON DELETE CASCADE,
		check_in   DATE NOT NULL,
		check_out  DATE NOT NULL,
		paid       BOOLEAN NOT NULL DEFAULT false,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		CHECK (check_in < check_out)
	)`,
	`CREATE INDEX IF NOT EXISTS bookings_room_dates_idx ON public.bookings (room_id, check_in, check_out)`,
	`CREATE INDEX IF NOT EXISTS bookings_user_created_idx ON public.bookings (user_id, created_at DESC)`,
}

// EnsureSchema creates the tables used by the application if they do not exist.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
