package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/nekogravitycat/hotel-booking-backend/internal/config"
	"github.com/nekogravitycat/hotel-booking-backend/internal/db"
	"github.com/nekogravitycat/hotel-booking-backend/internal/hotel"
	"github.com/nekogravitycat/hotel-booking-backend/internal/logging"
	"github.com/nekogravitycat/hotel-booking-backend/internal/room"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Seed creates a demo hotel with a few rooms. Running it twice changes nothing.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}

	if err := logging.Init(cfg.LogLevel, cfg.IsProduction); err != nil {
		logrus.Fatalf("failed to init logging: %v", err)
	}

	pool, err := db.NewPool(ctx, cfg.DB())
	if err != nil {
		logrus.Fatalf("failed to connect to db: %v", err)
	}
	defer pool.Close()

	if err := db.EnsureSchema(ctx, pool); err != nil {
		logrus.Fatalf("failed to apply schema: %v", err)
	}

	hotelService := hotel.NewService(hotel.NewPgxRepository(pool))
	roomService := room.NewService(room.NewPgxRepository(pool), hotelService)

	h, created, err := hotelService.GetOrCreate(ctx, hotel.CreateRequest{
		Name:        "Demo Hotel",
		City:        "Melbourne",
		Address:     "1 Collins St",
		Description: "A demo hotel for testing bookings.",
	})
	if err != nil {
		logrus.Fatalf("failed to seed hotel: %v", err)
	}
	logrus.WithFields(logrus.Fields{"hotel_id": h.ID, "created": created}).Info("hotel ready")

	price := decimal.RequireFromString("100.00")
	for _, number := range []string{"101", "102", "201", "202"} {
		rm, created, err := roomService.GetOrCreate(ctx, room.CreateRequest{
			HotelID:       h.ID,
			Number:        number,
			RoomType:      room.DefaultRoomType,
			PricePerNight: price,
			Capacity:      2,
		})
		if err != nil {
			logrus.Fatalf("failed to seed room %s: %v", number, err)
		}
		logrus.WithFields(logrus.Fields{"room_id": rm.ID, "number": number, "created": created}).Info("room ready")
	}

	logrus.Info("demo data ready")
}
