package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nekogravitycat/hotel-booking-backend/internal/app"
	"github.com/nekogravitycat/hotel-booking-backend/internal/config"
	"github.com/nekogravitycat/hotel-booking-backend/internal/db"
	"github.com/nekogravitycat/hotel-booking-backend/internal/event"
	"github.com/nekogravitycat/hotel-booking-backend/internal/logging"
	"github.com/nekogravitycat/hotel-booking-backend/internal/payment"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

func main() {
	// For receiving Ctrl+C / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load config
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}

	if err := logging.Init(cfg.LogLevel, cfg.IsProduction); err != nil {
		logrus.Fatalf("failed to init logging: %v", err)
	}

	// Connect DB
	pool, err := db.NewPool(ctx, cfg.DB())
	if err != nil {
		logrus.Fatalf("failed to connect to db: %v", err)
	}
	defer pool.Close()

	if err := db.EnsureSchema(ctx, pool); err != nil {
		logrus.Fatalf("failed to apply schema: %v", err)
	}

	// Domain events
	watermillLogger := logging.NewWatermillLogger(logrus.WithField("component", "watermill"))

	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer redisClient.Close()
	}

	pubSub, err := event.NewPubSub(redisClient, watermillLogger)
	if err != nil {
		logrus.Fatalf("failed to create pub/sub: %v", err)
	}
	defer pubSub.Close()

	eventBus, err := event.NewBus(pubSub, watermillLogger)
	if err != nil {
		logrus.Fatalf("failed to create event bus: %v", err)
	}

	eventRouter, err := event.NewRouter(pubSub, logrus.WithField("component", "audit"), watermillLogger)
	if err != nil {
		logrus.Fatalf("failed to create event router: %v", err)
	}

	checkout := payment.NewStripeCheckout(cfg.StripePublicKey, cfg.StripeSecretKey, cfg.PaymentTimeout)
	if !checkout.Configured() {
		logrus.Warn("stripe keys missing or placeholders, payments use the demo path")
	}

	container := app.NewContainer(app.Config{
		IsProduction: cfg.IsProduction,
		ProdOrigins:  cfg.ProdOrigins,
		DBPool:       pool,
		JWTSecret:    cfg.JWTSecret,
		JWTTTL:       cfg.JWTAccessTokenTTL,
		BcryptCost:   cfg.BcryptCost,
		Publisher:    eventBus,
		Checkout:     checkout,
		Payment: payment.Config{
			Currency: cfg.PaymentCurrency,
			BaseURL:  cfg.PublicBaseURL,
			Timeout:  cfg.PaymentTimeout,
		},
	})

	// Use http.Server for graceful shutdown
	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           container.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, runCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return eventRouter.Run(runCtx)
	})

	g.Go(func() error {
		// Wait for the event router so no event is published before its handlers subscribe.
		select {
		case <-eventRouter.Running():
		case <-runCtx.Done():
			return nil
		}

		logrus.Infof("server running on %s", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-runCtx.Done()
		logrus.Info("shutdown signal received")

		// Create a shutdown context with timeout
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logrus.WithError(err).Warn("server forced to shutdown")
		}
		return eventRouter.Close()
	})

	if err := g.Wait(); err != nil {
		logrus.WithError(err).Fatal("server exited with error")
	}

	logrus.Info("server exited gracefully")
}
