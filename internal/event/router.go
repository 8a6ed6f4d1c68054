package event

import (
	"context"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/lithammer/shortuuid/v3"
	"github.com/nekogravitycat/hotel-booking-backend/internal/logging"
	"github.com/sirupsen/logrus"
)

// NewRouter builds the message router that runs the audit handlers.
func NewRouter(pubSub *PubSub, audit *logrus.Entry, logger watermill.LoggerAdapter) (*message.Router, error) {
	router, err := message.NewRouter(message.RouterConfig{}, logger)
	if err != nil {
		return nil, fmt.Errorf("creating router: %w", err)
	}

	router.AddMiddleware(middleware.Recoverer)
	router.AddMiddleware(correlationIDMiddleware)
	router.AddMiddleware(loggerMiddleware)
	router.AddMiddleware(middleware.Retry{
		MaxRetries:      3,
		InitialInterval: 100 * time.Millisecond,
		MaxInterval:     time.Second,
		Multiplier:      2,
		Logger:          logger,
	}.Middleware)

	ep, err := cqrs.NewEventProcessorWithConfig(router, cqrs.EventProcessorConfig{
		SubscriberConstructor: func(params cqrs.EventProcessorSubscriberConstructorParams) (message.Subscriber, error) {
			return pubSub.newSubscriber(params.HandlerName)
		},
		GenerateSubscribeTopic: func(params cqrs.EventProcessorGenerateSubscribeTopicParams) (string, error) {
			return params.EventName, nil
		},
		Marshaler: marshaler,
		Logger:    logger,
	})
	if err != nil {
		return nil, fmt.Errorf("creating event processor: %w", err)
	}

	h := auditHandler{entry: audit}
	if err := ep.AddHandlers(
		cqrs.NewEventHandler("audit-booking-created", h.BookingCreated),
		cqrs.NewEventHandler("audit-booking-paid", h.BookingPaid),
	); err != nil {
		return nil, fmt.Errorf("adding handlers: %w", err)
	}

	return router, nil
}

func correlationIDMiddleware(next message.HandlerFunc) message.HandlerFunc {
	return func(msg *message.Message) ([]*message.Message, error) {
		correlationID := middleware.MessageCorrelationID(msg)
		if correlationID == "" {
			correlationID = "gen_" + shortuuid.New()
		}

		msg.SetContext(logging.ContextWithCorrelationID(msg.Context(), correlationID))
		return next(msg)
	}
}

func loggerMiddleware(next message.HandlerFunc) message.HandlerFunc {
	return func(msg *message.Message) ([]*message.Message, error) {
		entry := logrus.WithFields(logrus.Fields{
			"message_uuid":   msg.UUID,
			"correlation_id": logging.CorrelationIDFromContext(msg.Context()),
		})
		msg.SetContext(logging.ToContext(msg.Context(), entry))

		msgs, err := next(msg)
		if err != nil {
			entry.WithError(err).Error("message handling error")
		}
		return msgs, err
	}
}

type auditHandler struct {
	entry *logrus.Entry
}

func (h auditHandler) BookingCreated(ctx context.Context, e *BookingCreated) error {
	h.entry.WithFields(logrus.Fields{
		"event":          "BookingCreated",
		"event_id":       e.Header.ID,
		"correlation_id": logging.CorrelationIDFromContext(ctx),
		"booking_id":     e.BookingID,
		"room_id":        e.RoomID,
		"user_id":        e.UserID,
		"check_in":       e.CheckIn,
		"check_out":      e.CheckOut,
		"total_amount":   e.TotalAmount.StringFixed(2),
	}).Info("booking created")
	return nil
}

func (h auditHandler) BookingPaid(ctx context.Context, e *BookingPaid) error {
	h.entry.WithFields(logrus.Fields{
		"event":          "BookingPaid",
		"event_id":       e.Header.ID,
		"correlation_id": logging.CorrelationIDFromContext(ctx),
		"booking_id":     e.BookingID,
		"user_id":        e.UserID,
		"amount":         e.Amount.StringFixed(2),
		"method":         string(e.Method),
	}).Info("booking paid")
	return nil
}
