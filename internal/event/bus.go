package event

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/nekogravitycat/hotel-booking-backend/internal/logging"
	"github.com/redis/go-redis/v9"
)

const consumerGroupPrefix = "hotel-booking."

// Publisher is what services depend on to emit domain events.
type Publisher interface {
	Publish(ctx context.Context, event any) error
}

// PubSub bundles the transport used by the event bus and the processor.
// With a Redis client it uses Redis streams, otherwise an in-process channel.
type PubSub struct {
	Publisher     message.Publisher
	newSubscriber func(handlerName string) (message.Subscriber, error)
	close         func() error
}

func NewPubSub(redisClient *redis.Client, logger watermill.LoggerAdapter) (*PubSub, error) {
	if redisClient == nil {
		ch := gochannel.NewGoChannel(gochannel.Config{}, logger)
		return &PubSub{
			Publisher: ch,
			newSubscriber: func(string) (message.Subscriber, error) {
				return ch, nil
			},
			close: ch.Close,
		}, nil
	}

	publisher, err := redisstream.NewPublisher(redisstream.PublisherConfig{
		Client: redisClient,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("creating redis publisher: %w", err)
	}

	return &PubSub{
		Publisher: publisher,
		newSubscriber: func(handlerName string) (message.Subscriber, error) {
			return redisstream.NewSubscriber(redisstream.SubscriberConfig{
				Client:        redisClient,
				ConsumerGroup: consumerGroupPrefix + handlerName,
			}, logger)
		},
		close: publisher.Close,
	}, nil
}

func (p *PubSub) Close() error {
	return p.close()
}

// correlationPublisher copies the request correlation id onto outgoing messages.
type correlationPublisher struct {
	message.Publisher
}

func (p correlationPublisher) Publish(topic string, messages ...*message.Message) error {
	for _, msg := range messages {
		if id := logging.CorrelationIDFromContext(msg.Context()); id != "" {
			middleware.SetCorrelationID(id, msg)
		}
	}
	return p.Publisher.Publish(topic, messages...)
}

var marshaler = cqrs.JSONMarshaler{
	GenerateName: cqrs.StructName,
}

// NewBus returns an event bus publishing every event on a topic named after its struct.
func NewBus(pubSub *PubSub, logger watermill.LoggerAdapter) (*cqrs.EventBus, error) {
	bus, err := cqrs.NewEventBusWithConfig(correlationPublisher{Publisher: pubSub.Publisher}, cqrs.EventBusConfig{
		GeneratePublishTopic: func(params cqrs.GenerateEventPublishTopicParams) (string, error) {
			return params.EventName, nil
		},
		Marshaler: marshaler,
		Logger:    logger,
	})
	if err != nil {
		return nil, fmt.Errorf("creating event bus: %w", err)
	}
	return bus, nil
}
