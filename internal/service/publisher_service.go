package service

import (
	"context"
	"time"

	"socialrobot-be/internal/pkg/logger"
	"socialrobot-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

const domainEventTimeout = 3 * time.Second

// IPublisherService publishes raw payloads to one in-process topic.
type IPublisherService interface {
	Publish(ctx context.Context, payload []byte) error
}

type publisherService struct {
	publisher message.Publisher
	topicName string
}

func NewPublisherService(publisher message.Publisher, topicName string) IPublisherService {
	return &publisherService{
		publisher: publisher,
		topicName: topicName,
	}
}

func (p *publisherService) Publish(ctx context.Context, payload []byte) error {
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)
	return p.publisher.Publish(p.topicName, msg)
}

// eventEmitter sends domain events without holding up the caller.
// Failures are logged only.
type eventEmitter struct {
	publisher events.Publisher
	logger    logger.ILogger
}

func newEventEmitter(publisher events.Publisher, log logger.ILogger) *eventEmitter {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &eventEmitter{publisher: publisher, logger: log}
}

func (e *eventEmitter) emit(ctx context.Context, eventType string, data map[string]interface{}) {
	event := events.New(eventType, data)
	go func() {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), domainEventTimeout)
		defer cancel()
		if err := e.publisher.Publish(ctx, event); err != nil {
			e.logger.Warn("EVENTS", "Failed to publish domain event", map[string]interface{}{
				"type":  eventType,
				"error": err.Error(),
			})
		}
	}()
}
