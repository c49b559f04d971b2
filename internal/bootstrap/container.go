package bootstrap

import (
	"context"
	"time"

	"socialrobot-be/internal/config"
	"socialrobot-be/internal/controller"
	"socialrobot-be/internal/handler"
	"socialrobot-be/internal/live"
	"socialrobot-be/internal/pkg/logger"
	"socialrobot-be/internal/repository"
	"socialrobot-be/internal/service"
	"socialrobot-be/pkg/events"
	pktNats "socialrobot-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// ChatArchiveTopic carries bot chat turns from the socket to the archive consumer.
const ChatArchiveTopic = "chat_archive"

type Container struct {
	Logger       *logger.ZapLogger
	SocketLogger *logger.ZapLogger
	Store        repository.Store
	Registry     *live.Registry

	// Controllers
	CommunicationController controller.ICommunicationController
	PromptController        controller.IPromptController
	ChatController          controller.IChatController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets
	BotSocketHandler *handler.BotSocketHandler

	pubSub message.Publisher
	nats   *pktNats.Publisher
}

func NewContainer(cfg *config.Config, store repository.Store, sysLogger *logger.ZapLogger) *Container {
	socketLogger := logger.NewIsolatedLogger(cfg.App.SocketLogFilePath)

	// 1. Live state
	registry := live.NewRegistry()
	bridge := live.NewBridge(registry, socketLogger)

	// 2. Event Bus
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 256},
		watermill.NewStdLogger(cfg.App.Debug, false),
	)

	var publisher events.Publisher = events.NopPublisher{}
	var natsPub *pktNats.Publisher
	if cfg.App.NatsURL != "" {
		p, err := pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			sysLogger.Warn("BOOTSTRAP", "NATS publisher degraded", map[string]interface{}{
				"url":   cfg.App.NatsURL,
				"error": err.Error(),
			})
		}
		if p != nil {
			natsPub = p
			publisher = p
		}
	}

	// 3. Services
	archive := service.NewPublisherService(pubSub, ChatArchiveTopic)
	consumerService := service.NewConsumerService(pubSub, ChatArchiveTopic, store.ChatMessages(), sysLogger)

	communicationService := service.NewCommunicationService(
		store.Communications(),
		registry,
		bridge,
		publisher,
		sysLogger,
		service.CommunicationServiceOptions{IdMaxAttempts: cfg.Session.IdMaxAttempts},
	)
	promptService := service.NewPromptService(store.Communications(), store.Prompts(), publisher, sysLogger)
	chatService := service.NewChatService(store.ChatMessages(), sysLogger)
	botService := service.NewBotService(store.Communications(), registry, bridge, archive, socketLogger)

	// 4. Controllers
	return &Container{
		Logger:       sysLogger,
		SocketLogger: socketLogger,
		Store:        store,
		Registry:     registry,

		CommunicationController: controller.NewCommunicationController(communicationService),
		PromptController:        controller.NewPromptController(promptService),
		ChatController:          controller.NewChatController(chatService),

		ConsumerService:  consumerService,
		BotSocketHandler: handler.NewBotSocketHandler(botService, cfg.Session.SendBufferSize, socketLogger),

		pubSub: pubSub,
		nats:   natsPub,
	}
}

// Close releases the event bus, the NATS connection and the store.
func (c *Container) Close(ctx context.Context) error {
	_ = c.pubSub.Close()
	if c.nats != nil {
		c.nats.Close()
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	err := c.Store.Close(ctx)

	_ = c.SocketLogger.Sync()
	_ = c.Logger.Sync()
	return err
}
