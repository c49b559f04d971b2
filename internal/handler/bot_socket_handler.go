package handler

import (
	"context"

	"socialrobot-be/internal/pkg/logger"
	"socialrobot-be/internal/service"
	internalWS "socialrobot-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

type BotSocketHandler struct {
	bot        service.IBotService
	bufferSize int
	logger     logger.ILogger
}

func NewBotSocketHandler(bot service.IBotService, bufferSize int, log logger.ILogger) *BotSocketHandler {
	return &BotSocketHandler{
		bot:        bot,
		bufferSize: bufferSize,
		logger:     log,
	}
}

func (h *BotSocketHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/ws/communication/:communication_id", h.ServeWs)
}

// ServeWs upgrades the request and runs the bot session on it. The
// communication id is checked after the upgrade so the bot gets an
// INVALID_COMMUNICATION_ID frame rather than an HTTP error.
func (h *BotSocketHandler) ServeWs(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}

	communicationId := c.Params("communication_id")
	return websocket.New(func(conn *websocket.Conn) {
		h.logger.Debug("BotSocketHandler", "Starting bot session", map[string]interface{}{
			"communication_id": communicationId,
			"remote_addr":      conn.RemoteAddr().String(),
		})
		internalWS.ServeBot(context.Background(), conn, communicationId, h.bot, h.bufferSize, h.logger)
	})(c)
}
