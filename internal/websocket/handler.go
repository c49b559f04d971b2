package websocket

import (
	"context"

	"socialrobot-be/internal/live"
	"socialrobot-be/internal/pkg/apperror"
	"socialrobot-be/internal/pkg/logger"
	"socialrobot-be/internal/service"
)

// ServeBot runs one bot connection for communicationId until it closes.
// An unknown id is answered with INVALID_COMMUNICATION_ID and the socket
// is closed.
func ServeBot(ctx context.Context, c conn, communicationId string, bot service.IBotService, bufferSize int, log logger.ILogger) {
	client := NewClient(c, bufferSize, log)

	if err := bot.Connect(ctx, communicationId, client); err != nil {
		notice := live.NewErrorNotice("Failed to open communication")
		if apperror.Is(err, apperror.KindNotFound) {
			notice = live.Notice{Type: live.EventInvalidCommunicationId, Message: "Invalid communication ID"}
		}
		log.Warn(socketModule, "Rejected bot connection", map[string]interface{}{
			"communication_id": communicationId,
			"error":            err.Error(),
		})
		_ = client.Send(notice)
		client.Close()
		client.writePump()
		return
	}

	log.Info(socketModule, "Bot connected", map[string]interface{}{
		"communication_id": communicationId,
		"connection_id":    client.ID(),
	})

	client.Run(func(payload []byte) {
		bot.HandleMessage(ctx, communicationId, client, payload)
	})

	bot.Disconnect(communicationId, client)
	log.Info(socketModule, "Bot disconnected", map[string]interface{}{
		"communication_id": communicationId,
		"connection_id":    client.ID(),
	})
}
