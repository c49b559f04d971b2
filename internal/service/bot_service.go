package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"socialrobot-be/internal/dto"
	"socialrobot-be/internal/entity"
	"socialrobot-be/internal/live"
	"socialrobot-be/internal/pkg/apperror"
	"socialrobot-be/internal/pkg/logger"
	"socialrobot-be/internal/repository/contract"
)

const botModule = "BOT"

// Inbound frame types sent by the bot.
const (
	BotMessageSendText  = "SEND_TEXT"
	BotMessageSendAudio = "SEND_AUDIO"
)

type IBotService interface {
	Connect(ctx context.Context, communicationId string, conn live.Connection) error
	Disconnect(communicationId string, conn live.Connection)
	HandleMessage(ctx context.Context, communicationId string, conn live.Connection, raw []byte)
}

type botService struct {
	communications contract.CommunicationRepository
	registry       *live.Registry
	bridge         *live.Bridge
	archive        IPublisherService
	logger         logger.ILogger
	now            func() time.Time
}

func NewBotService(
	communications contract.CommunicationRepository,
	registry *live.Registry,
	bridge *live.Bridge,
	archive IPublisherService,
	log logger.ILogger,
) IBotService {
	return &botService{
		communications: communications,
		registry:       registry,
		bridge:         bridge,
		archive:        archive,
		logger:         log,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

// Connect attaches conn as the bot of communicationId and greets it with
// the current configuration. A durable record without a live session gets
// one here; this is the only place sessions are created lazily.
func (s *botService) Connect(ctx context.Context, communicationId string, conn live.Connection) error {
	unlock := s.registry.Lock(communicationId)
	defer unlock()

	record, err := s.communications.FindByPublicId(ctx, communicationId)
	if err != nil {
		s.logger.Error(botModule, "Failed to load communication for bot", map[string]interface{}{
			"communication_id": communicationId,
			"error":            err,
		})
		return apperror.DurableStore("Failed to load communication", err)
	}
	if record == nil {
		return apperror.NotFound("Communication ID not found")
	}

	session, created := s.registry.GetOrRegister(communicationId, record.Config)
	if !created {
		session.UpdateConfig(func(cfg *entity.CommunicationConfig) { *cfg = record.Config })
	} else {
		s.logger.Info(botModule, "Live session restored from durable record", map[string]interface{}{
			"communication_id": communicationId,
		})
	}

	if _, err := s.bridge.Attach(communicationId, conn); err != nil {
		return apperror.Internal("Failed to attach bot", err)
	}
	s.bridge.Push(communicationId, live.SystemConfig{Config: session.Config()})
	return nil
}

func (s *botService) Disconnect(communicationId string, conn live.Connection) {
	unlock := s.registry.Lock(communicationId)
	defer unlock()

	s.bridge.Detach(communicationId, conn)
}

func (s *botService) HandleMessage(ctx context.Context, communicationId string, conn live.Connection, raw []byte) {
	var msg dto.BotInboundMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		s.reply(communicationId, conn, live.NewErrorNotice("Invalid message format"))
		return
	}

	switch msg.Type {
	case BotMessageSendText:
		s.handleText(ctx, communicationId, conn, msg.Data.Message)
	case BotMessageSendAudio:
		s.reply(communicationId, conn, live.NewErrorNotice("Audio input is not supported"))
	default:
		s.reply(communicationId, conn, live.NewErrorNotice(fmt.Sprintf("Unknown message type: %s", msg.Type)))
	}
}

func (s *botService) handleText(ctx context.Context, communicationId string, conn live.Connection, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		s.reply(communicationId, conn, live.NewErrorNotice("Message must not be empty"))
		return
	}

	session, ok := s.registry.Get(communicationId)
	if !ok {
		s.reply(communicationId, conn, live.Notice{Type: live.EventInvalidCommunicationId, Message: "Communication is not live"})
		return
	}

	turn := live.ChatTurn{Role: entity.MessageRoleUser, Message: text, At: s.now()}
	session.AppendTurn(turn)

	payload, err := json.Marshal(dto.ArchiveChatTurnMessage{
		CommunicationId: communicationId,
		Role:            string(turn.Role),
		Message:         turn.Message,
		LlmModel:        string(session.Config().LlmModel),
		Timestamp:       turn.At,
	})
	if err != nil {
		s.logger.Error(botModule, "Failed to encode chat turn", map[string]interface{}{"error": err})
		return
	}
	if err := s.archive.Publish(ctx, payload); err != nil {
		s.logger.Warn(botModule, "Failed to archive chat turn", map[string]interface{}{
			"communication_id": communicationId,
			"error":            err.Error(),
		})
	}
}

// reply answers the sender directly, even if it has since been displaced.
func (s *botService) reply(communicationId string, conn live.Connection, notice live.Notice) {
	if err := conn.Send(notice); err != nil {
		s.logger.Warn(botModule, "Failed to reply to bot", map[string]interface{}{
			"communication_id": communicationId,
			"connection_id":    conn.ID(),
			"type":             notice.Type,
			"error":            err.Error(),
		})
	}
}
