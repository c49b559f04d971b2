package live

import (
	"socialrobot-be/internal/pkg/logger"
)

const bridgeModule = "Bridge"

// Bridge routes push events to the bot connection attached to a session.
// It does not interpret events. Each call is safe on its own; callers that
// need a call ordered against other steps for the same id hold
// Registry.Lock around the whole sequence.
type Bridge struct {
	registry *Registry
	logger   logger.ILogger
}

func NewBridge(registry *Registry, log logger.ILogger) *Bridge {
	return &Bridge{registry: registry, logger: log}
}

// Attach makes conn the push target of the session. A previously attached
// connection is returned but neither closed nor notified: last attach wins.
func (b *Bridge) Attach(publicId string, conn Connection) (displaced Connection, err error) {
	s, ok := b.registry.Get(publicId)
	if !ok {
		return nil, ErrNotLive
	}

	displaced = s.swapConnection(conn)
	if displaced != nil && displaced.ID() != conn.ID() {
		b.logger.Warn(bridgeModule, "Bot connection replaced by a new attach", map[string]interface{}{
			"communication_id": publicId,
			"displaced_conn":   displaced.ID(),
			"conn":             conn.ID(),
		})
	} else {
		b.logger.Info(bridgeModule, "Bot connection attached", map[string]interface{}{
			"communication_id": publicId,
			"conn":             conn.ID(),
		})
	}
	return displaced, nil
}

// Detach clears the session's connection only if conn is still the one
// attached, so a displaced socket closing late does not drop its successor.
func (b *Bridge) Detach(publicId string, conn Connection) bool {
	s, ok := b.registry.Get(publicId)
	if !ok {
		return false
	}
	detached := s.clearConnectionIf(conn)
	if detached {
		b.logger.Info(bridgeModule, "Bot connection detached", map[string]interface{}{
			"communication_id": publicId,
			"conn":             conn.ID(),
		})
	}
	return detached
}

// Push sends event to the attached bot. Without a live session or an
// attached connection it does nothing. Send failures are logged and
// swallowed: the caller's durable change has already happened.
// It reports whether the event was handed to a connection.
func (b *Bridge) Push(publicId string, event Event) bool {
	s, ok := b.registry.Get(publicId)
	if !ok {
		return false
	}
	conn := s.Connection()
	if conn == nil {
		return false
	}

	if err := conn.Send(event); err != nil {
		b.logger.Warn(bridgeModule, "Failed to push event to bot", map[string]interface{}{
			"communication_id": publicId,
			"conn":             conn.ID(),
			"event_type":       string(event.EventType()),
			"error":            err.Error(),
		})
		return false
	}
	return true
}

// Connected reports whether a bot is attached to publicId.
func (b *Bridge) Connected(publicId string) bool {
	s, ok := b.registry.Get(publicId)
	return ok && s.Connection() != nil
}
