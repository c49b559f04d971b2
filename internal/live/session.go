package live

import (
	"sync"
	"time"

	"socialrobot-be/internal/entity"
)

// ChatTurn is one utterance in the in-memory conversation.
type ChatTurn struct {
	Role    entity.MessageRole
	Message string
	At      time.Time
}

// Connection is the outbound side of an attached bot client.
type Connection interface {
	// ID distinguishes connections of the same session.
	ID() string
	// Send delivers an event or reports why it could not.
	Send(event Event) error
}

// Session is the in-memory companion of a durable communication record:
// a cache of its configuration, the running chat history and the currently
// attached bot connection. All methods are safe for concurrent use.
type Session struct {
	publicId string

	mu      sync.RWMutex
	config  entity.CommunicationConfig
	history []ChatTurn
	conn    Connection
}

func newSession(publicId string, config entity.CommunicationConfig) *Session {
	return &Session{publicId: publicId, config: config}
}

func (s *Session) PublicId() string {
	return s.publicId
}

// Config returns a copy of the cached configuration.
func (s *Session) Config() entity.CommunicationConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

func (s *Session) CustomPromptSuffix() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config.CustomPromptSuffix
}

// UpdateConfig applies fn to the cached configuration atomically.
func (s *Session) UpdateConfig(fn func(cfg *entity.CommunicationConfig)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.config)
}

func (s *Session) AppendTurn(turn ChatTurn) {
	if turn.At.IsZero() {
		turn.At = time.Now().UTC()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, turn)
}

// History returns a copy of the chat turns in arrival order.
func (s *Session) History() []ChatTurn {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ChatTurn, len(s.history))
	copy(out, s.history)
	return out
}

func (s *Session) ClearHistory() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = nil
}

// Connection returns the attached connection, or nil.
func (s *Session) Connection() Connection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.conn
}

func (s *Session) swapConnection(conn Connection) Connection {
	s.mu.Lock()
	defer s.mu.Unlock()
	old := s.conn
	s.conn = conn
	return old
}

func (s *Session) clearConnectionIf(conn Connection) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn == nil || s.conn.ID() != conn.ID() {
		return false
	}
	s.conn = nil
	return true
}
