package websocket

import (
	"errors"
	"sync"
	"time"

	"socialrobot-be/internal/live"
	"socialrobot-be/internal/pkg/logger"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 64 * 1024

	DefaultSendBuffer = 256

	socketModule = "BOT_SOCKET"
)

var (
	ErrConnectionClosed = errors.New("websocket: connection closed")
	ErrSendBufferFull   = errors.New("websocket: send buffer full")
)

// conn is the part of *websocket.Conn the pumps use.
type conn interface {
	SetReadLimit(limit int64)
	SetReadDeadline(t time.Time) error
	SetWriteDeadline(t time.Time) error
	SetPongHandler(h func(appData string) error)
	ReadMessage() (messageType int, p []byte, err error)
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// Client is one bot socket. It implements live.Connection: Send only
// enqueues, the write pump does the network I/O.
type Client struct {
	id     string
	conn   conn
	logger logger.ILogger

	mu     sync.Mutex
	closed bool
	send   chan []byte
}

func NewClient(c conn, bufferSize int, log logger.ILogger) *Client {
	if bufferSize <= 0 {
		bufferSize = DefaultSendBuffer
	}
	return &Client{
		id:     uuid.NewString(),
		conn:   c,
		logger: log,
		send:   make(chan []byte, bufferSize),
	}
}

func (c *Client) ID() string { return c.id }

// Send encodes event and queues it without blocking.
func (c *Client) Send(event live.Event) error {
	payload, err := live.Encode(event)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrConnectionClosed
	}
	select {
	case c.send <- payload:
		return nil
	default:
		return ErrSendBufferFull
	}
}

// Close stops accepting events. Queued events are still flushed before the
// write pump sends the close frame.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.send)
	}
}

// Run starts the write pump and reads until the peer goes away, handing
// every text frame to onMessage. It returns once both pumps have stopped.
func (c *Client) Run(onMessage func(payload []byte)) {
	done := make(chan struct{})
	go func() {
		defer close(done)
		c.writePump()
	}()

	c.readPump(onMessage)
	c.Close()
	<-done
}

func (c *Client) readPump(onMessage func(payload []byte)) {
	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		messageType, payload, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Warn(socketModule, "Bot socket closed unexpectedly", map[string]interface{}{
					"connection_id": c.id,
					"error":         err.Error(),
				})
			}
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}
		onMessage(payload)
	}
}

// writePump writes one frame per event so the bot can parse each as JSON.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				c.logger.Warn(socketModule, "Failed to write to bot socket", map[string]interface{}{
					"connection_id": c.id,
					"error":         err.Error(),
				})
				c.Close()
				c.drain()
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.Close()
				c.drain()
				return
			}
		}
	}
}

func (c *Client) drain() {
	for range c.send {
	}
}
