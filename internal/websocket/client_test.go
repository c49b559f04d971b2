package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"socialrobot-be/internal/live"
	"socialrobot-be/internal/pkg/apperror"
	"socialrobot-be/internal/pkg/logger"

	fastws "github.com/fasthttp/websocket"
	"github.com/gofiber/websocket/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type frame struct {
	messageType int
	data        []byte
}

// fakeSocket feeds inbound frames from a channel and records writes.
type fakeSocket struct {
	inbound chan frame

	mu      sync.Mutex
	written []frame
	closed  bool
}

func newFakeSocket() *fakeSocket {
	return &fakeSocket{inbound: make(chan frame, 16)}
}

func (s *fakeSocket) SetReadLimit(int64)                {}
func (s *fakeSocket) SetReadDeadline(time.Time) error   { return nil }
func (s *fakeSocket) SetWriteDeadline(time.Time) error  { return nil }
func (s *fakeSocket) SetPongHandler(func(string) error) {}

func (s *fakeSocket) ReadMessage() (int, []byte, error) {
	f, ok := <-s.inbound
	if !ok {
		return 0, nil, &fastws.CloseError{Code: websocket.CloseNormalClosure}
	}
	return f.messageType, f.data, nil
}

func (s *fakeSocket) WriteMessage(messageType int, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.written = append(s.written, frame{messageType, data})
	return nil
}

func (s *fakeSocket) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func (s *fakeSocket) textFrames() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []string
	for _, f := range s.written {
		if f.messageType == websocket.TextMessage {
			out = append(out, string(f.data))
		}
	}
	return out
}

func (s *fakeSocket) wroteClose() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range s.written {
		if f.messageType == websocket.CloseMessage {
			return true
		}
	}
	return false
}

func TestClient_SendWritesOneFramePerEvent(t *testing.T) {
	sock := newFakeSocket()
	client := NewClient(sock, 4, logger.NewNopLogger())

	require.NoError(t, client.Send(live.SubtitlesToggle{Enabled: true}))
	require.NoError(t, client.Send(live.NewErrorNotice("oops")))

	close(sock.inbound)
	client.Run(func([]byte) {})

	assert.Equal(t, []string{
		`{"type":"SUBTITLES_TOGGLE","enabled":true}`,
		`{"type":"ERROR","data":{"message":"oops"}}`,
	}, sock.textFrames())
	assert.True(t, sock.wroteClose())
	assert.True(t, sock.closed)
}

func TestClient_SendAfterCloseFails(t *testing.T) {
	client := NewClient(newFakeSocket(), 4, logger.NewNopLogger())
	client.Close()
	client.Close()

	assert.ErrorIs(t, client.Send(live.SubtitlesToggle{}), ErrConnectionClosed)
}

func TestClient_FullBufferDoesNotBlock(t *testing.T) {
	client := NewClient(newFakeSocket(), 1, logger.NewNopLogger())

	require.NoError(t, client.Send(live.SubtitlesToggle{}))
	assert.ErrorIs(t, client.Send(live.SubtitlesToggle{}), ErrSendBufferFull)
}

func TestClient_DeliversTextFramesOnly(t *testing.T) {
	sock := newFakeSocket()
	client := NewClient(sock, 4, logger.NewNopLogger())

	sock.inbound <- frame{websocket.BinaryMessage, []byte{0x1}}
	sock.inbound <- frame{websocket.TextMessage, []byte(`{"type":"SEND_TEXT"}`)}
	close(sock.inbound)

	var got []string
	client.Run(func(p []byte) { got = append(got, string(p)) })

	assert.Equal(t, []string{`{"type":"SEND_TEXT"}`}, got)
}

func TestClient_IdsAreUnique(t *testing.T) {
	a := NewClient(newFakeSocket(), 0, logger.NewNopLogger())
	b := NewClient(newFakeSocket(), 0, logger.NewNopLogger())
	assert.NotEqual(t, a.ID(), b.ID())
}

// stubBot records the calls ServeBot makes.
type stubBot struct {
	connectErr error

	mu           sync.Mutex
	messages     []string
	disconnected bool
}

func (b *stubBot) Connect(_ context.Context, _ string, conn live.Connection) error {
	if b.connectErr != nil {
		return b.connectErr
	}
	return conn.Send(live.SubtitlesToggle{Enabled: true})
}

func (b *stubBot) Disconnect(string, live.Connection) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.disconnected = true
}

func (b *stubBot) HandleMessage(_ context.Context, _ string, _ live.Connection, raw []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.messages = append(b.messages, string(raw))
}

func TestServeBot_UnknownCommunication(t *testing.T) {
	sock := newFakeSocket()
	bot := &stubBot{connectErr: apperror.NotFound("Communication ID not found")}

	ServeBot(context.Background(), sock, "zuzuz-zuzuz", bot, 4, logger.NewNopLogger())

	frames := sock.textFrames()
	require.Len(t, frames, 1)
	var msg map[string]any
	require.NoError(t, json.Unmarshal([]byte(frames[0]), &msg))
	assert.Equal(t, "INVALID_COMMUNICATION_ID", msg["type"])
	assert.True(t, sock.wroteClose())
	assert.False(t, bot.disconnected)
}

func TestServeBot_Session(t *testing.T) {
	sock := newFakeSocket()
	bot := &stubBot{}
	sock.inbound <- frame{websocket.TextMessage, []byte(`{"type":"SEND_TEXT","data":{"message":"hi"}}`)}
	close(sock.inbound)

	ServeBot(context.Background(), sock, "lusab-babad", bot, 4, logger.NewNopLogger())

	assert.Equal(t, []string{`{"type":"SUBTITLES_TOGGLE","enabled":true}`}, sock.textFrames())
	assert.Equal(t, []string{`{"type":"SEND_TEXT","data":{"message":"hi"}}`}, bot.messages)
	assert.True(t, bot.disconnected)
}
