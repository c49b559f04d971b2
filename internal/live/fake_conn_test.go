package live

import (
	"errors"
	"sync"
)

var errConnClosed = errors.New("connection closed")

type fakeConn struct {
	id string

	mu     sync.Mutex
	events []Event
	broken bool
}

func newFakeConn(id string) *fakeConn {
	return &fakeConn{id: id}
}

func (c *fakeConn) ID() string { return c.id }

func (c *fakeConn) Send(event Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.broken {
		return errConnClosed
	}
	c.events = append(c.events, event)
	return nil
}

func (c *fakeConn) breakConn() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.broken = true
}

func (c *fakeConn) received() []Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Event, len(c.events))
	copy(out, c.events)
	return out
}
