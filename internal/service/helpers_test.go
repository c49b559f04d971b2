package service

import (
	"context"
	"errors"
	"sync"

	"socialrobot-be/internal/entity"
	"socialrobot-be/internal/live"
	"socialrobot-be/internal/pkg/logger"
	"socialrobot-be/internal/repository/contract"
	"socialrobot-be/internal/repository/memory"
)

var errStoreDown = errors.New("store unavailable")

// flakyCommunications wraps the memory store and fails selected calls.
type flakyCommunications struct {
	contract.CommunicationRepository
	failExists bool
	failCreate bool
	failUpdate bool
	failFind   bool
	alwaysTake bool
}

func newFlakyCommunications() *flakyCommunications {
	return &flakyCommunications{CommunicationRepository: memory.NewCommunicationRepository()}
}

func (f *flakyCommunications) ExistsByPublicId(ctx context.Context, id string) (bool, error) {
	if f.failExists {
		return false, errStoreDown
	}
	if f.alwaysTake {
		return true, nil
	}
	return f.CommunicationRepository.ExistsByPublicId(ctx, id)
}

func (f *flakyCommunications) Create(ctx context.Context, c *entity.Communication) error {
	if f.failCreate {
		return errStoreDown
	}
	return f.CommunicationRepository.Create(ctx, c)
}

func (f *flakyCommunications) UpdateFields(ctx context.Context, id string, fields map[entity.CommunicationField]any) (bool, error) {
	if f.failUpdate {
		return false, errStoreDown
	}
	return f.CommunicationRepository.UpdateFields(ctx, id, fields)
}

func (f *flakyCommunications) FindByPublicId(ctx context.Context, id string) (*entity.Communication, error) {
	if f.failFind {
		return nil, errStoreDown
	}
	return f.CommunicationRepository.FindByPublicId(ctx, id)
}

type failingPrompts struct {
	contract.PromptRepository
}

func (failingPrompts) Create(context.Context, *entity.Prompt) error { return errStoreDown }

type recordingConn struct {
	id string

	mu     sync.Mutex
	events []live.Event
	broken bool
}

func newRecordingConn(id string) *recordingConn {
	return &recordingConn{id: id}
}

func (c *recordingConn) ID() string { return c.id }

func (c *recordingConn) Send(event live.Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.broken {
		return errors.New("socket closed")
	}
	c.events = append(c.events, event)
	return nil
}

func (c *recordingConn) received() []live.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]live.Event(nil), c.events...)
}

type recordingArchive struct {
	mu       sync.Mutex
	payloads [][]byte
	err      error
}

func (a *recordingArchive) Publish(_ context.Context, payload []byte) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.err != nil {
		return a.err
	}
	a.payloads = append(a.payloads, payload)
	return nil
}

func (a *recordingArchive) published() [][]byte {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([][]byte(nil), a.payloads...)
}

type fixture struct {
	communications *flakyCommunications
	registry       *live.Registry
	bridge         *live.Bridge
	log            logger.ILogger
}

func newFixture() *fixture {
	log := logger.NewNopLogger()
	registry := live.NewRegistry()
	return &fixture{
		communications: newFlakyCommunications(),
		registry:       registry,
		bridge:         live.NewBridge(registry, log),
		log:            log,
	}
}

func (f *fixture) communicationService() ICommunicationService {
	return NewCommunicationService(f.communications, f.registry, f.bridge, nil, f.log, CommunicationServiceOptions{})
}

func (f *fixture) botService(archive IPublisherService) IBotService {
	return NewBotService(f.communications, f.registry, f.bridge, archive, f.log)
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
