// Package live holds the process-wide table of active communications and
// the bridge that pushes events to their attached bot connections.
//
// Locking: the table itself is guarded by go-cache's internal lock and is
// only held for insert/lookup/evict. Multi-step sequences on one id (durable
// write, cache update, push) are serialised with Registry.Lock, which never
// blocks other ids. Session fields have their own mutex.
package live

import (
	"errors"
	"fmt"

	"socialrobot-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

var (
	ErrAlreadyRegistered = errors.New("live: session already registered")
	ErrNotLive           = errors.New("live: session not registered")
)

// Registry maps public ids to live sessions. Entries never expire; they
// leave only through Remove or process exit.
type Registry struct {
	table *cache.Cache
	locks *keyLock
}

func NewRegistry() *Registry {
	return &Registry{
		// no default expiration, no janitor goroutine
		table: cache.New(cache.NoExpiration, 0),
		locks: newKeyLock(),
	}
}

// Register inserts a new live session for publicId.
func (r *Registry) Register(publicId string, config entity.CommunicationConfig) (*Session, error) {
	s := newSession(publicId, config)
	if err := r.table.Add(publicId, s, cache.NoExpiration); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyRegistered, publicId)
	}
	return s, nil
}

// GetOrRegister returns the existing session or registers one seeded with
// config. created reports which happened. Safe against concurrent callers:
// exactly one of them creates the entry.
func (r *Registry) GetOrRegister(publicId string, config entity.CommunicationConfig) (s *Session, created bool) {
	for {
		if existing, ok := r.Get(publicId); ok {
			return existing, false
		}
		s = newSession(publicId, config)
		if err := r.table.Add(publicId, s, cache.NoExpiration); err == nil {
			return s, true
		}
	}
}

// Get looks a session up. It never creates one.
func (r *Registry) Get(publicId string) (*Session, bool) {
	x, found := r.table.Get(publicId)
	if !found {
		return nil, false
	}
	return x.(*Session), true
}

func (r *Registry) Remove(publicId string) {
	r.table.Delete(publicId)
}

func (r *Registry) Len() int {
	return r.table.ItemCount()
}

// Lock serialises read-modify-write sequences for one public id. It works
// whether or not the id is currently registered. Call the returned func to
// release; it is safe to call more than once.
func (r *Registry) Lock(publicId string) (unlock func()) {
	return r.locks.Lock(publicId)
}
