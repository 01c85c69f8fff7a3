package session

import (
	"sync"
	"time"
)

// DefaultTTL is how long an idle session is kept.
const DefaultTTL = 2 * time.Hour

// Store keeps one State per session ID in memory. Updates for the same ID
// are serialized; different IDs only share the map lookup. Sessions idle
// for longer than the TTL are dropped, which ends them.
type Store struct {
	mu        sync.Mutex
	entries   map[string]*entry
	ttl       time.Duration
	now       func() time.Time
	lastSweep time.Time
}

type entry struct {
	mu       sync.Mutex
	state    State
	lastSeen time.Time
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithClock overrides time.Now.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) { s.now = now }
}

// NewStore creates a Store. A non-positive ttl uses DefaultTTL.
func NewStore(ttl time.Duration, opts ...StoreOption) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	s := &Store{entries: map[string]*entry{}, ttl: ttl, now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Store) acquire(id string) *entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sweepLocked(now)

	e, ok := s.entries[id]
	if !ok {
		e = &entry{state: New()}
		s.entries[id] = e
	}
	e.lastSeen = now
	return e
}

// sweepLocked drops idle entries at most once per ttl/4.
func (s *Store) sweepLocked(now time.Time) {
	if now.Sub(s.lastSweep) < s.ttl/4 {
		return
	}
	s.lastSweep = now
	for id, e := range s.entries {
		if now.Sub(e.lastSeen) > s.ttl {
			delete(s.entries, id)
		}
	}
}

// Get returns the state for id, creating a fresh one if needed.
func (s *Store) Get(id string) State {
	e := s.acquire(id)
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Update runs fn on the state for id while holding that session's lock and
// stores the result. fn may block; other sessions are not affected.
func (s *Store) Update(id string, fn func(State) State) State {
	e := s.acquire(id)
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = fn(e.state)
	return e.state
}

// Delete ends a session.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
