package state

import (
	"context"
	"sync"
	"time"

	"github.com/sandevgo/taalbot/pkg/log"
	"github.com/sandevgo/taalbot/pkg/srv"
)

// State is everything the bot remembers about one user between messages.
type State struct {
	UserID    int64
	Session   Session
	UpdatedAt time.Time
}

func (s *State) Mode() Mode {
	if s.Session == nil {
		return ModeIdle
	}
	return s.Session.Mode()
}

// Reset replaces the active session wholesale.
func (s *State) Reset(session Session) {
	s.Session = session
	s.UpdatedAt = time.Now()
}

func (s *State) Clear() {
	s.Reset(Idle{})
}

type entry struct {
	mu       sync.Mutex
	state    State
	busy     int
	lastUsed time.Time
}

// Store hands out per-user states. A state is held by at most one caller at a time,
// so events of the same user are processed one after another.
type Store struct {
	mu      sync.Mutex
	entries map[int64]*entry
	ttl     time.Duration
	now     func() time.Time
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		entries: make(map[int64]*entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Acquire blocks until the user's state is free and returns it with a release func.
func (s *Store) Acquire(userID int64) (*State, func()) {
	s.mu.Lock()
	e, ok := s.entries[userID]
	if !ok {
		e = &entry{state: State{UserID: userID, Session: Idle{}}}
		s.entries[userID] = e
	}
	e.busy++
	e.lastUsed = s.now()
	s.mu.Unlock()

	e.mu.Lock()

	var once sync.Once
	release := func() {
		once.Do(func() {
			e.mu.Unlock()
			s.mu.Lock()
			e.busy--
			e.lastUsed = s.now()
			s.mu.Unlock()
		})
	}
	return &e.state, release
}

// Peek returns the current mode, waiting for an in-flight event of the user.
func (s *Store) Peek(userID int64) Mode {
	s.mu.Lock()
	e, ok := s.entries[userID]
	s.mu.Unlock()
	if !ok {
		return ModeIdle
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Mode()
}

// Evict drops states that are not in use and were last touched before now-ttl.
func (s *Store) Evict(now time.Time) int {
	if s.ttl <= 0 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, e := range s.entries {
		if e.busy == 0 && now.Sub(e.lastUsed) > s.ttl {
			delete(s.entries, id)
			removed++
		}
	}
	return removed
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// NewJanitor returns a service evicting idle sessions once per interval.
func NewJanitor(store *Store, interval time.Duration) *srv.Ticker {
	return srv.NewTicker("session-janitor", interval, func(ctx context.Context) error {
		if n := store.Evict(store.now()); n > 0 {
			log.FromCtx(ctx).Debug().Int("evicted", n).Int("remaining", store.Len()).Msg("idle sessions evicted")
		}
		return nil
	})
}
