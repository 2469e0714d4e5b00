// Package demo owns the ephemeral game sessions: creation, lookup, idle
// expiry and serialized access to each session's state.
package demo

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"fragenspiel/internal/catalog"
	"fragenspiel/internal/model"
)

// ErrSessionNotFound is returned for unknown or expired session tokens.
// Callers map it to a 404.
var ErrSessionNotFound = errors.New("demo session not found")

const (
	// DefaultIdleTimeout is how long a session may stay untouched before
	// the sweeper evicts it.
	DefaultIdleTimeout = 30 * time.Minute
	// DefaultSweepInterval bounds how stale an expired session can linger.
	DefaultSweepInterval = 5 * time.Minute
)

// Store is the authoritative mapping from session token to DemoSession.
// View and Update run the callback with exclusive access to the session so
// concurrent requests against one session cannot interleave; Update also
// persists whatever the callback changed. Both refresh the idle timer.
type Store interface {
	Create(ctx context.Context) (string, error)
	Validate(ctx context.Context, token string) (bool, error)
	View(ctx context.Context, token string, fn func(*model.DemoSession) error) error
	Update(ctx context.Context, token string, fn func(*model.DemoSession) error) error
	Close() error
}

// MemoryStore keeps sessions in a process-local map. State does not
// survive a restart, which is the intended demo behavior.
type MemoryStore struct {
	idleTimeout   time.Duration
	sweepInterval time.Duration

	mu       sync.RWMutex
	sessions map[string]*sessionEntry

	stop     chan struct{}
	stopOnce sync.Once
}

// sessionEntry carries a per-session mutex so writes to one session are
// serialized without blocking other sessions.
type sessionEntry struct {
	mu      sync.Mutex
	session *model.DemoSession
}

// NewMemoryStore creates a store and starts its expiry sweeper.
// Non-positive durations fall back to the defaults.
func NewMemoryStore(idleTimeout, sweepInterval time.Duration) *MemoryStore {
	if idleTimeout <= 0 {
		idleTimeout = DefaultIdleTimeout
	}
	if sweepInterval <= 0 {
		sweepInterval = DefaultSweepInterval
	}

	s := &MemoryStore{
		idleTimeout:   idleTimeout,
		sweepInterval: sweepInterval,
		sessions:      make(map[string]*sessionEntry),
		stop:          make(chan struct{}),
	}
	go s.sweepLoop()
	return s
}

// Create builds a new session with fresh catalog snapshots and returns its
// token. Tokens are 128-bit random UUIDs, so collisions are negligible.
func (s *MemoryStore) Create(ctx context.Context) (string, error) {
	now := time.Now()
	session := NewSession(uuid.NewString(), now)

	s.mu.Lock()
	s.sessions[session.Token] = &sessionEntry{session: session}
	s.mu.Unlock()

	log.Printf("Created new demo session: %s", session.Token)
	return session.Token, nil
}

// Validate reports whether the token names a live session, refreshing its
// idle timer when it does. An unknown token is not an error.
func (s *MemoryStore) Validate(ctx context.Context, token string) (bool, error) {
	entry, ok := s.lookup(token)
	if !ok {
		return false, nil
	}
	entry.mu.Lock()
	entry.session.Touch(time.Now())
	entry.mu.Unlock()
	return true, nil
}

// View runs fn with exclusive read access to the session.
func (s *MemoryStore) View(ctx context.Context, token string, fn func(*model.DemoSession) error) error {
	return s.with(token, fn)
}

// Update runs fn with exclusive write access to the session. The memory
// store mutates in place, so persisting is implicit.
func (s *MemoryStore) Update(ctx context.Context, token string, fn func(*model.DemoSession) error) error {
	return s.with(token, fn)
}

func (s *MemoryStore) with(token string, fn func(*model.DemoSession) error) error {
	entry, ok := s.lookup(token)
	if !ok {
		return ErrSessionNotFound
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	entry.session.Touch(time.Now())
	return fn(entry.session)
}

func (s *MemoryStore) lookup(token string) (*sessionEntry, bool) {
	s.mu.RLock()
	entry, ok := s.sessions[token]
	s.mu.RUnlock()
	return entry, ok
}

// Close stops the expiry sweeper. Sessions are left in place; the process
// is going away anyway.
func (s *MemoryStore) Close() error {
	s.stopOnce.Do(func() { close(s.stop) })
	return nil
}

func (s *MemoryStore) sweepLoop() {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep(time.Now())
		case <-s.stop:
			return
		}
	}
}

// sweep evicts every session idle longer than the timeout. Only sessions
// whose last activity predates the full threshold at pass time go, so an
// in-flight request has already refreshed anything it is using.
func (s *MemoryStore) sweep(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for token, entry := range s.sessions {
		entry.mu.Lock()
		idle := now.Sub(entry.session.LastActivity)
		entry.mu.Unlock()

		if idle > s.idleTimeout {
			delete(s.sessions, token)
			log.Printf("Cleaned up expired demo session: %s", token)
		}
	}
}

// NewSession builds a DemoSession seeded with the sample catalogs. Shared
// with the Redis-backed store.
func NewSession(token string, now time.Time) *model.DemoSession {
	return &model.DemoSession{
		Token:            token,
		CreatedAt:        now,
		LastActivity:     now,
		Characters:       catalog.SampleCharacters(),
		Questions:        catalog.SampleQuestions(),
		Answers:          []model.Answer{},
		CharacterAnswers: make(map[int][]model.Answer),
	}
}
