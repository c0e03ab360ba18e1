package conversation

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"AquaBackend/pkg/nlp"
)

type State string

const (
	StateIdle                 State = "IDLE"
	StateAwaitingConfirmation State = "AWAITING_CONFIRMATION"
)

const (
	// DefaultTTL is how long an idle conversation survives. A user silent
	// for longer loses any pending confirmation and must restate the
	// request.
	DefaultTTL = 15 * time.Minute

	// DefaultSweepInterval is how often expired entries are removed.
	DefaultSweepInterval = 5 * time.Minute
)

// Context is one user's conversational state. Pending is non-nil exactly
// when State is AWAITING_CONFIRMATION. Nothing here is persisted beyond the
// store's own backend: a process restart silently resets memory-backed
// users to IDLE.
type Context struct {
	State       State              `json:"state"`
	Pending     *nlp.PendingAction `json:"pending,omitempty"`
	LastTouched time.Time          `json:"last_touched"`
}

// IConversationStore holds per-user conversational state with time-based
// expiry. All operations are total; Get returns a fresh IDLE context for
// unknown or expired users and refreshes the entry's timestamp.
//
// The memory implementation is process-local; the Redis implementation
// serves multi-instance deployments. Call sites depend only on this
// interface so the backend can be swapped without touching them.
type IConversationStore interface {
	Get(ctx context.Context, userID string) Context
	Await(ctx context.Context, userID string, pending *nlp.PendingAction)
	Clear(ctx context.Context, userID string)
	Shutdown()
}

type memoryStore struct {
	mu      sync.RWMutex
	entries map[string]*Context

	ttl        time.Duration
	sweepEvery time.Duration

	log  *logrus.Logger
	done chan struct{}
	once sync.Once
}

// NewMemoryStore returns an in-memory store and starts its background
// sweeper. The sweeper only ever removes expired entries; it bounds memory
// growth under many distinct users and implicitly cancels stale pending
// actions. Call Shutdown to stop it.
func NewMemoryStore(log *logrus.Logger, ttl, sweepEvery time.Duration) IConversationStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if sweepEvery <= 0 {
		sweepEvery = DefaultSweepInterval
	}

	s := &memoryStore{
		entries:    make(map[string]*Context),
		ttl:        ttl,
		sweepEvery: sweepEvery,
		log:        log,
		done:       make(chan struct{}),
	}

	go s.sweep()

	return s
}

func (s *memoryStore) Get(_ context.Context, userID string) Context {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	entry, ok := s.entries[userID]
	if !ok || now.Sub(entry.LastTouched) > s.ttl {
		fresh := &Context{State: StateIdle, LastTouched: now}
		s.entries[userID] = fresh
		return *fresh
	}

	entry.LastTouched = now
	return *entry
}

func (s *memoryStore) Await(_ context.Context, userID string, pending *nlp.PendingAction) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[userID] = &Context{
		State:       StateAwaitingConfirmation,
		Pending:     pending,
		LastTouched: time.Now(),
	}
}

func (s *memoryStore) Clear(_ context.Context, userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[userID] = &Context{State: StateIdle, LastTouched: time.Now()}
}

func (s *memoryStore) Shutdown() {
	s.once.Do(func() {
		close(s.done)
	})
}

func (s *memoryStore) sweep() {
	ticker := time.NewTicker(s.sweepEvery)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.removeExpired()
		}
	}
}

func (s *memoryStore) removeExpired() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	removed := 0
	for userID, entry := range s.entries {
		if now.Sub(entry.LastTouched) > s.ttl {
			delete(s.entries, userID)
			removed++
		}
	}

	if removed > 0 && s.log != nil {
		s.log.WithFields(logrus.Fields{
			"removed":   removed,
			"remaining": len(s.entries),
		}).Debug("Swept expired conversations")
	}
}
