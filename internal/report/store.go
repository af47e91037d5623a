package report

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/couchcryptid/heatguard-service/internal/domain"
	"github.com/couchcryptid/heatguard-service/internal/observability"
	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/simplelru"
)

// maxSweepInterval caps how long an idle session can outlive IdleTimeout.
const maxSweepInterval = time.Minute

type storeEntry struct {
	session  *Session
	lastSeen time.Time
}

// Store keeps report sessions by id, one per user interaction context. It
// holds at most MaxSessions, closing the least recently used session to make
// room, and closes sessions untouched for IdleTimeout.
type Store struct {
	locator    domain.LocationProvider
	dispatcher domain.Dispatcher
	cfg        Config
	logger     *slog.Logger
	metrics    *observability.Metrics

	mu       sync.Mutex
	sessions *simplelru.LRU

	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// NewStore creates an empty store and starts its idle sweep. Sessions share
// the dispatcher and config and are labelled by locator when created.
func NewStore(locator domain.LocationProvider, dispatcher domain.Dispatcher, cfg Config, logger *slog.Logger, metrics *observability.Metrics) (*Store, error) {
	cfg = cfg.withDefaults()
	sessions, err := simplelru.NewLRU(cfg.MaxSessions, func(_, value any) {
		value.(*storeEntry).session.Close()
	})
	if err != nil {
		return nil, fmt.Errorf("create session registry: %w", err)
	}

	st := &Store{
		locator:    locator,
		dispatcher: dispatcher,
		cfg:        cfg,
		logger:     logger,
		metrics:    metrics,
		sessions:   sessions,
		done:       make(chan struct{}),
	}
	st.wg.Add(1)
	go st.sweepLoop()
	return st, nil
}

// Create opens a new session. A location lookup failure falls back to the
// auto-detected label rather than failing the report.
func (st *Store) Create(ctx context.Context) (string, *Session) {
	label, err := st.locator.CurrentLocationLabel(ctx)
	if err != nil || label == "" {
		if err != nil {
			st.logger.Warn("location lookup failed", "error", err)
		}
		label = domain.AutoDetectedLocation
	}

	id := uuid.NewString()
	s := NewSession(label, st.dispatcher, st.cfg, st.logger.With("session_id", id), st.metrics)

	st.mu.Lock()
	evicted := st.sessions.Add(id, &storeEntry{session: s, lastSeen: st.cfg.Clock.Now()})
	n := st.sessions.Len()
	st.mu.Unlock()

	if evicted {
		st.metrics.SessionsEvicted.WithLabelValues("capacity").Inc()
		st.logger.Warn("session store full, closed least recently used session", "max_sessions", st.cfg.MaxSessions)
	}
	st.metrics.ActiveSessions.Set(float64(n))
	return id, s
}

// Get returns the session with the given id and marks it as recently used.
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	v, ok := st.sessions.Get(id)
	if !ok {
		return nil, false
	}
	e := v.(*storeEntry)
	e.lastSeen = st.cfg.Clock.Now()
	return e.session, true
}

// Delete closes and removes a session. It reports whether the id existed.
func (st *Store) Delete(id string) bool {
	st.mu.Lock()
	ok := st.sessions.Remove(id)
	n := st.sessions.Len()
	st.mu.Unlock()

	if ok {
		st.metrics.ActiveSessions.Set(float64(n))
	}
	return ok
}

// Len returns the number of open sessions.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.sessions.Len()
}

// Sweep closes and removes every session idle for at least IdleTimeout. It
// returns the number removed.
func (st *Store) Sweep() int {
	cutoff := st.cfg.Clock.Now().Add(-st.cfg.IdleTimeout)

	st.mu.Lock()
	removed := 0
	for {
		key, v, ok := st.sessions.GetOldest()
		if !ok || v.(*storeEntry).lastSeen.After(cutoff) {
			break
		}
		st.sessions.Remove(key)
		removed++
	}
	n := st.sessions.Len()
	if removed > 0 {
		st.metrics.SessionsEvicted.WithLabelValues("idle").Add(float64(removed))
		st.metrics.ActiveSessions.Set(float64(n))
	}
	st.mu.Unlock()

	if removed > 0 {
		st.logger.Debug("closed idle sessions", "count", removed, "remaining", n)
	}
	return removed
}

func (st *Store) sweepLoop() {
	defer st.wg.Done()
	ticker := st.cfg.Clock.NewTicker(min(st.cfg.IdleTimeout, maxSweepInterval))
	defer ticker.Stop()

	for {
		select {
		case <-st.done:
			return
		case <-ticker.Chan():
			st.Sweep()
		}
	}
}

// Close stops the idle sweep, closes every session and empties the store.
func (st *Store) Close() {
	st.closeOnce.Do(func() {
		close(st.done)
		st.wg.Wait()
	})

	st.mu.Lock()
	st.sessions.Purge()
	st.mu.Unlock()
	st.metrics.ActiveSessions.Set(0)
}
