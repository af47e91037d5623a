// Package report runs the emergency report workflow: a per-user session that
// moves a report through Draft, Submitting and Submitted, dispatching it
// asynchronously and returning to an empty draft after a confirmation delay.
package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/couchcryptid/heatguard-service/internal/domain"
	"github.com/couchcryptid/heatguard-service/internal/observability"
	"github.com/jonboulle/clockwork"
)

// Default session timings and store limits.
const (
	DefaultResetDelay      = 3 * time.Second
	DefaultDispatchTimeout = 10 * time.Second
	DefaultIdleTimeout     = 30 * time.Minute
	DefaultMaxSessions     = 10000
)

// ErrClosed is returned for intents on a session that has been closed.
var ErrClosed = errors.New("report session closed")

// Status is the lifecycle state of a report session.
type Status string

const (
	StatusDraft      Status = "draft"
	StatusSubmitting Status = "submitting"
	StatusSubmitted  Status = "submitted"
)

// Snapshot is a read-only view of a session at one point in time.
type Snapshot struct {
	Status  Status                  `json:"status"`
	Report  domain.EmergencyReport  `json:"report"`
	Receipt *domain.DispatchReceipt `json:"receipt,omitempty"`
	// Err is the most recent validation or dispatch failure, cleared by the
	// next successful submit or reset.
	Err error `json:"-"`
}

// Config tunes a session and the store holding it. Zero values select the
// defaults.
type Config struct {
	Clock           clockwork.Clock
	ResetDelay      time.Duration
	DispatchTimeout time.Duration
	// IdleTimeout and MaxSessions bound a Store. Sessions ignore them.
	IdleTimeout time.Duration
	MaxSessions int
	// OnChange, if set, receives a snapshot after every state change. It may
	// be called from the dispatch goroutine or the reset timer.
	OnChange func(Snapshot)
}

func (c Config) withDefaults() Config {
	if c.Clock == nil {
		c.Clock = clockwork.NewRealClock()
	}
	if c.ResetDelay <= 0 {
		c.ResetDelay = DefaultResetDelay
	}
	if c.DispatchTimeout <= 0 {
		c.DispatchTimeout = DefaultDispatchTimeout
	}
	if c.IdleTimeout <= 0 {
		c.IdleTimeout = DefaultIdleTimeout
	}
	if c.MaxSessions <= 0 {
		c.MaxSessions = DefaultMaxSessions
	}
	return c
}

// Session owns one emergency report. All methods are safe for concurrent use.
type Session struct {
	cfg        Config
	dispatcher domain.Dispatcher
	logger     *slog.Logger
	metrics    *observability.Metrics
	location   string

	mu      sync.Mutex
	report  domain.EmergencyReport
	status  Status
	receipt *domain.DispatchReceipt
	lastErr error
	closed  bool

	// generation increments whenever in-flight work is invalidated, so late
	// dispatch results and timer callbacks can tell they are stale.
	generation     uint64
	cancelDispatch context.CancelFunc
	resetTimer     clockwork.Timer
}

// NewSession returns a session holding an empty draft labelled with location.
func NewSession(location string, dispatcher domain.Dispatcher, cfg Config, logger *slog.Logger, metrics *observability.Metrics) *Session {
	s := &Session{
		cfg:        cfg.withDefaults(),
		dispatcher: dispatcher,
		logger:     logger,
		metrics:    metrics,
		location:   location,
	}
	s.startDraftLocked()
	return s
}

// Snapshot returns the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// ToggleSymptom adds or removes a symptom from the draft.
func (s *Session) ToggleSymptom(id domain.SymptomID) error {
	if !id.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrUnknownSymptom, id)
	}
	return s.edit(func(r *domain.EmergencyReport) {
		r.Symptoms = r.Symptoms.Toggle(id)
	})
}

// SetSeverity replaces the draft's severity.
func (s *Session) SetSeverity(level domain.Severity) error {
	if !level.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrUnknownSeverity, level)
	}
	return s.edit(func(r *domain.EmergencyReport) {
		r.Severity = level
	})
}

// SetDescription replaces the draft's free-text description.
func (s *Session) SetDescription(text string) error {
	return s.edit(func(r *domain.EmergencyReport) {
		r.Description = text
	})
}

func (s *Session) edit(apply func(*domain.EmergencyReport)) error {
	s.mu.Lock()
	if err := s.draftLocked(); err != nil {
		s.mu.Unlock()
		return err
	}
	apply(&s.report)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
	return nil
}

// Submit validates the draft and, when valid, starts dispatching it. The
// dispatch outlives ctx's cancellation but is bounded by the dispatch
// timeout; its outcome is observed through Snapshot or OnChange.
func (s *Session) Submit(ctx context.Context) error {
	s.mu.Lock()
	if err := s.draftLocked(); err != nil {
		s.mu.Unlock()
		return err
	}

	if err := s.report.Validate(); err != nil {
		s.lastErr = err
		snap := s.snapshotLocked()
		s.mu.Unlock()

		s.metrics.ValidationFailures.Inc()
		s.logger.Debug("report rejected", "error", err)
		s.notify(snap)
		return err
	}

	s.generation++
	gen := s.generation
	s.status = StatusSubmitting
	s.lastErr = nil
	report := s.report

	dctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.DispatchTimeout)
	s.cancelDispatch = cancel
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.metrics.ReportsSubmitted.Inc()
	s.logger.Info("report submitted",
		"severity", report.Severity,
		"symptoms", report.Symptoms.Len(),
	)
	s.notify(snap)

	go s.dispatch(dctx, cancel, gen, report)
	return nil
}

func (s *Session) dispatch(ctx context.Context, cancel context.CancelFunc, gen uint64, report domain.EmergencyReport) {
	defer cancel()

	start := s.cfg.Clock.Now()
	receipt, err := s.dispatcher.SubmitReport(ctx, report)
	s.metrics.DispatchDuration.Observe(s.cfg.Clock.Since(start).Seconds())

	s.mu.Lock()
	if s.closed || gen != s.generation {
		s.mu.Unlock()
		s.logger.Debug("discarding stale dispatch result", "error", err)
		return
	}
	s.cancelDispatch = nil

	if err != nil {
		s.status = StatusDraft
		s.lastErr = &domain.DispatchError{Cause: err}
		snap := s.snapshotLocked()
		s.mu.Unlock()

		s.metrics.DispatchFailures.Inc()
		s.logger.Warn("report dispatch failed", "error", err)
		s.notify(snap)
		return
	}

	s.status = StatusSubmitted
	s.receipt = &receipt
	s.resetTimer = s.cfg.Clock.AfterFunc(s.cfg.ResetDelay, func() { s.autoReset(gen) })
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.metrics.ReportsDispatched.Inc()
	s.logger.Info("report dispatched",
		"reference_id", receipt.ReferenceID,
		"eta_minutes", receipt.ETAMinutes,
	)
	s.notify(snap)
}

func (s *Session) autoReset(gen uint64) {
	s.mu.Lock()
	if s.closed || gen != s.generation || s.status != StatusSubmitted {
		s.mu.Unlock()
		return
	}
	s.resetTimer = nil
	s.startDraftLocked()
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.metrics.SessionResets.WithLabelValues("auto").Inc()
	s.notify(snap)
}

// Reset abandons any in-flight dispatch or pending confirmation and starts a
// fresh empty draft. It is what re-opening the report flow does.
func (s *Session) Reset() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	s.stopWorkLocked()
	s.startDraftLocked()
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.metrics.SessionResets.WithLabelValues("explicit").Inc()
	s.notify(snap)
	return nil
}

// Close cancels in-flight work. Later intents return ErrClosed.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.stopWorkLocked()
	s.closed = true
}

func (s *Session) draftLocked() error {
	switch {
	case s.closed:
		return ErrClosed
	case s.status != StatusDraft:
		return domain.ErrNotDraft
	}
	return nil
}

func (s *Session) stopWorkLocked() {
	s.generation++
	if s.cancelDispatch != nil {
		s.cancelDispatch()
		s.cancelDispatch = nil
	}
	if s.resetTimer != nil {
		s.resetTimer.Stop()
		s.resetTimer = nil
	}
}

func (s *Session) startDraftLocked() {
	s.report = domain.NewEmergencyReport(s.location)
	s.report.CreatedAt = s.cfg.Clock.Now()
	s.status = StatusDraft
	s.receipt = nil
	s.lastErr = nil
}

func (s *Session) snapshotLocked() Snapshot {
	snap := Snapshot{Status: s.status, Report: s.report, Err: s.lastErr}
	if s.receipt != nil {
		r := *s.receipt
		snap.Receipt = &r
	}
	return snap
}

func (s *Session) notify(snap Snapshot) {
	if s.cfg.OnChange != nil {
		s.cfg.OnChange(snap)
	}
}
