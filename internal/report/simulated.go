package report

import (
	"context"
	"log/slog"
	"time"

	"github.com/couchcryptid/heatguard-service/internal/domain"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// DefaultSubmitLatency is the simulated dispatch round-trip.
const DefaultSubmitLatency = 1500 * time.Millisecond

// SimulatedDispatcher acknowledges every report after a fixed latency. It
// stands in for the Emergency Dispatch Service when none is configured.
type SimulatedDispatcher struct {
	clock      clockwork.Clock
	latency    time.Duration
	etaMinutes int
	logger     *slog.Logger
}

// NewSimulatedDispatcher creates a dispatcher that waits latency on clock
// before returning a receipt with the given ETA.
func NewSimulatedDispatcher(clock clockwork.Clock, latency time.Duration, etaMinutes int, logger *slog.Logger) *SimulatedDispatcher {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &SimulatedDispatcher{clock: clock, latency: latency, etaMinutes: etaMinutes, logger: logger}
}

func (d *SimulatedDispatcher) SubmitReport(ctx context.Context, report domain.EmergencyReport) (domain.DispatchReceipt, error) {
	if d.latency > 0 {
		select {
		case <-d.clock.After(d.latency):
		case <-ctx.Done():
			return domain.DispatchReceipt{}, ctx.Err()
		}
	}

	receipt := domain.DispatchReceipt{ReferenceID: uuid.NewString(), ETAMinutes: d.etaMinutes}
	d.logger.Debug("simulated dispatch",
		"reference_id", receipt.ReferenceID,
		"severity", report.Severity,
	)
	return receipt, nil
}
