package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/couchcryptid/heatguard-service/internal/domain"
	"github.com/jonboulle/clockwork"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs   []kafkago.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func testReport() domain.EmergencyReport {
	return domain.EmergencyReport{
		Symptoms:    domain.NewSymptomSet(domain.SymptomNausea, domain.SymptomDizziness),
		Severity:    domain.SeverityUrgent,
		Description: "vendor fainted near the market",
		Location:    "Main Market Road",
		CreatedAt:   time.Date(2024, 6, 1, 13, 58, 0, 0, time.UTC),
	}
}

func TestSerializeToMessage(t *testing.T) {
	now := time.Date(2024, 6, 1, 14, 0, 0, 0, time.UTC)

	msg, err := serializeToMessage("ref-1", testReport(), now)
	require.NoError(t, err)

	assert.Equal(t, []byte("ref-1"), msg.Key)
	assert.JSONEq(t, `{
		"reference_id": "ref-1",
		"symptoms": ["dizziness", "nausea"],
		"severity": "urgent",
		"description": "vendor fainted near the market",
		"location": "Main Market Road",
		"created_at": "2024-06-01T13:58:00Z",
		"submitted_at": "2024-06-01T14:00:00Z"
	}`, string(msg.Value))
	require.Len(t, msg.Headers, 2)
	assert.Equal(t, "severity", msg.Headers[0].Key)
	assert.Equal(t, []byte("urgent"), msg.Headers[0].Value)
	assert.Equal(t, "submitted_at", msg.Headers[1].Key)
	assert.Equal(t, []byte(now.Format(time.RFC3339)), msg.Headers[1].Value)
}

func TestDispatcher_SubmitReport(t *testing.T) {
	now := time.Date(2024, 6, 1, 14, 0, 0, 0, time.UTC)
	domain.SetClock(clockwork.NewFakeClockAt(now))
	t.Cleanup(func() { domain.SetClock(nil) })

	w := &fakeWriter{}
	d := &Dispatcher{writer: w, etaMinutes: 15, logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	receipt, err := d.SubmitReport(context.Background(), testReport())
	require.NoError(t, err)
	assert.Equal(t, 15, receipt.ETAMinutes)
	require.Len(t, w.msgs, 1)
	assert.Equal(t, receipt.ReferenceID, string(w.msgs[0].Key))

	var body reportMessage
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &body))
	assert.Equal(t, receipt.ReferenceID, body.ReferenceID)
	assert.Equal(t, now, body.SubmittedAt)

	require.NoError(t, d.Close())
	assert.True(t, w.closed)
}

func TestDispatcher_SubmitReportWriteError(t *testing.T) {
	cause := errors.New("leader not available")
	d := &Dispatcher{writer: &fakeWriter{err: cause}, logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	_, err := d.SubmitReport(context.Background(), testReport())
	require.ErrorIs(t, err, cause)
}

func TestDispatcher_CheckReadinessWithoutBrokers(t *testing.T) {
	d := &Dispatcher{writer: &fakeWriter{}}
	require.EqualError(t, d.CheckReadiness(context.Background()), "no kafka brokers configured")
}
