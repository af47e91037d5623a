package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/heatguard-service/internal/config"
	"github.com/couchcryptid/heatguard-service/internal/domain"
	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
)

// messageWriter is the subset of *kafkago.Writer the dispatcher uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// Dispatcher publishes emergency reports to the dispatch topic.
// It implements domain.Dispatcher.
type Dispatcher struct {
	writer     messageWriter
	brokers    []string
	etaMinutes int
	logger     *slog.Logger
}

// NewDispatcher creates a Kafka producer for the configured dispatch topic.
func NewDispatcher(cfg *config.Config, logger *slog.Logger) *Dispatcher {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaDispatchTopic,
		Balancer:     &kafkago.Hash{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Dispatcher{
		writer:     w,
		brokers:    cfg.KafkaBrokers,
		etaMinutes: cfg.DispatchETAMinutes,
		logger:     logger,
	}
}

// SubmitReport publishes the report under a fresh reference id and returns
// once the brokers acknowledge it.
func (d *Dispatcher) SubmitReport(ctx context.Context, report domain.EmergencyReport) (domain.DispatchReceipt, error) {
	ref := uuid.NewString()
	msg, err := serializeToMessage(ref, report, domain.Now())
	if err != nil {
		return domain.DispatchReceipt{}, err
	}
	if err := d.writer.WriteMessages(ctx, msg); err != nil {
		return domain.DispatchReceipt{}, fmt.Errorf("publish report %s: %w", ref, err)
	}

	d.logger.Debug("report published", "reference_id", ref, "severity", report.Severity)
	return domain.DispatchReceipt{ReferenceID: ref, ETAMinutes: d.etaMinutes}, nil
}

// CheckReadiness dials the first reachable broker.
func (d *Dispatcher) CheckReadiness(ctx context.Context) error {
	var errs []error
	for _, broker := range d.brokers {
		conn, err := kafkago.DialContext(ctx, "tcp", broker)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		return conn.Close()
	}
	if len(errs) == 0 {
		return errors.New("no kafka brokers configured")
	}
	return fmt.Errorf("kafka brokers unreachable: %w", errors.Join(errs...))
}

func (d *Dispatcher) Close() error {
	return d.writer.Close()
}

// reportMessage is the JSON value published for each report.
type reportMessage struct {
	ReferenceID string             `json:"reference_id"`
	Symptoms    []domain.SymptomID `json:"symptoms"`
	Severity    domain.Severity    `json:"severity"`
	Description string             `json:"description,omitempty"`
	Location    string             `json:"location"`
	CreatedAt   time.Time          `json:"created_at"`
	SubmittedAt time.Time          `json:"submitted_at"`
}

// serializeToMessage marshals a report into a Kafka message keyed by its
// reference id.
func serializeToMessage(ref string, report domain.EmergencyReport, submittedAt time.Time) (kafkago.Message, error) {
	data, err := json.Marshal(reportMessage{
		ReferenceID: ref,
		Symptoms:    report.Symptoms.Sorted(),
		Severity:    report.Severity,
		Description: report.Description,
		Location:    report.Location,
		CreatedAt:   report.CreatedAt,
		SubmittedAt: submittedAt,
	})
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize report: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(ref),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "severity", Value: []byte(report.Severity)},
			{Key: "submitted_at", Value: []byte(submittedAt.Format(time.RFC3339))},
		},
	}, nil
}
