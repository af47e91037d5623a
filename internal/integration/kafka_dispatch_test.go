//go:build integration

package integration_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"strconv"
	"testing"
	"time"

	kafkaadapter "github.com/couchcryptid/heatguard-service/internal/adapter/kafka"
	"github.com/couchcryptid/heatguard-service/internal/config"
	"github.com/couchcryptid/heatguard-service/internal/domain"
	"github.com/couchcryptid/heatguard-service/internal/observability"
	"github.com/couchcryptid/heatguard-service/internal/report"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/kafka"
)

const testDispatchTopic = "test-heat-emergency-reports"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// startKafka runs a single-node broker and returns its address.
func startKafka(ctx context.Context, t *testing.T) string {
	t.Helper()
	container, err := kafka.Run(ctx, "confluentinc/confluent-local:7.5.0", kafka.WithClusterID("heatguard-test"))
	require.NoError(t, err, "start kafka container")
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			t.Logf("terminate kafka container: %v", err)
		}
	})

	brokers, err := container.Brokers(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, brokers)
	return brokers[0]
}

// createTopic creates a single-partition topic through the cluster controller.
func createTopic(t *testing.T, broker, topic string) {
	t.Helper()
	conn, err := kafkago.Dial("tcp", broker)
	require.NoError(t, err)
	defer conn.Close()

	controller, err := conn.Controller()
	require.NoError(t, err)

	ctrlConn, err := kafkago.Dial("tcp", net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port)))
	require.NoError(t, err)
	defer ctrlConn.Close()

	require.NoError(t, ctrlConn.CreateTopics(kafkago.TopicConfig{
		Topic:             topic,
		NumPartitions:     1,
		ReplicationFactor: 1,
	}))
}

// TestKafkaDispatch drives a report session end to end: the session submits
// through the Kafka dispatcher and the report lands on the dispatch topic.
func TestKafkaDispatch(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	broker := startKafka(ctx, t)
	createTopic(t, broker, testDispatchTopic)

	cfg := &config.Config{
		KafkaBrokers:       []string{broker},
		KafkaDispatchTopic: testDispatchTopic,
		DispatchETAMinutes: 15,
	}
	dispatcher := kafkaadapter.NewDispatcher(cfg, discardLogger())
	t.Cleanup(func() { _ = dispatcher.Close() })

	require.NoError(t, dispatcher.CheckReadiness(ctx))

	session := report.NewSession("Old City", dispatcher, report.Config{DispatchTimeout: 30 * time.Second},
		discardLogger(), observability.NewMetricsForTesting())
	t.Cleanup(session.Close)

	require.NoError(t, session.ToggleSymptom(domain.SymptomDehydration))
	require.NoError(t, session.ToggleSymptom(domain.SymptomHeadache))
	require.NoError(t, session.SetSeverity(domain.SeverityUrgent))
	require.NoError(t, session.Submit(ctx))

	require.Eventually(t, func() bool {
		return session.Snapshot().Status == report.StatusSubmitted
	}, 60*time.Second, 100*time.Millisecond, "report should be acknowledged by kafka")

	receipt := session.Snapshot().Receipt
	require.NotNil(t, receipt)
	assert.Equal(t, 15, receipt.ETAMinutes)

	consumer := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:   []string{broker},
		Topic:     testDispatchTopic,
		Partition: 0,
	})
	t.Cleanup(func() { _ = consumer.Close() })

	readCtx, readCancel := context.WithTimeout(ctx, 30*time.Second)
	defer readCancel()
	msg, err := consumer.ReadMessage(readCtx)
	require.NoError(t, err, "read from dispatch topic")

	assert.Equal(t, receipt.ReferenceID, string(msg.Key))
	headers := make(map[string]string, len(msg.Headers))
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, "urgent", headers["severity"])
	assert.NotEmpty(t, headers["submitted_at"])

	var body struct {
		ReferenceID string   `json:"reference_id"`
		Symptoms    []string `json:"symptoms"`
		Severity    string   `json:"severity"`
		Location    string   `json:"location"`
	}
	require.NoError(t, json.Unmarshal(msg.Value, &body))
	assert.Equal(t, receipt.ReferenceID, body.ReferenceID)
	assert.Equal(t, []string{"dehydration", "headache"}, body.Symptoms)
	assert.Equal(t, "urgent", body.Severity)
	assert.Equal(t, "Old City", body.Location)
}

func TestKafkaDispatch_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cfg := &config.Config{
		KafkaBrokers:       []string{"127.0.0.1:1"},
		KafkaDispatchTopic: testDispatchTopic,
		DispatchETAMinutes: 15,
	}
	dispatcher := kafkaadapter.NewDispatcher(cfg, discardLogger())
	t.Cleanup(func() { _ = dispatcher.Close() })

	require.Error(t, dispatcher.CheckReadiness(ctx))
}
