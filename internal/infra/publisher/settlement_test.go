//go:build unit

package publisher_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"gamestore/internal/infra/publisher"
	"gamestore/internal/infra/repository"
	"gamestore/internal/pkg/clock"
	"gamestore/internal/pkg/config"
	"gamestore/internal/pkg/metrics"
	"gamestore/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeWriter fails the first failures calls, then succeeds.
type fakeWriter struct {
	mu       sync.Mutex
	failures int
	calls    int
	messages []kafka.Message
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.calls++
	if w.calls <= w.failures {
		return errors.New("broker unreachable")
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

type outboxRecord struct {
	msg       repository.OutboxMessage
	status    string
	lastError string
}

type fakeOutbox struct {
	mu      sync.Mutex
	records map[uuid.UUID]*outboxRecord
}

func newFakeOutbox() *fakeOutbox {
	return &fakeOutbox{records: make(map[uuid.UUID]*outboxRecord)}
}

func (o *fakeOutbox) Enqueue(ctx context.Context, topic, key string, payload []byte, now time.Time) (uuid.UUID, error) {
	if err := ctx.Err(); err != nil {
		return uuid.Nil, err
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	id := uuid.New()
	o.records[id] = &outboxRecord{
		msg:    repository.OutboxMessage{ID: id, Topic: topic, Key: key, Payload: payload, Status: "pending", CreatedAt: now},
		status: "pending",
	}
	return id, nil
}

func (o *fakeOutbox) PendingBatch(_ context.Context, createdBefore time.Time, _ int32) ([]repository.OutboxMessage, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	var batch []repository.OutboxMessage
	for _, rec := range o.records {
		if rec.status == "pending" && !rec.msg.CreatedAt.After(createdBefore) {
			batch = append(batch, rec.msg)
		}
	}
	return batch, nil
}

func (o *fakeOutbox) MarkPublished(ctx context.Context, id uuid.UUID, _ time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.records[id].status = "published"
	return nil
}

func (o *fakeOutbox) MarkFailed(ctx context.Context, id uuid.UUID, lastError string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.records[id].status = "failed"
	o.records[id].lastError = lastError
	return nil
}

func (o *fakeOutbox) statuses() map[string]int {
	o.mu.Lock()
	defer o.mu.Unlock()
	counts := make(map[string]int)
	for _, rec := range o.records {
		counts[rec.status]++
	}
	return counts
}

func newTestPublisher(writer publisher.BrokerWriter, outbox publisher.OutboxStore) *publisher.SettlementPublisher {
	cfg := config.NewTestConfig()
	return publisher.NewSettlementPublisher(
		writer, outbox, cfg.Kafka, cfg.Outbox,
		clock.NewRealClock(),
		metrics.NewNopRecorder(),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

func testEvent() commands.SettlementEvent {
	return commands.SettlementEvent{
		GameID: uuid.New(),
		UserID: uuid.New(),
		Amount: decimal.RequireFromString("59.90"),
	}
}

func TestPublish_Success(t *testing.T) {
	writer := &fakeWriter{}
	outbox := newFakeOutbox()
	p := newTestPublisher(writer, outbox)

	event := testEvent()
	err := p.Publish(context.Background(), event)
	require.NoError(t, err)

	require.Len(t, writer.messages, 1)
	msg := writer.messages[0]
	assert.Equal(t, "wallet.debit.requested", msg.Topic)
	assert.Equal(t, event.UserID.String(), string(msg.Key))

	var decoded commands.SettlementEvent
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, event.GameID, decoded.GameID)
	assert.True(t, decoded.Amount.Equal(event.Amount))

	assert.Equal(t, map[string]int{"published": 1}, outbox.statuses())
}

func TestPublish_RetriesThenSucceeds(t *testing.T) {
	writer := &fakeWriter{failures: 2}
	outbox := newFakeOutbox()
	p := newTestPublisher(writer, outbox)

	err := p.Publish(context.Background(), testEvent())
	require.NoError(t, err)
	assert.Equal(t, 3, writer.calls)
	assert.Equal(t, map[string]int{"published": 1}, outbox.statuses())
}

func TestPublish_ExhaustedRetriesMarksFailed(t *testing.T) {
	writer := &fakeWriter{failures: 100}
	outbox := newFakeOutbox()
	p := newTestPublisher(writer, outbox)

	err := p.Publish(context.Background(), testEvent())
	require.Error(t, err)
	assert.Equal(t, map[string]int{"failed": 1}, outbox.statuses())
}

// cancellingWriter simulates the caller disconnecting mid-delivery: the first
// broker write fails and cancels the request context.
type cancellingWriter struct {
	cancel context.CancelFunc
}

func (w *cancellingWriter) WriteMessages(context.Context, ...kafka.Message) error {
	w.cancel()
	return errors.New("broker unreachable")
}

func TestPublish_CancelledCallerStillMarksRowFailed(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	outbox := newFakeOutbox()
	p := newTestPublisher(&cancellingWriter{cancel: cancel}, outbox)

	err := p.Publish(ctx, testEvent())
	require.Error(t, err)
	assert.Equal(t, map[string]int{"failed": 1}, outbox.statuses(),
		"a rejected purchase must never leave a pending row behind")

	// The relay must not resurrect the rejected purchase.
	writer := &fakeWriter{}
	cfg := config.NewTestConfig()
	cfg.Outbox.RelayInterval = time.Millisecond
	relay := publisher.NewOutboxRelay(
		writer, outbox, cfg.Outbox,
		clock.NewRealClock(),
		metrics.NewNopRecorder(),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	relay.Start(context.Background())
	time.Sleep(20 * time.Millisecond)
	relay.Stop()

	assert.Empty(t, writer.messages)
}

func TestRelay_DrainsStalePendingRows(t *testing.T) {
	writer := &fakeWriter{}
	outbox := newFakeOutbox()

	// A row left behind by a crash between enqueue and delivery.
	created := time.Now().Add(-time.Minute)
	_, err := outbox.Enqueue(context.Background(), "wallet.debit.requested", "key", []byte(`{}`), created)
	require.NoError(t, err)

	cfg := config.NewTestConfig()
	cfg.Outbox.RelayInterval = time.Millisecond
	relay := publisher.NewOutboxRelay(
		writer, outbox, cfg.Outbox,
		clock.NewRealClock(),
		metrics.NewNopRecorder(),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	relay.Start(context.Background())
	assert.Eventually(t, func() bool {
		return outbox.statuses()["published"] == 1
	}, time.Second, 5*time.Millisecond)
	relay.Stop()

	require.Len(t, writer.messages, 1)
	assert.Equal(t, "wallet.debit.requested", writer.messages[0].Topic)
}
