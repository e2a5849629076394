package publisher

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"gamestore/internal/pkg/clock"
	"gamestore/internal/pkg/config"
	"gamestore/internal/pkg/metrics"

	"github.com/segmentio/kafka-go"
)

// OutboxRelay drains settlement rows stuck in pending: those are events whose
// synchronous delivery never ran because the process died between the outbox
// insert and the broker write. Rows marked failed stay failed; their purchase
// was rejected and replaying them would debit a wallet with no sale behind it.
type OutboxRelay struct {
	writer   BrokerWriter
	outbox   OutboxStore
	cfg      config.OutboxConfig
	clock    clock.Clock
	recorder metrics.Recorder
	logger   *slog.Logger

	stop chan struct{}
	done sync.WaitGroup
}

func NewOutboxRelay(
	writer BrokerWriter,
	outbox OutboxStore,
	cfg config.OutboxConfig,
	clk clock.Clock,
	recorder metrics.Recorder,
	logger *slog.Logger,
) *OutboxRelay {
	return &OutboxRelay{
		writer:   writer,
		outbox:   outbox,
		cfg:      cfg,
		clock:    clk,
		recorder: recorder,
		logger:   logger,
		stop:     make(chan struct{}),
	}
}

func (r *OutboxRelay) Start(ctx context.Context) {
	r.done.Add(1)
	go func() {
		defer r.done.Done()
		ticker := time.NewTicker(r.cfg.RelayInterval)
		defer ticker.Stop()
		for {
			select {
			case <-r.stop:
				return
			case <-ctx.Done():
				return
			case <-ticker.C:
				r.drainOnce(ctx)
			}
		}
	}()
}

func (r *OutboxRelay) Stop() {
	close(r.stop)
	r.done.Wait()
}

// drainOnce relays one batch of stale pending rows. The minimum-age cutoff
// keeps the relay from racing a synchronous delivery that is still in flight.
func (r *OutboxRelay) drainOnce(ctx context.Context) {
	cutoff := r.clock.Now().Add(-r.cfg.RelayMinAge)
	batch, err := r.outbox.PendingBatch(ctx, cutoff, int32(r.cfg.RelayBatchSize))
	if err != nil {
		r.logger.Error("failed to list pending outbox messages", "error", err)
		return
	}

	for _, msg := range batch {
		err := r.writer.WriteMessages(ctx, kafka.Message{
			Topic: msg.Topic,
			Key:   []byte(msg.Key),
			Value: msg.Payload,
			Headers: []kafka.Header{
				{Key: "content-type", Value: []byte("application/json")},
			},
		})
		if err != nil {
			// Leave the row pending so the next cycle tries again.
			r.logger.Warn("relay delivery failed, will retry next cycle",
				"outbox_id", msg.ID, "attempts", msg.Attempts, "error", err)
			continue
		}
		if err := r.outbox.MarkPublished(ctx, msg.ID, r.clock.Now()); err != nil {
			r.logger.Error("failed to mark relayed message published", "outbox_id", msg.ID, "error", err)
			continue
		}
		r.recorder.IncSettlementsPublished()
		r.logger.Info("relayed stale settlement event", "outbox_id", msg.ID, "topic", msg.Topic)
	}
}
