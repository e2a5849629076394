package publisher

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"gamestore/internal/infra/repository"
	"gamestore/internal/pkg/clock"
	"gamestore/internal/pkg/config"
	"gamestore/internal/pkg/errs"
	"gamestore/internal/pkg/metrics"
	"gamestore/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// BrokerWriter is the slice of kafka.Writer the publisher needs.
type BrokerWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// OutboxStore persists settlement events before and after broker delivery.
type OutboxStore interface {
	Enqueue(ctx context.Context, topic, key string, payload []byte, now time.Time) (uuid.UUID, error)
	PendingBatch(ctx context.Context, createdBefore time.Time, limit int32) ([]repository.OutboxMessage, error)
	MarkPublished(ctx context.Context, id uuid.UUID, publishedAt time.Time) error
	MarkFailed(ctx context.Context, id uuid.UUID, lastError string) error
}

// SettlementPublisher writes debit-request events to the broker with an
// outbox in front of it. Publish records the event durably first, then tries
// delivery; a row only stays pending if the process dies in between, and the
// relay picks those up later.
type SettlementPublisher struct {
	writer   BrokerWriter
	outbox   OutboxStore
	topic    string
	cfg      config.OutboxConfig
	breaker  *circuitBreaker
	clock    clock.Clock
	recorder metrics.Recorder
	logger   *slog.Logger
}

func NewSettlementPublisher(
	writer BrokerWriter,
	outbox OutboxStore,
	kafkaCfg config.KafkaConfig,
	outboxCfg config.OutboxConfig,
	clk clock.Clock,
	recorder metrics.Recorder,
	logger *slog.Logger,
) *SettlementPublisher {
	return &SettlementPublisher{
		writer:   writer,
		outbox:   outbox,
		topic:    kafkaCfg.DebitRequestedTopic,
		cfg:      outboxCfg,
		breaker:  newCircuitBreaker(outboxCfg.BreakerThreshold, outboxCfg.BreakerWindow, outboxCfg.BreakerCooldown, clk),
		clock:    clk,
		recorder: recorder,
		logger:   logger,
	}
}

func (p *SettlementPublisher) Publish(ctx context.Context, event commands.SettlementEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return errs.Wrap(err, "failed to encode settlement event")
	}

	key := event.UserID.String()
	id, err := p.outbox.Enqueue(ctx, p.topic, key, payload, p.clock.Now())
	if err != nil {
		return errs.Wrap(err, "failed to record settlement event")
	}

	// Status writes run on a detached context: a caller that gave up
	// mid-delivery must not leave the row pending, or the relay would later
	// deliver a debit for a purchase the caller was told failed.
	markCtx := context.WithoutCancel(ctx)

	if err := p.deliver(ctx, key, payload); err != nil {
		if markErr := p.outbox.MarkFailed(markCtx, id, err.Error()); markErr != nil {
			p.logger.Error("failed to mark outbox message failed", "outbox_id", id, "error", markErr)
		}
		p.recorder.IncSettlementsFailed()
		return errs.Wrap(err, "settlement delivery exhausted retries")
	}

	if err := p.outbox.MarkPublished(markCtx, id, p.clock.Now()); err != nil {
		// Delivery succeeded; a stale pending row is harmless because the
		// relay respects the minimum-age cutoff and delivery is at-least-once.
		p.logger.Error("failed to mark outbox message published", "outbox_id", id, "error", err)
	}
	p.recorder.IncSettlementsPublished()
	return nil
}

// deliver retries broker writes under a fixed-increment backoff, giving up
// after the configured attempt limit or when the context is done.
func (p *SettlementPublisher) deliver(ctx context.Context, key string, payload []byte) error {
	delay := p.cfg.InitialDelay
	var lastErr error

	for attempt := 1; attempt <= p.cfg.MaxAttempts; attempt++ {
		if attempt > 1 {
			if err := sleepCtx(ctx, delay); err != nil {
				return err
			}
			delay += p.cfg.DelayIncrement
			if delay > p.cfg.MaxDelay {
				delay = p.cfg.MaxDelay
			}
		}

		if err := p.breaker.Allow(); err != nil {
			lastErr = err
			continue
		}

		err := p.writer.WriteMessages(ctx, kafka.Message{
			Topic: p.topic,
			Key:   []byte(key),
			Value: payload,
			Headers: []kafka.Header{
				{Key: "content-type", Value: []byte("application/json")},
			},
		})
		if err == nil {
			p.breaker.Success()
			return nil
		}
		p.breaker.Failure()
		lastErr = err
		p.logger.Warn("settlement delivery attempt failed",
			"attempt", attempt, "max_attempts", p.cfg.MaxAttempts, "error", err)
	}
	return lastErr
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
