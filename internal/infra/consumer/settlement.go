package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"

	"gamestore/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// BrokerReader is the slice of kafka.Reader the consumer needs.
type BrokerReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type debitCompletedEvent struct {
	GameID uuid.UUID `json:"gameId"`
	UserID uuid.UUID `json:"userId"`
}

// SettlementConsumer turns confirmed wallet debits into library entitlements.
// Offsets commit only after the grant lands, so a crash mid-grant replays the
// event; the grant itself is idempotent, which makes the replay harmless.
type SettlementConsumer struct {
	reader  BrokerReader
	library commands.LibraryCommands
	logger  *slog.Logger

	stop chan struct{}
	done sync.WaitGroup
}

func NewSettlementConsumer(reader BrokerReader, library commands.LibraryCommands, logger *slog.Logger) *SettlementConsumer {
	return &SettlementConsumer{
		reader:  reader,
		library: library,
		logger:  logger,
		stop:    make(chan struct{}),
	}
}

func (c *SettlementConsumer) Start(ctx context.Context) {
	c.done.Add(1)
	go func() {
		defer c.done.Done()
		for {
			select {
			case <-c.stop:
				return
			default:
			}
			if err := c.consumeOne(ctx); err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
					return
				}
				c.logger.Error("settlement consume failed", "error", err)
			}
		}
	}()
}

func (c *SettlementConsumer) Stop() {
	close(c.stop)
	if err := c.reader.Close(); err != nil {
		c.logger.Error("failed to close settlement reader", "error", err)
	}
	c.done.Wait()
}

func (c *SettlementConsumer) consumeOne(ctx context.Context) error {
	msg, err := c.reader.FetchMessage(ctx)
	if err != nil {
		return err
	}

	var event debitCompletedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		// A poison message never becomes parseable; commit past it.
		c.logger.Error("dropping malformed settlement event",
			"topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset, "error", err)
		return c.reader.CommitMessages(ctx, msg)
	}

	if _, err := c.library.Grant(ctx, event.GameID, event.UserID); err != nil {
		// Leave the offset uncommitted so the event is retried.
		return err
	}

	c.logger.Info("entitlement granted from settlement",
		"game_id", event.GameID, "user_id", event.UserID, "offset", msg.Offset)
	return c.reader.CommitMessages(ctx, msg)
}
