package components

import (
	"context"
	"log/slog"

	"gamestore/internal/infra/consumer"
	"gamestore/internal/infra/gateway"
	"gamestore/internal/infra/publisher"
	"gamestore/internal/pkg/clock"
	"gamestore/internal/pkg/config"
	"gamestore/internal/pkg/metrics"
	"gamestore/internal/usecase/commands"

	"github.com/segmentio/kafka-go"
	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		fx.Annotate(
			NewKafkaWriter,
			fx.As(new(publisher.BrokerWriter)),
		),
		fx.Annotate(
			NewKafkaReader,
			fx.As(new(consumer.BrokerReader)),
		),
		fx.Annotate(
			NewWalletGateway,
			fx.As(new(commands.WalletGateway)),
		),
		fx.Annotate(
			NewSettlementPublisher,
			fx.As(new(commands.SettlementPublisher)),
		),
		NewOutboxRelay,
		NewSettlementConsumer,
	),
	fx.Invoke(
		startRelay,
		startConsumer,
	),
)

func NewKafkaWriter(lc fx.Lifecycle, cfg config.Config) *kafka.Writer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Kafka.Brokers...),
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return writer.Close()
		},
	})

	return writer
}

func NewKafkaReader(cfg config.Config) *kafka.Reader {
	// Closed by the consumer on shutdown.
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: cfg.Kafka.Brokers,
		GroupID: cfg.Kafka.ConsumerGroup,
		Topic:   cfg.Kafka.DebitCompletedTopic,
	})
}

func NewWalletGateway(cfg config.Config) *gateway.WalletGateway {
	return gateway.NewWalletGateway(cfg.Wallet)
}

func NewSettlementPublisher(
	writer publisher.BrokerWriter,
	outbox publisher.OutboxStore,
	cfg config.Config,
	clk clock.Clock,
	recorder metrics.Recorder,
	logger *slog.Logger,
) *publisher.SettlementPublisher {
	return publisher.NewSettlementPublisher(writer, outbox, cfg.Kafka, cfg.Outbox, clk, recorder, logger)
}

func NewOutboxRelay(
	writer publisher.BrokerWriter,
	outbox publisher.OutboxStore,
	cfg config.Config,
	clk clock.Clock,
	recorder metrics.Recorder,
	logger *slog.Logger,
) *publisher.OutboxRelay {
	return publisher.NewOutboxRelay(writer, outbox, cfg.Outbox, clk, recorder, logger)
}

func NewSettlementConsumer(
	reader consumer.BrokerReader,
	library commands.LibraryCommands,
	logger *slog.Logger,
) *consumer.SettlementConsumer {
	return consumer.NewSettlementConsumer(reader, library, logger)
}

func startRelay(lc fx.Lifecycle, relay *publisher.OutboxRelay) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			relay.Start(context.Background())
			return nil
		},
		OnStop: func(_ context.Context) error {
			relay.Stop()
			return nil
		},
	})
}

func startConsumer(lc fx.Lifecycle, c *consumer.SettlementConsumer) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			c.Start(context.Background())
			return nil
		},
		OnStop: func(_ context.Context) error {
			c.Stop()
			return nil
		},
	})
}
