package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timeouts, topics, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server ServerConfig
	DB     DBConfig
	CORS   CORSConfig
	Log    LogConfig
	JWT    JWTConfig
	Wallet WalletConfig
	Kafka  KafkaConfig
	Outbox OutboxConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// WalletConfig points at the external account service that owns user balances.
type WalletConfig struct {
	BaseURL string        `envconfig:"WALLET_BASE_URL" required:"true"`
	Timeout time.Duration `envconfig:"WALLET_TIMEOUT" default:"5s"`
}

type KafkaConfig struct {
	Brokers             []string `envconfig:"KAFKA_BROKERS" default:"localhost:9092"`
	DebitRequestedTopic string   `envconfig:"KAFKA_DEBIT_REQUESTED_TOPIC" default:"wallet.debit.requested"`
	DebitCompletedTopic string   `envconfig:"KAFKA_DEBIT_COMPLETED_TOPIC" default:"wallet.debit.completed"`
	ConsumerGroup       string   `envconfig:"KAFKA_CONSUMER_GROUP" default:"gamestore-entitlements"`
}

// OutboxConfig tunes the settlement publisher: delivery retries, the circuit
// breaker guarding the broker, and the relay that drains rows left behind by
// a crash between enqueue and delivery.
type OutboxConfig struct {
	MaxAttempts      int           `envconfig:"OUTBOX_MAX_ATTEMPTS" default:"5"`
	InitialDelay     time.Duration `envconfig:"OUTBOX_INITIAL_DELAY" default:"1s"`
	DelayIncrement   time.Duration `envconfig:"OUTBOX_DELAY_INCREMENT" default:"2s"`
	MaxDelay         time.Duration `envconfig:"OUTBOX_MAX_DELAY" default:"30s"`
	BreakerThreshold int           `envconfig:"OUTBOX_BREAKER_THRESHOLD" default:"5"`
	BreakerWindow    time.Duration `envconfig:"OUTBOX_BREAKER_WINDOW" default:"1m"`
	BreakerCooldown  time.Duration `envconfig:"OUTBOX_BREAKER_COOLDOWN" default:"30s"`
	RelayInterval    time.Duration `envconfig:"OUTBOX_RELAY_INTERVAL" default:"15s"`
	RelayBatchSize   int           `envconfig:"OUTBOX_RELAY_BATCH_SIZE" default:"50"`
	RelayMinAge      time.Duration `envconfig:"OUTBOX_RELAY_MIN_AGE" default:"30s"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
		},
		Log: LogConfig{
			Level: "error", // Error level only for tests
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Wallet: WalletConfig{
			BaseURL: "http://localhost:18080",
			Timeout: time.Second,
		},
		Kafka: KafkaConfig{
			Brokers:             []string{"localhost:19092"},
			DebitRequestedTopic: "wallet.debit.requested",
			DebitCompletedTopic: "wallet.debit.completed",
			ConsumerGroup:       "gamestore-entitlements-test",
		},
		Outbox: OutboxConfig{
			MaxAttempts:      3,
			InitialDelay:     time.Millisecond,
			DelayIncrement:   time.Millisecond,
			MaxDelay:         10 * time.Millisecond,
			BreakerThreshold: 3,
			BreakerWindow:    time.Minute,
			BreakerCooldown:  time.Second,
			RelayInterval:    time.Second,
			RelayBatchSize:   10,
			RelayMinAge:      0,
		},
	}
}
