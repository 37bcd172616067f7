// Package config loads the matching engine process's configuration from
// environment variables (and an optional .env file), the same way the rest
// of the stack's services do.
package config

import "time"

// Config holds the full configuration for one matching engine process,
// which serves exactly one instrument.
type Config struct {
	// Instrument is the traded pair this process's book is for, e.g. "BTC-USD".
	Instrument string `env:"INSTRUMENT,required"`

	Kafka    KafkaConfig    `envPrefix:"KAFKA_"`
	Redis    RedisConfig    `envPrefix:"REDIS_"`
	Snapshot SnapshotConfig `envPrefix:"SNAPSHOT_"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// KafkaConfig configures both the ingress order-intent consumer and the
// egress trade-publisher producer.
type KafkaConfig struct {
	Brokers []string `env:"BROKERS,required"`

	IntentTopic string `env:"INTENT_TOPIC,required"`
	TradeTopic  string `env:"TRADE_TOPIC,required"`
	GroupID     string `env:"GROUP_ID" envDefault:"matching-engine"`
}

// RedisConfig configures the Redis connection used for snapshot persistence.
type RedisConfig struct {
	Addrs    []string `env:"ADDRS" envDefault:"localhost:6379"`
	Username string   `env:"USERNAME" envDefault:""`
	Password string   `env:"PASSWORD" envDefault:""`
	DB       int      `env:"DB" envDefault:"0"`
}

// SnapshotConfig governs how often the running book is checkpointed.
type SnapshotConfig struct {
	// Interval is passed to engine.Options.SnapshotInterval; the engine does
	// not read it, so no snapshot is written on a timer.
	Interval time.Duration `env:"INTERVAL" envDefault:"30s"`
	// OffsetDelta is the topic offset distance from the last snapshot at
	// which the engine writes the next one.
	OffsetDelta int64 `env:"OFFSET_DELTA" envDefault:"1000"`
}
