package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ParsesRequiredAndDefaults(t *testing.T) {
	t.Setenv("INSTRUMENT", "BTC-USD")
	t.Setenv("KAFKA_BROKERS", "localhost:9092,localhost:9093")
	t.Setenv("KAFKA_INTENT_TOPIC", "orders.btc-usd")
	t.Setenv("KAFKA_TRADE_TOPIC", "trades.btc-usd")

	var cfg Config
	err := Load(&cfg)
	require.NoError(t, err)

	assert.Equal(t, "BTC-USD", cfg.Instrument)
	assert.Equal(t, []string{"localhost:9092", "localhost:9093"}, cfg.Kafka.Brokers)
	assert.Equal(t, "matching-engine", cfg.Kafka.GroupID)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, int64(1000), cfg.Snapshot.OffsetDelta)
}

func TestLoad_MissingRequiredFieldErrors(t *testing.T) {
	var cfg Config
	err := Load(&cfg)
	assert.Error(t, err)
}
