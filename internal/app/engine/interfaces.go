package engine

import (
	"context"

	"github.com/GasparCoquet/limit-order-book-go/internal/domain/orderbook"
	"github.com/segmentio/kafka-go"
)

// IntentReader reads order intents destined for this instrument's book.
//
//go:generate mockgen -source interfaces.go -destination=mocks/mocks.go -package=engine_mock
type IntentReader interface {
	ReadIntent(ctx context.Context) (kafka.Message, orderbook.Intent, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// TradePublisher publishes trades executed against this instrument's book.
type TradePublisher interface {
	PublishTrades(ctx context.Context, trades []orderbook.Trade) error
}

// SnapshotStore persists and restores point-in-time book snapshots.
type SnapshotStore interface {
	Store(ctx context.Context, snapshot *orderbook.Snapshot) error
	LoadStore(ctx context.Context) (*orderbook.Snapshot, error)
}
