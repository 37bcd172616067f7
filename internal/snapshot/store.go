// Package snapshot persists and restores orderbook.Snapshot values through
// a Redis-backed store, one key per instrument.
package snapshot

import (
	"context"
	"encoding/json"

	"github.com/GasparCoquet/limit-order-book-go/internal/domain/orderbook"
	apperrors "github.com/GasparCoquet/limit-order-book-go/pkg/errors"
	"github.com/GasparCoquet/limit-order-book-go/pkg/logger"
	"github.com/GasparCoquet/limit-order-book-go/pkg/redis"
)

// wireOrder and wireSnapshot mirror orderbook.BookOrder/Snapshot for JSON
// persistence, keeping the domain types free of struct tags.
type wireOrder struct {
	OrderID  string `json:"order_id"`
	Side     uint8  `json:"side"`
	Price    int64  `json:"price"`
	Quantity uint64 `json:"quantity"`
	Sequence uint64 `json:"sequence"`
}

type wireSnapshot struct {
	Orders            []wireOrder `json:"orders"`
	LastSequence      uint64      `json:"last_sequence"`
	LastTradeCount    int         `json:"last_trade_count"`
	SourceTopicOffset int64       `json:"source_topic_offset"`
}

func toWire(s *orderbook.Snapshot) wireSnapshot {
	orders := make([]wireOrder, len(s.Orders))
	for i, o := range s.Orders {
		orders[i] = wireOrder{
			OrderID:  string(o.OrderID),
			Side:     uint8(o.Side),
			Price:    int64(o.Price),
			Quantity: uint64(o.Quantity),
			Sequence: uint64(o.Sequence),
		}
	}
	return wireSnapshot{
		Orders:            orders,
		LastSequence:      uint64(s.LastSequence),
		LastTradeCount:    s.LastTradeCount,
		SourceTopicOffset: s.SourceTopicOffset,
	}
}

func (w wireSnapshot) toSnapshot() *orderbook.Snapshot {
	orders := make([]orderbook.BookOrder, len(w.Orders))
	for i, o := range w.Orders {
		orders[i] = orderbook.BookOrder{
			OrderID:  orderbook.OrderID(o.OrderID),
			Side:     orderbook.Side(o.Side),
			Price:    orderbook.Price(o.Price),
			Quantity: orderbook.Quantity(o.Quantity),
			Sequence: orderbook.Sequence(o.Sequence),
		}
	}
	return &orderbook.Snapshot{
		Orders:            orders,
		LastSequence:      orderbook.Sequence(w.LastSequence),
		LastTradeCount:    w.LastTradeCount,
		SourceTopicOffset: w.SourceTopicOffset,
	}
}

// Store persists orderbook.Snapshot values to Redis, one key per instrument.
type Store struct {
	instrument string
	logger     *logger.Logger
	redis      redis.Client
}

// NewStore creates a Store for the given instrument.
func NewStore(redisClient redis.Client, instrument string, log *logger.Logger) *Store {
	return &Store{instrument: instrument, redis: redisClient, logger: log}
}

func (s *Store) key() string {
	return "lob:snapshot:" + s.instrument
}

// Store serializes and persists snapshot under this instrument's key.
func (s *Store) Store(ctx context.Context, snapshot *orderbook.Snapshot) error {
	buf, err := json.Marshal(toWire(snapshot))
	if err != nil {
		s.logger.ErrorContext(ctx, apperrors.TracerFromError(err), logger.Field{Key: "instrument", Value: s.instrument})
		return apperrors.New(apperrors.CodeSnapshotCodec, "failed to marshal snapshot", "")
	}

	if err := s.redis.Set(ctx, s.key(), buf, 0); err != nil {
		s.logger.ErrorContext(ctx, apperrors.TracerFromError(err), logger.Field{Key: "instrument", Value: s.instrument})
		return err
	}

	s.logger.InfoContext(ctx, "snapshot stored", logger.Field{Key: "instrument", Value: s.instrument}, logger.Field{Key: "orders", Value: len(snapshot.Orders)})
	return nil
}

// LoadStore loads the most recently stored snapshot, returning (nil, nil)
// if none exists yet for this instrument.
func (s *Store) LoadStore(ctx context.Context) (*orderbook.Snapshot, error) {
	data, err := s.redis.Get(ctx, s.key())
	if err != nil {
		s.logger.ErrorContext(ctx, apperrors.TracerFromError(err), logger.Field{Key: "instrument", Value: s.instrument})
		return nil, err
	}

	if data == "" {
		s.logger.InfoContext(ctx, "no snapshot found", logger.Field{Key: "instrument", Value: s.instrument})
		return nil, nil
	}

	var wire wireSnapshot
	if err := json.Unmarshal([]byte(data), &wire); err != nil {
		s.logger.ErrorContext(ctx, apperrors.TracerFromError(err), logger.Field{Key: "instrument", Value: s.instrument})
		return nil, apperrors.New(apperrors.CodeSnapshotCodec, "failed to unmarshal snapshot", "")
	}

	return wire.toSnapshot(), nil
}
