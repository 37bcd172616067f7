// Package kafka consumes order intents published to the instrument's
// intent topic and decodes them into domain orderbook.Intent values.
package kafka

import (
	"context"
	"encoding/json"

	"github.com/GasparCoquet/limit-order-book-go/internal/config"
	"github.com/GasparCoquet/limit-order-book-go/internal/domain/orderbook"
	apperrors "github.com/GasparCoquet/limit-order-book-go/pkg/errors"
	"github.com/GasparCoquet/limit-order-book-go/pkg/logger"
	"github.com/segmentio/kafka-go"
)

// wireIntent is the JSON envelope produced by upstream clients. It mirrors
// orderbook.Intent but keeps the wire format decoupled from the domain type
// so the two can evolve independently.
type wireIntent struct {
	OrderID  string `json:"order_id"`
	Side     string `json:"side"`
	Type     string `json:"type"`
	Price    int64  `json:"price"`
	Quantity uint64 `json:"quantity"`
}

func (w wireIntent) toIntent() (orderbook.Intent, error) {
	var side orderbook.Side
	switch w.Side {
	case "BUY":
		side = orderbook.Buy
	case "SELL":
		side = orderbook.Sell
	default:
		return orderbook.Intent{}, apperrors.New(apperrors.CodeIntentInvalid, "unknown side "+w.Side, "side")
	}

	var typ orderbook.OrderType
	switch w.Type {
	case "LIMIT":
		typ = orderbook.Limit
	case "MARKET":
		typ = orderbook.Market
	case "CANCEL":
		typ = orderbook.Cancel
	case "MODIFY":
		typ = orderbook.Modify
	default:
		return orderbook.Intent{}, apperrors.New(apperrors.CodeIntentInvalid, "unknown order type "+w.Type, "type")
	}

	if w.OrderID == "" {
		return orderbook.Intent{}, apperrors.New(apperrors.CodeIntentInvalid, "order_id is required", "order_id")
	}

	return orderbook.Intent{
		ID:       orderbook.OrderID(w.OrderID),
		Side:     side,
		Type:     typ,
		Price:    orderbook.Price(w.Price),
		Quantity: orderbook.Quantity(w.Quantity),
	}, nil
}

// Reader consumes order intents from the configured Kafka topic.
type Reader struct {
	kafkaReader *kafka.Reader
	logger      *logger.Logger
}

// NewReader creates a Reader bound to cfg's intent topic.
func NewReader(cfg config.KafkaConfig, log *logger.Logger) *Reader {
	return &Reader{
		kafkaReader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:     cfg.Brokers,
			Topic:       cfg.IntentTopic,
			GroupID:     cfg.GroupID,
			MinBytes:    1,
			MaxBytes:    10e6,
			StartOffset: kafka.LastOffset,
		}),
		logger: log,
	}
}

// ReadIntent blocks until the next intent is available, returning the raw
// kafka.Message alongside the decoded Intent so the caller can commit once
// it has been applied.
func (r *Reader) ReadIntent(ctx context.Context) (kafka.Message, orderbook.Intent, error) {
	msg, err := r.kafkaReader.FetchMessage(ctx)
	if err != nil {
		return kafka.Message{}, orderbook.Intent{}, apperrors.TracerFromError(err).Wrap(err)
	}

	var wire wireIntent
	if err := json.Unmarshal(msg.Value, &wire); err != nil {
		r.logger.ErrorContext(ctx, apperrors.New(apperrors.CodeIntentDecode, err.Error(), ""),
			logger.Field{Key: "offset", Value: msg.Offset})
		return msg, orderbook.Intent{}, apperrors.New(apperrors.CodeIntentDecode, "failed to decode intent", "")
	}

	intent, err := wire.toIntent()
	if err != nil {
		r.logger.ErrorContext(ctx, err, logger.Field{Key: "offset", Value: msg.Offset})
		return msg, orderbook.Intent{}, err
	}

	return msg, intent, nil
}

// CommitMessages acknowledges messages as processed.
func (r *Reader) CommitMessages(ctx context.Context, msgs ...kafka.Message) error {
	if err := r.kafkaReader.CommitMessages(ctx, msgs...); err != nil {
		return apperrors.New(apperrors.CodeKafkaRead, "failed to commit messages", "")
	}
	return nil
}

// Close releases the underlying connection.
func (r *Reader) Close() error {
	return r.kafkaReader.Close()
}
