// Package kafka publishes executed trades to the instrument's trade topic.
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

// wireTrade is the JSON envelope published for each executed trade.
type wireTrade struct {
	BuyOrderID  string `json:"buy_order_id"`
	SellOrderID string `json:"sell_order_id"`
	Price       int64  `json:"price"`
	Quantity    uint64 `json:"quantity"`
	Sequence    uint64 `json:"sequence"`
}

func fromTrade(t orderbook.Trade) wireTrade {
	return wireTrade{
		BuyOrderID:  string(t.BuyOrderID),
		SellOrderID: string(t.SellOrderID),
		Price:       int64(t.Price),
		Quantity:    uint64(t.Quantity),
		Sequence:    uint64(t.Sequence),
	}
}

// Writer publishes trades to the configured Kafka topic.
type Writer struct {
	kafkaWriter *kafka.Writer
	logger      *logger.Logger
}

// NewWriter creates a Writer bound to cfg's trade topic.
func NewWriter(cfg config.KafkaConfig, log *logger.Logger) *Writer {
	return &Writer{
		kafkaWriter: &kafka.Writer{
			Addr:     kafka.TCP(cfg.Brokers...),
			Topic:    cfg.TradeTopic,
			Balancer: &kafka.LeastBytes{},
		},
		logger: log,
	}
}

// PublishTrades publishes each trade as a separate message, in order.
func (w *Writer) PublishTrades(ctx context.Context, trades []orderbook.Trade) error {
	if len(trades) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, 0, len(trades))
	for _, t := range trades {
		buf, err := json.Marshal(fromTrade(t))
		if err != nil {
			return apperrors.New(apperrors.CodeKafkaWrite, "failed to encode trade", "")
		}
		msgs = append(msgs, kafka.Message{Value: buf})
	}

	if err := w.kafkaWriter.WriteMessages(ctx, msgs...); err != nil {
		w.logger.ErrorContext(ctx, apperrors.TracerFromError(err), logger.Field{Key: "count", Value: len(trades)})
		return apperrors.New(apperrors.CodeKafkaWrite, "failed to publish trades", "")
	}
	return nil
}

// Close releases the underlying connection.
func (w *Writer) Close() error {
	return w.kafkaWriter.Close()
}
