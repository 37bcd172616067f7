package engine

import (
	"context"
	"testing"

	"github.com/GasparCoquet/limit-order-book-go/internal/app/engine/mocks"
	"github.com/GasparCoquet/limit-order-book-go/internal/domain/orderbook"
	apperrors "github.com/GasparCoquet/limit-order-book-go/pkg/errors"
	"github.com/GasparCoquet/limit-order-book-go/pkg/logger"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	l, err := logger.NewLogger()
	require.NoError(t, err)
	return l
}

func newTestEngine(t *testing.T, reader *engine_mock.MockIntentReader, store *engine_mock.MockSnapshotStore, publisher *engine_mock.MockTradePublisher) *Engine {
	t.Helper()
	return NewEngine(orderbook.NewEngine(), reader, store, publisher, testLogger(t), "BTC-USD", DefaultEngineOptions())
}

func TestLoadSnapshot_EmptyStoreIsNotAnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := engine_mock.NewMockSnapshotStore(ctrl)
	store.EXPECT().LoadStore(gomock.Any()).Return(nil, nil)

	e := newTestEngine(t, engine_mock.NewMockIntentReader(ctrl), store, engine_mock.NewMockTradePublisher(ctrl))

	err := e.LoadSnapshot(context.Background())
	require.NoError(t, err)
}

func TestLoadSnapshot_RestoresCoreBook(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := engine_mock.NewMockSnapshotStore(ctrl)
	store.EXPECT().LoadStore(gomock.Any()).Return(&orderbook.Snapshot{
		Orders: []orderbook.BookOrder{
			{OrderID: "1", Side: orderbook.Buy, Price: 10000, Quantity: 100, Sequence: 5},
		},
		LastSequence:      5,
		SourceTopicOffset: 42,
	}, nil)

	e := newTestEngine(t, engine_mock.NewMockIntentReader(ctrl), store, engine_mock.NewMockTradePublisher(ctrl))

	err := e.LoadSnapshot(context.Background())
	require.NoError(t, err)

	bid, ok := e.core.BestBid()
	require.True(t, ok)
	require.Equal(t, orderbook.Price(10000), bid)
	require.Equal(t, int64(42), e.GetLastSnapshotOffset())
}

func TestProcessNext_AppliesIntentAndPublishesTrades(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := engine_mock.NewMockIntentReader(ctrl)
	publisher := engine_mock.NewMockTradePublisher(ctrl)
	store := engine_mock.NewMockSnapshotStore(ctrl)

	e := newTestEngine(t, reader, store, publisher)
	e.core.Submit(orderbook.Intent{ID: "resting", Side: orderbook.Sell, Type: orderbook.Limit, Price: 10000, Quantity: 100})

	msg := kafka.Message{Offset: 1}
	intent := orderbook.Intent{ID: "aggressor", Side: orderbook.Buy, Type: orderbook.Limit, Price: 10000, Quantity: 40}

	reader.EXPECT().ReadIntent(gomock.Any()).Return(msg, intent, nil)
	publisher.EXPECT().PublishTrades(gomock.Any(), gomock.Any()).Return(nil)
	reader.EXPECT().CommitMessages(gomock.Any(), msg).Return(nil)

	err := e.processNext(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(1), e.GetProcessedCount())
}

func TestProcessNext_MalformedIntentIsSkippedNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := engine_mock.NewMockIntentReader(ctrl)
	publisher := engine_mock.NewMockTradePublisher(ctrl)
	store := engine_mock.NewMockSnapshotStore(ctrl)

	e := newTestEngine(t, reader, store, publisher)

	msg := kafka.Message{Offset: 7}
	reader.EXPECT().ReadIntent(gomock.Any()).Return(msg, orderbook.Intent{}, apperrors.New(apperrors.CodeIntentInvalid, "unknown side", "side"))
	reader.EXPECT().CommitMessages(gomock.Any(), msg).Return(nil)

	err := e.processNext(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(0), e.GetProcessedCount())
}

func TestCreateAndStoreSnapshot_UpdatesLastSnapshotOffset(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := engine_mock.NewMockIntentReader(ctrl)
	publisher := engine_mock.NewMockTradePublisher(ctrl)
	store := engine_mock.NewMockSnapshotStore(ctrl)

	e := newTestEngine(t, reader, store, publisher)
	e.core.Submit(orderbook.Intent{ID: "1", Side: orderbook.Buy, Type: orderbook.Limit, Price: 10000, Quantity: 100})

	store.EXPECT().Store(gomock.Any(), gomock.Any()).Return(nil)

	err := e.createAndStoreSnapshot(context.Background(), 99)
	require.NoError(t, err)
	require.Equal(t, int64(99), e.GetLastSnapshotOffset())
}
