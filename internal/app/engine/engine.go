// Package engine wires the core matching engine to its ambient
// collaborators: a Kafka intent reader, a Kafka trade publisher, and a
// Redis-backed snapshot store. It owns the single mutex that serializes
// access to the core orderbook.Engine, which itself performs no I/O and
// assumes single-threaded use.
package engine

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/GasparCoquet/limit-order-book-go/internal/domain/orderbook"
	apperrors "github.com/GasparCoquet/limit-order-book-go/pkg/errors"
	"github.com/GasparCoquet/limit-order-book-go/pkg/logger"
	"github.com/GasparCoquet/limit-order-book-go/pkg/util"
)

// Engine consumes order intents for one instrument, applies them to the
// core book under a mutex, publishes resulting trades, and periodically
// checkpoints book state to the snapshot store.
type Engine struct {
	mu   sync.Mutex
	core *orderbook.Engine

	reader    IntentReader
	publisher TradePublisher
	store     SnapshotStore
	logger    *logger.Logger

	instrument string
	opts       *Options

	processedCount     atomic.Int64
	lastSnapshotOffset atomic.Int64
}

// NewEngine constructs an Engine over an already-created core book.
func NewEngine(core *orderbook.Engine, reader IntentReader, store SnapshotStore, publisher TradePublisher, log *logger.Logger, instrument string, opts *Options) *Engine {
	if opts == nil {
		opts = DefaultEngineOptions()
	}
	return &Engine{
		core:       core,
		reader:     reader,
		store:      store,
		publisher:  publisher,
		logger:     log,
		instrument: instrument,
		opts:       opts,
	}
}

// LoadSnapshot restores the core book from the store, if a prior snapshot
// exists. It is a no-op (not an error) when none is found, since a fresh
// instrument has no history to restore.
func (e *Engine) LoadSnapshot(ctx context.Context) error {
	snap, err := e.store.LoadStore(ctx)
	if err != nil {
		return err
	}
	if snap == nil {
		e.logger.InfoContext(ctx, "starting with an empty book", logger.Field{Key: "instrument", Value: e.instrument})
		return nil
	}

	e.mu.Lock()
	e.core.Restore(snap)
	e.mu.Unlock()

	e.lastSnapshotOffset.Store(snap.SourceTopicOffset)
	e.logger.InfoContext(ctx, "restored book from snapshot",
		logger.Field{Key: "instrument", Value: e.instrument},
		logger.Field{Key: "orders", Value: len(snap.Orders)})
	return nil
}

// Run consumes intents until ctx is cancelled or reading, publishing or
// committing returns an error other than a malformed intent. Each intent is applied, its trades published, the
// source message committed, and a checkpoint taken once the configured
// offset delta has been crossed.
func (e *Engine) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		if err := e.processNext(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
	}
}

func (e *Engine) processNext(ctx context.Context) error {
	ctx = util.WithRequestID(ctx, "")

	msg, intent, err := e.reader.ReadIntent(ctx)
	if err != nil {
		if apperrors.CodeEquals(err, apperrors.CodeIntentDecode) || apperrors.CodeEquals(err, apperrors.CodeIntentInvalid) {
			// Malformed input is logged and skipped, not fatal to the stream.
			return e.reader.CommitMessages(ctx, msg)
		}
		return err
	}

	result := e.submit(intent)

	if len(result.Trades) > 0 {
		if err := e.publisher.PublishTrades(ctx, result.Trades); err != nil {
			return err
		}
	}

	if err := e.reader.CommitMessages(ctx, msg); err != nil {
		return err
	}

	e.processedCount.Add(1)
	if int64(msg.Offset)-e.lastSnapshotOffset.Load() >= e.opts.SnapshotOffsetDelta {
		if err := e.createAndStoreSnapshot(ctx, msg.Offset); err != nil {
			e.logger.ErrorContext(ctx, apperrors.TracerFromError(err))
		}
	}

	return nil
}

func (e *Engine) submit(intent orderbook.Intent) orderbook.SubmitResult {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.core.Submit(intent)
}

func (e *Engine) createAndStoreSnapshot(ctx context.Context, offset int64) error {
	e.mu.Lock()
	snap := e.core.CreateSnapshot()
	e.mu.Unlock()

	snap.SourceTopicOffset = offset
	if err := e.store.Store(ctx, snap); err != nil {
		return err
	}
	e.lastSnapshotOffset.Store(offset)
	return nil
}

// GetProcessedCount returns the number of intents applied so far.
func (e *Engine) GetProcessedCount() int64 {
	return e.processedCount.Load()
}

// GetLastSnapshotOffset returns the source topic offset of the last
// checkpoint taken.
func (e *Engine) GetLastSnapshotOffset() int64 {
	return e.lastSnapshotOffset.Load()
}

// Close releases the reader's underlying connection.
func (e *Engine) Close() error {
	return e.reader.Close()
}
