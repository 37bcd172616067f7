package orderbook

// BookOrder is a single resting order as captured by a snapshot. It carries
// enough to re-admit the order at its original price and time priority.
type BookOrder struct {
	OrderID  OrderID
	Side     Side
	Price    Price
	Quantity Quantity
	Sequence Sequence
}

// Snapshot is a point-in-time capture of the full resting book plus the
// engine counters needed to resume issuing sequences and trades without
// collision after a restore.
type Snapshot struct {
	Orders            []BookOrder
	LastSequence      Sequence
	LastTradeCount    int
	SourceTopicOffset int64
}

// CreateSnapshot captures every resting order across both sides, plus the
// engine's sequence counter. Orders are listed bids first, then asks, each
// side from its best price outward and each level in FIFO order. It does not
// include the trade log: a snapshot represents book state, not history.
func (e *Engine) CreateSnapshot() *Snapshot {
	var orders []BookOrder

	for _, sb := range []*sideBook{e.bids, e.asks} {
		for _, price := range sb.ordered {
			level := sb.levels[price]
			for el := level.orders.Front(); el != nil; el = el.Next() {
				o := el.Value.(*Order)
				orders = append(orders, BookOrder{
					OrderID:  o.ID,
					Side:     o.Side,
					Price:    o.Price,
					Quantity: o.Quantity,
					Sequence: o.Sequence,
				})
			}
		}
	}

	return &Snapshot{
		Orders:         orders,
		LastSequence:   e.seq,
		LastTradeCount: len(e.trades),
	}
}

// Restore replaces the engine's entire state with the contents of snapshot.
// Orders keep their original Sequence, not re-stamped as fresh admissions,
// and are appended to the tail of their level in the order the snapshot
// lists them. Time priority within a level therefore follows the snapshot's
// order; a snapshot from CreateSnapshot lists each level in FIFO order, so
// it is preserved. The trade log is cleared: a restored engine resumes
// matching with no history, as if freshly booted from that point in time.
func (e *Engine) Restore(snapshot *Snapshot) {
	e.bids = newSideBook(Buy)
	e.asks = newSideBook(Sell)
	e.orders = newOrderIndex()
	e.trades = nil
	e.seq = snapshot.LastSequence

	for _, bo := range snapshot.Orders {
		order := &Order{
			ID:       bo.OrderID,
			Side:     bo.Side,
			Price:    bo.Price,
			Quantity: bo.Quantity,
			Sequence: bo.Sequence,
		}
		e.insert(order)
	}
}
