package orderbook

// Engine is the matching engine facade: it owns both sideBooks, the
// orderIndex, and the chronological trade log, and is the sole entry point
// that mutates any of them. It is not safe for concurrent use — see
// spec.md §5; a caller serializes access (e.g. a single-writer queue) if it
// wants to share one Engine across goroutines.
type Engine struct {
	bids   *sideBook
	asks   *sideBook
	orders orderIndex
	trades []Trade
	seq    Sequence
}

// NewEngine returns an empty book.
func NewEngine() *Engine {
	return &Engine{
		bids:   newSideBook(Buy),
		asks:   newSideBook(Sell),
		orders: newOrderIndex(),
	}
}

func (e *Engine) book(side Side) *sideBook {
	if side == Buy {
		return e.bids
	}
	return e.asks
}

func (e *Engine) nextSequence() Sequence {
	e.seq++
	return e.seq
}

// Submit dispatches by intent type and returns what happened. Limit and
// Market intents, and the order re-admitted by a Modify, are assigned the
// next sequence number; a Cancel consumes none. Dispatch is a direct switch on OrderType rather
// than an injected handler, matching the original C++ addOrder's switch
// (see SPEC_FULL.md §12) and spec.md §9's preference for tagged dispatch
// over indirect calls on the hot path.
func (e *Engine) Submit(in Intent) SubmitResult {
	switch in.Type {
	case Limit:
		return e.submitLimit(in)
	case Market:
		return e.submitMarket(in)
	case Cancel:
		return SubmitResult{Accepted: in.ID, Ok: e.Cancel(in.ID)}
	case Modify:
		return SubmitResult{Accepted: in.ID, Ok: e.Modify(in.ID, in.Price, in.Quantity)}
	default:
		return SubmitResult{Ok: false}
	}
}

func (e *Engine) submitLimit(in Intent) SubmitResult {
	order := &Order{
		ID:       in.ID,
		Side:     in.Side,
		Price:    in.Price,
		Quantity: in.Quantity,
		Sequence: e.nextSequence(),
	}

	trades := e.match(order, e.book(order.Side.Opposite()), false)

	if order.Quantity > 0 {
		e.insert(order)
	}

	return SubmitResult{Accepted: order.ID, Trades: trades, Ok: true}
}

func (e *Engine) submitMarket(in Intent) SubmitResult {
	order := &Order{
		ID:       in.ID,
		Side:     in.Side,
		Quantity: in.Quantity,
		Sequence: e.nextSequence(),
	}

	trades := e.match(order, e.book(order.Side.Opposite()), true)
	// Any unfilled residual is discarded: not inserted, not requeued.

	return SubmitResult{Accepted: order.ID, Trades: trades, Ok: true}
}

// insert admits the residual of a limit order at the tail of its price
// level's FIFO queue and records its locator in the index.
func (e *Engine) insert(order *Order) {
	book := e.book(order.Side)
	level := book.getOrCreate(order.Price)
	elem := level.pushBack(order)
	e.orders[order.ID] = locator{side: order.Side, price: order.Price, elem: elem}
}

// canCross reports whether an aggressor of the given side at aggressorPrice
// may trade against a resting level at levelPrice: BUY crosses when its
// price is at or above the ask, SELL when its price is at or below the bid.
func canCross(side Side, aggressorPrice, levelPrice Price) bool {
	if side == Buy {
		return aggressorPrice >= levelPrice
	}
	return aggressorPrice <= levelPrice
}

// match sweeps the opposite sideBook from the best price outward, filling
// aggressor against resting orders in strict price-time priority until
// either the aggressor is exhausted or (for non-market orders) no further
// level can cross. Every fill is recorded as a Trade at the resting order's
// limit price; a fully filled resting order is erased from both its level
// and the orderIndex in O(1).
func (e *Engine) match(aggressor *Order, opposite *sideBook, alwaysCross bool) []Trade {
	var trades []Trade

	for aggressor.Quantity > 0 && opposite.numLevels() > 0 {
		level := opposite.levelAt(0)

		if !alwaysCross && !canCross(aggressor.Side, aggressor.Price, level.price) {
			break
		}

		for aggressor.Quantity > 0 {
			front := level.orders.Front()
			if front == nil {
				break
			}
			resting := front.Value.(*Order)

			fill := aggressor.Quantity
			if resting.Quantity < fill {
				fill = resting.Quantity
			}

			// Trade.Sequence is the engine counter as it stands right now —
			// the aggressor's own assigned sequence — not bumped per fill.
			// Multiple trades from one aggressor sweep therefore share a
			// sequence (see SPEC_FULL.md §12, grounded in original_source/).
			seq := e.seq
			var buyID, sellID OrderID
			if aggressor.Side == Buy {
				buyID, sellID = aggressor.ID, resting.ID
			} else {
				buyID, sellID = resting.ID, aggressor.ID
			}
			trade := Trade{BuyOrderID: buyID, SellOrderID: sellID, Price: level.price, Quantity: fill, Sequence: seq}
			trades = append(trades, trade)
			e.trades = append(e.trades, trade)

			aggressor.Quantity -= fill
			resting.Quantity -= fill
			level.totalQuantity -= fill

			if resting.Quantity == 0 {
				delete(e.orders, resting.ID)
				level.orders.Remove(front)
			}
		}

		if level.isEmpty() {
			opposite.removeLevel(level.price)
		}
	}

	return trades
}

// Cancel removes a resting order by id. Unknown ids are a non-fatal no-op
// returning false; state is left unchanged in that case.
func (e *Engine) Cancel(id OrderID) bool {
	loc, ok := e.orders[id]
	if !ok {
		return false
	}

	book := e.book(loc.side)
	level, _ := book.level(loc.price)
	if level.remove(loc.elem) {
		book.removeLevel(loc.price)
	}
	delete(e.orders, id)

	return true
}

// Modify replaces a resting order with a fresh one at the given price and
// quantity. It always loses time priority: the prior order is cancelled
// and a new LIMIT intent is submitted with a fresh sequence, which may
// immediately cross the opposite side. Unknown ids return false and leave
// state unchanged. A new quantity of 0 is normalized to a plain cancel
// (spec.md §9 open question) rather than leaving an undefined zero-quantity
// resting order in the book.
func (e *Engine) Modify(id OrderID, newPrice Price, newQuantity Quantity) bool {
	loc, ok := e.orders[id]
	if !ok {
		return false
	}

	side := loc.side
	e.Cancel(id)

	if newQuantity == 0 {
		return true
	}

	e.submitLimit(Intent{ID: id, Side: side, Type: Limit, Price: newPrice, Quantity: newQuantity})
	return true
}

// BestBid returns the best (highest) resting buy price, if any.
func (e *Engine) BestBid() (Price, bool) {
	return e.bids.bestPrice()
}

// BestAsk returns the best (lowest) resting sell price, if any.
func (e *Engine) BestAsk() (Price, bool) {
	return e.asks.bestPrice()
}

// VolumeAtPrice returns the aggregate open quantity resting at price on
// side, if that price level currently exists.
func (e *Engine) VolumeAtPrice(side Side, price Price) (Quantity, bool) {
	return e.book(side).volumeAt(price)
}

// OrderCount returns the number of resting orders across both sides.
func (e *Engine) OrderCount() int {
	return len(e.orders)
}

// Trades returns the trade log in chronological order. The returned slice
// is a copy; mutating it does not affect the engine's internal log.
func (e *Engine) Trades() []Trade {
	out := make([]Trade, len(e.trades))
	copy(out, e.trades)
	return out
}
