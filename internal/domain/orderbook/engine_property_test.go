package orderbook

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertInvariants checks P1-P3 against the engine's exposed surface plus
// its unexported internals (this file lives in package orderbook precisely
// so it can reach into bids/asks/orders to verify the structures the
// public API can't fully expose).
func assertInvariants(t *testing.T, e *Engine) {
	t.Helper()

	// P1: non-crossing.
	bid, bidOK := e.BestBid()
	ask, askOK := e.BestAsk()
	if bidOK && askOK {
		assert.Less(t, bid, ask, "best bid must be strictly below best ask")
	}

	// P2: per-level quantity cache and non-empty queues.
	indexed := map[OrderID]bool{}
	for _, sb := range []*sideBook{e.bids, e.asks} {
		for _, price := range sb.ordered {
			level := sb.levels[price]
			require.False(t, level.isEmpty(), "no empty price levels may exist")

			var sum Quantity
			for el := level.orders.Front(); el != nil; el = el.Next() {
				o := el.Value.(*Order)
				sum += o.Quantity
				indexed[o.ID] = true
			}
			assert.Equal(t, sum, level.totalQuantity, "level %d quantity cache mismatch", price)
		}
	}

	// P3: index membership == union of resting order ids.
	assert.Equal(t, len(indexed), len(e.orders), "order index size mismatch")
	for id := range e.orders {
		assert.True(t, indexed[id], "order %s in index but not resting in any level", id)
	}
}

func TestProperty_RandomSequenceMaintainsInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	e := NewEngine()

	var liveIDs []OrderID
	nextID := 0

	for i := 0; i < 2000; i++ {
		op := rng.Intn(4)
		switch {
		case op < 2 || len(liveIDs) == 0: // admit
			id := OrderID(strconv.Itoa(nextID))
			nextID++
			side := Buy
			if rng.Intn(2) == 1 {
				side = Sell
			}
			price := Price(9900 + rng.Intn(200))
			qty := Quantity(1 + rng.Intn(50))
			e.Submit(limitIntent(id, side, price, qty))
			liveIDs = append(liveIDs, id)
		case op == 2: // cancel a random (possibly already-gone) id
			id := liveIDs[rng.Intn(len(liveIDs))]
			e.Cancel(id)
		default: // modify a random id
			id := liveIDs[rng.Intn(len(liveIDs))]
			price := Price(9900 + rng.Intn(200))
			qty := Quantity(1 + rng.Intn(50))
			e.Modify(id, price, qty)
		}
		assertInvariants(t, e)
	}

	// Every recorded trade moved a strictly positive quantity, and trade
	// sequences never move backwards (trade log monotonicity).
	var lastSeq Sequence
	for _, tr := range e.Trades() {
		assert.Greater(t, tr.Quantity, Quantity(0))
		assert.GreaterOrEqual(t, tr.Sequence, lastSeq)
		lastSeq = tr.Sequence
	}
}

func TestProperty_SequenceStrictlyIncreasesAcrossAdmissions(t *testing.T) {
	e := NewEngine()
	var last Sequence
	for i := 0; i < 50; i++ {
		e.Submit(limitIntent(OrderID(strconv.Itoa(i)), Buy, 9000, 10))
		loc := e.orders[OrderID(strconv.Itoa(i))]
		resting := loc.elem.Value.(*Order)
		assert.Greater(t, resting.Sequence, last)
		last = resting.Sequence
	}
}

func TestProperty_CancelRoundTripRestoresState(t *testing.T) {
	e := NewEngine()
	e.Submit(limitIntent("base-1", Buy, 9000, 10))
	e.Submit(limitIntent("base-2", Sell, 9500, 10))

	bidBefore, _ := e.BestBid()
	askBefore, _ := e.BestAsk()
	countBefore := e.OrderCount()
	volBefore, _ := e.VolumeAtPrice(Buy, 9000)

	e.Submit(limitIntent("transient", Buy, 8000, 25)) // does not cross
	ok := e.Cancel("transient")
	require.True(t, ok)

	bidAfter, _ := e.BestBid()
	askAfter, _ := e.BestAsk()
	assert.Equal(t, bidBefore, bidAfter)
	assert.Equal(t, askBefore, askAfter)
	assert.Equal(t, countBefore, e.OrderCount())
	volAfter, _ := e.VolumeAtPrice(Buy, 9000)
	assert.Equal(t, volBefore, volAfter)
}

func TestProperty_CancelUnknownIsIdempotentNoOp(t *testing.T) {
	e := NewEngine()
	e.Submit(limitIntent("1", Buy, 9000, 10))

	bidBefore, _ := e.BestBid()
	countBefore := e.OrderCount()

	ok := e.Cancel("never-existed")
	assert.False(t, ok)

	bidAfter, _ := e.BestBid()
	assert.Equal(t, bidBefore, bidAfter)
	assert.Equal(t, countBefore, e.OrderCount())
}
