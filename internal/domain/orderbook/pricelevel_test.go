package orderbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPriceLevel(t *testing.T) {
	l := newPriceLevel(10000)

	assert.Equal(t, Price(10000), l.price)
	assert.Equal(t, Quantity(0), l.totalQuantity)
	assert.True(t, l.isEmpty())
}

func TestPriceLevel_PushBackAndRemove(t *testing.T) {
	l := newPriceLevel(10000)

	e1 := l.pushBack(&Order{ID: "1", Quantity: 10})
	l.pushBack(&Order{ID: "2", Quantity: 5})

	assert.Equal(t, Quantity(15), l.totalQuantity)
	assert.False(t, l.isEmpty())

	empty := l.remove(e1)
	assert.False(t, empty)
	assert.Equal(t, Quantity(5), l.totalQuantity)

	front := l.orders.Front().Value.(*Order)
	assert.Equal(t, OrderID("2"), front.ID)
}

func TestPriceLevel_RemoveLastMakesEmpty(t *testing.T) {
	l := newPriceLevel(10000)
	e1 := l.pushBack(&Order{ID: "1", Quantity: 10})

	empty := l.remove(e1)
	assert.True(t, empty)
	assert.True(t, l.isEmpty())
}

func TestPriceLevel_FIFOOrderPreservedAcrossRemovals(t *testing.T) {
	l := newPriceLevel(10000)
	e1 := l.pushBack(&Order{ID: "1", Quantity: 1})
	l.pushBack(&Order{ID: "2", Quantity: 1})
	l.pushBack(&Order{ID: "3", Quantity: 1})

	l.remove(e1) // remove the oldest order

	var ids []OrderID
	for el := l.orders.Front(); el != nil; el = el.Next() {
		ids = append(ids, el.Value.(*Order).ID)
	}
	assert.Equal(t, []OrderID{"2", "3"}, ids)
}

func TestSideBook_BidOrderingIsDescending(t *testing.T) {
	sb := newSideBook(Buy)

	sb.getOrCreate(9900)
	sb.getOrCreate(10100)
	sb.getOrCreate(10000)

	best, ok := sb.bestPrice()
	require.True(t, ok)
	assert.Equal(t, Price(10100), best)
	assert.Equal(t, []Price{10100, 10000, 9900}, sb.ordered)
}

func TestSideBook_AskOrderingIsAscending(t *testing.T) {
	sb := newSideBook(Sell)

	sb.getOrCreate(10100)
	sb.getOrCreate(9900)
	sb.getOrCreate(10000)

	best, ok := sb.bestPrice()
	require.True(t, ok)
	assert.Equal(t, Price(9900), best)
	assert.Equal(t, []Price{9900, 10000, 10100}, sb.ordered)
}

func TestSideBook_RemoveLevel(t *testing.T) {
	sb := newSideBook(Buy)
	sb.getOrCreate(10000)
	sb.getOrCreate(9900)

	sb.removeLevel(10000)

	_, ok := sb.level(10000)
	assert.False(t, ok)
	assert.Equal(t, []Price{9900}, sb.ordered)

	best, ok := sb.bestPrice()
	require.True(t, ok)
	assert.Equal(t, Price(9900), best)
}

func TestSideBook_VolumeAtPrice_MissingLevel(t *testing.T) {
	sb := newSideBook(Sell)
	_, ok := sb.volumeAt(10000)
	assert.False(t, ok)
}

func TestSideBook_GetOrCreateIsIdempotent(t *testing.T) {
	sb := newSideBook(Buy)
	l1 := sb.getOrCreate(10000)
	l2 := sb.getOrCreate(10000)
	assert.Same(t, l1, l2)
	assert.Equal(t, 1, sb.numLevels())
}
