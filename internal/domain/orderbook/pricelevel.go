package orderbook

import "container/list"

// priceLevel is the set of resting orders at a single price on one side: a
// FIFO queue plus the cached aggregate open quantity. Orders are held in a
// container/list so that a locator (*list.Element) can erase any order in
// O(1) without disturbing the FIFO position of its neighbors — design note
// (a) in spec.md §9 (intrusive doubly-linked list with stable node handles).
//
// Invariant: totalQuantity == sum of order.Quantity over the queue, and the
// queue is never left empty — an empty level is removed from its sideBook
// in the same operation that empties it.
type priceLevel struct {
	price         Price
	orders        *list.List // of *Order, FIFO: front = oldest = next to fill
	totalQuantity Quantity
}

func newPriceLevel(price Price) *priceLevel {
	return &priceLevel{
		price:  price,
		orders: list.New(),
	}
}

// pushBack admits an order at the tail of the FIFO queue and returns the
// locator element callers use for O(1) future removal.
func (l *priceLevel) pushBack(o *Order) *list.Element {
	l.totalQuantity += o.Quantity
	return l.orders.PushBack(o)
}

// remove erases the order at elem in O(1) and returns whether the level is
// now empty.
func (l *priceLevel) remove(elem *list.Element) (empty bool) {
	o := elem.Value.(*Order)
	l.totalQuantity -= o.Quantity
	l.orders.Remove(elem)
	return l.orders.Len() == 0
}

func (l *priceLevel) isEmpty() bool {
	return l.orders.Len() == 0
}
