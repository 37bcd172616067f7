package orderbook

import "container/list"

// locator is the O(1) address of a resting order: which side and price
// level it lives at, and the list element within that level's FIFO queue.
type locator struct {
	side  Side
	price Price
	elem  *list.Element
}

// orderIndex maps OrderID -> locator. Its invariant (spec.md §3) is that
// its key set always equals the union of OrderIDs resting across both
// sideBooks — every insertion into a priceLevel is paired with an index
// entry, and every removal from a priceLevel is paired with an index
// deletion, in the same engine operation.
type orderIndex map[OrderID]locator

func newOrderIndex() orderIndex {
	return make(orderIndex)
}
