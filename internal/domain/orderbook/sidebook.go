package orderbook

import "sort"

// sideBook is an ordered mapping Price -> priceLevel for one side of the
// book. Iteration from the front always yields the best price: descending
// for bids, ascending for asks. Level lookup by price is O(1) via the map;
// insertion/removal of a level keeps a parallel, priority-ordered slice of
// active prices up to date with a binary search, so bestPrice is O(1) and a
// level insert/delete is O(log L) search plus O(L) shift — acceptable per
// spec.md §4.5 ("O(log L)... alternatives... acceptable optimizations").
type sideBook struct {
	side    Side
	levels  map[Price]*priceLevel
	ordered []Price // priority order, best price at index 0
}

func newSideBook(side Side) *sideBook {
	return &sideBook{
		side:   side,
		levels: make(map[Price]*priceLevel),
	}
}

// better reports whether price a has strictly better priority than price b
// on this side: higher for bids, lower for asks.
func (sb *sideBook) better(a, b Price) bool {
	if sb.side == Buy {
		return a > b
	}
	return a < b
}

// bestPrice returns the front price of the book, or false if empty.
func (sb *sideBook) bestPrice() (Price, bool) {
	if len(sb.ordered) == 0 {
		return 0, false
	}
	return sb.ordered[0], true
}

// level returns the existing priceLevel at price, if any.
func (sb *sideBook) level(price Price) (*priceLevel, bool) {
	l, ok := sb.levels[price]
	return l, ok
}

// levelAt returns the priceLevel for the i'th best price, used by the
// matching loop to sweep from best price outward.
func (sb *sideBook) levelAt(i int) *priceLevel {
	return sb.levels[sb.ordered[i]]
}

func (sb *sideBook) numLevels() int {
	return len(sb.ordered)
}

// getOrCreate returns the priceLevel at price, creating and inserting it
// into the priority-ordered slice if it doesn't exist yet.
func (sb *sideBook) getOrCreate(price Price) *priceLevel {
	if l, ok := sb.levels[price]; ok {
		return l
	}

	l := newPriceLevel(price)
	sb.levels[price] = l

	idx := sort.Search(len(sb.ordered), func(i int) bool {
		return sb.better(price, sb.ordered[i]) || sb.ordered[i] == price
	})
	sb.ordered = append(sb.ordered, 0)
	copy(sb.ordered[idx+1:], sb.ordered[idx:])
	sb.ordered[idx] = price

	return l
}

// removeLevel erases an (assumed empty) level from the book.
func (sb *sideBook) removeLevel(price Price) {
	delete(sb.levels, price)

	idx := sort.Search(len(sb.ordered), func(i int) bool {
		return sb.better(price, sb.ordered[i]) || sb.ordered[i] == price
	})
	if idx < len(sb.ordered) && sb.ordered[idx] == price {
		sb.ordered = append(sb.ordered[:idx], sb.ordered[idx+1:]...)
	}
}

// volumeAt returns the total open quantity at price, if the level exists.
func (sb *sideBook) volumeAt(price Price) (Quantity, bool) {
	l, ok := sb.levels[price]
	if !ok {
		return 0, false
	}
	return l.totalQuantity, true
}
