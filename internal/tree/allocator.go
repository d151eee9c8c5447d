package tree

// Placement is the outcome of planning an insertion into a sibling group.
// Order is the key the inserted node takes. ShiftFrom is the index of the
// first existing sibling whose key must be incremented by one before the
// insert lands; -1 means no rebalance is needed. Shift writes must be
// applied from the end of the group backward so no two rows ever hold the
// same key mid-sequence.
type Placement struct {
	Order     int
	ShiftFrom int
}

// PlanInsert chooses an order key placing a node at insertIndex within a
// sibling group whose existing keys are orders (ascending, excluding the
// node being placed). An out-of-range index clamps to prepend or append.
//
// Keys only grow outward (first-1 / last+1) or shift by one when a midpoint
// gap is exhausted; a group hammered with repeated same-slot insertions
// accumulates ever larger keys and is never renumbered wholesale.
func PlanInsert(orders []int, insertIndex int) Placement {
	if len(orders) == 0 {
		return Placement{Order: 1, ShiftFrom: -1}
	}
	if insertIndex <= 0 {
		return Placement{Order: orders[0] - 1, ShiftFrom: -1}
	}
	if insertIndex >= len(orders) {
		return Placement{Order: orders[len(orders)-1] + 1, ShiftFrom: -1}
	}

	prev := orders[insertIndex-1]
	next := orders[insertIndex]
	mid := floorMid(prev, next)
	if mid == prev {
		// No integer gap between prev and next. Shift the tail up one and
		// hand the new node next's original key.
		return Placement{Order: next, ShiftFrom: insertIndex}
	}
	return Placement{Order: mid, ShiftFrom: -1}
}

// floorMid is (a+b)/2 rounded toward negative infinity, so the gap test
// stays correct for negative keys.
func floorMid(a, b int) int {
	sum := a + b
	m := sum / 2
	if sum%2 != 0 && sum < 0 {
		m--
	}
	return m
}
