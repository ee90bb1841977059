package rank

import (
	"github.com/okian/ladder/internal/domain/model"
)

// ordering names which of two players outranks the other inside a heap.
// Two fixed orderings replace the usual max/min boolean so call sites read
// as minFirst or maxFirst rather than true/false.
type ordering int

const (
	// minFirst gives priority to the lower level (min-heap: minimum at
	// the root).
	minFirst ordering = iota

	// maxFirst gives priority to the higher level (max-heap: maximum at
	// the root).
	maxFirst
)

// outranks reports whether a has heap priority over b under the ordering.
func (o ordering) outranks(a, b model.Player) bool {
	if o == maxFirst {
		return a.Level > b.Level
	}
	return a.Level < b.Level
}

// siftDown restores heap order over the half-open range ps[start:end),
// which is assumed heap-ordered everywhere except possibly at root.
// The displaced value percolates downward, swapping with the
// higher-priority child until no child outranks it.
//
// Tie-break between children is deterministic: the right child is chosen
// only when it strictly outranks the left child.
func siftDown(ps []model.Player, root, start, end int, ord ordering) {
	pos := root
	val := ps[root]

	for {
		i := pos - start
		child := start + 2*i + 1
		if child >= end {
			break
		}
		if right := child + 1; right < end && ord.outranks(ps[right], ps[child]) {
			child = right
		}
		if !ord.outranks(ps[child], val) {
			break
		}
		ps[pos], ps[child] = ps[child], ps[pos]
		pos = child
	}
}

// buildHeap heap-orders ps[start:end) under the given ordering by sifting
// down every internal position, last to first.
func buildHeap(ps []model.Player, start, end int, ord ordering) {
	n := end - start
	for i := start + n/2; i >= start; i-- {
		siftDown(ps, i, start, end, ord)
	}
}

// replaceMin overwrites the root of the min-heap ps with p and restores
// the heap invariant. ps must be non-empty and min-heap ordered.
func replaceMin(ps []model.Player, p model.Player) {
	ps[0] = p
	siftDown(ps, 0, 0, len(ps), minFirst)
}
