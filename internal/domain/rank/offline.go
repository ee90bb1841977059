package rank

import (
	"time"

	"github.com/okian/ladder/internal/domain/model"
	"github.com/okian/ladder/pkg/metrics"
)

// topFraction is the share of the roster selected by the batch engines.
const topFraction = 0.1

// topCount returns the number of players the batch engines select.
func topCount(n int) int {
	return int(topFraction * float64(n))
}

// HeapRank selects and sorts the top 10% of players using early-stopping
// heapsort: a max-heap over the whole roster, popped k times so the k
// largest players collect, ascending, in the trailing k positions.
//
// The roster is reordered in place; the returned Top is a copy of the
// trailing slice. Rosters of one or fewer players are returned unchanged
// with zero elapsed time.
func HeapRank(players []model.Player) Result {
	if len(players) <= 1 {
		top := make([]model.Player, len(players))
		copy(top, players)
		return Result{Top: top, Cutoffs: map[int]int{}}
	}

	k := topCount(len(players))
	begin := time.Now()

	buildHeap(players, 0, len(players), maxFirst)

	// Pop the maximum k times, shrinking the active range each time.
	for i := 0; i < k; i++ {
		end := len(players) - i
		players[0], players[end-1] = players[end-1], players[0]
		siftDown(players, 0, 0, end-1, maxFirst)
	}

	elapsed := time.Since(begin)
	metrics.RecordBatchRankDuration("heap", float64(elapsed)/float64(time.Millisecond))
	metrics.UpdateTopSetSize(k)

	top := make([]model.Player, k)
	copy(top, players[len(players)-k:])
	return Result{Top: top, Cutoffs: map[int]int{}, Elapsed: elapsed}
}

// QuickSelectRank selects and sorts the top 10% of players with a
// quickselect/quicksort hybrid: a Lomuto-partition quickselect gathers the
// k largest players, unordered, in the leading k positions; a
// Hoare-partition quicksort then orders that prefix ascending.
//
// The roster is reordered in place; the returned Top is a copy of the
// prefix.
func QuickSelectRank(players []model.Player) Result {
	k := topCount(len(players))
	begin := time.Now()

	quickSelect(players, 0, len(players)-1, k)
	quickSort(players, 0, k-1)

	elapsed := time.Since(begin)
	metrics.RecordBatchRankDuration("quickselect", float64(elapsed)/float64(time.Millisecond))
	metrics.UpdateTopSetSize(k)

	top := make([]model.Player, k)
	copy(top, players[:k])
	return Result{Top: top, Cutoffs: map[int]int{}, Elapsed: elapsed}
}

// lomutoPartition partitions ps[low:high+1] around the value at pivot,
// moving every player strictly greater than it ahead of it, then placing
// the pivot immediately after the last such player. It returns the
// pivot's final index. Callers pass pivot == high so the pivot value
// stays put during the scan.
func lomutoPartition(ps []model.Player, low, high, pivot int) int {
	i := low
	for j := low; j < high; j++ {
		if ps[j].Level > ps[pivot].Level {
			ps[i], ps[j] = ps[j], ps[i]
			i++
		}
	}
	ps[pivot], ps[i] = ps[i], ps[pivot]
	return i
}

// quickSelect rearranges ps[low:high+1] so its first k positions hold the
// k largest players, unordered among themselves. Both recursive arms are
// tail calls, so the whole selection runs as a loop in constant space.
func quickSelect(ps []model.Player, low, high, k int) {
	for low <= high && low >= 0 {
		idx := lomutoPartition(ps, low, high, high)
		if idx < k {
			low = idx + 1
		} else {
			high = idx - 1
		}
	}
}

// hoarePartition partitions ps[low:high+1] ascending around the value at
// pivot, advancing a left cursor past players below it and a right cursor
// past players above it, swapping until the cursors cross. It returns the
// split index: [low, split] and [split+1, high] are the two sides.
func hoarePartition(ps []model.Player, low, high, pivot int) int {
	value := ps[pivot].Level
	i := low - 1
	j := high + 1

	for {
		i++
		for i <= high && ps[i].Level < value {
			i++
		}
		j--
		for j >= low && ps[j].Level > value {
			j--
		}
		if i > j {
			return j
		}
		ps[i], ps[j] = ps[j], ps[i]
	}
}

// quickSort orders ps[low:high+1] ascending. It recurses only into the
// smaller side of each split and loops on the larger, keeping the stack
// at O(log n) even on already-sorted input, where the last-element pivot
// degrades the partitioning itself to quadratic.
func quickSort(ps []model.Player, low, high int) {
	for low < high && low >= 0 {
		split := hoarePartition(ps, low, high, high)
		if split-low < high-split {
			quickSort(ps, low, split)
			low = split + 1
		} else {
			quickSort(ps, split+1, high)
			high = split
		}
	}
}
