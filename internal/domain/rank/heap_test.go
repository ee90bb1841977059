package rank

import (
	"math/rand"
	"testing"

	"github.com/okian/ladder/internal/domain/model"
)

func levels(ps []model.Player) []int {
	out := make([]int, len(ps))
	for i, p := range ps {
		out[i] = p.Level
	}
	return out
}

func roster(levels ...int) []model.Player {
	ps := make([]model.Player, len(levels))
	for i, l := range levels {
		ps[i] = model.Player{Name: "p", Level: l}
	}
	return ps
}

func equalLevels(a []model.Player, want []int) bool {
	if len(a) != len(want) {
		return false
	}
	for i := range a {
		if a[i].Level != want[i] {
			return false
		}
	}
	return true
}

// checkHeap fails the test unless ps[start:end) satisfies the heap
// property under ord.
func checkHeap(t *testing.T, ps []model.Player, start, end int, ord ordering) {
	t.Helper()
	for i := start; i < end; i++ {
		rel := i - start
		for _, child := range []int{start + 2*rel + 1, start + 2*rel + 2} {
			if child >= end {
				continue
			}
			if ord.outranks(ps[child], ps[i]) {
				t.Fatalf("heap violation at %d: parent level %d, child level %d", i, ps[i].Level, ps[child].Level)
			}
		}
	}
}

func TestBuildHeapMin(t *testing.T) {
	ps := roster(23, 99, 5, 77, 42, 8, 61)
	buildHeap(ps, 0, len(ps), minFirst)
	checkHeap(t, ps, 0, len(ps), minFirst)
	if ps[0].Level != 5 {
		t.Fatalf("expected minimum 5 at root, got %d", ps[0].Level)
	}
}

func TestBuildHeapMax(t *testing.T) {
	ps := roster(23, 99, 5, 77, 42, 8, 61)
	buildHeap(ps, 0, len(ps), maxFirst)
	checkHeap(t, ps, 0, len(ps), maxFirst)
	if ps[0].Level != 99 {
		t.Fatalf("expected maximum 99 at root, got %d", ps[0].Level)
	}
}

func TestBuildHeapSingle(t *testing.T) {
	ps := roster(7)
	buildHeap(ps, 0, 1, minFirst)
	if ps[0].Level != 7 {
		t.Fatalf("single-element heap changed: %d", ps[0].Level)
	}
}

func TestBuildHeapRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 50; trial++ {
		n := 1 + rng.Intn(64)
		ps := make([]model.Player, n)
		for i := range ps {
			ps[i] = model.Player{Level: rng.Intn(1000)}
		}
		buildHeap(ps, 0, n, minFirst)
		checkHeap(t, ps, 0, n, minFirst)
	}
}

func TestSiftDownTieBreakPrefersLeftChild(t *testing.T) {
	// Equal children: the right child is chosen only when it strictly
	// outranks the left one, so ties go left.
	ps := roster(5, 2, 2)
	siftDown(ps, 0, 0, len(ps), minFirst)
	if !equalLevels(ps, []int{2, 5, 2}) {
		t.Fatalf("min-mode tie-break went right: %v", levels(ps))
	}

	ps = roster(1, 7, 7)
	siftDown(ps, 0, 0, len(ps), maxFirst)
	if !equalLevels(ps, []int{7, 1, 7}) {
		t.Fatalf("max-mode tie-break went right: %v", levels(ps))
	}
}

func TestSiftDownStrictlySmallerRightChild(t *testing.T) {
	ps := roster(5, 4, 3)
	siftDown(ps, 0, 0, len(ps), minFirst)
	if !equalLevels(ps, []int{3, 4, 5}) {
		t.Fatalf("expected right child swap, got %v", levels(ps))
	}
}

func TestSiftDownSubrange(t *testing.T) {
	// Only [2, 5) participates; the prefix must stay untouched.
	ps := roster(100, 200, 9, 1, 4)
	siftDown(ps, 2, 2, 5, minFirst)
	checkHeap(t, ps, 2, 5, minFirst)
	if ps[0].Level != 100 || ps[1].Level != 200 {
		t.Fatalf("prefix mutated: %v", levels(ps))
	}
	if ps[2].Level != 1 {
		t.Fatalf("expected subrange minimum 1 at subrange root, got %d", ps[2].Level)
	}
}

func TestReplaceMin(t *testing.T) {
	ps := roster(23, 99, 42)
	buildHeap(ps, 0, len(ps), minFirst)

	replaceMin(ps, model.Player{Level: 77})
	checkHeap(t, ps, 0, len(ps), minFirst)
	if ps[0].Level != 42 {
		t.Fatalf("expected new minimum 42, got %d", ps[0].Level)
	}

	// Replacing with a new global minimum keeps it at the root.
	replaceMin(ps, model.Player{Level: 1})
	checkHeap(t, ps, 0, len(ps), minFirst)
	if ps[0].Level != 1 {
		t.Fatalf("expected new minimum 1, got %d", ps[0].Level)
	}
}

func TestReplaceMinSingleton(t *testing.T) {
	ps := roster(3)
	replaceMin(ps, model.Player{Level: 9})
	if ps[0].Level != 9 {
		t.Fatalf("expected 9, got %d", ps[0].Level)
	}
}
