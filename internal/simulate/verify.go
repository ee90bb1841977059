package simulate

import (
	"fmt"

	"github.com/okian/ladder/internal/domain/model"
)

// VerifyAscending checks that the top set is sorted ascending by level.
func VerifyAscending(top []model.Player) error {
	for i := 1; i < len(top); i++ {
		if top[i].Level < top[i-1].Level {
			return fmt.Errorf("%w: level %d at index %d precedes level %d",
				ErrNotSorted, top[i-1].Level, i-1, top[i].Level)
		}
	}
	return nil
}

// VerifyAgreement checks that two top sets, each sorted ascending, select
// the same levels. Ties at the selection boundary may be broken toward
// different players, so only levels are compared.
func VerifyAgreement(a, b []model.Player) error {
	if err := VerifyAscending(a); err != nil {
		return err
	}
	if err := VerifyAscending(b); err != nil {
		return err
	}
	if len(a) != len(b) {
		return fmt.Errorf("%w: top set sizes %d and %d", ErrMismatch, len(a), len(b))
	}
	for i := range a {
		if a[i].Level != b[i].Level {
			return fmt.Errorf("%w: level %d vs %d at index %d",
				ErrMismatch, a[i].Level, b[i].Level, i)
		}
	}
	return nil
}

// VerifyCutoffs checks the checkpoint keys of a streaming run: every exact
// multiple of the interval up to total, plus total itself.
func VerifyCutoffs(cutoffs map[int]int, total, interval int) error {
	want := make(map[int]struct{})
	for n := interval; n <= total; n += interval {
		want[n] = struct{}{}
	}
	want[total] = struct{}{}

	for key := range want {
		if _, ok := cutoffs[key]; !ok {
			return fmt.Errorf("%w: missing checkpoint at %d", ErrMismatch, key)
		}
	}
	for key := range cutoffs {
		if _, ok := want[key]; !ok {
			return fmt.Errorf("%w: unexpected checkpoint at %d", ErrMismatch, key)
		}
	}
	return nil
}
