package simulate_test

import (
	"errors"
	"testing"

	"github.com/okian/ladder/internal/domain/model"
	"github.com/okian/ladder/internal/simulate"
	. "github.com/smartystreets/goconvey/convey"
)

func byLevel(levels ...int) []model.Player {
	ps := make([]model.Player, len(levels))
	for i, l := range levels {
		ps[i] = model.Player{Level: l}
	}
	return ps
}

func TestVerifyAscending(t *testing.T) {
	Convey("Given top sets in various orders", t, func() {
		Convey("Then ascending and empty sets pass", func() {
			So(simulate.VerifyAscending(byLevel(1, 2, 2, 5)), ShouldBeNil)
			So(simulate.VerifyAscending(nil), ShouldBeNil)
			So(simulate.VerifyAscending(byLevel(7)), ShouldBeNil)
		})

		Convey("And a descent anywhere fails", func() {
			err := simulate.VerifyAscending(byLevel(1, 3, 2))
			So(errors.Is(err, simulate.ErrNotSorted), ShouldBeTrue)
		})
	})
}

func TestVerifyAgreement(t *testing.T) {
	Convey("Given two top sets", t, func() {
		Convey("Then identical level sequences agree", func() {
			So(simulate.VerifyAgreement(byLevel(1, 2, 3), byLevel(1, 2, 3)), ShouldBeNil)
		})

		Convey("And different lengths are a mismatch", func() {
			err := simulate.VerifyAgreement(byLevel(1, 2), byLevel(1, 2, 3))
			So(errors.Is(err, simulate.ErrMismatch), ShouldBeTrue)
		})

		Convey("And differing levels are a mismatch", func() {
			err := simulate.VerifyAgreement(byLevel(1, 2, 3), byLevel(1, 2, 4))
			So(errors.Is(err, simulate.ErrMismatch), ShouldBeTrue)
		})

		Convey("And an unsorted side fails before comparison", func() {
			err := simulate.VerifyAgreement(byLevel(3, 1), byLevel(1, 3))
			So(errors.Is(err, simulate.ErrNotSorted), ShouldBeTrue)
		})
	})
}

func TestVerifyCutoffs(t *testing.T) {
	Convey("Given streaming checkpoint maps", t, func() {
		Convey("Then interval multiples plus the total pass", func() {
			cutoffs := map[int]int{2: 10, 4: 20, 5: 25}
			So(simulate.VerifyCutoffs(cutoffs, 5, 2), ShouldBeNil)
		})

		Convey("And an exact-multiple total needs no extra key", func() {
			cutoffs := map[int]int{3: 9, 6: 18}
			So(simulate.VerifyCutoffs(cutoffs, 6, 3), ShouldBeNil)
		})

		Convey("And a zero-player run carries the single zero checkpoint", func() {
			So(simulate.VerifyCutoffs(map[int]int{0: 0}, 0, 10), ShouldBeNil)
		})

		Convey("And a missing checkpoint fails", func() {
			cutoffs := map[int]int{2: 10, 5: 25}
			err := simulate.VerifyCutoffs(cutoffs, 5, 2)
			So(errors.Is(err, simulate.ErrMismatch), ShouldBeTrue)
		})

		Convey("And a stray checkpoint fails", func() {
			cutoffs := map[int]int{2: 10, 3: 12, 4: 20, 5: 25}
			err := simulate.VerifyCutoffs(cutoffs, 5, 2)
			So(errors.Is(err, simulate.ErrMismatch), ShouldBeTrue)
		})
	})
}
