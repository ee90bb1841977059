package rank

import (
	"fmt"
	"sort"
	"time"

	"github.com/okian/ladder/internal/domain/model"
	"github.com/okian/ladder/internal/domain/stream"
	"github.com/okian/ladder/pkg/metrics"
)

// RankIncoming exhausts a source of players while keeping at most
// reportingInterval of them in memory, and returns the top
// reportingInterval players seen, sorted ascending by level.
//
// Every reportingInterval reads it records a cutoff: the minimum level
// required to be in the top set at that point in the stream. A final
// cutoff is recorded unconditionally at the true read count, even when
// that count is already on an interval boundary (the identical value is
// rewritten) and even when the stream was empty (a zero cutoff under
// key 0).
//
// The source is read exactly once; players below the current cutoff are
// discarded without entering the buffer. Elapsed excludes time spent in
// the source itself.
func RankIncoming(src stream.Source, reportingInterval int) (Result, error) {
	if reportingInterval <= 0 {
		metrics.RecordRankError("online", "invalid_interval")
		return Result{}, ErrInvalidInterval
	}

	begin := time.Now()
	var fetched time.Duration

	read := 0
	top := make([]model.Player, 0, reportingInterval)
	cutoffs := make(map[int]int)

	for src.Remaining() > 0 {
		fetchStart := time.Now()
		p, err := src.Next()
		fetched += time.Since(fetchStart)
		if err != nil {
			metrics.RecordRankError("online", "source_failure")
			return Result{}, fmt.Errorf("reading player source: %w", err)
		}
		read++
		metrics.RecordPlayerStreamed()

		switch {
		case read < reportingInterval:
			// Still filling the buffer; heap order not yet needed.
			top = append(top, p)
		case read == reportingInterval:
			top = append(top, p)
			buildHeap(top, 0, len(top), minFirst)
		default:
			// Buffer is a min-heap; the root is the current cutoff.
			if p.Level >= top[0].Level {
				replaceMin(top, p)
				metrics.RecordHeapReplacement()
			} else {
				metrics.RecordPlayerDiscarded()
			}
		}

		if read%reportingInterval == 0 && len(top) > 0 {
			cutoffs[read] = top[0].Level
			metrics.RecordCutoff()
		}
	}

	// Final checkpoint at the true read count, recorded even off-interval.
	// An empty stream records a zero cutoff under key 0, and a stream
	// shorter than the interval records the unheapified buffer head.
	if len(top) > 0 {
		cutoffs[read] = top[0].Level
	} else {
		cutoffs[read] = 0
	}
	metrics.RecordCutoff()

	sort.Slice(top, func(i, j int) bool { return top[i].Level < top[j].Level })

	elapsed := time.Since(begin) - fetched
	metrics.RecordOnlineRankDuration(float64(elapsed) / float64(time.Millisecond))
	metrics.UpdateTopSetSize(len(top))

	return Result{Top: top, Cutoffs: cutoffs, Elapsed: elapsed}, nil
}
