// Package simulate generates player rosters and cross-checks ranking
// results, for exercising the engines end to end.
package simulate

import (
	"context"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"

	"github.com/okian/ladder/internal/domain/model"
	"github.com/okian/ladder/pkg/logger"
	"github.com/okian/ladder/pkg/metrics"
)

// Default generator configuration constants.
const (
	defaultWorkers  = 4
	defaultMinLevel = 1
	defaultMaxLevel = 10_000
)

// Level band constants. Generated levels cluster into tiers so the top of
// the roster is contested the way a real ladder is.
const (
	bandCount       = 8
	caseCasual      = 0
	caseRegular     = 1
	caseGrinder     = 2
	caseVeteran     = 3
	caseHighRoller  = 4
	caseElite       = 5
	caseLegend      = 6
	caseUnbounded   = 7
	casualCeiling   = 0.30 // share of the level span
	regularCeiling  = 0.55
	grinderCeiling  = 0.70
	veteranCeiling  = 0.80
	highRollCeiling = 0.90
	eliteCeiling    = 0.97
)

// Generator produces rosters of unique players with banded level
// distribution.
type Generator struct {
	seed     uint64
	workers  int
	minLevel int
	maxLevel int
	logger   logger.Logger
}

// Option applies a configuration option to the Generator.
type Option func(*Generator)

// WithSeed sets the generation seed for reproducible rosters.
func WithSeed(seed uint64) Option {
	return func(g *Generator) {
		if seed != 0 {
			g.seed = seed
		}
	}
}

// WithWorkers sets the number of concurrent generation goroutines.
func WithWorkers(count int) Option {
	return func(g *Generator) {
		if count > 0 {
			g.workers = count
		}
	}
}

// WithLevelRange bounds generated levels to [minLevel, maxLevel].
func WithLevelRange(minLevel, maxLevel int) Option {
	return func(g *Generator) {
		if maxLevel >= minLevel {
			g.minLevel = minLevel
			g.maxLevel = maxLevel
		}
	}
}

// WithLogger sets a custom logger for the generator.
func WithLogger(l logger.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// NewGenerator creates a generator with configuration options.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		seed:     uint64(time.Now().UnixNano()), //nolint:gosec // simulation seed, not security-sensitive
		workers:  defaultWorkers,
		minLevel: defaultMinLevel,
		maxLevel: defaultMaxLevel,
	}

	// Apply all options
	for _, opt := range opts {
		opt(g)
	}

	if g.logger == nil {
		g.logger = logger.Get().Named("simulate")
	}

	return g
}

// Roster generates count unique players. Names and levels are derived
// from the seed; IDs are fresh UUIDs.
func (g *Generator) Roster(ctx context.Context, count int) ([]model.Player, error) {
	g.logger.Info(ctx, "generating roster",
		logger.Int("count", count),
		logger.Int("workers", g.workers),
	)

	start := time.Now()
	players := make([]model.Player, count)

	workers := g.workers
	if workers > count {
		workers = count
	}
	if workers == 0 {
		return players, nil
	}

	type genResult struct {
		worker int
		err    error
	}
	results := make(chan genResult, workers)

	perWorker := count / workers
	for w := 0; w < workers; w++ {
		lo := w * perWorker
		hi := lo + perWorker
		if w == workers-1 {
			hi = count // last worker takes the remainder
		}

		go func(worker, lo, hi int) {
			faker := gofakeit.New(g.seed + uint64(worker))
			for i := lo; i < hi; i++ {
				select {
				case <-ctx.Done():
					results <- genResult{worker: worker, err: ctx.Err()}
					return
				default:
					players[i] = g.generatePlayer(faker)
				}
			}
			results <- genResult{worker: worker}
		}(w, lo, hi)
	}

	for i := 0; i < workers; i++ {
		r := <-results
		if r.err != nil {
			return nil, fmt.Errorf("roster generation worker %d: %w", r.worker, r.err)
		}
	}

	elapsed := time.Since(start)
	metrics.RecordPlayersGenerated(count)
	metrics.RecordGenerationDuration(float64(elapsed) / float64(time.Millisecond))
	g.logger.Info(ctx, "roster generated",
		logger.Int("count", count),
		logger.Duration("elapsed", elapsed),
	)

	return players, nil
}

// generatePlayer creates a single player from the worker-local faker.
func (g *Generator) generatePlayer(faker *gofakeit.Faker) model.Player {
	return model.Player{
		ID:    uuid.NewString(),
		Name:  faker.Gamertag(),
		Level: g.bandedLevel(faker),
	}
}

// bandedLevel draws a level from one of the tiers over [minLevel, maxLevel].
func (g *Generator) bandedLevel(faker *gofakeit.Faker) int {
	span := g.maxLevel - g.minLevel

	lo, hi := 0.0, 1.0
	switch faker.Number(0, bandCount-1) {
	case caseCasual:
		lo, hi = 0, casualCeiling
	case caseRegular:
		lo, hi = casualCeiling, regularCeiling
	case caseGrinder:
		lo, hi = regularCeiling, grinderCeiling
	case caseVeteran:
		lo, hi = grinderCeiling, veteranCeiling
	case caseHighRoller:
		lo, hi = veteranCeiling, highRollCeiling
	case caseElite:
		lo, hi = highRollCeiling, eliteCeiling
	case caseLegend:
		lo, hi = eliteCeiling, 1.0
	case caseUnbounded:
		// full range
	}

	bandLo := g.minLevel + int(lo*float64(span))
	bandHi := g.minLevel + int(hi*float64(span))
	return faker.Number(bandLo, bandHi)
}

// Feed sends the roster, in order, into the channel and closes it.
// Intended to run as the producer goroutine behind a stream.ChannelSource.
func Feed(ctx context.Context, roster []model.Player, ch chan<- model.Player) {
	defer close(ch)
	for _, p := range roster {
		select {
		case <-ctx.Done():
			return
		case ch <- p:
		}
	}
}
