// Package service orchestrates a full ranking run: roster generation,
// the streaming engine fed over a bounded channel, both batch engines on
// copies, and cross-strategy verification.
package service

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/okian/ladder/internal/domain/model"
	"github.com/okian/ladder/internal/domain/rank"
	"github.com/okian/ladder/internal/domain/stream"
	"github.com/okian/ladder/internal/simulate"
	"github.com/okian/ladder/pkg/logger"
	"github.com/okian/ladder/pkg/metrics"
)

// Default service configuration constants.
const (
	defaultPlayerCount       = 100_000
	defaultReportingInterval = 1_000
	defaultStreamBuffer      = 1_024
)

// Summary reports the outcome of one ranking run.
type Summary struct {
	PlayerCount int
	Online      rank.Result
	HeapBatch   rank.Result
	QuickBatch  rank.Result
	Elapsed     time.Duration
}

// Service wires the generator, the streaming engine, and the batch
// engines into one runnable unit.
type Service struct {
	mu sync.Mutex

	// Configuration
	playerCount       int
	reportingInterval int
	seed              uint64
	minLevel          int
	maxLevel          int
	streamBuffer      int
	generatorWorkers  int

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithPlayerCount sets the number of players to generate and rank.
func WithPlayerCount(count int) Option {
	return func(s *Service) {
		if count >= 0 {
			s.playerCount = count
		}
	}
}

// WithReportingInterval sets the streaming engine's reporting interval.
func WithReportingInterval(interval int) Option {
	return func(s *Service) {
		if interval > 0 {
			s.reportingInterval = interval
		}
	}
}

// WithSeed sets the roster generation seed.
func WithSeed(seed uint64) Option {
	return func(s *Service) {
		s.seed = seed
	}
}

// WithLevelRange bounds generated levels.
func WithLevelRange(minLevel, maxLevel int) Option {
	return func(s *Service) {
		if maxLevel >= minLevel {
			s.minLevel = minLevel
			s.maxLevel = maxLevel
		}
	}
}

// WithStreamBuffer bounds the channel feeding the streaming engine.
func WithStreamBuffer(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.streamBuffer = size
		}
	}
}

// WithGeneratorWorkers sets the number of roster generation goroutines.
func WithGeneratorWorkers(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.generatorWorkers = count
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		playerCount:       defaultPlayerCount,
		reportingInterval: defaultReportingInterval,
		minLevel:          1,
		maxLevel:          10_000,
		streamBuffer:      defaultStreamBuffer,
		generatorWorkers:  runtime.NumCPU(),
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Run executes one complete ranking pass and returns its summary.
// Runs are serialized; the engines themselves are single-threaded.
func (s *Service) Run(ctx context.Context) (Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.logger == nil {
		s.logger = logger.Get().Named("service")
	}

	start := time.Now()
	s.logger.Info(ctx, "starting ranking run",
		logger.Int("players", s.playerCount),
		logger.Int("reportingInterval", s.reportingInterval),
	)

	gen := simulate.NewGenerator(
		simulate.WithSeed(s.seed),
		simulate.WithWorkers(s.generatorWorkers),
		simulate.WithLevelRange(s.minLevel, s.maxLevel),
		simulate.WithLogger(s.logger),
	)
	roster, err := gen.Roster(ctx, s.playerCount)
	if err != nil {
		return Summary{}, fmt.Errorf("generating roster: %w", err)
	}
	metrics.UpdateRosterSize(len(roster))

	// Streaming engine, fed by a producer goroutine so the roster never
	// has to sit behind the Source as a slice.
	src, feed := stream.NewChannelSource(len(roster), stream.WithBuffer(s.streamBuffer))
	go simulate.Feed(ctx, roster, feed)

	online, err := rank.RankIncoming(src, s.reportingInterval)
	if err != nil {
		return Summary{}, fmt.Errorf("streaming rank: %w", err)
	}

	// Batch engines each get their own copy; both mutate in place.
	heapRoster := make([]model.Player, len(roster))
	copy(heapRoster, roster)
	heapBatch := rank.HeapRank(heapRoster)

	quickRoster := make([]model.Player, len(roster))
	copy(quickRoster, roster)
	quickBatch := rank.QuickSelectRank(quickRoster)

	if err := s.verify(online, heapBatch, quickBatch, len(roster)); err != nil {
		return Summary{}, err
	}

	elapsed := time.Since(start)
	s.logger.Info(ctx, "ranking run complete",
		logger.Int("onlineTop", len(online.Top)),
		logger.Int("batchTop", len(heapBatch.Top)),
		logger.Duration("onlineElapsed", online.Elapsed),
		logger.Duration("heapElapsed", heapBatch.Elapsed),
		logger.Duration("quickElapsed", quickBatch.Elapsed),
		logger.Duration("elapsed", elapsed),
	)

	return Summary{
		PlayerCount: len(roster),
		Online:      online,
		HeapBatch:   heapBatch,
		QuickBatch:  quickBatch,
		Elapsed:     elapsed,
	}, nil
}

// verify cross-checks the three results against each other and the
// streaming checkpoint contract.
func (s *Service) verify(online, heapBatch, quickBatch rank.Result, total int) error {
	if err := simulate.VerifyAscending(online.Top); err != nil {
		return fmt.Errorf("streaming result: %w", err)
	}
	if err := simulate.VerifyAgreement(heapBatch.Top, quickBatch.Top); err != nil {
		return fmt.Errorf("batch results: %w", err)
	}
	if err := simulate.VerifyCutoffs(online.Cutoffs, total, s.reportingInterval); err != nil {
		return fmt.Errorf("streaming checkpoints: %w", err)
	}
	return nil
}
