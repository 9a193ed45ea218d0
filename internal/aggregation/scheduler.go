package aggregation

import (
	"context"
	"log/slog"
	"time"
)

// Scheduler runs aggregation passes on a fixed interval.
// Passes run on the scheduler's goroutine one after another; ticks that arrive
// while a pass is running are dropped by the ticker.
type Scheduler struct {
	engine     *Engine
	interval   time.Duration
	clock      func() time.Time
	runOnStart bool
}

// SchedulerOption configures a Scheduler.
type SchedulerOption func(*Scheduler)

// WithClock replaces the wall clock used to snapshot each pass's now.
func WithClock(clock func() time.Time) SchedulerOption {
	return func(s *Scheduler) {
		s.clock = clock
	}
}

// WithRunOnStart runs a pass immediately instead of waiting for the first tick.
func WithRunOnStart(enabled bool) SchedulerOption {
	return func(s *Scheduler) {
		s.runOnStart = enabled
	}
}

// NewScheduler creates a scheduler driving engine every interval.
func NewScheduler(engine *Engine, interval time.Duration, opts ...SchedulerOption) *Scheduler {
	s := &Scheduler{
		engine:   engine,
		interval: interval,
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start begins periodic aggregation and blocks until ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	slog.Info("[Scheduler] Starting aggregation scheduler",
		"interval", s.interval,
		"bucket_width", s.engine.BucketWidth().String(),
		"workers", s.engine.opts.WorkerCount,
		"run_on_start", s.runOnStart,
	)

	if s.runOnStart {
		s.Tick(ctx)
	}

	for {
		select {
		case <-ticker.C:
			s.Tick(ctx)
		case <-ctx.Done():
			slog.Info("[Scheduler] Stopping (context cancelled)")
			return nil
		}
	}
}

// Tick runs one pass at the scheduler clock's current time.
// A failed pass is logged; the next tick is the retry.
func (s *Scheduler) Tick(ctx context.Context) PassResult {
	result, err := s.engine.RunPass(ctx, s.clock())
	if err != nil {
		if ctx.Err() != nil {
			slog.Info("[Scheduler] Pass interrupted by context cancellation", "now", result.Now)
			return result
		}
		slog.Error("[Scheduler] Aggregation pass failed", "now", result.Now, "error", err)
		return result
	}
	if len(result.Failed) > 0 {
		slog.Warn("[Scheduler] Pass finished with failed brews",
			"now", result.Now,
			"failed", len(result.Failed),
			"note", "Will retry on next tick",
		)
	}
	return result
}
