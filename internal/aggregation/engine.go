package aggregation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	v1 "github.com/brewlog/brewlog/internal/api/v1"
	"github.com/brewlog/brewlog/internal/core/aggregation"
	"github.com/brewlog/brewlog/internal/core/storage"
	"github.com/brewlog/brewlog/internal/metrics"
	"golang.org/x/sync/errgroup"
)

const defaultWorkerCount = 1

// Store is what the engine needs from a storage backend.
type Store interface {
	ListWatermarks(ctx context.Context) ([]v1.Watermark, error)
	storage.BucketCloser
}

// EngineOptions controls bucket width and per-pass fan-out.
type EngineOptions struct {
	BucketWidth aggregation.WindowSpec
	// WorkerCount bounds how many brews are processed concurrently in a pass.
	// Each brew's bucket chain always runs in a single goroutine.
	WorkerCount int
}

func (o EngineOptions) normalized() EngineOptions {
	n := o
	if n.WorkerCount <= 0 {
		n.WorkerCount = defaultWorkerCount
	}
	if n.BucketWidth.Size <= 0 {
		n.BucketWidth = aggregation.WindowSpec{Size: 10 * time.Minute}
	}
	return n
}

// PassResult summarizes one aggregation pass.
type PassResult struct {
	Now time.Time
	// Keys is the number of registered brews the pass visited.
	Keys int
	// Buckets holds every bucket emitted, ordered by brew ID then bucket end.
	Buckets []v1.Bucket
	// Failed maps brew ID to the error that stopped its chain.
	Failed map[string]error
}

// Engine turns raw events into fixed-width bucket counts, one watermark step at a time.
type Engine struct {
	store   Store
	opts    EngineOptions
	metrics *metrics.Metrics
}

// NewEngine creates an aggregation engine. m may be nil.
func NewEngine(store Store, opts EngineOptions, m *metrics.Metrics) *Engine {
	if m == nil {
		m = metrics.NewNop()
	}
	return &Engine{
		store:   store,
		opts:    opts.normalized(),
		metrics: m,
	}
}

// BucketWidth returns the configured bucket width.
func (e *Engine) BucketWidth() aggregation.WindowSpec {
	return e.opts.BucketWidth
}

// RunPass closes every window that ends at or before now for every registered brew.
// A storage fault on one brew is recorded in PassResult.Failed and does not stop
// the others. The returned error is set only when the brew list cannot be read
// or ctx is cancelled.
func (e *Engine) RunPass(ctx context.Context, now time.Time) (PassResult, error) {
	started := time.Now()
	now = storage.Normalize(now)
	result := PassResult{Now: now, Failed: map[string]error{}}

	watermarks, err := e.store.ListWatermarks(ctx)
	if err != nil {
		e.metrics.PassesTotal.WithLabelValues("failed").Inc()
		return result, fmt.Errorf("list watermarks: %w", err)
	}
	result.Keys = len(watermarks)
	e.metrics.KeysTracked.Set(float64(len(watermarks)))

	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	g.SetLimit(e.opts.WorkerCount)

	for _, wm := range watermarks {
		g.Go(func() error {
			emitted, err := e.closeDueBuckets(ctx, wm, now)

			mu.Lock()
			defer mu.Unlock()
			result.Buckets = append(result.Buckets, emitted...)
			if err != nil {
				result.Failed[wm.BrewID] = err
			}
			return nil
		})
	}
	_ = g.Wait()

	sort.Slice(result.Buckets, func(i, j int) bool {
		a, b := result.Buckets[i], result.Buckets[j]
		if a.BrewID != b.BrewID {
			return a.BrewID < b.BrewID
		}
		return a.End.Before(b.End)
	})

	e.metrics.BucketsEmitted.Add(float64(len(result.Buckets)))
	e.metrics.PassDuration.Observe(time.Since(started).Seconds())

	if err := ctx.Err(); err != nil {
		e.metrics.PassesTotal.WithLabelValues("failed").Inc()
		return result, err
	}

	outcome := "ok"
	if len(result.Failed) > 0 {
		outcome = "partial"
	}
	e.metrics.PassesTotal.WithLabelValues(outcome).Inc()

	slog.Info("[Engine] Pass complete",
		"now", now,
		"keys", result.Keys,
		"buckets", len(result.Buckets),
		"failed", len(result.Failed),
		"duration", time.Since(started),
	)
	return result, nil
}

// closeDueBuckets walks one brew's watermark forward in steps of the bucket width.
func (e *Engine) closeDueBuckets(ctx context.Context, wm v1.Watermark, now time.Time) ([]v1.Bucket, error) {
	width := e.opts.BucketWidth.Size
	start := storage.Normalize(wm.At)

	var emitted []v1.Bucket
	for !start.Add(width).After(now) {
		if err := ctx.Err(); err != nil {
			return emitted, err
		}

		end := start.Add(width)
		bucket, err := e.store.CloseBucket(ctx, wm.BrewID, start, end)
		if err != nil {
			if !errors.Is(err, context.Canceled) {
				e.metrics.KeyFailures.Inc()
				slog.Error("[Engine] Bucket step failed",
					"brew_id", wm.BrewID,
					"bucket_end", end,
					"error", err,
				)
			}
			return emitted, fmt.Errorf("close bucket ending %s: %w", end.Format(time.RFC3339Nano), err)
		}

		slog.Debug("[Engine] Bucket closed",
			"brew_id", bucket.BrewID,
			"bucket_end", bucket.End,
			"count", bucket.Count,
		)
		emitted = append(emitted, bucket)
		start = end
	}
	return emitted, nil
}
