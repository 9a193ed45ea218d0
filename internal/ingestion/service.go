package ingestion

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	v1 "github.com/brewlog/brewlog/internal/api/v1"
	"github.com/brewlog/brewlog/internal/core/cache"
	"github.com/brewlog/brewlog/internal/core/storage"
	"github.com/brewlog/brewlog/internal/metrics"
	"github.com/gin-gonic/gin"
)

// Options controls ingest behaviour.
type Options struct {
	// AutoRegister registers a brew on its first recorded event.
	AutoRegister bool
	// Clock stamps events and explicit registrations. Defaults to UTC wall time.
	Clock storage.Clock
}

type Service struct {
	events       storage.EventStore
	watermarks   storage.WatermarkStore
	seen         cache.SeenCache
	metrics      *metrics.Metrics
	autoRegister bool
	clock        storage.Clock
}

func NewService(events storage.EventStore, watermarks storage.WatermarkStore, seen cache.SeenCache, m *metrics.Metrics, opts Options) *Service {
	if events == nil {
		panic("ingestion: event store must not be nil")
	}
	if watermarks == nil {
		panic("ingestion: watermark store must not be nil")
	}
	if seen == nil {
		seen = cache.NewLRU(10000)
	}
	if m == nil {
		m = metrics.NewNop()
	}
	clock := opts.Clock
	if clock == nil {
		clock = func() time.Time { return time.Now().UTC() }
	}
	return &Service{
		events:       events,
		watermarks:   watermarks,
		seen:         seen,
		metrics:      m,
		autoRegister: opts.AutoRegister,
		clock:        clock,
	}
}

// RegisterRoutes registers the ingestion service routes.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.POST("/brew/:brew_id", s.RegisterHandler)
	r.POST("/brew/:brew_id/data", s.RecordHandler)
}

// Register makes brewID eligible for aggregation starting now.
// Registering an existing brew is a no-op that returns its current watermark.
func (s *Service) Register(ctx context.Context, brewID string) (v1.Watermark, bool, error) {
	inserted, err := s.watermarks.RegisterIfAbsent(ctx, brewID, s.clock())
	if err != nil {
		return v1.Watermark{}, false, fmt.Errorf("register brew: %w", err)
	}
	if inserted {
		s.metrics.Registrations.WithLabelValues("explicit").Inc()
		slog.Info("[Ingest] Brew registered", "brew_id", brewID)
	}

	if _, err := s.seen.MarkSeen(ctx, brewID); err != nil {
		slog.Warn("[Ingest] Seen cache update failed", "brew_id", brewID, "error", err)
	}

	wm, found, err := s.watermarks.Watermark(ctx, brewID)
	if err != nil {
		return v1.Watermark{}, inserted, fmt.Errorf("read watermark: %w", err)
	}
	if !found {
		return v1.Watermark{}, inserted, fmt.Errorf("read watermark: %w", storage.ErrNotRegistered)
	}
	return wm, inserted, nil
}

// Record stores one event for brewID stamped with the service clock.
func (s *Service) Record(ctx context.Context, brewID string) (v1.Event, error) {
	at, err := s.events.RecordEvent(ctx, brewID, s.clock)
	if err != nil {
		return v1.Event{}, fmt.Errorf("record event: %w", err)
	}
	s.metrics.EventsRecorded.Inc()

	evt := v1.Event{BrewID: brewID, Timestamp: at}
	if !s.autoRegister {
		return evt, nil
	}
	if err := s.ensureRegistered(ctx, brewID, at); err != nil {
		return evt, err
	}
	return evt, nil
}

// ensureRegistered registers brewID just before its first event so that event
// falls inside the brew's first window.
func (s *Service) ensureRegistered(ctx context.Context, brewID string, at time.Time) error {
	seen, err := s.seen.MarkSeen(ctx, brewID)
	if err != nil {
		slog.Warn("[Ingest] Seen cache lookup failed, registering directly", "brew_id", brewID, "error", err)
	} else if seen {
		s.metrics.SeenCacheHits.Inc()
		return nil
	} else {
		s.metrics.SeenCacheMisses.Inc()
	}

	inserted, err := s.watermarks.RegisterIfAbsent(ctx, brewID, at.Add(-storage.Precision))
	if err != nil {
		if ferr := s.seen.Forget(ctx, brewID); ferr != nil {
			slog.Warn("[Ingest] Seen cache rollback failed", "brew_id", brewID, "error", ferr)
		}
		return fmt.Errorf("auto-register brew: %w", err)
	}
	if inserted {
		s.metrics.Registrations.WithLabelValues("auto").Inc()
		slog.Info("[Ingest] Brew auto-registered", "brew_id", brewID, "first_event", at)
	}
	return nil
}
