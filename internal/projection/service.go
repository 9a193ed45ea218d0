package projection

import (
	"context"
	"errors"
	"fmt"
	"time"

	v1 "github.com/brewlog/brewlog/internal/api/v1"
	coreagg "github.com/brewlog/brewlog/internal/core/aggregation"
	"github.com/brewlog/brewlog/internal/core/storage"
)

const (
	defaultRawLimit = 100
	maxRawLimit     = 1000
)

var (
	// ErrInvalidQuery marks request validation errors that should return HTTP 400.
	ErrInvalidQuery = errors.New("invalid history query")

	// ErrBrewNotFound is returned for status queries on unregistered brews.
	ErrBrewNotFound = errors.New("brew not found")
)

// Options configures the query layer.
type Options struct {
	BucketWidth  coreagg.WindowSpec
	DefaultLimit int
	MaxLimit     int
}

// Service implements the read side: bucketed history, raw history and status.
type Service struct {
	events     storage.EventStore
	watermarks storage.WatermarkStore
	buckets    storage.BucketStore
	width      coreagg.WindowSpec
	defLimit   int
	maxLimit   int
	nowFn      func() time.Time
}

// NewService creates a new projection service.
func NewService(
	events storage.EventStore,
	watermarks storage.WatermarkStore,
	buckets storage.BucketStore,
	opts Options,
) *Service {
	if opts.BucketWidth.Size <= 0 {
		opts.BucketWidth = coreagg.WindowSpec{Size: 10 * time.Minute}
	}
	if opts.MaxLimit <= 0 {
		opts.MaxLimit = maxRawLimit
	}
	if opts.DefaultLimit <= 0 {
		opts.DefaultLimit = defaultRawLimit
	}
	if opts.DefaultLimit > opts.MaxLimit {
		opts.DefaultLimit = opts.MaxLimit
	}

	return &Service{
		events:     events,
		watermarks: watermarks,
		buckets:    buckets,
		width:      opts.BucketWidth,
		defLimit:   opts.DefaultLimit,
		maxLimit:   opts.MaxLimit,
		nowFn: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// History returns the brew's bucket counts, optionally rolled up to a coarser granularity.
// Unknown brews have an empty history.
func (s *Service) History(ctx context.Context, req HistoryRequest) (*HistoryResponse, error) {
	rollup, err := s.rollupFor(req.Granularity)
	if err != nil {
		return nil, err
	}

	buckets, err := s.buckets.Buckets(ctx, req.BrewID)
	if err != nil {
		return nil, fmt.Errorf("query buckets: %w", err)
	}
	buckets = rollup(buckets)

	resp := &HistoryResponse{
		BrewID:      req.BrewID,
		Data:        make([]int64, 0, len(buckets)),
		BucketWidth: s.width.String(),
		Granularity: req.Granularity,
	}
	for _, b := range buckets {
		resp.Data = append(resp.Data, b.Count)
	}
	if len(buckets) > 0 {
		first := buckets[0].End
		resp.First = &first
	}
	return resp, nil
}

func (s *Service) rollupFor(granularity string) (func([]v1.Bucket) []v1.Bucket, error) {
	switch granularity {
	case "":
		return func(b []v1.Bucket) []v1.Bucket { return b }, nil
	case granularityTotal:
		return rollupTotal, nil
	}

	coarse, err := coreagg.ParseWindowSize(granularity)
	if err != nil {
		return nil, invalidQueryf("invalid granularity %q", granularity)
	}
	factor, err := s.width.Factor(coarse)
	if err != nil {
		return nil, invalidQueryf("%s", err)
	}
	return func(b []v1.Bucket) []v1.Bucket {
		return rollupByFactor(b, factor, s.width.Size)
	}, nil
}

// RawHistory returns raw event timestamps in (StartAt, EndAt].
// Zero bounds default to the epoch and now; a zero limit uses the default limit.
func (s *Service) RawHistory(ctx context.Context, req RawHistoryRequest) (*RawHistoryResponse, error) {
	req, err := s.normalizeRaw(req)
	if err != nil {
		return nil, err
	}

	timestamps, err := s.events.RangeEvents(ctx, req.BrewID, req.StartAt, req.EndAt, req.Limit)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}

	return &RawHistoryResponse{
		BrewID:     req.BrewID,
		StartAt:    req.StartAt,
		EndAt:      req.EndAt,
		Limit:      req.Limit,
		Timestamps: timestamps,
	}, nil
}

func (s *Service) normalizeRaw(req RawHistoryRequest) (RawHistoryRequest, error) {
	if req.StartAt.IsZero() {
		req.StartAt = time.Unix(0, 0).UTC()
	}
	if req.EndAt.IsZero() {
		req.EndAt = s.nowFn()
	}
	req.StartAt, req.EndAt = req.StartAt.UTC(), req.EndAt.UTC()

	if req.EndAt.Before(req.StartAt) {
		return req, invalidQueryf("endAt must not be before startAt")
	}

	switch {
	case req.Limit < 0:
		return req, invalidQueryf("limit must be positive")
	case req.Limit == 0:
		req.Limit = s.defLimit
	case req.Limit > s.maxLimit:
		req.Limit = s.maxLimit
	}
	return req, nil
}

// Status reports the brew's watermark. Returns ErrBrewNotFound when unregistered.
func (s *Service) Status(ctx context.Context, brewID string) (*StatusResponse, error) {
	wm, found, err := s.watermarks.Watermark(ctx, brewID)
	if err != nil {
		return nil, fmt.Errorf("read watermark: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrBrewNotFound, brewID)
	}

	lag := s.nowFn().Sub(wm.At)
	if lag < 0 {
		lag = 0
	}

	return &StatusResponse{
		BrewID:       wm.BrewID,
		Registered:   true,
		Watermark:    wm.At,
		RegisteredAt: wm.RegisteredAt,
		BucketWidth:  s.width.String(),
		LagSeconds:   int64(lag / time.Second),
	}, nil
}

func invalidQueryf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidQuery, fmt.Sprintf(format, args...))
}
