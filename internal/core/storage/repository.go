package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	v1 "github.com/brewlog/brewlog/internal/api/v1"
)

var (
	// ErrDuplicate is returned when a bucket for the same (brew_id, bucket_end) already exists.
	ErrDuplicate = errors.New("bucket already exists")

	// ErrNotRegistered is returned when a watermark operation targets an unregistered brew.
	ErrNotRegistered = errors.New("brew is not registered")

	// ErrWatermarkMoved is returned by CloseBucket when the stored watermark no longer
	// equals the window start the caller computed.
	ErrWatermarkMoved = errors.New("watermark moved")

	// ErrInvalidTimestamp is returned for instants a backend cannot represent.
	ErrInvalidTimestamp = errors.New("invalid timestamp")
)

// Precision is the resolution every stored instant is normalized to.
// It matches PostgreSQL timestamptz so watermarks compare equal after a round trip.
const Precision = time.Microsecond

// Normalize converts t to UTC at storage precision.
func Normalize(t time.Time) time.Time {
	return t.UTC().Truncate(Precision)
}

// Clock returns the current time. RecordEvent calls it after the brew's write
// lock is held so the event timestamp cannot fall into a window being closed.
type Clock func() time.Time

// EventStore is the append-only raw event log.
type EventStore interface {
	// AppendEvent inserts an event unconditionally.
	AppendEvent(ctx context.Context, brewID string, at time.Time) error

	// RecordEvent stamps an event with clock() under the brew's write lock and appends it.
	// Returns the stored timestamp.
	RecordEvent(ctx context.Context, brewID string, clock Clock) (time.Time, error)

	// CountEvents returns the number of events with after < timestamp <= through.
	CountEvents(ctx context.Context, brewID string, after, through time.Time) (int64, error)

	// RangeEvents returns up to limit timestamps with after < timestamp <= through, ascending.
	RangeEvents(ctx context.Context, brewID string, after, through time.Time, limit int) ([]time.Time, error)
}

// WatermarkStore holds one aggregation watermark per registered brew.
type WatermarkStore interface {
	// Watermark returns the brew's watermark. found is false when the brew is not registered.
	Watermark(ctx context.Context, brewID string) (wm v1.Watermark, found bool, err error)

	// RegisterIfAbsent creates the watermark at `at` unless one exists.
	// Returns true when a row was inserted.
	RegisterIfAbsent(ctx context.Context, brewID string, at time.Time) (bool, error)

	// AdvanceWatermark overwrites the watermark. Callers guarantee monotonic values.
	AdvanceWatermark(ctx context.Context, brewID string, to time.Time) error

	// ListWatermarks returns every registered brew.
	ListWatermarks(ctx context.Context) ([]v1.Watermark, error)
}

// BucketStore is the append-only store of closed bucket counts.
type BucketStore interface {
	// AppendBucket inserts one immutable bucket. Returns ErrDuplicate if it exists.
	AppendBucket(ctx context.Context, brewID string, count int64, bucketEnd time.Time) error

	// Buckets returns all buckets for a brew ordered by bucket_end ascending.
	Buckets(ctx context.Context, brewID string) ([]v1.Bucket, error)
}

// BucketCloser performs one aggregation step atomically.
type BucketCloser interface {
	// CloseBucket counts events in (start, end], appends the bucket and advances the
	// watermark to end, all-or-nothing and serialized against RecordEvent for the brew.
	// Returns ErrWatermarkMoved if the watermark is not start and ErrNotRegistered if absent.
	CloseBucket(ctx context.Context, brewID string, start, end time.Time) (v1.Bucket, error)
}

// Store is a complete storage backend.
type Store interface {
	EventStore
	WatermarkStore
	BucketStore
	BucketCloser

	Ping(ctx context.Context) error
	Close() error
}

// ValidateWindow checks the (start, end] arguments of a bucket step.
func ValidateWindow(start, end time.Time) error {
	if !end.After(start) {
		return fmt.Errorf("%w: window end %s is not after start %s", ErrInvalidTimestamp, end, start)
	}
	return nil
}
