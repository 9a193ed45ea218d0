package badger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	v1 "github.com/brewlog/brewlog/internal/api/v1"
	"github.com/brewlog/brewlog/internal/core/partition"
	"github.com/brewlog/brewlog/internal/core/storage"
	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"
)

// Config holds BadgerDB configuration.
type Config struct {
	// Path to store database files. Ignored when InMemory is set.
	Path string

	// InMemory keeps everything in RAM (tests, throwaway runs).
	InMemory bool
}

// Store implements storage.Store on an embedded BadgerDB.
// Writers for the same brew are serialized by a striped mutex; every
// multi-key write runs in a single badger transaction.
type Store struct {
	db    *badger.DB
	seq   *badger.Sequence
	locks partition.Locks
}

type watermarkRecord struct {
	BrewID       string    `json:"brew_id"`
	At           time.Time `json:"at"`
	RegisteredAt time.Time `json:"registered_at"`
}

type bucketRecord struct {
	BrewID string `json:"brew_id"`
	Count  int64  `json:"count"`
}

// errHashCollision guards against two brew IDs sharing an xxhash prefix.
var errHashCollision = errors.New("brew id hash collision")

// New opens a BadgerDB store.
func New(cfg Config) (*Store, error) {
	opts := badger.DefaultOptions(cfg.Path)
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}

	opts = opts.
		WithLogger(slogLogger{}).
		WithCompression(options.Snappy).
		WithNumVersionsToKeep(1).
		WithMemTableSize(16 << 20).
		WithNumCompactors(2).
		WithValueLogFileSize(64 << 20)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger: %w", err)
	}

	seq, err := db.GetSequence(eventSequenceKey, 1000)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to open event sequence: %w", err)
	}

	slog.Info("[Badger] Store opened", "path", cfg.Path, "in_memory", cfg.InMemory)
	return &Store{db: db, seq: seq}, nil
}

// AppendEvent inserts a raw event at the given instant.
func (s *Store) AppendEvent(ctx context.Context, brewID string, at time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	unlock := s.locks.Lock(brewID)
	defer unlock()

	return s.appendEventLocked(brewID, storage.Normalize(at))
}

// RecordEvent stamps the event with clock() while holding the brew's stripe,
// which CloseBucket also holds for the whole count-append-advance step.
func (s *Store) RecordEvent(ctx context.Context, brewID string, clock storage.Clock) (time.Time, error) {
	if err := ctx.Err(); err != nil {
		return time.Time{}, err
	}
	unlock := s.locks.Lock(brewID)
	defer unlock()

	at := storage.Normalize(clock())
	if err := s.appendEventLocked(brewID, at); err != nil {
		return time.Time{}, fmt.Errorf("record event: %w", err)
	}
	return at, nil
}

func (s *Store) appendEventLocked(brewID string, at time.Time) error {
	nanos, ok := storedNanos(at)
	if !ok {
		return fmt.Errorf("append event at %s: %w", at, storage.ErrInvalidTimestamp)
	}
	seq, err := s.seq.Next()
	if err != nil {
		return fmt.Errorf("append event: next sequence: %w", err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(eventKey(brewID, nanos, seq), []byte(brewID))
	})
	if err != nil {
		return fmt.Errorf("append event: %w", err)
	}
	return nil
}

// CountEvents returns the number of events with after < timestamp <= through.
func (s *Store) CountEvents(ctx context.Context, brewID string, after, through time.Time) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	var count int64
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		count, err = countEventsTxn(txn, brewID, storage.Normalize(after), storage.Normalize(through))
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("count events: %w", err)
	}
	return count, nil
}

// RangeEvents returns up to limit timestamps in (after, through], ascending.
func (s *Store) RangeEvents(ctx context.Context, brewID string, after, through time.Time, limit int) ([]time.Time, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	timestamps := make([]time.Time, 0)
	if limit <= 0 {
		return timestamps, nil
	}
	err := s.db.View(func(txn *badger.Txn) error {
		return scanEvents(txn, brewID, storage.Normalize(after), storage.Normalize(through), func(nanos uint64) bool {
			timestamps = append(timestamps, time.Unix(0, int64(nanos)).UTC())
			return len(timestamps) < limit
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	return timestamps, nil
}

// countEventsTxn counts within an existing transaction so CloseBucket sees the
// same snapshot it writes from.
func countEventsTxn(txn *badger.Txn, brewID string, after, through time.Time) (int64, error) {
	var count int64
	err := scanEvents(txn, brewID, after, through, func(uint64) bool {
		count++
		return true
	})
	return count, err
}

// scanEvents visits event timestamps in (after, through] in key order until visit returns false.
func scanEvents(txn *badger.Txn, brewID string, after, through time.Time, visit func(nanos uint64) bool) error {
	upper, ok := upperBound(through)
	if !ok {
		return nil
	}
	lower := lowerBound(after)
	if lower > upper {
		return nil
	}

	prefix := brewPrefix(kindEvent, brewID)
	opts := badger.DefaultIteratorOptions
	opts.Prefix = prefix
	opts.PrefetchSize = 100

	it := txn.NewIterator(opts)
	defer it.Close()

	want := []byte(brewID)
	for it.Seek(eventSeekKey(brewID, lower)); it.ValidForPrefix(prefix); it.Next() {
		item := it.Item()
		nanos := eventKeyNanos(item.Key())
		if nanos > upper {
			return nil
		}

		var match bool
		if err := item.Value(func(val []byte) error {
			match = bytes.Equal(val, want)
			return nil
		}); err != nil {
			return err
		}
		if !match {
			continue
		}
		if !visit(nanos) {
			return nil
		}
	}
	return nil
}

// Watermark returns the brew's watermark.
func (s *Store) Watermark(ctx context.Context, brewID string) (v1.Watermark, bool, error) {
	if err := ctx.Err(); err != nil {
		return v1.Watermark{}, false, err
	}
	var (
		rec   watermarkRecord
		found bool
	)
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		rec, found, err = getWatermarkTxn(txn, brewID)
		return err
	})
	if err != nil {
		return v1.Watermark{}, false, fmt.Errorf("read watermark: %w", err)
	}
	if !found {
		return v1.Watermark{}, false, nil
	}
	return rec.toWatermark(), true, nil
}

// RegisterIfAbsent creates the brew's watermark at `at` unless one exists.
func (s *Store) RegisterIfAbsent(ctx context.Context, brewID string, at time.Time) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	at = storage.Normalize(at)
	if _, ok := storedNanos(at); !ok {
		return false, fmt.Errorf("register watermark at %s: %w", at, storage.ErrInvalidTimestamp)
	}

	unlock := s.locks.Lock(brewID)
	defer unlock()

	var inserted bool
	err := s.db.Update(func(txn *badger.Txn) error {
		_, found, err := getWatermarkTxn(txn, brewID)
		if err != nil || found {
			return err
		}
		inserted = true
		return putWatermarkTxn(txn, watermarkRecord{BrewID: brewID, At: at, RegisteredAt: at})
	})
	if err != nil {
		return false, fmt.Errorf("register watermark: %w", err)
	}
	if inserted {
		slog.Info("[Badger] Registered brew", "brew_id", brewID, "registered_at", at)
	}
	return inserted, nil
}

// AdvanceWatermark overwrites the brew's watermark.
func (s *Store) AdvanceWatermark(ctx context.Context, brewID string, to time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	unlock := s.locks.Lock(brewID)
	defer unlock()

	err := s.db.Update(func(txn *badger.Txn) error {
		rec, found, err := getWatermarkTxn(txn, brewID)
		if err != nil {
			return err
		}
		if !found {
			return storage.ErrNotRegistered
		}
		rec.At = storage.Normalize(to)
		return putWatermarkTxn(txn, rec)
	})
	if err != nil {
		return fmt.Errorf("advance watermark %s: %w", brewID, err)
	}
	return nil
}

// ListWatermarks returns every registered brew ordered by brew ID.
func (s *Store) ListWatermarks(ctx context.Context) ([]v1.Watermark, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var watermarks []v1.Watermark
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte{kindWatermark}

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.ValidForPrefix(opts.Prefix); it.Next() {
			var rec watermarkRecord
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			}); err != nil {
				return fmt.Errorf("decode watermark: %w", err)
			}
			watermarks = append(watermarks, rec.toWatermark())
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list watermarks: %w", err)
	}
	slices.SortFunc(watermarks, func(a, b v1.Watermark) int {
		return strings.Compare(a.BrewID, b.BrewID)
	})
	return watermarks, nil
}

// AppendBucket inserts one immutable bucket.
func (s *Store) AppendBucket(ctx context.Context, brewID string, count int64, bucketEnd time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	unlock := s.locks.Lock(brewID)
	defer unlock()

	err := s.db.Update(func(txn *badger.Txn) error {
		return putBucketTxn(txn, brewID, count, storage.Normalize(bucketEnd))
	})
	if errors.Is(err, storage.ErrDuplicate) {
		return storage.ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("append bucket: %w", err)
	}
	return nil
}

// Buckets returns all buckets for a brew ordered by bucket_end ascending.
func (s *Store) Buckets(ctx context.Context, brewID string) ([]v1.Bucket, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var buckets []v1.Bucket
	err := s.db.View(func(txn *badger.Txn) error {
		prefix := brewPrefix(kindBucket, brewID)
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var rec bucketRecord
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			}); err != nil {
				return fmt.Errorf("decode bucket: %w", err)
			}
			if rec.BrewID != brewID {
				continue
			}
			endNanos := bucketKeyNanos(item.Key())
			buckets = append(buckets, v1.Bucket{
				BrewID: brewID,
				Count:  rec.Count,
				End:    time.Unix(0, int64(endNanos)).UTC(),
			})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("query buckets: %w", err)
	}
	return buckets, nil
}

// CloseBucket runs one aggregation step in a single read-write transaction
// while holding the brew's stripe.
func (s *Store) CloseBucket(ctx context.Context, brewID string, start, end time.Time) (v1.Bucket, error) {
	if err := ctx.Err(); err != nil {
		return v1.Bucket{}, err
	}
	start, end = storage.Normalize(start), storage.Normalize(end)
	if err := storage.ValidateWindow(start, end); err != nil {
		return v1.Bucket{}, err
	}

	unlock := s.locks.Lock(brewID)
	defer unlock()

	var count int64
	err := s.db.Update(func(txn *badger.Txn) error {
		rec, found, err := getWatermarkTxn(txn, brewID)
		if err != nil {
			return err
		}
		if !found {
			return storage.ErrNotRegistered
		}
		if !rec.At.Equal(start) {
			return fmt.Errorf("stored %s, expected %s: %w", rec.At, start, storage.ErrWatermarkMoved)
		}

		count, err = countEventsTxn(txn, brewID, start, end)
		if err != nil {
			return fmt.Errorf("count events: %w", err)
		}
		if err := putBucketTxn(txn, brewID, count, end); err != nil {
			return err
		}

		rec.At = end
		return putWatermarkTxn(txn, rec)
	})
	if err != nil {
		return v1.Bucket{}, fmt.Errorf("close bucket %s: %w", brewID, err)
	}

	slog.Debug("[Badger] Closed bucket", "brew_id", brewID, "bucket_end", end, "count", count)
	return v1.Bucket{BrewID: brewID, Count: count, End: end}, nil
}

// Ping reports whether the store is open.
func (s *Store) Ping(ctx context.Context) error {
	if s.db.IsClosed() {
		return errors.New("badger: store is closed")
	}
	return ctx.Err()
}

// Close releases the event sequence and closes the database.
func (s *Store) Close() error {
	var firstErr error
	if err := s.seq.Release(); err != nil {
		firstErr = fmt.Errorf("failed to release event sequence: %w", err)
	}
	if err := s.db.Close(); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("failed to close badger: %w", err)
	}
	if firstErr != nil {
		return firstErr
	}
	slog.Info("[Badger] Store closed gracefully")
	return nil
}

func getWatermarkTxn(txn *badger.Txn, brewID string) (watermarkRecord, bool, error) {
	item, err := txn.Get(watermarkKey(brewID))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return watermarkRecord{}, false, nil
	}
	if err != nil {
		return watermarkRecord{}, false, err
	}

	var rec watermarkRecord
	if err := item.Value(func(val []byte) error {
		return json.Unmarshal(val, &rec)
	}); err != nil {
		return watermarkRecord{}, false, fmt.Errorf("decode watermark: %w", err)
	}
	if rec.BrewID != brewID {
		return watermarkRecord{}, false, fmt.Errorf("%w: %q and %q", errHashCollision, brewID, rec.BrewID)
	}
	return rec, true, nil
}

func putWatermarkTxn(txn *badger.Txn, rec watermarkRecord) error {
	val, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode watermark: %w", err)
	}
	return txn.Set(watermarkKey(rec.BrewID), val)
}

func putBucketTxn(txn *badger.Txn, brewID string, count int64, end time.Time) error {
	endNanos, ok := storedNanos(end)
	if !ok {
		return fmt.Errorf("bucket end %s: %w", end, storage.ErrInvalidTimestamp)
	}
	key := bucketKey(brewID, endNanos)

	_, err := txn.Get(key)
	if err == nil {
		return storage.ErrDuplicate
	}
	if !errors.Is(err, badger.ErrKeyNotFound) {
		return err
	}

	val, err := json.Marshal(bucketRecord{BrewID: brewID, Count: count})
	if err != nil {
		return fmt.Errorf("encode bucket: %w", err)
	}
	return txn.Set(key, val)
}

func (r watermarkRecord) toWatermark() v1.Watermark {
	return v1.Watermark{
		BrewID:       r.BrewID,
		At:           r.At.UTC(),
		RegisteredAt: r.RegisteredAt.UTC(),
	}
}
