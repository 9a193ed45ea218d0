package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	v1 "github.com/brewlog/brewlog/internal/api/v1"
	"github.com/brewlog/brewlog/internal/core/storage"
)

// AppendBucket inserts one immutable bucket row.
// Returns storage.ErrDuplicate if (brew_id, bucket_end) already exists.
func (a *Adapter) AppendBucket(ctx context.Context, brewID string, count int64, bucketEnd time.Time) error {
	result, err := a.stmts.appendBucket.ExecContext(ctx, brewID, count, storage.Normalize(bucketEnd), a.nowFn())
	if err != nil {
		return fmt.Errorf("append bucket: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("append bucket: check insert: %w", err)
	}
	if rowsAffected == 0 {
		return storage.ErrDuplicate
	}
	return nil
}

// Buckets returns all buckets for a brew ordered by bucket_end ascending.
func (a *Adapter) Buckets(ctx context.Context, brewID string) ([]v1.Bucket, error) {
	rows, err := a.stmts.listBuckets.QueryContext(ctx, brewID)
	if err != nil {
		return nil, fmt.Errorf("query buckets: %w", err)
	}
	defer rows.Close()

	var buckets []v1.Bucket
	for rows.Next() {
		b := v1.Bucket{BrewID: brewID}
		if err := rows.Scan(&b.Count, &b.End); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		b.End = b.End.UTC()
		buckets = append(buckets, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return buckets, nil
}

// CloseBucket counts events in (start, end], appends the bucket and advances the
// watermark in one transaction. The watermark row is locked FOR UPDATE first,
// which blocks RecordEvent for the same brew until commit.
func (a *Adapter) CloseBucket(ctx context.Context, brewID string, start, end time.Time) (v1.Bucket, error) {
	start, end = storage.Normalize(start), storage.Normalize(end)
	if err := storage.ValidateWindow(start, end); err != nil {
		return v1.Bucket{}, err
	}

	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return v1.Bucket{}, fmt.Errorf("close bucket: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	var durable time.Time
	err = tx.QueryRowContext(ctx, queryLockWatermarkForUpdate, brewID).Scan(&durable)
	if err == sql.ErrNoRows {
		return v1.Bucket{}, fmt.Errorf("close bucket %s: %w", brewID, storage.ErrNotRegistered)
	}
	if err != nil {
		return v1.Bucket{}, fmt.Errorf("close bucket: lock watermark: %w", err)
	}

	// Compare-and-advance: refuse to emit a window the stored watermark has passed.
	if !durable.Equal(start) {
		return v1.Bucket{}, fmt.Errorf("close bucket %s: stored %s, expected %s: %w",
			brewID, durable.UTC(), start, storage.ErrWatermarkMoved)
	}

	var count int64
	if err := tx.QueryRowContext(ctx, queryCountEvents, brewID, start, end).Scan(&count); err != nil {
		return v1.Bucket{}, fmt.Errorf("close bucket: count events: %w", err)
	}

	now := a.nowFn()
	result, err := tx.ExecContext(ctx, queryAppendBucket, brewID, count, end, now)
	if err != nil {
		return v1.Bucket{}, fmt.Errorf("close bucket: insert bucket: %w", err)
	}
	inserted, err := result.RowsAffected()
	if err != nil {
		return v1.Bucket{}, fmt.Errorf("close bucket: check bucket insert: %w", err)
	}
	if inserted == 0 {
		return v1.Bucket{}, fmt.Errorf("close bucket %s at %s: %w", brewID, end, storage.ErrDuplicate)
	}

	if _, err := tx.ExecContext(ctx, queryAdvanceWatermark, brewID, end, now); err != nil {
		return v1.Bucket{}, fmt.Errorf("close bucket: advance watermark: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return v1.Bucket{}, fmt.Errorf("close bucket: commit: %w", err)
	}

	slog.Debug("[Postgres] Closed bucket", "brew_id", brewID, "bucket_end", end, "count", count)
	return v1.Bucket{BrewID: brewID, Count: count, End: end}, nil
}
