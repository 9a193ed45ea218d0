package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	v1 "github.com/brewlog/brewlog/internal/api/v1"
	"github.com/brewlog/brewlog/internal/core/storage"
)

// Watermark returns the brew's watermark row.
func (a *Adapter) Watermark(ctx context.Context, brewID string) (v1.Watermark, bool, error) {
	wm, err := scanWatermarkRow(a.stmts.getWatermark.QueryRowContext(ctx, brewID))
	if errors.Is(err, sql.ErrNoRows) {
		return v1.Watermark{}, false, nil
	}
	if err != nil {
		return v1.Watermark{}, false, fmt.Errorf("read watermark: %w", err)
	}
	return wm, true, nil
}

// RegisterIfAbsent inserts the brew's watermark at `at` unless it already exists.
func (a *Adapter) RegisterIfAbsent(ctx context.Context, brewID string, at time.Time) (bool, error) {
	result, err := a.stmts.registerWatermark.ExecContext(ctx, brewID, storage.Normalize(at), a.nowFn())
	if err != nil {
		return false, fmt.Errorf("register watermark: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("register watermark: check insert: %w", err)
	}
	if rowsAffected > 0 {
		slog.Info("[Postgres] Registered brew", "brew_id", brewID, "registered_at", storage.Normalize(at))
	}
	return rowsAffected > 0, nil
}

// AdvanceWatermark overwrites the brew's watermark.
// Returns storage.ErrNotRegistered when no row exists.
func (a *Adapter) AdvanceWatermark(ctx context.Context, brewID string, to time.Time) error {
	result, err := a.stmts.advanceWatermark.ExecContext(ctx, brewID, storage.Normalize(to), a.nowFn())
	if err != nil {
		return fmt.Errorf("advance watermark: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("advance watermark: check update: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("advance watermark %s: %w", brewID, storage.ErrNotRegistered)
	}
	return nil
}

// ListWatermarks returns every registered brew ordered by brew_id.
func (a *Adapter) ListWatermarks(ctx context.Context) ([]v1.Watermark, error) {
	rows, err := a.stmts.listWatermarks.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("list watermarks: %w", err)
	}
	defer rows.Close()

	var watermarks []v1.Watermark
	for rows.Next() {
		wm, err := scanWatermarkRow(rows)
		if err != nil {
			return nil, err
		}
		watermarks = append(watermarks, wm)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list watermarks: iterate rows: %w", err)
	}
	return watermarks, nil
}
