package postgres

import (
	"fmt"

	v1 "github.com/brewlog/brewlog/internal/api/v1"
)

type scanner interface {
	Scan(dest ...interface{}) error
}

// scanWatermarkRow scans (brew_id, watermark_at, registered_at).
// Compatible with both sql.Row (single) and sql.Rows (multiple).
func scanWatermarkRow(row scanner) (v1.Watermark, error) {
	var wm v1.Watermark
	if err := row.Scan(&wm.BrewID, &wm.At, &wm.RegisteredAt); err != nil {
		return v1.Watermark{}, fmt.Errorf("failed to scan watermark row: %w", err)
	}
	wm.At = wm.At.UTC()
	wm.RegisteredAt = wm.RegisteredAt.UTC()
	return wm, nil
}
