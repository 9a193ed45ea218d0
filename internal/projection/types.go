package projection

import "time"

const granularityTotal = "total"

// HistoryRequest selects a brew's bucketed history.
type HistoryRequest struct {
	BrewID string
	// Granularity is empty (native bucket width), a multiple of it such as "1h", or "total".
	Granularity string
}

// HistoryResponse is the bucketed history of a brew.
type HistoryResponse struct {
	BrewID string `json:"brew_id"`
	// Data holds bucket counts in ascending bucket order.
	Data []int64 `json:"data"`
	// First is the end of the earliest returned bucket, null when there is none.
	First       *time.Time `json:"first"`
	BucketWidth string     `json:"bucket_width"`
	Granularity string     `json:"granularity,omitempty"`
}

// RawHistoryRequest selects raw event timestamps in (StartAt, EndAt].
type RawHistoryRequest struct {
	BrewID  string
	StartAt time.Time
	EndAt   time.Time
	Limit   int
}

// RawHistoryResponse lists raw event timestamps in ascending order.
type RawHistoryResponse struct {
	BrewID     string      `json:"brew_id"`
	StartAt    time.Time   `json:"startAt"`
	EndAt      time.Time   `json:"endAt"`
	Limit      int         `json:"limit"`
	Timestamps []time.Time `json:"timestamps"`
}

// StatusResponse reports a brew's aggregation progress.
type StatusResponse struct {
	BrewID       string    `json:"brew_id"`
	Registered   bool      `json:"registered"`
	Watermark    time.Time `json:"watermark"`
	RegisteredAt time.Time `json:"registered_at"`
	BucketWidth  string    `json:"bucket_width"`
	// Lag is how far the watermark trails now, in seconds.
	LagSeconds int64 `json:"lag_seconds"`
}
