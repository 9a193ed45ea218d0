package v1

import (
	"fmt"
	"time"
)

// MaxBrewIDLength bounds brew identifiers accepted at the edge.
const MaxBrewIDLength = 128

// Event is one recorded brew. It is immutable once written.
type Event struct {
	// BrewID identifies the independent event stream this event belongs to.
	BrewID string `json:"brew_id"`

	// Timestamp is the server-side arrival time of the event.
	// It is assigned by the store under the brew's write lock, never by the client.
	Timestamp time.Time `json:"timestamp"`
}

// Watermark marks aggregation progress for one brew.
// Buckets exist for every window in (RegisteredAt, At].
type Watermark struct {
	BrewID       string    `json:"brew_id"`
	At           time.Time `json:"watermark"`
	RegisteredAt time.Time `json:"registered_at"`
}

// Bucket is the count of events in (End - width, End] for a brew.
type Bucket struct {
	BrewID string    `json:"brew_id"`
	Count  int64     `json:"count"`
	End    time.Time `json:"bucket_end"`
}

// Request ID plumbing shared by the server middleware and handlers.
const (
	RequestIDHeader = "X-Request-ID"
	RequestIDKey    = "request_id"
)

// ValidateBrewID rejects identifiers the facade must not pass to the core.
// Allowed characters: ASCII letters, digits, '.', '_', ':' and '-'.
func ValidateBrewID(id string) error {
	if id == "" {
		return fmt.Errorf("brew_id is required")
	}
	if len(id) > MaxBrewIDLength {
		return fmt.Errorf("brew_id exceeds %d characters", MaxBrewIDLength)
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '.', c == '_', c == ':', c == '-':
		default:
			return fmt.Errorf("brew_id contains invalid character %q", c)
		}
	}
	return nil
}
