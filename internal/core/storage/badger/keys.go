package badger

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/brewlog/brewlog/internal/core/partition"
)

// Key layout. Every brew-scoped key starts with a kind byte and the xxhash of
// the brew ID so all rows of one brew share a fixed-width prefix:
//
//	e | hash | occurred_at | seq   -> brew ID
//	w | hash                      -> watermarkRecord (JSON)
//	b | hash | bucket_end         -> bucketRecord (JSON)
//
// Instants are big-endian Unix nanoseconds so byte order equals time order.
const (
	kindEvent     byte = 'e'
	kindWatermark byte = 'w'
	kindBucket    byte = 'b'

	prefixLen   = 1 + 8
	eventKeyLen = prefixLen + 8 + 8
)

var eventSequenceKey = []byte("seq/events")

func brewPrefix(kind byte, brewID string) []byte {
	key := make([]byte, prefixLen)
	key[0] = kind
	binary.BigEndian.PutUint64(key[1:9], partition.Hash(brewID))
	return key
}

func eventKey(brewID string, nanos, seq uint64) []byte {
	key := make([]byte, eventKeyLen)
	copy(key, brewPrefix(kindEvent, brewID))
	binary.BigEndian.PutUint64(key[prefixLen:prefixLen+8], nanos)
	binary.BigEndian.PutUint64(key[prefixLen+8:], seq)
	return key
}

// eventSeekKey is the smallest event key with occurred_at >= nanos.
func eventSeekKey(brewID string, nanos uint64) []byte {
	return eventKey(brewID, nanos, 0)
}

func eventKeyNanos(key []byte) uint64 {
	return binary.BigEndian.Uint64(key[prefixLen : prefixLen+8])
}

func watermarkKey(brewID string) []byte {
	return brewPrefix(kindWatermark, brewID)
}

func bucketKey(brewID string, endNanos uint64) []byte {
	key := make([]byte, prefixLen+8)
	copy(key, brewPrefix(kindBucket, brewID))
	binary.BigEndian.PutUint64(key[prefixLen:], endNanos)
	return key
}

func bucketKeyNanos(key []byte) uint64 {
	return binary.BigEndian.Uint64(key[prefixLen : prefixLen+8])
}

// storedNanos encodes an instant that is about to be written.
// ok is false for instants before the epoch or past the int64 nanosecond range.
func storedNanos(t time.Time) (uint64, bool) {
	if t.Before(time.Unix(0, 0)) || t.After(time.Unix(0, math.MaxInt64)) {
		return 0, false
	}
	return uint64(t.UnixNano()), true
}

// lowerBound returns the first nanosecond strictly after `after`, clamped to the
// representable range.
func lowerBound(after time.Time) uint64 {
	if after.Before(time.Unix(0, 0)) {
		return 0
	}
	if after.After(time.Unix(0, math.MaxInt64-1)) {
		return math.MaxUint64
	}
	return uint64(after.UnixNano()) + 1
}

// upperBound returns `through` as nanoseconds, clamped. ok is false when nothing
// stored can be at or before it.
func upperBound(through time.Time) (uint64, bool) {
	if through.Before(time.Unix(0, 0)) {
		return 0, false
	}
	if through.After(time.Unix(0, math.MaxInt64)) {
		return math.MaxInt64, true
	}
	return uint64(through.UnixNano()), true
}
