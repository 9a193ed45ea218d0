package badger

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/brewlog/brewlog/internal/core/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(Config{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_ImplementsStore(t *testing.T) {
	var _ storage.Store = newTestStore(t)
}

func TestStore_CountEventsHalfOpen(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, at := range []time.Time{
		t0,
		t0.Add(time.Minute),
		t0.Add(10 * time.Minute),
		t0.Add(10*time.Minute + time.Microsecond),
	} {
		require.NoError(t, s.AppendEvent(ctx, "a", at))
	}
	require.NoError(t, s.AppendEvent(ctx, "b", t0.Add(time.Minute)))

	count, err := s.CountEvents(ctx, "a", t0, t0.Add(10*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, int64(2), count, "excludes start, includes end")

	count, err = s.CountEvents(ctx, "b", t0, t0.Add(10*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = s.CountEvents(ctx, "missing", t0, t0.Add(time.Hour))
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestStore_DuplicateTimestampsAreDistinctEvents(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, s.AppendEvent(ctx, "a", t0.Add(time.Second)))
	}

	count, err := s.CountEvents(ctx, "a", t0, t0.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestStore_RangeEvents(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for i := 5; i >= 1; i-- {
		require.NoError(t, s.AppendEvent(ctx, "a", t0.Add(time.Duration(i)*time.Minute)))
	}

	got, err := s.RangeEvents(ctx, "a", t0.Add(time.Minute), t0.Add(time.Hour), 3)
	require.NoError(t, err)
	assert.Equal(t, []time.Time{
		t0.Add(2 * time.Minute),
		t0.Add(3 * time.Minute),
		t0.Add(4 * time.Minute),
	}, got)

	got, err = s.RangeEvents(ctx, "a", t0.Add(time.Hour), t0.Add(2*time.Hour), 10)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestStore_AppendEventRejectsPreEpoch(t *testing.T) {
	s := newTestStore(t)
	err := s.AppendEvent(context.Background(), "a", time.Unix(-1, 0))
	require.ErrorIs(t, err, storage.ErrInvalidTimestamp)
}

func TestStore_RecordEventUsesClock(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	at, err := s.RecordEvent(ctx, "a", func() time.Time { return t0.Add(1500 * time.Nanosecond) })
	require.NoError(t, err)
	assert.Equal(t, t0.Add(time.Microsecond), at, "normalized to storage precision")

	got, err := s.RangeEvents(ctx, "a", t0, t0.Add(time.Second), 10)
	require.NoError(t, err)
	assert.Equal(t, []time.Time{at}, got)
}

func TestStore_RegisterIfAbsent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, found, err := s.Watermark(ctx, "a")
	require.NoError(t, err)
	assert.False(t, found)

	inserted, err := s.RegisterIfAbsent(ctx, "a", t0)
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = s.RegisterIfAbsent(ctx, "a", t0.Add(time.Hour))
	require.NoError(t, err)
	assert.False(t, inserted)

	wm, found, err := s.Watermark(ctx, "a")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "a", wm.BrewID)
	assert.True(t, wm.At.Equal(t0))
	assert.True(t, wm.RegisteredAt.Equal(t0))
}

func TestStore_AdvanceWatermark(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	err := s.AdvanceWatermark(ctx, "a", t0)
	require.ErrorIs(t, err, storage.ErrNotRegistered)

	_, err = s.RegisterIfAbsent(ctx, "a", t0)
	require.NoError(t, err)
	require.NoError(t, s.AdvanceWatermark(ctx, "a", t0.Add(time.Hour)))

	wm, _, err := s.Watermark(ctx, "a")
	require.NoError(t, err)
	assert.True(t, wm.At.Equal(t0.Add(time.Hour)))
	assert.True(t, wm.RegisteredAt.Equal(t0), "registration time unchanged")
}

func TestStore_ListWatermarksSortedByID(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, id := range []string{"charlie", "alpha", "bravo"} {
		_, err := s.RegisterIfAbsent(ctx, id, t0)
		require.NoError(t, err)
	}

	wms, err := s.ListWatermarks(ctx)
	require.NoError(t, err)
	require.Len(t, wms, 3)
	assert.Equal(t, "alpha", wms[0].BrewID)
	assert.Equal(t, "bravo", wms[1].BrewID)
	assert.Equal(t, "charlie", wms[2].BrewID)
}

func TestStore_AppendBucketDuplicate(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AppendBucket(ctx, "a", 4, t0.Add(20*time.Minute)))
	require.NoError(t, s.AppendBucket(ctx, "a", 2, t0.Add(10*time.Minute)))

	err := s.AppendBucket(ctx, "a", 9, t0.Add(10*time.Minute))
	require.ErrorIs(t, err, storage.ErrDuplicate)

	buckets, err := s.Buckets(ctx, "a")
	require.NoError(t, err)
	require.Len(t, buckets, 2)
	assert.Equal(t, int64(2), buckets[0].Count)
	assert.True(t, buckets[0].End.Equal(t0.Add(10*time.Minute)))
	assert.Equal(t, int64(4), buckets[1].Count)
	assert.True(t, buckets[1].End.Equal(t0.Add(20*time.Minute)))
}

func TestStore_CloseBucket(t *testing.T) {
	ctx := context.Background()
	w := 10 * time.Minute

	t.Run("counts appends and advances", func(t *testing.T) {
		s := newTestStore(t)
		_, err := s.RegisterIfAbsent(ctx, "a", t0)
		require.NoError(t, err)
		require.NoError(t, s.AppendEvent(ctx, "a", t0.Add(time.Minute)))
		require.NoError(t, s.AppendEvent(ctx, "a", t0.Add(w)))
		require.NoError(t, s.AppendEvent(ctx, "a", t0.Add(w+time.Second)))

		b, err := s.CloseBucket(ctx, "a", t0, t0.Add(w))
		require.NoError(t, err)
		assert.Equal(t, int64(2), b.Count)
		assert.True(t, b.End.Equal(t0.Add(w)))

		wm, _, err := s.Watermark(ctx, "a")
		require.NoError(t, err)
		assert.True(t, wm.At.Equal(t0.Add(w)))

		b, err = s.CloseBucket(ctx, "a", t0.Add(w), t0.Add(2*w))
		require.NoError(t, err)
		assert.Equal(t, int64(1), b.Count)
	})

	t.Run("empty window still emits zero bucket", func(t *testing.T) {
		s := newTestStore(t)
		_, err := s.RegisterIfAbsent(ctx, "a", t0)
		require.NoError(t, err)

		b, err := s.CloseBucket(ctx, "a", t0, t0.Add(w))
		require.NoError(t, err)
		assert.Zero(t, b.Count)

		buckets, err := s.Buckets(ctx, "a")
		require.NoError(t, err)
		assert.Len(t, buckets, 1)
	})

	t.Run("not registered", func(t *testing.T) {
		s := newTestStore(t)
		_, err := s.CloseBucket(ctx, "a", t0, t0.Add(w))
		require.ErrorIs(t, err, storage.ErrNotRegistered)
	})

	t.Run("stale start leaves state untouched", func(t *testing.T) {
		s := newTestStore(t)
		_, err := s.RegisterIfAbsent(ctx, "a", t0)
		require.NoError(t, err)

		_, err = s.CloseBucket(ctx, "a", t0.Add(w), t0.Add(2*w))
		require.ErrorIs(t, err, storage.ErrWatermarkMoved)

		buckets, err := s.Buckets(ctx, "a")
		require.NoError(t, err)
		assert.Empty(t, buckets)

		wm, _, err := s.Watermark(ctx, "a")
		require.NoError(t, err)
		assert.True(t, wm.At.Equal(t0))
	})

	t.Run("existing bucket aborts without advancing", func(t *testing.T) {
		s := newTestStore(t)
		_, err := s.RegisterIfAbsent(ctx, "a", t0)
		require.NoError(t, err)
		require.NoError(t, s.AppendBucket(ctx, "a", 7, t0.Add(w)))

		_, err = s.CloseBucket(ctx, "a", t0, t0.Add(w))
		require.ErrorIs(t, err, storage.ErrDuplicate)

		wm, _, err := s.Watermark(ctx, "a")
		require.NoError(t, err)
		assert.True(t, wm.At.Equal(t0))
	})

	t.Run("invalid window", func(t *testing.T) {
		s := newTestStore(t)
		_, err := s.CloseBucket(ctx, "a", t0, t0)
		require.ErrorIs(t, err, storage.ErrInvalidTimestamp)
	})
}

func TestStore_ConcurrentRecordAndClose(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	w := time.Minute

	_, err := s.RegisterIfAbsent(ctx, "a", t0)
	require.NoError(t, err)

	var (
		mu  sync.Mutex
		now = t0
	)
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now = now.Add(time.Second)
		return now
	}

	const events = 200
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < events; i++ {
			_, err := s.RecordEvent(ctx, "a", clock)
			assert.NoError(t, err)
		}
	}()

	current := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}

	start := t0
	var closed int64
	for i := 0; i < 3; {
		if start.Add(w).After(current()) {
			time.Sleep(time.Millisecond)
			continue
		}
		b, err := s.CloseBucket(ctx, "a", start, start.Add(w))
		require.NoError(t, err)
		closed += b.Count
		start = start.Add(w)
		i++
	}
	wg.Wait()

	// Every event stamped inside a closed window was counted by its step.
	late, err := s.CountEvents(ctx, "a", t0, start)
	require.NoError(t, err)
	assert.Equal(t, late, closed)
}

func TestStore_PingAfterClose(t *testing.T) {
	s, err := New(Config{InMemory: true})
	require.NoError(t, err)
	require.NoError(t, s.Ping(context.Background()))
	require.NoError(t, s.Close())
	assert.Error(t, s.Ping(context.Background()))
}
