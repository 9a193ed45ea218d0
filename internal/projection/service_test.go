package projection

import (
	"context"
	"errors"
	"testing"
	"time"

	v1 "github.com/brewlog/brewlog/internal/api/v1"
	coreagg "github.com/brewlog/brewlog/internal/core/aggregation"
	storagemocks "github.com/brewlog/brewlog/internal/mocks/storage"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	t0  = time.Date(2026, 2, 7, 10, 0, 0, 0, time.UTC)
	now = t0.Add(2 * time.Hour)
)

type mocks struct {
	events     *storagemocks.EventStore
	watermarks *storagemocks.WatermarkStore
	buckets    *storagemocks.BucketStore
}

func newTestService(t *testing.T) (*Service, mocks) {
	t.Helper()
	m := mocks{
		events:     storagemocks.NewEventStore(t),
		watermarks: storagemocks.NewWatermarkStore(t),
		buckets:    storagemocks.NewBucketStore(t),
	}
	svc := NewService(m.events, m.watermarks, m.buckets, Options{
		BucketWidth:  coreagg.WindowSpec{Size: 10 * time.Minute},
		DefaultLimit: 100,
		MaxLimit:     1000,
	})
	svc.nowFn = func() time.Time { return now }
	return svc, m
}

func TestService_History(t *testing.T) {
	svc, m := newTestService(t)
	ctx := context.Background()

	m.buckets.EXPECT().
		Buckets(mock.Anything, "A").
		Return([]v1.Bucket{
			{BrewID: "A", Count: 3, End: t0.Add(10 * time.Minute)},
			{BrewID: "A", Count: 0, End: t0.Add(20 * time.Minute)},
		}, nil).
		Once()

	resp, err := svc.History(ctx, HistoryRequest{BrewID: "A"})
	require.NoError(t, err)
	require.Equal(t, []int64{3, 0}, resp.Data)
	require.NotNil(t, resp.First)
	require.Equal(t, t0.Add(10*time.Minute), *resp.First)
	require.Equal(t, "10m", resp.BucketWidth)
}

func TestService_History_Empty(t *testing.T) {
	svc, m := newTestService(t)

	m.buckets.EXPECT().Buckets(mock.Anything, "A").Return(nil, nil).Once()

	resp, err := svc.History(context.Background(), HistoryRequest{BrewID: "A"})
	require.NoError(t, err)
	require.NotNil(t, resp.Data)
	require.Empty(t, resp.Data)
	require.Nil(t, resp.First)
}

func TestService_History_Granularity(t *testing.T) {
	buckets := make([]v1.Bucket, 0, 8)
	for i := 1; i <= 8; i++ {
		buckets = append(buckets, v1.Bucket{BrewID: "A", Count: int64(i), End: t0.Add(time.Duration(i) * 10 * time.Minute)})
	}

	tests := []struct {
		granularity string
		wantData    []int64
		wantFirst   time.Time
	}{
		{granularity: "1h", wantData: []int64{21, 15}, wantFirst: t0.Add(time.Hour)},
		{granularity: "20m", wantData: []int64{3, 7, 11, 15}, wantFirst: t0.Add(20 * time.Minute)},
		{granularity: "total", wantData: []int64{36}, wantFirst: t0.Add(80 * time.Minute)},
		{granularity: "10m", wantData: []int64{1, 2, 3, 4, 5, 6, 7, 8}, wantFirst: t0.Add(10 * time.Minute)},
	}

	for _, tc := range tests {
		t.Run(tc.granularity, func(t *testing.T) {
			svc, m := newTestService(t)
			m.buckets.EXPECT().Buckets(mock.Anything, "A").Return(buckets, nil).Once()

			resp, err := svc.History(context.Background(), HistoryRequest{BrewID: "A", Granularity: tc.granularity})
			require.NoError(t, err)
			require.Equal(t, tc.wantData, resp.Data)
			require.Equal(t, tc.wantFirst, *resp.First)
		})
	}
}

func TestService_History_InvalidGranularity(t *testing.T) {
	for _, g := range []string{"15m", "5m", "weekly"} {
		t.Run(g, func(t *testing.T) {
			svc, _ := newTestService(t)
			_, err := svc.History(context.Background(), HistoryRequest{BrewID: "A", Granularity: g})
			require.ErrorIs(t, err, ErrInvalidQuery)
		})
	}
}

func TestService_RawHistory(t *testing.T) {
	svc, m := newTestService(t)

	events := []time.Time{t0.Add(time.Minute), t0.Add(5 * time.Minute)}
	m.events.EXPECT().
		RangeEvents(mock.Anything, "A", t0, t0.Add(10*time.Minute), 2).
		Return(events, nil).
		Once()

	resp, err := svc.RawHistory(context.Background(), RawHistoryRequest{
		BrewID:  "A",
		StartAt: t0,
		EndAt:   t0.Add(10 * time.Minute),
		Limit:   2,
	})
	require.NoError(t, err)
	require.Equal(t, events, resp.Timestamps)
}

func TestService_RawHistory_Defaults(t *testing.T) {
	svc, m := newTestService(t)

	m.events.EXPECT().
		RangeEvents(mock.Anything, "A", time.Unix(0, 0).UTC(), now, 100).
		Return([]time.Time{}, nil).
		Once()

	resp, err := svc.RawHistory(context.Background(), RawHistoryRequest{BrewID: "A"})
	require.NoError(t, err)
	require.Equal(t, 100, resp.Limit)
	require.Empty(t, resp.Timestamps)
}

func TestService_RawHistory_LimitCapped(t *testing.T) {
	svc, m := newTestService(t)

	m.events.EXPECT().
		RangeEvents(mock.Anything, "A", mock.Anything, mock.Anything, 1000).
		Return([]time.Time{}, nil).
		Once()

	resp, err := svc.RawHistory(context.Background(), RawHistoryRequest{BrewID: "A", Limit: 5000})
	require.NoError(t, err)
	require.Equal(t, 1000, resp.Limit)
}

func TestService_RawHistory_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  RawHistoryRequest
	}{
		{name: "end before start", req: RawHistoryRequest{BrewID: "A", StartAt: t0, EndAt: t0.Add(-time.Minute)}},
		{name: "negative limit", req: RawHistoryRequest{BrewID: "A", Limit: -1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, _ := newTestService(t)
			_, err := svc.RawHistory(context.Background(), tc.req)
			require.ErrorIs(t, err, ErrInvalidQuery)
		})
	}
}

func TestService_Status(t *testing.T) {
	svc, m := newTestService(t)

	m.watermarks.EXPECT().
		Watermark(mock.Anything, "A").
		Return(v1.Watermark{BrewID: "A", At: t0.Add(90 * time.Minute), RegisteredAt: t0}, true, nil).
		Once()

	resp, err := svc.Status(context.Background(), "A")
	require.NoError(t, err)
	require.True(t, resp.Registered)
	require.Equal(t, t0, resp.RegisteredAt)
	require.Equal(t, int64(30*60), resp.LagSeconds)
}

func TestService_Status_NotRegistered(t *testing.T) {
	svc, m := newTestService(t)

	m.watermarks.EXPECT().Watermark(mock.Anything, "A").Return(v1.Watermark{}, false, nil).Once()

	_, err := svc.Status(context.Background(), "A")
	require.ErrorIs(t, err, ErrBrewNotFound)
}

func TestService_StoreErrorsAreWrapped(t *testing.T) {
	svc, m := newTestService(t)
	boom := errors.New("connection refused")

	m.buckets.EXPECT().Buckets(mock.Anything, "A").Return(nil, boom).Once()

	_, err := svc.History(context.Background(), HistoryRequest{BrewID: "A"})
	require.ErrorIs(t, err, boom)
	require.NotErrorIs(t, err, ErrInvalidQuery)
}
