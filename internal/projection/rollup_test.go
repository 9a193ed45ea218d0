package projection

import (
	"testing"
	"time"

	v1 "github.com/brewlog/brewlog/internal/api/v1"
	"github.com/stretchr/testify/require"
)

func bucketsFrom(start time.Time, width time.Duration, counts ...int64) []v1.Bucket {
	out := make([]v1.Bucket, 0, len(counts))
	for i, c := range counts {
		out = append(out, v1.Bucket{
			BrewID: "a",
			Count:  c,
			End:    start.Add(time.Duration(i+1) * width),
		})
	}
	return out
}

func TestRollupTotal(t *testing.T) {
	start := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	w := 10 * time.Minute

	require.Nil(t, rollupTotal(nil))

	got := rollupTotal(bucketsFrom(start, w, 1, 2, 3))
	require.Len(t, got, 1)
	require.Equal(t, int64(6), got[0].Count)
	require.Equal(t, start.Add(30*time.Minute), got[0].End)
}

func TestRollupByFactor(t *testing.T) {
	start := time.Date(2026, 2, 1, 10, 3, 0, 0, time.UTC)
	w := 10 * time.Minute

	tests := []struct {
		name       string
		counts     []int64
		factor     int
		wantCounts []int64
		wantFirst  time.Time
	}{
		{
			name:       "factor one is identity",
			counts:     []int64{1, 2, 3},
			factor:     1,
			wantCounts: []int64{1, 2, 3},
			wantFirst:  start.Add(w),
		},
		{
			name:       "exact groups",
			counts:     []int64{1, 1, 1, 2, 2, 2},
			factor:     3,
			wantCounts: []int64{3, 6},
			wantFirst:  start.Add(3 * w),
		},
		{
			name:       "trailing partial group keeps nominal end",
			counts:     []int64{1, 1, 1, 1, 1, 1, 5},
			factor:     6,
			wantCounts: []int64{6, 5},
			wantFirst:  start.Add(6 * w),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := rollupByFactor(bucketsFrom(start, w, tc.counts...), tc.factor, w)
			counts := make([]int64, 0, len(got))
			for _, b := range got {
				counts = append(counts, b.Count)
			}
			require.Equal(t, tc.wantCounts, counts)
			require.Equal(t, tc.wantFirst, got[0].End)
		})
	}
}

func TestRollupByFactor_PartialGroupEnd(t *testing.T) {
	start := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	w := 10 * time.Minute

	got := rollupByFactor(bucketsFrom(start, w, 1, 1, 1, 1, 1, 1, 5), 6, w)
	require.Len(t, got, 2)
	require.Equal(t, start.Add(12*w), got[1].End)
}
