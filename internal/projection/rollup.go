package projection

import (
	"time"

	v1 "github.com/brewlog/brewlog/internal/api/v1"
)

// rollupTotal sums every bucket into one. The result ends where the last bucket ends.
func rollupTotal(buckets []v1.Bucket) []v1.Bucket {
	if len(buckets) == 0 {
		return nil
	}

	total := v1.Bucket{BrewID: buckets[0].BrewID, End: buckets[len(buckets)-1].End}
	for _, b := range buckets {
		total.Count += b.Count
	}
	return []v1.Bucket{total}
}

// rollupByFactor groups factor consecutive buckets, starting at the first one.
// Buckets of a brew are contiguous, so each group spans factor*width.
// A trailing partial group is returned with the end its full group will have.
func rollupByFactor(buckets []v1.Bucket, factor int, width time.Duration) []v1.Bucket {
	if factor <= 1 {
		return buckets
	}

	rolled := make([]v1.Bucket, 0, (len(buckets)+factor-1)/factor)
	for i := 0; i < len(buckets); i += factor {
		group := v1.Bucket{
			BrewID: buckets[i].BrewID,
			End:    buckets[i].End.Add(time.Duration(factor-1) * width),
		}
		for j := i; j < i+factor && j < len(buckets); j++ {
			group.Count += buckets[j].Count
		}
		rolled = append(rolled, group)
	}
	return rolled
}
