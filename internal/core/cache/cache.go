package cache

import "context"

// SeenCache remembers which brew IDs the ingest path has already registered.
//
// MarkSeen records brewID and reports whether it was already present.
// A false answer means the caller must make sure the brew is registered.
type SeenCache interface {
	MarkSeen(ctx context.Context, brewID string) (alreadySeen bool, err error)
	Forget(ctx context.Context, brewID string) error
}
