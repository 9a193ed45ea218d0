package postgres

// SQL statements for the brew event log, watermark table and bucket table.

const (
	// queryAppendEvent inserts one raw event. No uniqueness constraint: duplicates are real brews.
	queryAppendEvent = `
		INSERT INTO brew_events (brew_id, occurred_at)
		VALUES ($1, $2)
	`

	// queryCountEvents counts events in the half-open window (after, through].
	// Served by idx_brew_events_brew_id_occurred_at.
	queryCountEvents = `
		SELECT COUNT(*)
		FROM brew_events
		WHERE brew_id = $1
		  AND occurred_at > $2
		  AND occurred_at <= $3
	`

	// queryRangeEvents returns raw timestamps in (after, through], oldest first.
	// id breaks ties so equal timestamps come back in insertion order.
	queryRangeEvents = `
		SELECT occurred_at
		FROM brew_events
		WHERE brew_id = $1
		  AND occurred_at > $2
		  AND occurred_at <= $3
		ORDER BY occurred_at ASC, id ASC
		LIMIT $4
	`

	// queryLockWatermarkShared is taken by the ingest path. It conflicts with
	// queryLockWatermarkForUpdate, so an event is stamped either before a bucket
	// step starts counting or after it commits.
	queryLockWatermarkShared = `
		SELECT watermark_at
		FROM brew_watermarks
		WHERE brew_id = $1
		FOR SHARE
	`

	queryLockWatermarkForUpdate = `
		SELECT watermark_at
		FROM brew_watermarks
		WHERE brew_id = $1
		FOR UPDATE
	`

	queryGetWatermark = `
		SELECT brew_id, watermark_at, registered_at
		FROM brew_watermarks
		WHERE brew_id = $1
	`

	// queryRegisterWatermark never overwrites: the first registration is the aggregation origin.
	queryRegisterWatermark = `
		INSERT INTO brew_watermarks (brew_id, watermark_at, registered_at, updated_at)
		VALUES ($1, $2, $2, $3)
		ON CONFLICT (brew_id) DO NOTHING
	`

	queryAdvanceWatermark = `
		UPDATE brew_watermarks
		SET watermark_at = $2, updated_at = $3
		WHERE brew_id = $1
	`

	queryListWatermarks = `
		SELECT brew_id, watermark_at, registered_at
		FROM brew_watermarks
		ORDER BY brew_id ASC
	`

	// queryAppendBucket reports duplicates as zero rows affected.
	queryAppendBucket = `
		INSERT INTO brew_buckets (brew_id, event_count, bucket_end, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (brew_id, bucket_end) DO NOTHING
	`

	queryListBuckets = `
		SELECT event_count, bucket_end
		FROM brew_buckets
		WHERE brew_id = $1
		ORDER BY bucket_end ASC
	`

	querySchemaTables = `
		SELECT COUNT(*)
		FROM information_schema.tables
		WHERE table_name = ANY($1)
	`
)

var requiredTables = []string{"brew_events", "brew_watermarks", "brew_buckets"}
