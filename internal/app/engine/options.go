package engine

import "time"

// Options configures how often the running book is checkpointed to the
// snapshot store. Engine takes a checkpoint after applying an intent whose
// topic offset is at least SnapshotOffsetDelta past the last checkpoint's.
// SnapshotInterval is carried here but Engine does not read it: no
// checkpoint is taken on a timer.
type Options struct {
	SnapshotInterval    time.Duration
	SnapshotOffsetDelta int64
}

// DefaultEngineOptions returns the default checkpoint cadence.
func DefaultEngineOptions() *Options {
	return &Options{
		SnapshotInterval:    30 * time.Second,
		SnapshotOffsetDelta: 1000,
	}
}
