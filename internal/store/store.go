package store

import (
	"context"
	"errors"
)

// ErrCorrupt marks a persisted record that no longer parses. Callers
// treat it as "no prior snapshot" and continue with defaults.
var ErrCorrupt = errors.New("progress record is corrupt")

// ProgressKey is the fixed logical key the snapshot is persisted
// under. Every driver stores exactly one record.
const ProgressKey = "initiation_progress"

// Store persists the progress snapshot. Load returns (nil, nil) when
// no prior snapshot exists; callers fall back to a fresh snapshot. A
// corrupt persisted record is treated the same as a missing one.
type Store interface {
	Load(ctx context.Context) (*Snapshot, error)
	Save(ctx context.Context, snapshot *Snapshot) error
	Close(ctx context.Context) error
}
