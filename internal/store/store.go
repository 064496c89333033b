// Package store defines persistence operations over the flat JSON record
// sets that back the application. Implementations live under
// internal/store/<driver>/ (currently jsonfile).
//
// Concurrency contract: implementations serialize read-modify-write cycles
// per resource inside the process, but the backing files themselves are
// last-write-wins documents with no cross-process isolation.
package store

import (
	"context"

	"github.com/keepsakehq/keepsake/server/internal/model"
)

// Store exposes the record sets required by services.
type Store interface {
	Memories() Memories
	Songs() Songs
	Dates() Dates
	Sessions() Sessions
	Secret() Secret
}

// Memories is the captioned-image record set.
type Memories interface {
	// Initialized reports whether the record set has ever been written.
	// Update and Delete return model.ErrNotFound before first write.
	Initialized(ctx context.Context) bool
	List(ctx context.Context) ([]model.Record, error)
	// Append adds a record and returns the new record-set size.
	Append(ctx context.Context, rec model.Record) (int, error)
	// Update merges the supplied fields onto the record with the given id.
	// Provided keys overwrite, new keys are added, omitted keys are kept.
	Update(ctx context.Context, id string, fields model.Record) (model.Record, error)
	// Delete removes the record with the given id and returns it.
	Delete(ctx context.Context, id string) (model.Record, error)
}

// Songs is the playlist record set, keyed by stored filename.
type Songs interface {
	List(ctx context.Context) ([]model.Song, error)
	Append(ctx context.Context, s model.Song) error
	Delete(ctx context.Context, filename string) (model.Song, error)
}

// Dates is a single shared document merged shallowly on each write.
type Dates interface {
	Get(ctx context.Context) (model.Record, error)
	Merge(ctx context.Context, fields model.Record) (model.Record, error)
}

// Sessions holds issued tokens. Append may drop entries that are already
// expired at the supplied instant.
type Sessions interface {
	List(ctx context.Context) ([]model.Session, error)
	Append(ctx context.Context, s model.Session, nowMillis int64) error
}

// Secret is the stored shared password, read-only for the service.
type Secret interface {
	Get(ctx context.Context) (model.Secret, error)
}
