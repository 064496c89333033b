// Package jsonfile implements store.Store over flat JSON documents, one
// file per resource, rewritten wholesale on every mutation.
//
// Reads fail soft: a missing, empty, or unparsable file yields the
// resource's fallback value (empty slice or object) so that a corrupted
// document degrades to an empty record set instead of taking the service
// down. Writes marshal the full record set with two-space indentation; the
// files double as operator-editable state.
package jsonfile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

// File names under the data directory, one per resource.
const (
	memoriesFile = "memories.json"
	songsFile    = "songs.json"
	datesFile    = "dates.json"
	sessionsFile = "sessions.json"
	passwordFile = "password.json"
)

// Store is the jsonfile-backed store.Store. A per-resource mutex serializes
// read-modify-write cycles within the process; the on-disk documents remain
// last-write-wins with no cross-process locking.
type Store struct {
	dir string
	log zerolog.Logger

	memories memories
	songs    songs
	dates    dates
	sessions sessions
	secret   secret
}

// New creates the data directory if needed and returns a Store rooted there.
func New(dir string, log zerolog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	s := &Store{dir: dir, log: log}
	s.memories = memories{res: s.resource(memoriesFile)}
	s.songs = songs{res: s.resource(songsFile)}
	s.dates = dates{res: s.resource(datesFile)}
	s.sessions = sessions{res: s.resource(sessionsFile)}
	s.secret = secret{res: s.resource(passwordFile)}
	return s, nil
}

func (s *Store) resource(name string) *resource {
	return &resource{path: filepath.Join(s.dir, name), log: s.log}
}

// resource is one JSON document plus its in-process lock.
type resource struct {
	mu   sync.Mutex
	path string
	log  zerolog.Logger
}

// load decodes the document into out, leaving out untouched (the caller's
// fallback) when the file is missing, empty, or corrupt. Parse failures are
// logged and swallowed.
func (r *resource) load(out interface{}) {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			r.log.Warn().Err(err).Str("path", r.path).Msg("record set unreadable, using fallback")
		}
		return
	}
	if len(raw) == 0 {
		return
	}
	if err := json.Unmarshal(raw, out); err != nil {
		r.log.Warn().Err(err).Str("path", r.path).Msg("record set unparsable, using fallback")
	}
}

// save rewrites the full document. A failed write means the mutation did
// not take effect; callers must propagate the error.
func (r *resource) save(v interface{}) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(r.path, raw, 0o644); err != nil {
		r.log.Error().Err(err).Str("path", r.path).Msg("record set write failed")
		return err
	}
	return nil
}

// exists reports whether the document has ever been written.
func (r *resource) exists() bool {
	_, err := os.Stat(r.path)
	return err == nil
}
