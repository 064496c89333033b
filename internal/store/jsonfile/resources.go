package jsonfile

import (
	"context"
	"fmt"

	"github.com/keepsakehq/keepsake/server/internal/model"
	"github.com/keepsakehq/keepsake/server/internal/store"
)

func (s *Store) Memories() store.Memories { return &s.memories }
func (s *Store) Songs() store.Songs       { return &s.songs }
func (s *Store) Dates() store.Dates       { return &s.dates }
func (s *Store) Sessions() store.Sessions { return &s.sessions }
func (s *Store) Secret() store.Secret     { return &s.secret }

type memories struct{ res *resource }

func (m *memories) Initialized(ctx context.Context) bool {
	return m.res.exists()
}

func (m *memories) List(ctx context.Context) ([]model.Record, error) {
	m.res.mu.Lock()
	defer m.res.mu.Unlock()
	recs := []model.Record{}
	m.res.load(&recs)
	return recs, nil
}

func (m *memories) Append(ctx context.Context, rec model.Record) (int, error) {
	m.res.mu.Lock()
	defer m.res.mu.Unlock()
	recs := []model.Record{}
	m.res.load(&recs)
	recs = append(recs, rec)
	if err := m.res.save(recs); err != nil {
		return 0, fmt.Errorf("append memory: %w", err)
	}
	return len(recs), nil
}

func (m *memories) Update(ctx context.Context, id string, fields model.Record) (model.Record, error) {
	m.res.mu.Lock()
	defer m.res.mu.Unlock()
	if !m.res.exists() {
		return nil, model.ErrNotFound
	}
	recs := []model.Record{}
	m.res.load(&recs)
	for i, rec := range recs {
		if rec.String("id") != id {
			continue
		}
		merged := rec.Merge(fields)
		recs[i] = merged
		if err := m.res.save(recs); err != nil {
			return nil, fmt.Errorf("update memory %s: %w", id, err)
		}
		return merged, nil
	}
	return nil, model.ErrNotFound
}

func (m *memories) Delete(ctx context.Context, id string) (model.Record, error) {
	m.res.mu.Lock()
	defer m.res.mu.Unlock()
	if !m.res.exists() {
		return nil, model.ErrNotFound
	}
	recs := []model.Record{}
	m.res.load(&recs)
	for i, rec := range recs {
		if rec.String("id") != id {
			continue
		}
		recs = append(recs[:i], recs[i+1:]...)
		if err := m.res.save(recs); err != nil {
			return nil, fmt.Errorf("delete memory %s: %w", id, err)
		}
		return rec, nil
	}
	return nil, model.ErrNotFound
}

type songs struct{ res *resource }

func (s *songs) List(ctx context.Context) ([]model.Song, error) {
	s.res.mu.Lock()
	defer s.res.mu.Unlock()
	list := []model.Song{}
	s.res.load(&list)
	return list, nil
}

func (s *songs) Append(ctx context.Context, song model.Song) error {
	s.res.mu.Lock()
	defer s.res.mu.Unlock()
	list := []model.Song{}
	s.res.load(&list)
	list = append(list, song)
	if err := s.res.save(list); err != nil {
		return fmt.Errorf("append song: %w", err)
	}
	return nil
}

func (s *songs) Delete(ctx context.Context, filename string) (model.Song, error) {
	s.res.mu.Lock()
	defer s.res.mu.Unlock()
	list := []model.Song{}
	s.res.load(&list)
	for i, song := range list {
		if song.Filename != filename {
			continue
		}
		list = append(list[:i], list[i+1:]...)
		if err := s.res.save(list); err != nil {
			return model.Song{}, fmt.Errorf("delete song %s: %w", filename, err)
		}
		return song, nil
	}
	return model.Song{}, model.ErrNotFound
}

type dates struct{ res *resource }

func (d *dates) Get(ctx context.Context) (model.Record, error) {
	d.res.mu.Lock()
	defer d.res.mu.Unlock()
	doc := model.Record{}
	d.res.load(&doc)
	return doc, nil
}

func (d *dates) Merge(ctx context.Context, fields model.Record) (model.Record, error) {
	d.res.mu.Lock()
	defer d.res.mu.Unlock()
	doc := model.Record{}
	d.res.load(&doc)
	merged := doc.Merge(fields)
	if err := d.res.save(merged); err != nil {
		return nil, fmt.Errorf("merge dates: %w", err)
	}
	return merged, nil
}

type sessions struct{ res *resource }

func (s *sessions) List(ctx context.Context) ([]model.Session, error) {
	s.res.mu.Lock()
	defer s.res.mu.Unlock()
	list := []model.Session{}
	s.res.load(&list)
	return list, nil
}

// Append stores a new session, dropping entries already expired at
// nowMillis so the record set does not grow without bound.
func (s *sessions) Append(ctx context.Context, sess model.Session, nowMillis int64) error {
	s.res.mu.Lock()
	defer s.res.mu.Unlock()
	list := []model.Session{}
	s.res.load(&list)
	kept := list[:0]
	for _, existing := range list {
		if existing.ValidAt(nowMillis) {
			kept = append(kept, existing)
		}
	}
	kept = append(kept, sess)
	if err := s.res.save(kept); err != nil {
		return fmt.Errorf("append session: %w", err)
	}
	return nil
}

type secret struct{ res *resource }

func (s *secret) Get(ctx context.Context) (model.Secret, error) {
	s.res.mu.Lock()
	defer s.res.mu.Unlock()
	sec := model.Secret{}
	s.res.load(&sec)
	return sec, nil
}
