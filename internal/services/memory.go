package services

import (
	"context"
	"io"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/keepsakehq/keepsake/server/internal/model"
	"github.com/keepsakehq/keepsake/server/internal/store"
	"github.com/keepsakehq/keepsake/server/internal/uploads"
)

// MemoryService orchestrates the memories record set and its backing
// assets.
type MemoryService struct {
	store  store.Store
	intake *uploads.Intake
	log    zerolog.Logger
	now    func() time.Time
}

func NewMemoryService(s store.Store, intake *uploads.Intake, log zerolog.Logger) *MemoryService {
	return &MemoryService{store: s, intake: intake, log: log, now: time.Now}
}

// WithClock overrides the time source; used by tests.
func (s *MemoryService) WithClock(now func() time.Time) *MemoryService {
	s.now = now
	return s
}

func (s *MemoryService) List(ctx context.Context) ([]model.Record, error) {
	return s.store.Memories().List(ctx)
}

// Initialized reports whether the memories record set has ever been
// written.
func (s *MemoryService) Initialized(ctx context.Context) bool {
	return s.store.Memories().Initialized(ctx)
}

// Add appends a caller-supplied record. A missing id defaults to the
// current epoch-millis string, which is only a weak uniqueness guarantee:
// two creates in the same millisecond can collide.
func (s *MemoryService) Add(ctx context.Context, rec model.Record) (count int, id string, err error) {
	id = rec.String("id")
	if id == "" {
		id = strconv.FormatInt(s.now().UnixMilli(), 10)
	}
	payload := rec.Merge(model.Record{"id": id})
	count, err = s.store.Memories().Append(ctx, payload)
	if err != nil {
		return 0, "", err
	}
	return count, id, nil
}

// Update merges the supplied fields onto the memory with the given id.
func (s *MemoryService) Update(ctx context.Context, id string, fields model.Record) (model.Record, error) {
	return s.store.Memories().Update(ctx, id, fields)
}

// Delete removes the memory and then attempts best-effort removal of its
// backing asset when imageUrl names a file in the upload directory. Asset
// cleanup failures are logged, never surfaced.
func (s *MemoryService) Delete(ctx context.Context, id string) (model.Record, error) {
	removed, err := s.store.Memories().Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if imageURL := removed.String("imageUrl"); imageURL != "" {
		if rmErr := s.intake.Remove(imageURL); rmErr != nil {
			s.log.Warn().Err(rmErr).Str("imageUrl", imageURL).Msg("failed to delete memory asset")
		}
	}
	return removed, nil
}

// Upload stores an image payload and appends a memory referencing it.
// Caption falls back to the provided title, then to the original file name;
// name falls back to "Anonymous".
func (s *MemoryService) Upload(ctx context.Context, file io.Reader, originalName, name, caption, details string) (model.Memory, error) {
	stored, err := s.intake.Store(file, originalName, uploads.Image)
	if err != nil {
		return model.Memory{}, err
	}
	if caption == "" {
		caption = originalName
	}
	if name == "" {
		name = "Anonymous"
	}
	mem := model.Memory{
		ID:       strconv.FormatInt(s.now().UnixMilli(), 10),
		Name:     name,
		Caption:  caption,
		Details:  details,
		ImageURL: s.intake.URLFor(stored.StoredFilename),
	}
	if _, err := s.store.Memories().Append(ctx, mem.AsRecord()); err != nil {
		return model.Memory{}, err
	}
	return mem, nil
}
