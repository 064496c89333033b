package services

import (
	"context"

	"github.com/keepsakehq/keepsake/server/internal/model"
	"github.com/keepsakehq/keepsake/server/internal/store"
)

// DatesService manages the shared calendar document.
type DatesService struct {
	store store.Store
}

func NewDatesService(s store.Store) *DatesService {
	return &DatesService{store: s}
}

func (s *DatesService) Get(ctx context.Context) (model.Record, error) {
	return s.store.Dates().Get(ctx)
}

// Set merges the supplied fields onto the stored document and returns the
// merged result.
func (s *DatesService) Set(ctx context.Context, fields model.Record) (model.Record, error) {
	return s.store.Dates().Merge(ctx, fields)
}
