package services

import (
	"context"
	"io"

	"github.com/rs/zerolog"

	"github.com/keepsakehq/keepsake/server/internal/model"
	"github.com/keepsakehq/keepsake/server/internal/store"
	"github.com/keepsakehq/keepsake/server/internal/uploads"
)

// SongService manages the playlist and its stored audio files.
type SongService struct {
	store  store.Store
	intake *uploads.Intake
	log    zerolog.Logger
}

func NewSongService(s store.Store, intake *uploads.Intake, log zerolog.Logger) *SongService {
	return &SongService{store: s, intake: intake, log: log}
}

func (s *SongService) List(ctx context.Context) ([]model.Song, error) {
	return s.store.Songs().List(ctx)
}

// Upload stores an audio payload and appends a playlist entry. Title falls
// back to the original file name, then to "Unknown".
func (s *SongService) Upload(ctx context.Context, file io.Reader, originalName, title string) (model.Song, error) {
	stored, err := s.intake.Store(file, originalName, uploads.Audio)
	if err != nil {
		return model.Song{}, err
	}
	if title == "" {
		title = originalName
	}
	if title == "" {
		title = "Unknown"
	}
	song := model.Song{
		Title:    title,
		Filename: stored.StoredFilename,
		URL:      s.intake.URLFor(stored.StoredFilename),
	}
	if err := s.store.Songs().Append(ctx, song); err != nil {
		return model.Song{}, err
	}
	return song, nil
}

// Delete removes the playlist entry and then its stored file; a failed
// unlink is logged but does not fail the delete.
func (s *SongService) Delete(ctx context.Context, filename string) (model.Song, error) {
	song, err := s.store.Songs().Delete(ctx, filename)
	if err != nil {
		return model.Song{}, err
	}
	if rmErr := s.intake.Remove(filename); rmErr != nil {
		s.log.Error().Err(rmErr).Str("filename", filename).Msg("failed to delete song file")
	}
	return song, nil
}
