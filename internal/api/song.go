package api

import (
	"errors"
	"net/http"
	"path/filepath"

	"github.com/gorilla/mux"

	"github.com/keepsakehq/keepsake/server/internal/api/respond"
	"github.com/keepsakehq/keepsake/server/internal/model"
	"github.com/keepsakehq/keepsake/server/internal/services"
	"github.com/keepsakehq/keepsake/server/internal/uploads"
)

// SongHandler handles playlist HTTP requests.
type SongHandler struct {
	svc *services.SongService
}

func NewSongHandler(svc *services.SongService) *SongHandler {
	return &SongHandler{svc: svc}
}

// ListSongs handles GET /songs.
func (h *SongHandler) ListSongs(w http.ResponseWriter, r *http.Request) {
	songs, err := h.svc.List(r.Context())
	if err != nil {
		respond.WriteInternalError(w, "Could not read songs")
		return
	}
	respond.WriteJSON(w, http.StatusOK, songs)
}

// UploadSong handles POST /upload-song: multipart audio plus title.
func (h *SongHandler) UploadSong(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		respond.WriteBadRequest(w, "No file uploaded or wrong file type")
		return
	}
	defer func() { _ = file.Close() }()

	song, err := h.svc.Upload(r.Context(), file, header.Filename, r.FormValue("title"))
	switch {
	case errors.Is(err, uploads.ErrWrongType):
		respond.WriteBadRequest(w, "No file uploaded or wrong file type")
		return
	case errors.Is(err, uploads.ErrTooLarge):
		respond.WriteBadRequest(w, "File too large")
		return
	case err != nil:
		respond.WriteInternalError(w, "Could not store song")
		return
	}

	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Song uploaded",
		"song":    song,
	})
}

// DeleteSong handles DELETE /songs/{filename}.
func (h *SongHandler) DeleteSong(w http.ResponseWriter, r *http.Request) {
	filename := filepath.Base(mux.Vars(r)["filename"])
	if filename == "" || filename == "." {
		respond.WriteBadRequest(w, "Missing filename")
		return
	}

	song, err := h.svc.Delete(r.Context(), filename)
	if errors.Is(err, model.ErrNotFound) {
		respond.WriteNotFound(w, "Song not found")
		return
	}
	if err != nil {
		respond.WriteInternalError(w, "Could not delete song")
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Song deleted",
		"song":    song,
	})
}
