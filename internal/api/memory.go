package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/keepsakehq/keepsake/server/internal/api/respond"
	"github.com/keepsakehq/keepsake/server/internal/model"
	"github.com/keepsakehq/keepsake/server/internal/services"
	"github.com/keepsakehq/keepsake/server/internal/uploads"
)

// MemoryHandler handles memory-related HTTP requests (thin transport layer).
type MemoryHandler struct {
	svc *services.MemoryService
}

func NewMemoryHandler(svc *services.MemoryService) *MemoryHandler {
	return &MemoryHandler{svc: svc}
}

// ListMemories handles GET /memories. Returns the full record set, no
// pagination.
func (h *MemoryHandler) ListMemories(w http.ResponseWriter, r *http.Request) {
	memories, err := h.svc.List(r.Context())
	if err != nil {
		respond.WriteInternalError(w, "Could not read memories")
		return
	}
	respond.WriteJSON(w, http.StatusOK, memories)
}

// AddMemory handles POST /add-memory. Deliberately ungated to match the
// existing front end; see DESIGN.md on the create/read auth asymmetry.
func (h *MemoryHandler) AddMemory(w http.ResponseWriter, r *http.Request) {
	var rec model.Record
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	count, id, err := h.svc.Add(r.Context(), rec)
	if err != nil {
		respond.WriteInternalError(w, "Could not store memory")
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Memory added",
		"count":   count,
		"id":      id,
	})
}

// UpdateMemory handles PUT /memories/{id} with shallow-merge semantics.
func (h *MemoryHandler) UpdateMemory(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var fields model.Record
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}

	memory, err := h.svc.Update(r.Context(), id, fields)
	if err != nil {
		h.writeMemoryError(w, r, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Memory updated",
		"memory":  memory,
	})
}

// DeleteMemory handles DELETE /memories/{id}.
func (h *MemoryHandler) DeleteMemory(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	removed, err := h.svc.Delete(r.Context(), id)
	if err != nil {
		h.writeMemoryError(w, r, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Memory deleted",
		"removed": removed,
	})
}

// UploadMemory handles POST /upload-memory: multipart image plus metadata.
func (h *MemoryHandler) UploadMemory(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		respond.WriteBadRequest(w, "No file uploaded")
		return
	}
	defer func() { _ = file.Close() }()

	caption := r.FormValue("caption")
	if caption == "" {
		caption = r.FormValue("title")
	}

	mem, err := h.svc.Upload(r.Context(), file, header.Filename,
		r.FormValue("name"), caption, r.FormValue("details"))
	switch {
	case errors.Is(err, uploads.ErrWrongType):
		respond.WriteBadRequest(w, "Only image files allowed")
		return
	case errors.Is(err, uploads.ErrTooLarge):
		respond.WriteBadRequest(w, "File too large")
		return
	case err != nil:
		respond.WriteInternalError(w, "Could not store memory")
		return
	}

	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Memory uploaded",
		"mem":     mem,
	})
}

// writeMemoryError maps lookup failures onto the two distinct 404 bodies
// the front end relies on: a never-initialized store versus a missing id.
func (h *MemoryHandler) writeMemoryError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, model.ErrNotFound) {
		if !h.svc.Initialized(r.Context()) {
			respond.WriteNotFound(w, "No memories store")
			return
		}
		respond.WriteNotFound(w, "Memory not found")
		return
	}
	respond.WriteInternalError(w, "Could not store memory")
}
