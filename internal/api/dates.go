package api

import (
	"encoding/json"
	"net/http"

	"github.com/keepsakehq/keepsake/server/internal/api/respond"
	"github.com/keepsakehq/keepsake/server/internal/model"
	"github.com/keepsakehq/keepsake/server/internal/services"
)

// DatesHandler handles the shared calendar document.
type DatesHandler struct {
	svc *services.DatesService
}

func NewDatesHandler(svc *services.DatesService) *DatesHandler {
	return &DatesHandler{svc: svc}
}

// GetDates handles GET /dates.
func (h *DatesHandler) GetDates(w http.ResponseWriter, r *http.Request) {
	doc, err := h.svc.Get(r.Context())
	if err != nil {
		respond.WriteInternalError(w, "Could not read dates")
		return
	}
	respond.WriteJSON(w, http.StatusOK, doc)
}

// SetDates handles POST /dates, merging the body onto the stored document.
func (h *DatesHandler) SetDates(w http.ResponseWriter, r *http.Request) {
	fields := model.Record{}
	// An empty or malformed body merges nothing.
	_ = json.NewDecoder(r.Body).Decode(&fields)

	merged, err := h.svc.Set(r.Context(), fields)
	if err != nil {
		respond.WriteInternalError(w, "Could not store dates")
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Dates stored",
		"dates":   merged,
	})
}
