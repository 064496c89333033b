package api

import (
	"net/http"
	"time"

	"github.com/keepsakehq/keepsake/server/internal/api/respond"
)

// HealthHandler reports process liveness and uptime.
type HealthHandler struct {
	started time.Time
}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{started: time.Now()}
}

// Ping handles GET /ping.
func (h *HealthHandler) Ping(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"uptime": time.Since(h.started).Seconds(),
		"status": "ok",
	})
}
