package api

import (
	"encoding/json"
	"net/http"

	"github.com/keepsakehq/keepsake/server/internal/api/respond"
	"github.com/keepsakehq/keepsake/server/internal/auth"
)

// AuthHandler exposes the shared-password login endpoint.
type AuthHandler struct {
	authn *auth.Authenticator
}

func NewAuthHandler(authn *auth.Authenticator) *AuthHandler {
	return &AuthHandler{authn: authn}
}

// CheckPassword handles POST /check-password. A wrong password is a normal
// 200 {"ok":false} with no session side effects and no hint at why; only a
// failed session write is an error.
func (h *AuthHandler) CheckPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Password string `json:"password"`
	}
	// Malformed or empty bodies behave like an empty candidate.
	_ = json.NewDecoder(r.Body).Decode(&req)

	token, ok, err := h.authn.Authenticate(r.Context(), req.Password)
	if err != nil {
		respond.WriteInternalError(w, "Could not create session")
		return
	}
	if !ok {
		respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"ok": false})
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "token": token})
}
