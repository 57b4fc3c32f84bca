package http

import (
	"encoding/json"
	"net/http"
)

// TokenIssuer defines the interface for session-token issuance
// required by the HTTP handlers.
type TokenIssuer interface {
	// Issue signs the given claims into a session token string.
	Issue(principal map[string]any) (string, error)
}

// TokenHandler handles HTTP requests for session-token issuance.
type TokenHandler struct {
	// TokenService signs the session tokens.
	TokenService TokenIssuer
}

// Issue handles POST /api/jwt requests.
// The posted object becomes the session principal as-is; no shape is
// enforced. The signed token is set as an HTTP-only, cross-site-capable
// cookie and the body acknowledges with {"status":true}.
func (h *TokenHandler) Issue(w http.ResponseWriter, r *http.Request) {
	var principal map[string]any
	if err := json.NewDecoder(r.Body).Decode(&principal); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := h.TokenService.Issue(principal)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})

	writeJSON(w, http.StatusOK, map[string]bool{"status": true})
}
