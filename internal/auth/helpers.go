package auth

import (
	"net/http"
	"strings"
)

// TokenHeader is the fallback header carrying a raw token.
const TokenHeader = "X-Mem-Token"

// ExtractToken pulls the session token from the Authorization header or the
// X-Mem-Token fallback. A "Bearer " prefix is stripped; otherwise the raw
// header value is the token. Returns ErrMissingToken when neither header is
// present.
func ExtractToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		header = r.Header.Get(TokenHeader)
	}
	if header == "" {
		return "", ErrMissingToken
	}
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer "), nil
	}
	return header, nil
}
