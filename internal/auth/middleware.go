package auth

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Middleware gates a route behind the Authorizer. Denied requests get a
// 401 with body {"error":"Unauthorized"} and the wrapped handler never
// runs, so no partial reads or writes of the guarded resource happen.
func Middleware(authz Authorizer) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := ExtractToken(r)
			if err == nil {
				err = authz.Authorize(r.Context(), token)
			}
			if err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"Unauthorized"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
