package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/Think-iT-Labs/jad/internal/api/response"
)

// TokenAuth guards the public certificate-exchange routes with a shared
// bearer token. An empty configured token disables the routes entirely
// rather than leaving them open.
func TokenAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token == "" {
				response.WriteError(w, http.StatusForbidden, "certificate exchange is not enabled")
				return
			}

			presented := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			if subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
				response.WriteError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
