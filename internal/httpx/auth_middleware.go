package httpx

import (
	"crypto/subtle"
	"net/http"
)

const internalSecretHeader = "X-Internal-Secret"

// InternalSecretMiddleware guards internal job endpoints. An empty secret
// disables the endpoints entirely.
func InternalSecretMiddleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secret == "" {
				JSONError(w, r, http.StatusServiceUnavailable, "DISABLED", "Internal jobs are disabled", nil)
				return
			}
			got := r.Header.Get(internalSecretHeader)
			if subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
				JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid internal secret", nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
