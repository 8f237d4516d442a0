package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"
)

// SharedSecretAuth guards a route with a static bearer token. An absent,
// malformed, or mismatched Authorization header all yield 401; callers that
// know the secret are fully trusted.
func SharedSecretAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "missing authorization header", http.StatusUnauthorized)
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				http.Error(w, "invalid authorization header format", http.StatusUnauthorized)
				return
			}

			if secret == "" || subtle.ConstantTimeCompare([]byte(parts[1]), []byte(secret)) != 1 {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
