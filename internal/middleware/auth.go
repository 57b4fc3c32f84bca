// Package middleware provides HTTP middlewares for authentication and logging.
package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// TokenVerifier validates a session token string and returns its claims.
type TokenVerifier interface {
	Verify(tokenString string) (jwt.MapClaims, error)
}

// CookieAuth returns a middleware that enforces session-token authentication.
//
// The token is read from the "token" cookie. A missing cookie is rejected
// with 401, an invalid or expired token with 403. On success the decoded
// claims are stored in the request context for downstream handlers.
func CookieAuth(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie("token")
			if err != nil {
				writeMessage(w, http.StatusUnauthorized, "unauthorized access")
				return
			}

			claims, err := verifier.Verify(cookie.Value)
			if err != nil {
				writeMessage(w, http.StatusForbidden, "forbidden access")
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetClaimsFromContext extracts the decoded session claims from the request
// context. Returns nil if the request was not authenticated.
func GetClaimsFromContext(ctx context.Context) jwt.MapClaims {
	if claims, ok := ctx.Value(claimsKey).(jwt.MapClaims); ok {
		return claims
	}
	return nil
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
}
