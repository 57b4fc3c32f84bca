package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// sessionTTL is how long an issued session token stays valid.
const sessionTTL = 365 * 24 * time.Hour

// TokenService signs and verifies HS256 session tokens. Whatever object
// the caller posts becomes the token's claims; no shape is enforced.
type TokenService struct {
	// secret is the HMAC signing key.
	secret []byte
	// now supplies the server clock, injectable for tests.
	now func() time.Time
}

// NewTokenService constructs a TokenService using the given signing secret.
func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret), now: time.Now}
}

// Issue embeds the caller-supplied claims verbatim into a signed token
// with a 365-day expiry and returns the compact serialization.
func (s *TokenService) Issue(principal map[string]any) (string, error) {
	claims := jwt.MapClaims{}
	for k, v := range principal {
		claims[k] = v
	}
	claims["exp"] = jwt.NewNumericDate(s.now().Add(sessionTTL))
	claims["iat"] = jwt.NewNumericDate(s.now())

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify parses and validates a token string, returning its claims.
// Only HMAC-signed tokens are accepted.
func (s *TokenService) Verify(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
