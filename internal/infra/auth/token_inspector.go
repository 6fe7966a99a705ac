// Package auth provides client-side inspection of bearer credentials.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenInspector answers whether a persisted bearer token is still usable.
// The client never verifies signatures (it has no secret); it only reads the
// expiry claim so an obviously dead credential is not restored at startup.
type TokenInspector struct {
	now func() time.Time
}

// NewTokenInspector creates an inspector using wall-clock time.
func NewTokenInspector() *TokenInspector {
	return &TokenInspector{now: time.Now}
}

// Usable reports whether the token can still authenticate requests. Opaque
// (non-JWT) tokens and JWTs without an exp claim are assumed usable; the
// backend remains the authority either way.
func (i *TokenInspector) Usable(token string) bool {
	if token == "" {
		return false
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return true
	}

	expires, err := parsed.Claims.GetExpirationTime()
	if err != nil || expires == nil {
		return true
	}

	return expires.After(i.now())
}
