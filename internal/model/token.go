package model

import "time"

// TokenClaims is the informational content of a bearer token.
type TokenClaims struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired reports whether the token carried an expiry that has passed at now.
func (c TokenClaims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}

// TokenInspector reads claims from a bearer token without verifying it.
type TokenInspector interface {
	Inspect(token string) (TokenClaims, error)
}
