package token

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dtroode/repairctl/internal/model"
)

// ErrNotJWT is returned when the bearer token is opaque.
var ErrNotJWT = errors.New("token is not a JWT")

// Inspector decodes JWT claims without verifying the signature.
// The signing key lives on the server, so the result is informational only
// and never decides whether a session is authenticated.
type Inspector struct {
	parser *jwt.Parser
}

var _ model.TokenInspector = (*Inspector)(nil)

func NewInspector() *Inspector {
	return &Inspector{parser: jwt.NewParser()}
}

// Inspect returns the subject and time claims carried by tokenString.
func (i *Inspector) Inspect(tokenString string) (model.TokenClaims, error) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := i.parser.ParseUnverified(tokenString, claims); err != nil {
		if errors.Is(err, jwt.ErrTokenMalformed) {
			return model.TokenClaims{}, fmt.Errorf("%w: %v", ErrNotJWT, err)
		}
		return model.TokenClaims{}, fmt.Errorf("failed to parse token: %w", err)
	}

	out := model.TokenClaims{Subject: claims.Subject}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}
