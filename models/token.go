package models

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a parsed session JWT issued by the identity provider.
//
// It embeds [jwt.Token] for low-level claim inspection and
// [jwt.RegisteredClaims] for standard claim access (subject, expiry, etc.).
//
// ClerkID is a cached copy of the "sub" (subject) claim — the identity
// provider's opaque user key — populated during parsing so callers do not
// re-extract it per request.
type Token struct {
	// Token is the underlying JWT used for claim inspection.
	// Excluded from JSON serialization.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides the standard JWT claim set
	// (sub, exp, iat, nbf, iss, aud, jti) as defined by RFC 7519.
	jwt.RegisteredClaims

	// ClerkID is the external user key extracted from the "sub" claim.
	ClerkID string `json:"-"`
}

// GetClerkID extracts the identity provider's user key from the token's
// "sub" claim. Returns an error if the claim is missing or empty.
func (t *Token) GetClerkID() (string, error) {
	sub, err := t.GetSubject()
	if err != nil {
		return "", err
	}
	if sub == "" {
		return "", errors.New("session token has empty subject")
	}
	return sub, nil
}
