package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTClaims are the claims projhub signs into bearer tokens: the
// registered set plus the user id and email.
type JWTClaims struct {
	jwt.RegisteredClaims
	UID       string `json:"uid,omitempty"`
	UserEmail string `json:"email,omitempty"`
}

// UserID returns the user id, falling back to the subject claim.
func (c *JWTClaims) UserID() string {
	if c.UID != "" {
		return c.UID
	}
	return c.RegisteredClaims.Subject
}

// Email returns the email claim.
func (c *JWTClaims) Email() string {
	return c.UserEmail
}

// Identity derives the request identity from the claims.
func (c *JWTClaims) Identity() Identity {
	return Identity{UserID: c.UserID(), Email: c.UserEmail}
}

// Expires returns the expiration time, zero if unset.
func (c *JWTClaims) Expires() time.Time {
	if c.RegisteredClaims.ExpiresAt != nil {
		return c.RegisteredClaims.ExpiresAt.Time
	}
	return time.Time{}
}

// IssuedAt returns the issued-at time, zero if unset.
func (c *JWTClaims) IssuedAt() time.Time {
	if c.RegisteredClaims.IssuedAt != nil {
		return c.RegisteredClaims.IssuedAt.Time
	}
	return time.Time{}
}
