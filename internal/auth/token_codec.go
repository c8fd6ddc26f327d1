package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/goliatone/go-errors"
	"github.com/google/uuid"
)

// HS256Codec implements TokenCodec with HMAC-SHA256 signed JWTs.
type HS256Codec struct {
	signingKey []byte
	ttl        time.Duration
	issuer     string
	logger     Logger
}

// NewHS256Codec creates a codec for the given secret and token lifetime.
func NewHS256Codec(signingKey []byte, ttl time.Duration, issuer string) *HS256Codec {
	return &HS256Codec{
		signingKey: signingKey,
		ttl:        ttl,
		issuer:     issuer,
		logger:     defLogger{},
	}
}

func (c *HS256Codec) WithLogger(logger Logger) *HS256Codec {
	if logger != nil {
		c.logger = logger
	}
	return c
}

// Sign issues a token over the identity with a fresh expiry.
func (c *HS256Codec) Sign(identity Identity) (string, error) {
	now := time.Now()
	claims := &JWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    c.issuer,
			Subject:   identity.UserID,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
		UID:       identity.UserID,
		UserEmail: identity.Email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(c.signingKey)
	if err != nil {
		return "", errors.Wrap(err, errors.CategoryInternal, "failed to sign JWT")
	}

	return signed, nil
}

// Verify parses and validates a token string, returning structured claims.
// Expired tokens and anything that fails to parse or verify map onto the
// package's auth errors.
func (c *HS256Codec) Verify(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			c.logger.Error("token codec encountered unexpected signing method", "alg", t.Header["alg"])
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.signingKey, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, errors.Wrap(err, ErrTokenMalformed.Category, ErrTokenMalformed.Message).
			WithTextCode(ErrTokenMalformed.TextCode).
			WithCode(errors.CodeUnauthorized)
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid {
		c.logger.Error("token codec could not decode or validate claims")
		return nil, ErrTokenMalformed
	}

	return claims, nil
}
