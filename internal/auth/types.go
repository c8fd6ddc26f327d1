package auth

import (
	"context"
	"fmt"

	"github.com/mfvaldes/projhub/internal/models"
)

type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Identity is the request-scoped authenticated identity derived from
// verified token claims. It is never persisted.
type Identity struct {
	UserID string
	Email  string
}

// TokenCodec signs an identity into a bearer token and verifies tokens
// back into claims.
type TokenCodec interface {
	Sign(identity Identity) (string, error)
	Verify(token string) (*JWTClaims, error)
}

// CredentialHasher hashes plaintext passwords and verifies them against
// stored hashes.
type CredentialHasher interface {
	Hash(password string) (string, error)
	Compare(password, hash string) error
}

// UserStore is the slice of user persistence the auth flow needs.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
}

type defLogger struct{}

func (d defLogger) Error(msg string, args ...any) { d.printf("[ERR]", msg, args...) }
func (d defLogger) Warn(msg string, args ...any)  { d.printf("[WRN]", msg, args...) }
func (d defLogger) Info(msg string, args ...any)  { d.printf("[INF]", msg, args...) }
func (d defLogger) Debug(msg string, args ...any) { d.printf("[DBG]", msg, args...) }

func (defLogger) printf(level, msg string, args ...any) {
	fmt.Println(append([]any{level, "AUTH", msg}, args...)...)
}
