package auth

import (
	goerrors "github.com/goliatone/go-errors"
	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost is deliberately above the library default.
const DefaultBcryptCost = 12

// BcryptHasher implements CredentialHasher on top of bcrypt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a hasher; non-positive cost falls back to
// DefaultBcryptCost.
func NewBcryptHasher(cost int) BcryptHasher {
	if cost <= 0 {
		cost = DefaultBcryptCost
	}
	return BcryptHasher{cost: cost}
}

// Hash generates a password hash. Empty passwords are rejected, bcrypt
// would happily hash them.
func (h BcryptHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrMissingFields
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", goerrors.Wrap(err, goerrors.CategoryInternal, "failed to hash password")
	}

	return string(hash), nil
}

// Compare validates the given cleartext password against the hash.
func (h BcryptHasher) Compare(password, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		if goerrors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatchedHashAndPassword
		}
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to compare password hash")
	}
	return nil
}
