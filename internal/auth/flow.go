package auth

import (
	"context"
	"time"

	goerrors "github.com/goliatone/go-errors"

	"github.com/mfvaldes/projhub/internal/models"
)

// Flow orchestrates signup and login: validate, hash, persist, issue token.
type Flow struct {
	users  UserStore
	hasher CredentialHasher
	codec  TokenCodec
	logger Logger
}

// NewFlow returns a new auth Flow over the given collaborators.
func NewFlow(users UserStore, hasher CredentialHasher, codec TokenCodec) *Flow {
	return &Flow{
		users:  users,
		hasher: hasher,
		codec:  codec,
		logger: defLogger{},
	}
}

func (f *Flow) WithLogger(logger Logger) *Flow {
	if logger != nil {
		f.logger = logger
	}
	return f
}

// SignupInput carries the signup fields. All are required.
type SignupInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// LoginInput carries the login credentials. Both are required.
type LoginInput struct {
	Email    string
	Password string
}

// AuthResult is what a successful signup or login yields: a bearer token
// and the sanitized user it authenticates.
type AuthResult struct {
	Token string
	User  *models.UserView
}

// Signup validates the input, hashes the password, persists a new user
// and issues a token over {userId, email}. Exactly one user document is
// created on success; failure paths write nothing.
func (f *Flow) Signup(ctx context.Context, in SignupInput) (*AuthResult, error) {
	if in.FirstName == "" || in.LastName == "" || in.Email == "" || in.Password == "" {
		return nil, ErrMissingFields
	}

	if _, err := f.users.FindByEmail(ctx, in.Email); err == nil {
		return nil, ErrEmailExists
	} else if !goerrors.Is(err, ErrIdentityNotFound) {
		f.logger.Error("signup email lookup failed", "error", err)
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to check email uniqueness")
	}

	hash, err := f.hasher.Hash(in.Password)
	if err != nil {
		f.logger.Error("signup password hashing failed", "error", err)
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// Concurrent signups with the same email race past the lookup above;
	// the store's unique index makes the loser fail here.
	if user, err = f.users.Create(ctx, user); err != nil {
		f.logger.Error("signup user creation failed", "error", err)
		return nil, err
	}

	token, err := f.codec.Sign(Identity{UserID: user.ID.Hex(), Email: user.Email})
	if err != nil {
		f.logger.Error("signup token issuance failed", "error", err)
		return nil, err
	}

	return &AuthResult{Token: token, User: user.View()}, nil
}

// Login verifies the credentials against the stored hash and issues a
// fresh token. No stored state is mutated.
func (f *Flow) Login(ctx context.Context, in LoginInput) (*AuthResult, error) {
	if in.Email == "" || in.Password == "" {
		return nil, ErrMissingFields
	}

	user, err := f.users.FindByEmail(ctx, in.Email)
	if err != nil {
		f.logger.Info("login identity lookup failed", "error", err)
		return nil, err
	}

	if err := f.hasher.Compare(in.Password, user.PasswordHash); err != nil {
		f.logger.Info("login password verification failed", "email", in.Email)
		return nil, err
	}

	token, err := f.codec.Sign(Identity{UserID: user.ID.Hex(), Email: user.Email})
	if err != nil {
		f.logger.Error("login token issuance failed", "error", err)
		return nil, err
	}

	return &AuthResult{Token: token, User: user.View()}, nil
}
