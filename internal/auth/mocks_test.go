package auth_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mfvaldes/projhub/internal/auth"
	"github.com/mfvaldes/projhub/internal/models"
)

// MockUserStore implements auth.UserStore
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockUserStore) Create(ctx context.Context, user *models.User) (*models.User, error) {
	args := m.Called(ctx, user)
	created, _ := args.Get(0).(*models.User)
	return created, args.Error(1)
}

// MockHasher implements auth.CredentialHasher
type MockHasher struct {
	mock.Mock
}

func (m *MockHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockHasher) Compare(password, hash string) error {
	args := m.Called(password, hash)
	return args.Error(0)
}

// MockCodec implements auth.TokenCodec
type MockCodec struct {
	mock.Mock
}

func (m *MockCodec) Sign(identity auth.Identity) (string, error) {
	args := m.Called(identity)
	return args.String(0), args.Error(1)
}

func (m *MockCodec) Verify(token string) (*auth.JWTClaims, error) {
	args := m.Called(token)
	claims, _ := args.Get(0).(*auth.JWTClaims)
	return claims, args.Error(1)
}
