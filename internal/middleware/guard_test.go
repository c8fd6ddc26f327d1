package middleware_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfvaldes/projhub/internal/auth"
	"github.com/mfvaldes/projhub/internal/handler"
	"github.com/mfvaldes/projhub/internal/middleware"
)

func guardedApp(t *testing.T, codec auth.TokenCodec) *fiber.App {
	t.Helper()

	app := fiber.New(fiber.Config{ErrorHandler: handler.ErrorHandler})
	app.Get("/protected", middleware.Guard(codec), func(c *fiber.Ctx) error {
		identity, ok := middleware.IdentityFrom(c)
		require.True(t, ok)

		ctxIdentity, ok := auth.IdentityFromContext(c.UserContext())
		require.True(t, ok)
		require.Equal(t, identity, ctxIdentity)

		return c.JSON(fiber.Map{"email": identity.Email})
	})
	return app
}

func TestGuard(t *testing.T) {
	signingKey := []byte("guard-test-key")
	codec := auth.NewHS256Codec(signingKey, 24*time.Hour, "projhub-test")

	valid, err := codec.Sign(auth.Identity{UserID: "user-123", Email: "ada@example.com"})
	require.NoError(t, err)

	expired, err := auth.NewHS256Codec(signingKey, -time.Hour, "projhub-test").
		Sign(auth.Identity{UserID: "user-123", Email: "ada@example.com"})
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{
			name:       "missing header",
			header:     "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "token without scheme",
			header:     valid,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "extra parts",
			header:     "Bearer " + valid + " extra",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "lowercase scheme is rejected",
			header:     "bearer " + valid,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "expired token",
			header:     "Bearer " + expired,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed token",
			header:     "Bearer not-a-jwt",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "valid token passes",
			header:     "Bearer " + valid,
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := guardedApp(t, codec)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			if tt.wantStatus == http.StatusOK {
				assert.Contains(t, string(body), "ada@example.com")
			} else {
				assert.Contains(t, string(body), "message")
			}
		})
	}
}
