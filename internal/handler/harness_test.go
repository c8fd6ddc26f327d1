package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mfvaldes/projhub/internal/auth"
	"github.com/mfvaldes/projhub/internal/handler"
	"github.com/mfvaldes/projhub/internal/middleware"
	"github.com/mfvaldes/projhub/internal/server"
)

type testApp struct {
	app      *fiber.App
	users    *FakeUsers
	projects *FakeProjects
	codec    auth.TokenCodec
}

// newTestApp assembles the real route table over in-memory stores, with
// a cheap bcrypt cost so the suite stays fast.
func newTestApp(t *testing.T) *testApp {
	t.Helper()

	users := NewFakeUsers()
	projects := NewFakeProjects()

	codec := auth.NewHS256Codec([]byte("test-signing-secret"), time.Hour, "projhub-test")
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)
	flow := auth.NewFlow(users, hasher, codec)

	app := fiber.New(fiber.Config{ErrorHandler: handler.ErrorHandler})
	server.Register(app,
		middleware.Guard(codec),
		handler.NewAuthController(flow),
		handler.NewUsersController(users, hasher),
		handler.NewProjectsController(projects),
	)

	return &testApp{app: app, users: users, projects: projects, codec: codec}
}

// signup registers a user through the public route and returns a valid
// bearer token for it.
func (ta *testApp) signup(t *testing.T, email, password string) string {
	t.Helper()

	status, body := ta.doJSON(t, http.MethodPost, "/auth/signup", map[string]string{
		"firstname": "Test",
		"lastname":  "User",
		"email":     email,
		"password":  password,
	}, "")
	require.Equal(t, http.StatusCreated, status)

	token, ok := body["token"].(string)
	require.True(t, ok, "signup response should carry a token")
	return token
}

// doJSON issues a request against the app and decodes the JSON body. A
// non-empty token is sent as a bearer credential.
func (ta *testApp) doJSON(t *testing.T, method, path string, payload any, token string) (int, map[string]any) {
	t.Helper()

	var reqBody io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		reqBody = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	res, err := ta.app.Test(req, -1)
	require.NoError(t, err)
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	body := map[string]any{}
	if len(raw) > 0 && json.Valid(raw) {
		if err := json.Unmarshal(raw, &body); err != nil {
			// list endpoints return arrays, stash them under a key
			var items []any
			require.NoError(t, json.Unmarshal(raw, &items))
			body["items"] = items
		}
	}
	body["_raw"] = string(raw)

	return res.StatusCode, body
}
