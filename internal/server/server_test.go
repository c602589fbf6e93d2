package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/mmarinn/dayder/internal/auth"
	"github.com/mmarinn/dayder/internal/server"
	"github.com/mmarinn/dayder/internal/store"
)

const (
	adminPassword  = "admin-password-1"
	memberPassword = "member-password-1"
)

type testEnv struct {
	app           *fiber.App
	tokens        *auth.TokenService
	users         *store.Users
	announcements *store.Announcements
}

// newTestEnv boots a server over a private in-memory database seeded with
// an admin, a regular member, and a disabled account.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, store.CreateSchema(ctx, db))

	users := store.NewUsers(db)
	announcements := store.NewAnnouncements(db)

	seed := []struct {
		username string
		password string
		role     store.Role
		disabled bool
	}{
		{username: "admin", password: adminPassword, role: store.RoleAdmin},
		{username: "name", password: memberPassword, role: store.RoleUser},
		{username: "sleeper", password: memberPassword, role: store.RoleUser, disabled: true},
	}
	for _, u := range seed {
		hash, err := auth.HashPassword(u.password)
		require.NoError(t, err)
		_, err = users.Create(ctx, &store.User{
			Username:     u.username,
			PasswordHash: hash,
			Role:         u.role,
			Disabled:     u.disabled,
		})
		require.NoError(t, err)
	}

	tokens := auth.NewTokenService([]byte("test-signing-key"), 30*time.Minute, "dayder-test", nil)
	authenticator := auth.NewAuthenticator(users, tokens)

	srv := server.New(authenticator, users, announcements)

	return &testEnv{
		app:           srv.App(),
		tokens:        tokens,
		users:         users,
		announcements: announcements,
	}
}

func (e *testEnv) tokenFor(t *testing.T, username string) string {
	t.Helper()
	token, err := e.tokens.Generate(username)
	require.NoError(t, err)
	return token
}

func (e *testEnv) login(t *testing.T, username, password string) *http.Response {
	t.Helper()
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req, err := http.NewRequest(http.MethodPost, "/token", strings.NewReader(form.Encode()))
	require.NoError(t, err)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)

	resp, err := e.app.Test(req, 10000)
	require.NoError(t, err)
	return resp
}

func (e *testEnv) request(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := e.app.Test(req, 10000)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}
