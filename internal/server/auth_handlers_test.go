package server_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	env := newTestEnv(t)

	t.Run("issues a bearer token for valid credentials", func(t *testing.T) {
		resp := env.login(t, "name", memberPassword)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.NotEmpty(t, body["access_token"])
		assert.Equal(t, "bearer", body["token_type"])
	})

	t.Run("rejections are indistinguishable", func(t *testing.T) {
		tests := []struct {
			name     string
			username string
			password string
		}{
			{"wrong password", "name", "not-the-password"},
			{"unknown user", "nobody", memberPassword},
			{"disabled user", "sleeper", memberPassword},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				resp := env.login(t, tt.username, tt.password)
				require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
				assert.Equal(t, "Bearer", resp.Header.Get(fiber.HeaderWWWAuthenticate))

				body := decodeBody(t, resp)
				assert.Equal(t, "Incorrect username or password", body["detail"])
			})
		}
	})

	t.Run("missing fields fail validation", func(t *testing.T) {
		resp := env.login(t, "", "")
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestUsersMe(t *testing.T) {
	env := newTestEnv(t)

	t.Run("returns the authenticated user", func(t *testing.T) {
		token := env.tokenFor(t, "name")
		resp := env.request(t, http.MethodGet, "/users/me", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "name", body["username"])
		assert.NotContains(t, body, "password_hash")
	})

	t.Run("no credentials", func(t *testing.T) {
		resp := env.request(t, http.MethodGet, "/users/me", "", nil)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "Bearer", resp.Header.Get(fiber.HeaderWWWAuthenticate))

		body := decodeBody(t, resp)
		assert.Equal(t, "Could not validate credentials", body["detail"])
	})

	t.Run("garbage token", func(t *testing.T) {
		resp := env.request(t, http.MethodGet, "/users/me", "not.a.token", nil)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "Could not validate credentials", body["detail"])
	})

	t.Run("token for a deleted account", func(t *testing.T) {
		resp := env.request(t, http.MethodGet, "/users/me", env.tokenFor(t, "ghost"), nil)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "Could not validate credentials", body["detail"])
	})

	t.Run("disabled account with a live token", func(t *testing.T) {
		resp := env.request(t, http.MethodGet, "/users/me", env.tokenFor(t, "sleeper"), nil)
		require.Equal(t, http.StatusForbidden, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "Inactive user", body["detail"])
	})
}
