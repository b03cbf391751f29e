package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerBody(overrides map[string]string) []byte {
	body := map[string]string{
		"name":             "Peter",
		"last_name":        "Parker",
		"username":         "spidey",
		"email":            "peter@example.com",
		"phone":            "555-0100",
		"password":         "WebSlinger1",
		"password_confirm": "WebSlinger1",
	}
	for k, v := range overrides {
		body[k] = v
	}
	raw, _ := json.Marshal(body)
	return raw
}

func postJSON(t *testing.T, app *fiber.App, path string, body []byte) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestRegisterAndLoginFlow(t *testing.T) {
	db := setupHandlerTestDB(t)
	s := newTestServer(t, db)

	app := fiber.New()
	app.Post("/users", s.Register)
	app.Post("/auth/login", s.Login)

	// Registration returns a token and the profile
	resp := postJSON(t, app, "/users", registerBody(nil))
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		Message string `json:"message"`
		Data    struct {
			Token string `json:"token"`
			User  struct {
				ID       uint   `json:"id"`
				Username string `json:"username"`
				Email    string `json:"email"`
			} `json:"user"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.NotEmpty(t, created.Data.Token)
	assert.Equal(t, "spidey", created.Data.User.Username)

	// Duplicate email is a validation failure
	resp = postJSON(t, app, "/users", registerBody(map[string]string{"username": "other"}))
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Duplicate username likewise
	resp = postJSON(t, app, "/users", registerBody(map[string]string{"email": "other@example.com"}))
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Login with the right credentials succeeds
	loginBody, _ := json.Marshal(map[string]string{"username": "spidey", "password": "WebSlinger1"})
	resp = postJSON(t, app, "/auth/login", loginBody)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Unknown username reads as a bad request, not an auth failure
	badUser, _ := json.Marshal(map[string]string{"username": "ghost", "password": "WebSlinger1"})
	resp = postJSON(t, app, "/auth/login", badUser)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Wrong password on a known account is unauthorized
	badPass, _ := json.Marshal(map[string]string{"username": "spidey", "password": "Nope12345"})
	resp = postJSON(t, app, "/auth/login", badPass)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRegister_PasswordRules(t *testing.T) {
	db := setupHandlerTestDB(t)
	s := newTestServer(t, db)

	app := fiber.New()
	app.Post("/users", s.Register)

	tests := []struct {
		name      string
		overrides map[string]string
	}{
		{name: "Mismatched confirmation", overrides: map[string]string{"password_confirm": "Different1"}},
		{name: "Too short", overrides: map[string]string{"password": "Ab1", "password_confirm": "Ab1"}},
		{name: "No digit", overrides: map[string]string{"password": "WebSlinger", "password_confirm": "WebSlinger"}},
		{name: "No uppercase", overrides: map[string]string{"password": "webslinger1", "password_confirm": "webslinger1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, app, "/users", registerBody(tt.overrides))
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestAuthRequired(t *testing.T) {
	db := setupHandlerTestDB(t)
	s := newTestServer(t, db)
	user := createTestUser(t, db, "tokenuser")

	app := fiber.New()
	app.Get("/users/me", s.AuthRequired(), s.GetMyProfile)

	t.Run("Valid token", func(t *testing.T) {
		token, err := s.generateToken(user.ID, user.Username)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Missing token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Garbage token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestLogout(t *testing.T) {
	db := setupHandlerTestDB(t)
	s := newTestServer(t, db)

	app := fiber.New()
	app.Post("/auth/logout", asUser(1), s.Logout)

	resp := postJSON(t, app, "/auth/logout", nil)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
