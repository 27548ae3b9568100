package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"fixando/internal/config"
	"fixando/internal/database"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestServer builds a server over an in-memory sqlite database with the
// full route table mounted.
func newTestServer(t *testing.T) (*Server, *fiber.App) {
	t.Helper()
	t.Setenv("APP_ENV", "test")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         database.NewGormLogger(),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{
		JWTSecret: "test-secret",
		Port:      "3000",
		UploadDir: t.TempDir(),
		Env:       "test",
	}

	s, err := NewServerWithDeps(cfg, db, nil)
	require.NoError(t, err)

	app := fiber.New()
	s.SetupRoutes(app)
	return s, app
}

// doJSON performs a JSON request against the test app and decodes the
// response body into a generic map.
func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	decoded := map[string]any{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded), "body: %s", raw)
	}
	return resp.StatusCode, decoded
}

// registerAndLogin creates a user and returns a live token for it.
func registerAndLogin(t *testing.T, app *fiber.App, name, email, password string) string {
	t.Helper()

	status, _ := doJSON(t, app, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, status)

	status, body := doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, status)

	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

// createPost creates a post for the given token and returns its ID.
func createPost(t *testing.T, app *fiber.App, token, title, content string) uint {
	t.Helper()

	status, body := doJSON(t, app, http.MethodPost, "/api/posts", token, map[string]string{
		"title":   title,
		"content": content,
	})
	require.Equal(t, http.StatusCreated, status)

	id, ok := body["id"].(float64)
	require.True(t, ok, "post response missing id: %v", body)
	return uint(id)
}

func postPath(id uint) string {
	return fmt.Sprintf("/api/posts/%d", id)
}
