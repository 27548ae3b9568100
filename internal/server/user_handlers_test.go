package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUserProfile(t *testing.T) {
	_, app := newTestServer(t)
	registerAndLogin(t, app, "Ana", "ana@x.com", "secret")

	status, body := doJSON(t, app, http.MethodGet, "/api/users/1", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Ana", body["name"])
	assert.NotContains(t, body, "password")

	status, _ = doJSON(t, app, http.MethodGet, "/api/users/999", "", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestListUsers(t *testing.T) {
	_, app := newTestServer(t)
	registerAndLogin(t, app, "Ana", "ana@x.com", "secret")
	registerAndLogin(t, app, "Bea", "bea@x.com", "secret")

	status, body := doJSON(t, app, http.MethodGet, "/api/users", "", nil)
	assert.Equal(t, http.StatusOK, status)
	users, ok := body["users"].([]any)
	require.True(t, ok)
	assert.Len(t, users, 2)
}

func TestUpdateMyProfile(t *testing.T) {
	_, app := newTestServer(t)
	token := registerAndLogin(t, app, "Ana", "ana@x.com", "secret")

	status, body := doJSON(t, app, http.MethodPut, "/api/users/me", token, map[string]string{
		"name": "Ana Silva",
	})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Ana Silva", body["name"])

	// A password change takes effect on the next login.
	status, _ = doJSON(t, app, http.MethodPut, "/api/users/me", token, map[string]string{
		"password": "new-secret",
	})
	require.Equal(t, http.StatusOK, status)

	status, _ = doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "ana@x.com",
		"password": "secret",
	})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "ana@x.com",
		"password": "new-secret",
	})
	assert.Equal(t, http.StatusOK, status)
}

func TestUpdateUser_SelfOnly(t *testing.T) {
	_, app := newTestServer(t)
	anaToken := registerAndLogin(t, app, "Ana", "ana@x.com", "secret")
	registerAndLogin(t, app, "Bea", "bea@x.com", "secret")

	// Ana editing Bea's profile is forbidden.
	status, _ := doJSON(t, app, http.MethodPut, "/api/users/2", anaToken, map[string]string{
		"name": "Hijacked",
	})
	assert.Equal(t, http.StatusForbidden, status)

	// Editing her own profile by ID works like /me.
	status, body := doJSON(t, app, http.MethodPut, "/api/users/1", anaToken, map[string]string{
		"name": "Ana Silva",
	})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Ana Silva", body["name"])

	status, _ = doJSON(t, app, http.MethodPut, "/api/users/1", "", map[string]string{
		"name": "Nobody",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestDeleteUser_SelfOnly(t *testing.T) {
	_, app := newTestServer(t)
	anaToken := registerAndLogin(t, app, "Ana", "ana@x.com", "secret")
	registerAndLogin(t, app, "Bea", "bea@x.com", "secret")

	status, _ := doJSON(t, app, http.MethodDelete, "/api/users/2", anaToken, nil)
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = doJSON(t, app, http.MethodDelete, "/api/users/1", anaToken, nil)
	assert.Equal(t, http.StatusOK, status)

	status, _ = doJSON(t, app, http.MethodGet, "/api/users/1", "", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestDeleteMyAccount(t *testing.T) {
	_, app := newTestServer(t)
	token := registerAndLogin(t, app, "Ana", "ana@x.com", "secret")

	status, _ := doJSON(t, app, http.MethodDelete, "/api/users/me", token, nil)
	assert.Equal(t, http.StatusOK, status)

	status, _ = doJSON(t, app, http.MethodGet, "/api/users/1", "", nil)
	assert.Equal(t, http.StatusNotFound, status)
}
