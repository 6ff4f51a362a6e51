package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_SetsSessionCookie(t *testing.T) {
	ts := newTestServer(t)

	body := `{"name":"Alice","email":"alice@example.com","password":"alicepassword"}`
	w := ts.do(t, http.MethodPost, "/api/auth/register", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	cookie := sessionCookie(t, w)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	assert.NotEmpty(t, cookie.Value)

	// Neither the plaintext nor the hash appears in the response.
	assert.NotContains(t, w.Body.String(), "alicepassword")
	assert.NotContains(t, w.Body.String(), "password")

	var user struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	decodeData(t, w, &user)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "user", user.Role)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	ts := newTestServer(t)
	ts.register(t, "Alice", "alice@example.com", "alicepassword")

	body := `{"name":"Imposter","email":"alice@example.com","password":"otherpassword"}`
	w := ts.do(t, http.MethodPost, "/api/auth/register", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "user already exists", decodeEnvelope(t, w).Message)
}

func TestRegister_InvalidPayload(t *testing.T) {
	ts := newTestServer(t)

	// Password below the pwd alias minimum.
	body := `{"name":"Alice","email":"alice@example.com","password":"short"}`
	w := ts.do(t, http.MethodPost, "/api/auth/register", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body = `{"name":"Alice","email":"not-an-email","password":"alicepassword"}`
	w = ts.do(t, http.MethodPost, "/api/auth/register", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin(t *testing.T) {
	ts := newTestServer(t)
	ts.register(t, "Alice", "alice@example.com", "alicepassword")

	w := ts.do(t, http.MethodPost, "/api/auth/login", `{"email":"alice@example.com","password":"alicepassword"}`)
	require.Equal(t, http.StatusOK, w.Code)
	sessionCookie(t, w)
}

func TestLogin_GenericFailureMessage(t *testing.T) {
	ts := newTestServer(t)
	ts.register(t, "Alice", "alice@example.com", "alicepassword")

	wrongPwd := ts.do(t, http.MethodPost, "/api/auth/login", `{"email":"alice@example.com","password":"wrongpassword"}`)
	unknown := ts.do(t, http.MethodPost, "/api/auth/login", `{"email":"nobody@example.com","password":"alicepassword"}`)

	assert.Equal(t, http.StatusUnauthorized, wrongPwd.Code)
	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	// Same outward message in both cases; no account enumeration.
	assert.Equal(t, decodeEnvelope(t, unknown).Message, decodeEnvelope(t, wrongPwd).Message)
}

func TestLogout_ClearsCookie(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPost, "/api/auth/logout", "")
	require.Equal(t, http.StatusOK, w.Code)

	cookie := sessionCookie(t, w)
	assert.Empty(t, cookie.Value)
	assert.Less(t, cookie.MaxAge, 0)
}

func TestMe(t *testing.T) {
	ts := newTestServer(t)
	cookie := ts.register(t, "Alice", "alice@example.com", "alicepassword")

	w := ts.do(t, http.MethodGet, "/api/auth/me", "", cookie)
	require.Equal(t, http.StatusOK, w.Code)

	var user struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	decodeData(t, w, &user)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestMe_Unauthenticated(t *testing.T) {
	ts := newTestServer(t)
	w := ts.do(t, http.MethodGet, "/api/auth/me", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegister_OptionalRole(t *testing.T) {
	ts := newTestServer(t)

	body := fmt.Sprintf(`{"name":"Root","email":"root@example.com","password":"rootpassword","role":%q}`, "admin")
	w := ts.do(t, http.MethodPost, "/api/auth/register", body)
	require.Equal(t, http.StatusCreated, w.Code)

	var user struct {
		Role string `json:"role"`
	}
	decodeData(t, w, &user)
	assert.Equal(t, "admin", user.Role)

	// Unknown roles are rejected at binding time.
	w = ts.do(t, http.MethodPost, "/api/auth/register", `{"name":"X","email":"x@example.com","password":"xpassword12","role":"superuser"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
