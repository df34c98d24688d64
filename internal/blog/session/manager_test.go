package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// withCookies copies the cookies set on a recorder onto a fresh request,
// simulating the browser's next request in the same session.
func withCookies(t *testing.T, rec *httptest.ResponseRecorder, method, target string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	for _, c := range rec.Result().Cookies() {
		if c.MaxAge >= 0 {
			req.AddCookie(c)
		}
	}
	return req
}

func TestManager_AuthenticateAndLookup(t *testing.T) {
	t.Parallel()
	m := NewManager()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	require.NoError(t, m.Authenticate(rec, req, "user-1"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, CookieName, cookies[0].Name)
	require.NotEmpty(t, cookies[0].Value)
	require.True(t, cookies[0].HttpOnly)

	next := withCookies(t, rec, http.MethodGet, "/admin")
	userID, ok := m.UserID(next)
	require.True(t, ok)
	require.Equal(t, "user-1", userID)
}

func TestManager_UnauthenticatedRequestHasNoUser(t *testing.T) {
	t.Parallel()
	m := NewManager()

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	_, ok := m.UserID(req)
	require.False(t, ok)

	// A forged cookie that never came from Authenticate is ignored.
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "made-up-token"})
	_, ok = m.UserID(req)
	require.False(t, ok)
}

func TestManager_AuthenticateIsIdempotent(t *testing.T) {
	t.Parallel()
	m := NewManager()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	require.NoError(t, m.Authenticate(rec, req, "user-1"))

	// Second call in the same session keeps the same token.
	again := withCookies(t, rec, http.MethodPost, "/login")
	rec2 := httptest.NewRecorder()
	require.NoError(t, m.Authenticate(rec2, again, "user-1"))
	require.Empty(t, rec2.Result().Cookies(), "no new cookie for a live session")

	userID, ok := m.UserID(again)
	require.True(t, ok)
	require.Equal(t, "user-1", userID)
}

func TestManager_UnauthenticateIsIdempotent(t *testing.T) {
	t.Parallel()
	m := NewManager()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	require.NoError(t, m.Authenticate(rec, req, "user-1"))

	authed := withCookies(t, rec, http.MethodPost, "/logout")
	m.Unauthenticate(httptest.NewRecorder(), authed)

	_, ok := m.UserID(authed)
	require.False(t, ok)

	// Logging out again, or with no session at all, never errors.
	m.Unauthenticate(httptest.NewRecorder(), authed)
	m.Unauthenticate(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/logout", nil))

	_, ok = m.UserID(authed)
	require.False(t, ok)
}

func TestManager_SessionsAreIndependent(t *testing.T) {
	t.Parallel()
	m := NewManager()

	recA := httptest.NewRecorder()
	require.NoError(t, m.Authenticate(recA, httptest.NewRequest(http.MethodPost, "/login", nil), "user-a"))
	recB := httptest.NewRecorder()
	require.NoError(t, m.Authenticate(recB, httptest.NewRequest(http.MethodPost, "/login", nil), "user-b"))

	// Tearing down A leaves B untouched.
	m.Unauthenticate(httptest.NewRecorder(), withCookies(t, recA, http.MethodPost, "/logout"))

	userID, ok := m.UserID(withCookies(t, recB, http.MethodGet, "/admin"))
	require.True(t, ok)
	require.Equal(t, "user-b", userID)
}
