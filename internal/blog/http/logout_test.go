package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aussiebroadwan/inkpress/internal/blog/paths"
	"github.com/aussiebroadwan/inkpress/internal/blog/session"
	"github.com/stretchr/testify/require"
)

func TestLogoutHandler(t *testing.T) {
	t.Run("tears down the session and redirects to the blog root", func(t *testing.T) {
		sessions := session.NewManager()
		h := &LogoutHandler{Sessions: sessions, Paths: paths.NewCreator("")}

		loginRec := httptest.NewRecorder()
		require.NoError(t, sessions.Authenticate(loginRec, httptest.NewRequest(http.MethodPost, "/login", nil), "user-1"))

		req := withRecordedCookies(httptest.NewRequest(http.MethodPost, "/logout", nil), loginRec)
		rec := httptest.NewRecorder()
		h.HandlePost(rec, req)

		require.Equal(t, http.StatusFound, rec.Code)
		require.Equal(t, "/", rec.Header().Get("Location"))

		// The old cookie no longer authenticates.
		followUp := withRecordedCookies(httptest.NewRequest(http.MethodGet, "/admin", nil), loginRec)
		_, ok := sessions.UserID(followUp)
		require.False(t, ok)
	})

	t.Run("tearing down the same session twice still lands on the root", func(t *testing.T) {
		sessions := session.NewManager()
		h := &LogoutHandler{Sessions: sessions, Paths: paths.NewCreator("/blog-path")}

		loginRec := httptest.NewRecorder()
		require.NoError(t, sessions.Authenticate(loginRec, httptest.NewRequest(http.MethodPost, "/blog-path/login", nil), "user-1"))

		h.HandlePost(httptest.NewRecorder(), withRecordedCookies(httptest.NewRequest(http.MethodPost, "/blog-path/logout", nil), loginRec))

		rec := httptest.NewRecorder()
		h.HandlePost(rec, withRecordedCookies(httptest.NewRequest(http.MethodPost, "/blog-path/logout", nil), loginRec))

		require.Equal(t, http.StatusFound, rec.Code)
		require.Equal(t, "/blog-path/", rec.Header().Get("Location"))
	})
}
