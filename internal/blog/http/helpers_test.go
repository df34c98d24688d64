package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aussiebroadwan/inkpress/internal/blog/domain"
	"github.com/aussiebroadwan/inkpress/internal/blog/store/drivers/sqlite"
	"github.com/aussiebroadwan/inkpress/pkg/cryptox"
	"github.com/aussiebroadwan/inkpress/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	pepperPath := filepath.Join(os.TempDir(), "inkpress-http-test-pepper")
	cryptox.SetPepperPath(pepperPath)

	os.Remove(pepperPath)
	defer os.Remove(pepperPath)

	os.Exit(m.Run())
}

// fakePresenter records the last page each view was rendered with so tests
// can assert on handler output without parsing HTML.
type fakePresenter struct {
	loginCalls int
	loginPage  LoginPage

	resetCalls int
	resetPage  ResetPasswordPage

	adminCalls int
	adminPage  AdminPage

	indexCalls int
	indexPage  IndexPage

	postCalls int
	postPage  PostPage
}

func (f *fakePresenter) LoginView(w http.ResponseWriter, page LoginPage) error {
	f.loginCalls++
	f.loginPage = page
	return nil
}

func (f *fakePresenter) ResetPasswordView(w http.ResponseWriter, page ResetPasswordPage) error {
	f.resetCalls++
	f.resetPage = page
	return nil
}

func (f *fakePresenter) AdminView(w http.ResponseWriter, page AdminPage) error {
	f.adminCalls++
	f.adminPage = page
	return nil
}

func (f *fakePresenter) IndexView(w http.ResponseWriter, page IndexPage) error {
	f.indexCalls++
	f.indexPage = page
	return nil
}

func (f *fakePresenter) PostView(w http.ResponseWriter, page PostPage) error {
	f.postCalls++
	f.postPage = page
	return nil
}

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func seedUser(t *testing.T, st *sqlite.Store, username, password string) domain.User {
	t.Helper()

	hash, err := cryptox.HashPassword(password)
	require.NoError(t, err)

	user := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		Name:         "Test User",
		PasswordHash: hash,
	}
	require.NoError(t, st.Users().CreateUser(context.Background(), user))
	return user
}

// postFormRequest builds a urlencoded POST. form is a list of key/value
// pairs so tests can control exactly which keys are present.
func postFormRequest(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// withRecordedCookies copies the non-expired cookies a previous response set
// onto req, simulating a browser following a redirect.
func withRecordedCookies(req *http.Request, rec *httptest.ResponseRecorder) *http.Request {
	for _, c := range rec.Result().Cookies() {
		if c.MaxAge >= 0 {
			req.AddCookie(c)
		}
	}
	return req
}
