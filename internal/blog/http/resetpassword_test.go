package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/aussiebroadwan/inkpress/internal/blog/domain"
	"github.com/aussiebroadwan/inkpress/internal/blog/paths"
	"github.com/aussiebroadwan/inkpress/internal/blog/service"
	"github.com/aussiebroadwan/inkpress/internal/blog/store/drivers/sqlite"
	"github.com/aussiebroadwan/inkpress/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func newResetHandler(t *testing.T) (*ResetPasswordHandler, *fakePresenter, *sqlite.Store, domain.User) {
	t.Helper()

	st := newTestStore(t)
	user := seedUser(t, st, "admin", "original-password")

	presenter := &fakePresenter{}
	h := &ResetPasswordHandler{
		Auth:      &service.AuthService{Store: st},
		Paths:     paths.NewCreator(""),
		Presenter: presenter,
	}
	return h, presenter, st, user
}

// asUser binds the user id the way RequireUser does for guarded routes.
func asUser(req *http.Request, userID string) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), ctxKeyUserID, userID))
}

func TestResetPasswordHandler_HandleGet(t *testing.T) {
	h, presenter, _, user := newResetHandler(t)

	rec := httptest.NewRecorder()
	h.HandleGet(rec, asUser(httptest.NewRequest(http.MethodGet, "/admin/resetPassword", nil), user.ID))

	require.Equal(t, 1, presenter.resetCalls)
	require.Empty(t, presenter.resetPage.Errors)
}

func TestResetPasswordHandler_HandlePost_MissingFields(t *testing.T) {
	t.Run("both fields absent", func(t *testing.T) {
		h, presenter, _, user := newResetHandler(t)

		rec := httptest.NewRecorder()
		h.HandlePost(rec, asUser(postFormRequest("/admin/resetPassword", url.Values{}), user.ID))

		page := presenter.resetPage
		require.Equal(t, []string{
			"You must specify a password",
			"You must confirm your password",
		}, page.Errors)
		require.True(t, page.PasswordError)
		require.True(t, page.ConfirmPasswordError)
	})

	t.Run("absent confirmation short-circuits the other rules", func(t *testing.T) {
		h, presenter, _, user := newResetHandler(t)

		rec := httptest.NewRecorder()
		h.HandlePost(rec, asUser(postFormRequest("/admin/resetPassword", url.Values{
			"password": {"short"},
		}), user.ID))

		// The length rule must not fire when a field was never submitted.
		page := presenter.resetPage
		require.Equal(t, []string{"You must confirm your password"}, page.Errors)
		require.False(t, page.PasswordError)
		require.True(t, page.ConfirmPasswordError)
	})
}

func TestResetPasswordHandler_HandlePost_Validation(t *testing.T) {
	t.Run("short matching passwords report length only", func(t *testing.T) {
		h, presenter, st, user := newResetHandler(t)

		rec := httptest.NewRecorder()
		h.HandlePost(rec, asUser(postFormRequest("/admin/resetPassword", url.Values{
			"password":        {"short"},
			"confirmPassword": {"short"},
		}), user.ID))

		page := presenter.resetPage
		require.Equal(t, []string{"Your password must be at least 10 characters long"}, page.Errors)
		require.True(t, page.PasswordError)
		require.False(t, page.ConfirmPasswordError)

		stored, err := st.Users().GetUserByID(context.Background(), user.ID)
		require.NoError(t, err)
		require.Equal(t, user.PasswordHash, stored.PasswordHash, "hash must be untouched on validation failure")
	})

	t.Run("long but mismatched passwords report mismatch only", func(t *testing.T) {
		h, presenter, _, user := newResetHandler(t)

		rec := httptest.NewRecorder()
		h.HandlePost(rec, asUser(postFormRequest("/admin/resetPassword", url.Values{
			"password":        {"a-long-enough-password"},
			"confirmPassword": {"a-different-password!!"},
		}), user.ID))

		page := presenter.resetPage
		require.Equal(t, []string{"Your passwords must match!"}, page.Errors)
		require.True(t, page.PasswordError)
		require.True(t, page.ConfirmPasswordError)
	})

	t.Run("length counts characters, not bytes", func(t *testing.T) {
		h, presenter, st, user := newResetHandler(t)

		// Nine two-byte characters: 18 bytes but still too short.
		short := strings.Repeat("ñ", 9)
		rec := httptest.NewRecorder()
		h.HandlePost(rec, asUser(postFormRequest("/admin/resetPassword", url.Values{
			"password":        {short},
			"confirmPassword": {short},
		}), user.ID))

		page := presenter.resetPage
		require.Equal(t, []string{"Your password must be at least 10 characters long"}, page.Errors)
		require.True(t, page.PasswordError)

		stored, err := st.Users().GetUserByID(context.Background(), user.ID)
		require.NoError(t, err)
		require.Equal(t, user.PasswordHash, stored.PasswordHash)

		// Ten of them clears the bar.
		long := strings.Repeat("ñ", 10)
		rec = httptest.NewRecorder()
		h.HandlePost(rec, asUser(postFormRequest("/admin/resetPassword", url.Values{
			"password":        {long},
			"confirmPassword": {long},
		}), user.ID))
		require.Equal(t, http.StatusFound, rec.Code)
	})

	t.Run("short mismatched passwords accumulate both errors", func(t *testing.T) {
		h, presenter, _, user := newResetHandler(t)

		rec := httptest.NewRecorder()
		h.HandlePost(rec, asUser(postFormRequest("/admin/resetPassword", url.Values{
			"password":        {"short"},
			"confirmPassword": {"other"},
		}), user.ID))

		page := presenter.resetPage
		require.Equal(t, []string{
			"Your passwords must match!",
			"Your password must be at least 10 characters long",
		}, page.Errors)
		require.True(t, page.PasswordError)
		require.True(t, page.ConfirmPasswordError)
	})
}

func TestResetPasswordHandler_HandlePost_Success(t *testing.T) {
	h, presenter, st, user := newResetHandler(t)

	user.ResetPasswordRequired = true
	require.NoError(t, st.Users().SaveUser(context.Background(), user))

	rec := httptest.NewRecorder()
	h.HandlePost(rec, asUser(postFormRequest("/admin/resetPassword", url.Values{
		"password":        {"brand-new-password"},
		"confirmPassword": {"brand-new-password"},
	}), user.ID))

	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/admin", rec.Header().Get("Location"))
	require.Zero(t, presenter.resetCalls)

	stored, err := st.Users().GetUserByID(context.Background(), user.ID)
	require.NoError(t, err)
	require.False(t, stored.ResetPasswordRequired)

	ok, err := cryptox.VerifyPassword("brand-new-password", stored.PasswordHash)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = cryptox.VerifyPassword("original-password", stored.PasswordHash)
	require.NoError(t, err)
	require.False(t, ok)
}
