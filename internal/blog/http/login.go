package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/inkpress/internal/blog/paths"
	"github.com/aussiebroadwan/inkpress/internal/blog/service"
	"github.com/aussiebroadwan/inkpress/internal/blog/session"
	"github.com/aussiebroadwan/inkpress/pkg/httpx"
	"github.com/aussiebroadwan/inkpress/pkg/slogx"
)

// LoginHandler serves the login form and processes credential submissions.
type LoginHandler struct {
	Auth      *service.AuthService
	Sessions  *session.Manager
	Paths     *paths.Creator
	Presenter Presenter
}

// HandleGet renders the login form. The loginRequired query parameter is a
// display hint set by the access guard; it has no effect on control flow.
func (h *LoginHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	_, loginRequired := r.URL.Query()["loginRequired"]

	httpx.NoCache(w)
	if err := h.Presenter.LoginView(w, LoginPage{LoginWarning: loginRequired}); err != nil {
		slogx.FromContext(r.Context()).Error("render login view", "error", err)
		httpx.InternalError(w)
	}
}

// HandlePost validates the submitted credentials and either re-renders the
// form with errors or establishes a session and redirects to the admin area.
func (h *LoginHandler) HandlePost(w http.ResponseWriter, r *http.Request) {
	log := slogx.FromContext(r.Context())

	if err := r.ParseForm(); err != nil {
		log.Warn("malformed login submission", "error", err)
		httpx.InternalError(w)
		return
	}

	username := formField(r.PostForm, "username")
	password := formField(r.PostForm, "password")

	page := LoginPage{Username: username.Value}
	if !username.Present {
		page.Errors = append(page.Errors, "You must supply your username")
		page.UsernameError = true
	}
	if !password.Present {
		page.Errors = append(page.Errors, "You must supply your password")
		page.PasswordError = true
	}

	if len(page.Errors) > 0 {
		h.render(w, r, page)
		return
	}

	user, err := h.Auth.VerifyCredentials(r.Context(), username.Value, password.Value)
	if errors.Is(err, service.ErrInvalidCredentials) {
		// One generic message for both unknown user and wrong password,
		// with no field flags.
		h.render(w, r, LoginPage{
			Errors:   []string{"Your username or password is incorrect"},
			Username: username.Value,
		})
		return
	}
	if err != nil {
		log.Error("credential verification failed", "error", err)
		httpx.InternalError(w)
		return
	}

	if err := h.Sessions.Authenticate(w, r, user.ID); err != nil {
		log.Error("failed to establish session", "error", err)
		httpx.InternalError(w)
		return
	}

	log.Info("user logged in", "user_id", user.ID)
	http.Redirect(w, r, h.Paths.Admin(), http.StatusFound)
}

func (h *LoginHandler) render(w http.ResponseWriter, r *http.Request, page LoginPage) {
	httpx.NoCache(w)
	if err := h.Presenter.LoginView(w, page); err != nil {
		slogx.FromContext(r.Context()).Error("render login view", "error", err)
		httpx.InternalError(w)
	}
}
