package http

import (
	"net/http"
	"unicode/utf8"

	"github.com/aussiebroadwan/inkpress/internal/blog/paths"
	"github.com/aussiebroadwan/inkpress/internal/blog/service"
	"github.com/aussiebroadwan/inkpress/pkg/httpx"
	"github.com/aussiebroadwan/inkpress/pkg/slogx"
)

// minPasswordLength is the minimum accepted password length for a reset.
const minPasswordLength = 10

// ResetPasswordHandler serves the password reset form for the currently
// authenticated user. Both routes sit behind RequireUser.
type ResetPasswordHandler struct {
	Auth      *service.AuthService
	Paths     *paths.Creator
	Presenter Presenter
}

func (h *ResetPasswordHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, ResetPasswordPage{})
}

func (h *ResetPasswordHandler) HandlePost(w http.ResponseWriter, r *http.Request) {
	log := slogx.FromContext(r.Context())

	if err := r.ParseForm(); err != nil {
		log.Warn("malformed reset submission", "error", err)
		httpx.InternalError(w)
		return
	}

	password := formField(r.PostForm, "password")
	confirmPassword := formField(r.PostForm, "confirmPassword")

	// Absent fields short-circuit: the match and length rules only apply
	// once both values were actually submitted.
	if !password.Present || !confirmPassword.Present {
		var page ResetPasswordPage
		if !password.Present {
			page.Errors = append(page.Errors, "You must specify a password")
			page.PasswordError = true
		}
		if !confirmPassword.Present {
			page.Errors = append(page.Errors, "You must confirm your password")
			page.ConfirmPasswordError = true
		}
		h.render(w, r, page)
		return
	}

	var page ResetPasswordPage
	if password.Value != confirmPassword.Value {
		page.Errors = append(page.Errors, "Your passwords must match!")
		page.PasswordError = true
		page.ConfirmPasswordError = true
	}

	// Characters, not bytes: a multibyte password is as long as its rune
	// count says it is.
	if utf8.RuneCountInString(password.Value) < minPasswordLength {
		page.PasswordError = true
		page.Errors = append(page.Errors, "Your password must be at least 10 characters long")
	}

	if len(page.Errors) > 0 {
		h.render(w, r, page)
		return
	}

	// The guard bound the user before this handler ran; a missing id here
	// is a wiring bug, not a user problem.
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		log.Error("reset password invoked without authenticated user")
		httpx.InternalError(w)
		return
	}

	if err := h.Auth.ChangePassword(r.Context(), userID, password.Value); err != nil {
		log.Error("failed to change password", "user_id", userID, "error", err)
		httpx.InternalError(w)
		return
	}

	log.Info("password reset", "user_id", userID)
	http.Redirect(w, r, h.Paths.Admin(), http.StatusFound)
}

func (h *ResetPasswordHandler) render(w http.ResponseWriter, r *http.Request, page ResetPasswordPage) {
	httpx.NoCache(w)
	if err := h.Presenter.ResetPasswordView(w, page); err != nil {
		slogx.FromContext(r.Context()).Error("render reset password view", "error", err)
		httpx.InternalError(w)
	}
}
