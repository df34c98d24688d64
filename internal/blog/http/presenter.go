package http

import (
	"net/http"

	"github.com/aussiebroadwan/inkpress/internal/blog/domain"
)

// LoginPage is the render input for the login form. Errors keep the exact
// order the validation produced them in; Username echoes back the submitted
// value (the password never is).
type LoginPage struct {
	LoginWarning  bool
	Errors        []string
	Username      string
	UsernameError bool
	PasswordError bool
}

// ResetPasswordPage is the render input for the password reset form.
type ResetPasswordPage struct {
	Errors               []string
	PasswordError        bool
	ConfirmPasswordError bool
}

// AdminPage is the administrative landing page.
type AdminPage struct {
	Username              string
	ResetPasswordRequired bool
}

// IndexPage lists the published posts on the public blog root.
type IndexPage struct {
	Title string
	Posts []domain.Post
}

// PostPage is a single public post page.
type PostPage struct {
	Post domain.Post
}

// Presenter renders the blog's server-side views. The production
// implementation lives in internal/blog/presenter; handler tests substitute
// a capturing fake.
type Presenter interface {
	LoginView(w http.ResponseWriter, page LoginPage) error
	ResetPasswordView(w http.ResponseWriter, page ResetPasswordPage) error
	AdminView(w http.ResponseWriter, page AdminPage) error
	IndexView(w http.ResponseWriter, page IndexPage) error
	PostView(w http.ResponseWriter, page PostPage) error
}
