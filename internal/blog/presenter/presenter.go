// Package presenter renders the blog's HTML views from embedded templates.
package presenter

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	bloghttp "github.com/aussiebroadwan/inkpress/internal/blog/http"
	"github.com/aussiebroadwan/inkpress/internal/blog/paths"
)

//go:embed templates/*.html
var templateFS embed.FS

type Presenter struct {
	templates *template.Template
	paths     *paths.Creator
}

func New(p *paths.Creator) (*Presenter, error) {
	t, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Presenter{templates: t, paths: p}, nil
}

// viewData wraps a page with the path creator so templates can build form
// actions and links under the blog mount path.
type viewData struct {
	Page  any
	Paths *paths.Creator
}

func (p *Presenter) LoginView(w http.ResponseWriter, page bloghttp.LoginPage) error {
	return p.render(w, "login.html", page)
}

func (p *Presenter) ResetPasswordView(w http.ResponseWriter, page bloghttp.ResetPasswordPage) error {
	return p.render(w, "resetpassword.html", page)
}

func (p *Presenter) AdminView(w http.ResponseWriter, page bloghttp.AdminPage) error {
	return p.render(w, "admin.html", page)
}

func (p *Presenter) IndexView(w http.ResponseWriter, page bloghttp.IndexPage) error {
	return p.render(w, "index.html", page)
}

func (p *Presenter) PostView(w http.ResponseWriter, page bloghttp.PostPage) error {
	return p.render(w, "post.html", page)
}

// render buffers the template output so a failing template never leaks a
// half-written page to the client.
func (p *Presenter) render(w http.ResponseWriter, name string, page any) error {
	var buf bytes.Buffer
	if err := p.templates.ExecuteTemplate(&buf, name, viewData{Page: page, Paths: p.paths}); err != nil {
		return fmt.Errorf("execute template %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err := buf.WriteTo(w)
	return err
}
