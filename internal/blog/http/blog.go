package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/inkpress/internal/blog/service"
	"github.com/aussiebroadwan/inkpress/pkg/httpx"
	"github.com/aussiebroadwan/inkpress/pkg/slogx"
)

// BlogHandler serves the public pages: the post index and individual posts.
type BlogHandler struct {
	Posts     *service.PostService
	Presenter Presenter
	Title     string
}

func (h *BlogHandler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	log := slogx.FromContext(r.Context())

	posts, err := h.Posts.ListPublished(r.Context())
	if err != nil {
		log.Error("failed to list posts", "error", err)
		httpx.InternalError(w)
		return
	}

	if err := h.Presenter.IndexView(w, IndexPage{Title: h.Title, Posts: posts}); err != nil {
		log.Error("render index view", "error", err)
		httpx.InternalError(w)
	}
}

func (h *BlogHandler) HandlePost(w http.ResponseWriter, r *http.Request) {
	log := slogx.FromContext(r.Context())

	post, err := h.Posts.GetPublishedBySlug(r.Context(), r.PathValue("slug"))
	if errors.Is(err, service.ErrPostNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		log.Error("failed to load post", "slug", r.PathValue("slug"), "error", err)
		httpx.InternalError(w)
		return
	}

	if err := h.Presenter.PostView(w, PostPage{Post: post}); err != nil {
		log.Error("render post view", "error", err)
		httpx.InternalError(w)
	}
}
