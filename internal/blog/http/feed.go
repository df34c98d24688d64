package http

import (
	"net/http"

	"github.com/aussiebroadwan/inkpress/internal/blog/service"
	"github.com/aussiebroadwan/inkpress/pkg/httpx"
	"github.com/aussiebroadwan/inkpress/pkg/slogx"
)

// FeedHandler serves the RSS feed.
type FeedHandler struct {
	Feed *service.FeedService
}

func (h *FeedHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	feed, err := h.Feed.Generate(r.Context())
	if err != nil {
		slogx.FromContext(r.Context()).Error("failed to generate feed", "error", err)
		httpx.InternalError(w)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	_, _ = w.Write([]byte(feed))
}
