package http

import (
	"net/http"

	"github.com/aussiebroadwan/inkpress/internal/blog/paths"
	"github.com/aussiebroadwan/inkpress/internal/blog/session"
)

// LogoutHandler tears down the current session and sends the browser back
// to the public blog root. Logging out twice is harmless.
type LogoutHandler struct {
	Sessions *session.Manager
	Paths    *paths.Creator
}

func (h *LogoutHandler) HandlePost(w http.ResponseWriter, r *http.Request) {
	h.Sessions.Unauthenticate(w, r)
	http.Redirect(w, r, h.Paths.Root(), http.StatusFound)
}
