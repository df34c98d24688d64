package http

import (
	"net/http"

	"github.com/aussiebroadwan/inkpress/internal/blog/store"
	"github.com/aussiebroadwan/inkpress/pkg/httpx"
	"github.com/aussiebroadwan/inkpress/pkg/slogx"
)

// AdminHandler serves the administrative landing page, the redirect target
// after a successful login or password reset.
type AdminHandler struct {
	Store     store.Store
	Presenter Presenter
}

func (h *AdminHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	log := slogx.FromContext(r.Context())

	userID, ok := userIDFromContext(r.Context())
	if !ok {
		log.Error("admin page invoked without authenticated user")
		httpx.InternalError(w)
		return
	}

	user, err := h.Store.Users().GetUserByID(r.Context(), userID)
	if err != nil {
		log.Error("failed to load admin user", "user_id", userID, "error", err)
		httpx.InternalError(w)
		return
	}

	httpx.NoCache(w)
	err = h.Presenter.AdminView(w, AdminPage{
		Username:              user.Username,
		ResetPasswordRequired: user.ResetPasswordRequired,
	})
	if err != nil {
		log.Error("render admin view", "error", err)
		httpx.InternalError(w)
	}
}
