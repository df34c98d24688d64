package http

import (
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/inkpress/internal/blog/paths"
	"github.com/aussiebroadwan/inkpress/internal/blog/service"
	"github.com/aussiebroadwan/inkpress/internal/blog/session"
	"github.com/aussiebroadwan/inkpress/internal/blog/store"
	"github.com/aussiebroadwan/inkpress/pkg/httpx"
	"github.com/aussiebroadwan/inkpress/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware
	guard       httpx.Middleware

	logger    *slog.Logger
	paths     *paths.Creator
	sessions  *session.Manager
	presenter Presenter
	store     store.Store
	blogTitle string

	AuthService *service.AuthService
	PostService *service.PostService
	FeedService *service.FeedService
}

func NewRouter(
	p *paths.Creator,
	sessions *session.Manager,
	presenter Presenter,
	st store.Store,
	blogTitle string,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:       http.NewServeMux(),
		paths:     p,
		sessions:  sessions,
		presenter: presenter,
		store:     st,
		blogTitle: blogTitle,
		logger:    logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}
	r.guard = RequireUser(r.sessions, r.paths)

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerAdmin()
	r.registerPublic()
}

// ServeHTTP implements http.Handler for Router and applies the global
// middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	login := &LoginHandler{
		Auth:      r.AuthService,
		Sessions:  r.sessions,
		Paths:     r.paths,
		Presenter: r.presenter,
	}

	// GET /login - lenient rate limit (just displays the form)
	r.Mux.Handle("GET "+r.paths.Login(),
		httpx.Chain(http.HandlerFunc(login.HandleGet),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	// POST /login - strict rate limit by IP + username form field to
	// prevent brute force against a single account
	r.Mux.Handle("POST "+r.paths.Login(),
		httpx.Chain(http.HandlerFunc(login.HandlePost),
			httpx.RateLimitByIPAndFormField(httpx.StrictLimit, "username"),
		),
	)

	logout := &LogoutHandler{Sessions: r.sessions, Paths: r.paths}
	r.Mux.Handle("POST "+r.paths.Path("logout"),
		httpx.Chain(http.HandlerFunc(logout.HandlePost),
			r.guard,
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	reset := &ResetPasswordHandler{
		Auth:      r.AuthService,
		Paths:     r.paths,
		Presenter: r.presenter,
	}
	r.Mux.Handle("GET "+r.paths.Path("resetPassword"),
		httpx.Chain(http.HandlerFunc(reset.HandleGet),
			r.guard,
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST "+r.paths.Path("resetPassword"),
		httpx.Chain(http.HandlerFunc(reset.HandlePost),
			r.guard,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerAdmin() {
	admin := &AdminHandler{Store: r.store, Presenter: r.presenter}

	r.Mux.Handle("GET "+r.paths.Admin(),
		httpx.Chain(http.HandlerFunc(admin.HandleGet),
			r.guard,
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerPublic() {
	blog := &BlogHandler{Posts: r.PostService, Presenter: r.presenter, Title: r.blogTitle}

	// "{$}" pins the index to the blog root instead of the whole subtree.
	r.Mux.Handle("GET "+r.paths.Root()+"{$}",
		httpx.Chain(http.HandlerFunc(blog.HandleIndex),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	postHandler := httpx.Chain(http.HandlerFunc(blog.HandlePost),
		httpx.RateLimitByIP(httpx.PublicLimit),
	)
	// Feed links are slash-terminated; accept both forms.
	r.Mux.Handle("GET "+r.paths.Path("posts")+"/{slug}", postHandler)
	r.Mux.Handle("GET "+r.paths.Path("posts")+"/{slug}/{$}", postHandler)

	feed := &FeedHandler{Feed: r.FeedService}
	r.Mux.Handle("GET "+r.paths.RSS(),
		httpx.Chain(http.HandlerFunc(feed.HandleGet),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}
