package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	blogapi "github.com/aussiebroadwan/inkpress/internal/blog/http"
	"github.com/aussiebroadwan/inkpress/internal/blog/paths"
	"github.com/aussiebroadwan/inkpress/internal/blog/presenter"
	"github.com/aussiebroadwan/inkpress/internal/blog/service"
	"github.com/aussiebroadwan/inkpress/internal/blog/session"
	"github.com/aussiebroadwan/inkpress/internal/blog/store"
	"github.com/aussiebroadwan/inkpress/internal/blog/store/drivers/sqlite"
	"github.com/aussiebroadwan/inkpress/pkg/cryptox"
	"github.com/aussiebroadwan/inkpress/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the blog with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db       store.Store
	sessions *session.Manager
	paths    *paths.Creator

	authService *service.AuthService
	postService *service.PostService
	feedService *service.FeedService

	server *http.Server
	router *blogapi.Router
}

// New creates a new Application instance with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "inkpress",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
		sessions: session.NewManager(),
		paths:    paths.NewCreator(cfg.BlogPath).WithAdminPath(cfg.AdminPath),
	}

	// Set pepper path for password hashing
	cryptox.SetPepperPath(cfg.PepperFile)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.ensureAdminUser(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initServices()

	if err := app.initHTTP(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.logger.Info("blog starting",
		"port", app.cfg.Port,
		"blog_path", app.paths.Root(),
		"version", BuildVersion,
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down blog...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("blog stopped")
	return nil
}

// initDatabase initializes the database and applies migrations.
func (app *Application) initDatabase() error {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(dsn)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

func (app *Application) initServices() {
	app.authService = &service.AuthService{Store: app.db}
	app.postService = &service.PostService{Store: app.db}
	app.feedService = &service.FeedService{
		Store:       app.db,
		Paths:       app.paths,
		Title:       app.cfg.BlogTitle,
		Description: app.cfg.BlogDescription,
	}
}

func (app *Application) initHTTP() error {
	pres, err := presenter.New(app.paths)
	if err != nil {
		return fmt.Errorf("failed to initialize presenter: %w", err)
	}

	app.router = blogapi.NewRouter(
		app.paths,
		app.sessions,
		pres,
		app.db,
		app.cfg.BlogTitle,
		app.logger,
	)
	app.router.AuthService = app.authService
	app.router.PostService = app.postService
	app.router.FeedService = app.feedService
	app.router.ApplyRoutes()

	app.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", app.cfg.Port),
		Handler: app.router,
	}
	return nil
}
