package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"golang.org/x/sync/errgroup"

	"staffdir/internal/domain/contact"
	"staffdir/internal/domain/directory"
	"staffdir/internal/platform/config"
	"staffdir/internal/platform/email"
	"staffdir/internal/platform/metrics"
	"staffdir/internal/platform/seed"
	"staffdir/internal/transport/http/api"
	contacthandler "staffdir/internal/transport/http/handlers/contact"
	directoryhandler "staffdir/internal/transport/http/handlers/directory"
	"staffdir/internal/transport/http/middleware"
	"staffdir/internal/transport/http/web"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	Config    config.Config
	Directory *directory.Service
	Contact   *contact.Service
	Metrics   *metrics.Collector
	Router    http.Handler
}

// New loads the record snapshot and assembles the HTTP surface. Notifications
// go through notifier when it is non-nil, otherwise through the transport
// selected by cfg.
func New(ctx context.Context, cfg config.Config, notifier contact.Notifier) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	snapshot, err := seed.Load(cfg.FixturePath, cfg.CurrentUserID)
	if err != nil {
		return nil, err
	}
	store, err := directory.NewStore(snapshot)
	if err != nil {
		return nil, err
	}
	dirService := directory.NewService(store)

	user, err := dirService.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("directory loaded",
		"employees", len(snapshot.Employees),
		"currentUser", user.ID,
		"role", user.Role,
	)

	if notifier == nil {
		notifier = email.New(cfg, slog.Default())
	}
	contactService := contact.NewService(notifier, nil, contact.Options{
		Recipient: cfg.ContactRecipient,
		Brand:     cfg.ContactBrand,
		Location:  time.Local,
	})

	app := &App{
		Config:    cfg,
		Directory: dirService,
		Contact:   contactService,
		Metrics:   metrics.New(),
	}
	app.Router = app.routes()
	return app, nil
}

func (a *App) routes() http.Handler {
	cfg := a.Config
	contactLimit := middleware.NewLimiter(cfg.ContactRateLimitPerMinute, time.Minute).Handler

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(slog.Default(), a.Metrics))
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.IsProduction()))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))
	router.Use(middleware.CurrentUser(a.Directory))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if _, err := a.Directory.Options(ctx); err != nil {
			http.Error(w, "directory not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	if cfg.MetricsEnabled {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			api.Success(w, a.Metrics.Snapshot(), middleware.GetRequestID(r.Context()))
		})
	}

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.CORSAllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders: []string{"X-Request-ID", "X-Total-Count"},
			MaxAge:         300,
		}))

		directoryhandler.NewHandler(a.Directory, cfg.PageSize, cfg.MaxPageSize).RegisterRoutes(r)

		r.Group(func(r chi.Router) {
			r.Use(contactLimit)
			contacthandler.NewHandler(a.Contact, a.Metrics).RegisterRoutes(r)
		})
	})

	pages := web.NewHandler(a.Directory, a.Contact, a.Metrics, cfg.PageSize, cfg.ContactBrand)
	pages.SubmitMiddleware = append(pages.SubmitMiddleware, contactLimit)
	pages.RegisterRoutes(router)

	return router
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (a *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              a.Config.Addr,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("staffdir listening", "addr", a.Config.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		slog.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
