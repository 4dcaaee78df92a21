// Package server initializes and runs the inkpad application: configuration
// validation, database and migration setup, dependency wiring, and the HTTP
// server lifecycle with graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/oleksir/inkpad/internal/logging"
	"github.com/oleksir/inkpad/internal/server/auth"
	"github.com/oleksir/inkpad/internal/server/config"
	"github.com/oleksir/inkpad/internal/server/password"
	"github.com/oleksir/inkpad/internal/server/repositories/repomanager"
	"github.com/oleksir/inkpad/internal/server/services"
	"github.com/oleksir/inkpad/internal/server/web"
)

type App struct {
	config *config.Config
	logger logging.Logger
	repos  repomanager.RepositoryManager
	router http.Handler
}

// NewApp validates the configuration and wires every component. A missing
// secret key fails here, before anything listens.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	s := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(s)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rm, err := repomanager.NewPostgresManager(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	codec := auth.NewTokenCodec([]byte(cfg.SecretKey), cfg.TokenValidity)
	gate := auth.NewGate(codec)
	hasher := password.NewHasher(cfg.BcryptCost)

	authSvc := services.NewAuthService(rm.Users(), hasher, codec)
	postSvc := services.NewPostService(rm.Posts())

	render, err := web.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("template init error: %w", err)
	}

	h := web.NewHandler(authSvc, postSvc, gate, render, logger, cfg.CookieMaxAge)

	return &App{
		config: cfg,
		logger: logger,
		repos:  rm,
		router: web.NewRouter(h),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves HTTP until the context is cancelled or a signal arrives, then
// shuts the server down gracefully and closes the database.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.initSignalHandler(cancelFunc)

	srv := &http.Server{
		Addr:         app.config.Addr,
		Handler:      app.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info(ctx, "starting server", "addr", app.config.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	app.logger.Info(ctx, "shutting down")

	shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutCtx); err != nil {
		app.logger.Error(ctx, "shutdown error", "error", err.Error())
	}

	return app.repos.Close()
}
