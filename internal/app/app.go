package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/blog-posts/config"
	"github.com/daniilsolovey/blog-posts/internal/client"
	"github.com/daniilsolovey/blog-posts/internal/metrics"
	"github.com/daniilsolovey/blog-posts/internal/postlist"
	"github.com/daniilsolovey/blog-posts/internal/rest"
	"github.com/daniilsolovey/blog-posts/internal/rpc"
)

type App struct {
	Manager *postlist.Manager
	Loader  postlist.Loader
	Metrics *metrics.Metrics
	Logger  *slog.Logger
	Echo    *echo.Echo
	Config  config.Config
}

func New(cfg config.Config, logger *slog.Logger) *App {
	manager := postlist.NewManager(logger)
	m := metrics.New()

	handler := rest.NewPostsHandler(manager, m, logger)
	rpcServer := rpc.New(logger, manager, m)

	return &App{
		Manager: manager,
		Loader:  observedLoader{Loader: client.New(cfg.Source.BaseURL, nil), metrics: m},
		Metrics: m,
		Logger:  logger,
		Echo:    handler.RegisterRoutes(rpcServer),
		Config:  cfg,
	}
}

// Mount performs the single load of the listing view.
func (a *App) Mount(ctx context.Context) error {
	return a.Manager.Mount(ctx, a.Loader)
}

// observedLoader counts every fetch it actually performs.
type observedLoader struct {
	postlist.Loader
	metrics *metrics.Metrics
}

func (l observedLoader) Posts(ctx context.Context) ([]postlist.Post, error) {
	posts, err := l.Loader.Posts(ctx)
	l.metrics.ObserveLoad(err)

	return posts, err
}

// Run mounts the view in the background and serves HTTP until shutdown.
func (a *App) Run(ctx context.Context) error {
	go func() {
		_ = a.Mount(ctx)
	}()

	addr := fmt.Sprintf("%s:%d", a.Config.App.Host, a.Config.App.Port)
	a.Logger.Info("service started", "addr", addr, "source", a.Config.Source.BaseURL)

	if err := a.Echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
