package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/namsral/flag"

	"github.com/daniilsolovey/blog-posts/config"
	_ "github.com/daniilsolovey/blog-posts/docs"
	"github.com/daniilsolovey/blog-posts/internal/app"
)

var (
	flConfig = flag.String("config", "config.toml", "path to TOML configuration file")
	flSource = flag.String("source", "", "base URL of the posts server, overrides Source.BaseURL")
	flDebug  = flag.Bool("debug", false, "enable debug mode")
	cfg      config.Config
	lg       *slog.Logger
)

// @title Blog Posts API
// @version 1.0
// @description Paginated, category filtered listing of blog posts
// @host localhost:3000
// @BasePath /

func main() {
	// .env values become flag defaults through their upper-cased names (CONFIG, SOURCE, DEBUG).
	envErr := godotenv.Load()

	flag.Parse()

	lg = newLogger(*flDebug)
	if envErr != nil {
		lg.Debug("no .env file loaded", "error", envErr)
	}

	var err error
	cfg, err = config.Load(*flConfig)
	exitOnError(err)

	if *flSource != "" {
		cfg.Source.BaseURL = *flSource
		exitOnError(cfg.Validate())
	}

	service := app.New(cfg, lg)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		err := service.Run(ctx)
		if err != nil {
			lg.Error("service run failed", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	lg.Info("service stopping")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	err = service.GracefulShutdown(shutdownCtx)
	if err != nil {
		lg.Error("service graceful shutdown failed", "error", err)
	}
}

func newLogger(debug bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

func exitOnError(err error) {
	if err != nil {
		lg.Error("app init failed", "error", err)
		os.Exit(1)
	}
}
