// Command placeholderd serves an in-memory posts/users API with the same shape
// as the public placeholder service, for offline use of postdeck.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/CrestNiraj12/postdeck/infra/config"
	"github.com/CrestNiraj12/postdeck/infra/placeholderapi"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))

	posts, users := placeholderapi.DefaultSeed(10)
	app := placeholderapi.New(posts, users, logger).App()

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(ctx); err != nil {
			logger.Error("shutdown failed", slog.String("error", err.Error()))
		}
	}()

	logger.Info("listening", slog.String("addr", cfg.ServerAddr))
	if err := app.Listen(cfg.ServerAddr); err != nil {
		logger.Error("server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
