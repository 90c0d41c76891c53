package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-telegram/bot"
	"github.com/reshetovitsme/audience-reach/internal/di"
	audienceService "github.com/reshetovitsme/audience-reach/internal/modules/audience/service"
	"github.com/reshetovitsme/audience-reach/internal/shared/config"
	httpServer "github.com/reshetovitsme/audience-reach/internal/transport/http"
	"github.com/samber/do/v2"
	slogmulti "github.com/samber/slog-multi"
)

func setupLogger(level slog.Level) {
	// Text logs for humans on stdout, errors also as JSON on stderr
	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	jsonHandler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	})

	slog.SetDefault(slog.New(slogmulti.Fanout(textHandler, jsonHandler)))
}

func main() {
	setupLogger(slog.LevelInfo)

	// Setup dependency injection
	injector, err := di.Setup()
	if err != nil {
		slog.Error("Failed to setup dependency injection", "error", err)
		os.Exit(1)
	}

	cfg, err := do.Invoke[*config.Config](injector)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	setupLogger(cfg.SlogLevel())

	estimator, err := do.Invoke[*audienceService.Estimator](injector)
	if err != nil {
		slog.Error("Failed to load population stats", "error", err)
		os.Exit(1)
	}
	slog.Info("Population loaded",
		"base_total", estimator.Stats().BaseTotal,
		"storage_path", cfg.StoragePath,
		"env", cfg.AppEnv,
	)

	server := do.MustInvoke[*httpServer.Server](injector)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Start HTTP server
	go func() {
		if err := server.Start(); err != nil {
			slog.Error("Failed to start HTTP server", "error", err)
			os.Exit(1)
		}
	}()

	if cfg.BotEnabled() {
		b, err := do.Invoke[*bot.Bot](injector)
		if err != nil {
			slog.Error("Failed to start Telegram bot", "error", err)
			os.Exit(1)
		}
		go b.Start(ctx)
		slog.Info("Telegram bot started", "allowed_users", len(cfg.AllowedUsers))
	} else {
		slog.Warn("TELEGRAM_BOT_TOKEN not set, running without the Telegram bot")
	}

	slog.Info("Application started", "port", cfg.HTTPPort)
	slog.Info("Press Ctrl+C to stop")

	<-ctx.Done()
	slog.Info("Shutting down...")

	if err := di.Shutdown(injector); err != nil {
		slog.Error("Error during shutdown", "error", err)
	}
}
