package di

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-telegram/bot"
	audienceService "github.com/reshetovitsme/audience-reach/internal/modules/audience/service"
	populationDomain "github.com/reshetovitsme/audience-reach/internal/modules/population/domain"
	populationRepo "github.com/reshetovitsme/audience-reach/internal/modules/population/repository"
	populationService "github.com/reshetovitsme/audience-reach/internal/modules/population/service"
	presetRepo "github.com/reshetovitsme/audience-reach/internal/modules/preset/repository"
	presetService "github.com/reshetovitsme/audience-reach/internal/modules/preset/service"
	"github.com/reshetovitsme/audience-reach/internal/shared/config"
	"github.com/reshetovitsme/audience-reach/internal/shared/errors"
	httpServer "github.com/reshetovitsme/audience-reach/internal/transport/http"
	telegramHandler "github.com/reshetovitsme/audience-reach/internal/transport/telegram"
	"github.com/samber/do/v2"
	"github.com/samber/oops"
)

const shutdownTimeout = 10 * time.Second

// Setup initializes the dependency injection container
func Setup() (do.Injector, error) {
	return SetupWith(config.Load)
}

// SetupWith initializes the container with a custom config loader
func SetupWith(loadConfig func() (*config.Config, error)) (do.Injector, error) {
	injector := do.New()

	// Register Config
	do.Provide(injector, func(i do.Injector) (*config.Config, error) {
		cfg, err := loadConfig()
		if err != nil {
			return nil, oops.With("context", "failed to load config").Wrap(err)
		}
		return cfg, nil
	})

	// Register Population Repository
	do.Provide(injector, func(i do.Injector) (populationRepo.Repository, error) {
		cfg := do.MustInvoke[*config.Config](i)
		repo, err := populationRepo.NewFileStorage(cfg.StoragePath)
		if err != nil {
			return nil, oops.With("storage_path", cfg.StoragePath, "context", "failed to initialize population repository").Wrap(err)
		}
		return repo, nil
	})

	// Register Population Stats
	do.Provide(injector, func(i do.Injector) (*populationDomain.Stats, error) {
		repo, err := do.Invoke[populationRepo.Repository](i)
		if err != nil {
			return nil, err
		}
		return populationService.Load(repo)
	})

	// Register Estimator
	do.Provide(injector, func(i do.Injector) (*audienceService.Estimator, error) {
		stats, err := do.Invoke[*populationDomain.Stats](i)
		if err != nil {
			return nil, err
		}
		return audienceService.New(stats), nil
	})

	// Register Preset Repository
	do.Provide(injector, func(i do.Injector) (presetRepo.Repository, error) {
		cfg := do.MustInvoke[*config.Config](i)
		repo, err := presetRepo.NewFileStorage(cfg.StoragePath)
		if err != nil {
			return nil, oops.With("storage_path", cfg.StoragePath, "context", "failed to initialize preset repository").Wrap(err)
		}
		return repo, nil
	})

	// Register Preset Service
	do.Provide(injector, func(i do.Injector) (*presetService.Service, error) {
		repo := do.MustInvoke[presetRepo.Repository](i)
		return presetService.New(repo), nil
	})

	// Register Telegram Handler
	do.Provide(injector, func(i do.Injector) (*telegramHandler.Handler, error) {
		cfg := do.MustInvoke[*config.Config](i)
		estimator := do.MustInvoke[*audienceService.Estimator](i)
		presets := do.MustInvoke[*presetService.Service](i)
		return telegramHandler.New(cfg, estimator, presets), nil
	})

	// Register HTTP Server
	do.Provide(injector, func(i do.Injector) (*httpServer.Server, error) {
		cfg := do.MustInvoke[*config.Config](i)
		estimator := do.MustInvoke[*audienceService.Estimator](i)
		presets := do.MustInvoke[*presetService.Service](i)
		server := httpServer.New(cfg, estimator, presets)
		server.SetLogger(slog.Default())
		return server, nil
	})

	// Register Bot, only resolvable when a token is configured
	do.Provide(injector, func(i do.Injector) (*bot.Bot, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if !cfg.BotEnabled() {
			return nil, errors.ErrMissingBotToken
		}
		handler := do.MustInvoke[*telegramHandler.Handler](i)

		opts := []bot.Option{
			bot.WithDefaultHandler(handler.HandleUpdate),
			bot.WithServerURL(cfg.TelegramAPIURL),
		}

		b, err := bot.New(cfg.TelegramBotToken, opts...)
		if err != nil {
			return nil, oops.With("context", "failed to create telegram bot").Wrap(err)
		}

		handler.RegisterCommands(b)
		return b, nil
	})

	return injector, nil
}

// Shutdown gracefully shuts down all services
func Shutdown(injector do.Injector) error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if server, err := do.Invoke[*httpServer.Server](injector); err == nil && server != nil {
		if err := server.Shutdown(ctx); err != nil {
			return oops.With("context", "failed to shut down http server").Wrap(err)
		}
	}

	return nil
}
