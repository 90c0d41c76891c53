package main

import (
	"log/slog"

	"github.com/reshetovitsme/audience-reach/internal/modules/population/domain"
	"github.com/reshetovitsme/audience-reach/internal/modules/population/repository"
	"github.com/reshetovitsme/audience-reach/internal/modules/population/service"
	presetRepo "github.com/reshetovitsme/audience-reach/internal/modules/preset/repository"
	presetService "github.com/reshetovitsme/audience-reach/internal/modules/preset/service"
	"github.com/reshetovitsme/audience-reach/internal/shared/config"
	"github.com/samber/oops"
	"github.com/spf13/cobra"
)

// rootOptions holds the flags shared by every subcommand
type rootOptions struct {
	storage string
	output  string
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "audiencectl",
		Short: "Estimate campaign audience reach from the command line",
		Long: `audiencectl previews how many users a campaign would reach.

Commands:
  estimate     Estimate reach for a filter model
  segments     List the audience segments
  population   Show or import the population snapshot
  presets      Manage saved filter models

Filters are given as key=value assignments, the same ones the Telegram bot accepts:
  audiencectl estimate xp=50-100 trust=70 wallet=yes channel=telegram`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if opts.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
	}

	cmd.PersistentFlags().StringVar(&opts.storage, "storage", "", "Storage directory (default: storage_path from config)")
	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", "text", "Output format (text, json, yaml)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(
		newEstimateCmd(opts),
		newSegmentsCmd(opts),
		newPopulationCmd(opts),
		newPresetsCmd(opts),
	)
	return cmd
}

// storagePath returns --storage or storage_path from the config file
func (o *rootOptions) storagePath() (string, error) {
	if o.storage != "" {
		return o.storage, nil
	}
	cfg, err := config.Load()
	if err != nil {
		return "", err
	}
	return cfg.StoragePath, nil
}

func (o *rootOptions) repository() (repository.Repository, error) {
	path, err := o.storagePath()
	if err != nil {
		return nil, err
	}

	repo, err := repository.NewFileStorage(path)
	if err != nil {
		return nil, oops.With("storage_path", path, "context", "failed to open population storage").Wrap(err)
	}
	return repo, nil
}

func (o *rootOptions) stats() (*domain.Stats, error) {
	repo, err := o.repository()
	if err != nil {
		return nil, err
	}
	return service.Load(repo)
}

func (o *rootOptions) presets() (*presetService.Service, error) {
	path, err := o.storagePath()
	if err != nil {
		return nil, err
	}

	repo, err := presetRepo.NewFileStorage(path)
	if err != nil {
		return nil, oops.With("storage_path", path, "context", "failed to open preset storage").Wrap(err)
	}
	return presetService.New(repo), nil
}
