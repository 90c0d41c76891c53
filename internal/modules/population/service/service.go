package service

import (
	stderrors "errors"
	"log/slog"

	"github.com/reshetovitsme/audience-reach/internal/modules/population/domain"
	"github.com/reshetovitsme/audience-reach/internal/modules/population/repository"
	"github.com/reshetovitsme/audience-reach/internal/shared/errors"
	"github.com/samber/oops"
)

// Load reads the population snapshot, seeding the built-in one on first run
func Load(repo repository.Repository) (*domain.Stats, error) {
	stats, err := repo.GetStats()
	if stderrors.Is(err, errors.ErrStatsNotFound) {
		stats = domain.Default()
		if err := repo.SaveStats(stats); err != nil {
			return nil, oops.With("context", "failed to seed population stats").Wrap(err)
		}
		slog.Info("Seeded default population stats", "base_total", stats.BaseTotal)
	} else if err != nil {
		return nil, err
	}

	if err := stats.Validate(); err != nil {
		return nil, err
	}
	return stats, nil
}
