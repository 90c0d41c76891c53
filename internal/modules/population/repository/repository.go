package repository

import (
	"github.com/reshetovitsme/audience-reach/internal/modules/population/domain"
)

// Repository is the population-statistics source.
// FileStorage is the only implementation; an analytics-backed source can replace it.
type Repository interface {
	GetStats() (*domain.Stats, error)
	SaveStats(stats *domain.Stats) error
}
