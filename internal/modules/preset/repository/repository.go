package repository

import (
	"github.com/reshetovitsme/audience-reach/internal/modules/preset/domain"
)

// Repository defines the interface for preset persistence
type Repository interface {
	SavePreset(preset *domain.Preset) error
	GetPreset(name string) (*domain.Preset, error)
	GetAllPresets() ([]*domain.Preset, error)
	DeletePreset(name string) error
}
