package service

import (
	stderrors "errors"
	"log/slog"
	"time"

	audience "github.com/reshetovitsme/audience-reach/internal/modules/audience/domain"
	"github.com/reshetovitsme/audience-reach/internal/modules/preset/domain"
	"github.com/reshetovitsme/audience-reach/internal/modules/preset/repository"
	"github.com/reshetovitsme/audience-reach/internal/shared/errors"
)

// Service handles preset business logic
type Service struct {
	repo repository.Repository
	now  func() time.Time
}

// New creates a new preset service
func New(repo repository.Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Save validates model and stores it under name, keeping the original creation time
func (s *Service) Save(name string, model audience.FilterModel, userID int64) (*domain.Preset, error) {
	name, err := domain.NormalizeName(name)
	if err != nil {
		return nil, err
	}
	if err := model.Validate(); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	preset := &domain.Preset{
		Name:      name,
		Model:     model.Clone(),
		CreatedBy: userID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	existing, err := s.repo.GetPreset(name)
	switch {
	case err == nil:
		preset.CreatedBy = existing.CreatedBy
		preset.CreatedAt = existing.CreatedAt
	case !stderrors.Is(err, errors.ErrPresetNotFound):
		return nil, err
	}

	if err := s.repo.SavePreset(preset); err != nil {
		return nil, err
	}

	slog.Info("Saved preset", "preset", name, "user_id", userID, "active_filters", model.ActiveFilters())
	return preset, nil
}

// Get returns the preset called name
func (s *Service) Get(name string) (*domain.Preset, error) {
	name, err := domain.NormalizeName(name)
	if err != nil {
		return nil, err
	}
	return s.repo.GetPreset(name)
}

// List returns every stored preset
func (s *Service) List() ([]*domain.Preset, error) {
	return s.repo.GetAllPresets()
}

// Delete removes the preset called name
func (s *Service) Delete(name string) error {
	name, err := domain.NormalizeName(name)
	if err != nil {
		return err
	}
	if err := s.repo.DeletePreset(name); err != nil {
		return err
	}
	slog.Info("Deleted preset", "preset", name)
	return nil
}
