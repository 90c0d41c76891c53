package repository

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/reshetovitsme/audience-reach/internal/modules/preset/domain"
	"github.com/reshetovitsme/audience-reach/internal/shared/errors"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

// FileStorage stores one JSON file per preset
type FileStorage struct {
	basePath string
	mu       sync.RWMutex
}

// NewFileStorage creates a file-based preset repository under basePath/presets
func NewFileStorage(basePath string) (Repository, error) {
	presetPath := filepath.Join(basePath, "presets")
	if err := os.MkdirAll(presetPath, 0755); err != nil {
		return nil, oops.With("base_path", basePath, "context", "failed to create presets directory").Wrap(err)
	}

	return &FileStorage{basePath: presetPath}, nil
}

func (s *FileStorage) SavePreset(preset *domain.Preset) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.basePath, preset.Name+".json")
	data, err := json.MarshalIndent(preset, "", "  ")
	if err != nil {
		return oops.With("preset", preset.Name, "context", "failed to marshal preset").Wrap(err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return oops.With("preset", preset.Name, "context", "failed to write preset").Wrap(err)
	}
	return nil
}

func (s *FileStorage) GetPreset(name string) (*domain.Preset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	path := filepath.Join(s.basePath, name+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, oops.With("preset", name).Wrap(errors.ErrPresetNotFound)
		}
		return nil, oops.With("preset", name, "context", "failed to read preset").Wrap(err)
	}

	var preset domain.Preset
	if err := json.Unmarshal(data, &preset); err != nil {
		return nil, oops.With("preset", name, "context", "failed to unmarshal preset").Wrap(err)
	}

	return &preset, nil
}

// GetAllPresets returns every readable preset sorted by name
func (s *FileStorage) GetAllPresets() ([]*domain.Preset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.basePath)
	if err != nil {
		return nil, oops.With("directory", s.basePath, "context", "failed to read presets directory").Wrap(err)
	}

	presets := lo.FilterMap(entries, func(entry os.DirEntry, _ int) (*domain.Preset, bool) {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			return nil, false
		}

		data, err := os.ReadFile(filepath.Join(s.basePath, entry.Name()))
		if err != nil {
			return nil, false
		}

		var preset domain.Preset
		if err := json.Unmarshal(data, &preset); err != nil {
			return nil, false
		}

		return &preset, true
	})

	slices.SortFunc(presets, func(a, b *domain.Preset) int {
		return strings.Compare(a.Name, b.Name)
	})
	return presets, nil
}

func (s *FileStorage) DeletePreset(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.basePath, name+".json")
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return oops.With("preset", name).Wrap(errors.ErrPresetNotFound)
		}
		return oops.With("preset", name, "context", "failed to delete preset").Wrap(err)
	}
	return nil
}
