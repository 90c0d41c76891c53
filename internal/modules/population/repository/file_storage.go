package repository

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/reshetovitsme/audience-reach/internal/modules/population/domain"
	"github.com/reshetovitsme/audience-reach/internal/shared/errors"
	"github.com/samber/oops"
)

const statsFile = "stats.json"

// FileStorage keeps the population snapshot as a JSON file
type FileStorage struct {
	basePath string
	mu       sync.RWMutex
}

// NewFileStorage creates a file-based population repository under basePath/population
func NewFileStorage(basePath string) (Repository, error) {
	populationPath := filepath.Join(basePath, "population")
	if err := os.MkdirAll(populationPath, 0755); err != nil {
		return nil, oops.With("base_path", basePath, "context", "failed to create population directory").Wrap(err)
	}

	return &FileStorage{basePath: populationPath}, nil
}

func (s *FileStorage) GetStats() (*domain.Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	path := filepath.Join(s.basePath, statsFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ErrStatsNotFound
		}
		return nil, oops.With("path", path, "context", "failed to read population stats").Wrap(err)
	}

	var stats domain.Stats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, oops.With("path", path, "context", "failed to unmarshal population stats").Wrap(err)
	}

	return &stats, nil
}

func (s *FileStorage) SaveStats(stats *domain.Stats) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.basePath, statsFile)
	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return oops.With("path", path, "context", "failed to marshal population stats").Wrap(err)
	}

	return os.WriteFile(path, data, 0644)
}
