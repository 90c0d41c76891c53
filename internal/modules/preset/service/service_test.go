package service

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	audience "github.com/reshetovitsme/audience-reach/internal/modules/audience/domain"
	"github.com/reshetovitsme/audience-reach/internal/modules/preset/repository"
	"github.com/reshetovitsme/audience-reach/internal/shared/errors"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return newTestServiceIn(t, t.TempDir())
}

func newTestServiceIn(t *testing.T, dir string) *Service {
	t.Helper()
	repo, err := repository.NewFileStorage(dir)
	if err != nil {
		t.Fatalf("NewFileStorage: %v", err)
	}
	return New(repo)
}

func TestSaveKeepsCreation(t *testing.T) {
	s := newTestService(t)
	clock := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return clock }

	model := audience.NewFilterModel()
	first, err := s.Save("  Whales ", model, 1)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if first.Name != "whales" {
		t.Errorf("expected normalized name, got %q", first.Name)
	}

	clock = clock.Add(time.Hour)
	model.Behavior.ConnectedWallet = audience.BoolFilter{Enabled: true, Value: true}
	second, err := s.Save("whales", model, 2)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if second.CreatedBy != 1 || !second.CreatedAt.Equal(first.CreatedAt) {
		t.Errorf("expected creation to be preserved, got %+v", second)
	}
	if !second.UpdatedAt.After(first.UpdatedAt) {
		t.Error("expected UpdatedAt to advance")
	}

	got, err := s.Get("WHALES")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !got.Model.Behavior.ConnectedWallet.Enabled {
		t.Error("expected the latest model to be stored")
	}
}

func TestSaveRejects(t *testing.T) {
	s := newTestService(t)

	if _, err := s.Save("../etc", audience.NewFilterModel(), 1); !stderrors.Is(err, errors.ErrInvalidPresetName) {
		t.Errorf("expected ErrInvalidPresetName, got %v", err)
	}

	bad := audience.NewFilterModel()
	bad.Delivery.Schedule = audience.ScheduleScheduled
	if _, err := s.Save("later", bad, 1); !stderrors.Is(err, errors.ErrInvalidFilter) {
		t.Errorf("expected ErrInvalidFilter, got %v", err)
	}

	if list, err := s.List(); err != nil || len(list) != 0 {
		t.Errorf("expected nothing stored, got %d (%v)", len(list), err)
	}
}

func TestDelete(t *testing.T) {
	s := newTestService(t)
	if _, err := s.Save("tmp", audience.NewFilterModel(), 1); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Delete("tmp"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Delete("tmp"); !stderrors.Is(err, errors.ErrPresetNotFound) {
		t.Errorf("expected ErrPresetNotFound, got %v", err)
	}
}

func TestSaveKeepsUnreadablePreset(t *testing.T) {
	dir := t.TempDir()
	s := newTestServiceIn(t, dir)

	path := filepath.Join(dir, "presets", "broken.json")
	corrupt := []byte("{not json")
	if err := os.WriteFile(path, corrupt, 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := s.Save("broken", audience.NewFilterModel(), 1); err == nil {
		t.Fatal("expected Save to fail on an unreadable preset")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != string(corrupt) {
		t.Errorf("expected the stored file to be left alone, got %q", data)
	}
}
