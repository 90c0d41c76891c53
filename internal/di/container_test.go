package di

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-telegram/bot"
	"github.com/reshetovitsme/audience-reach/internal/modules/audience/domain"
	audienceService "github.com/reshetovitsme/audience-reach/internal/modules/audience/service"
	presetService "github.com/reshetovitsme/audience-reach/internal/modules/preset/service"
	"github.com/reshetovitsme/audience-reach/internal/shared/config"
	httpServer "github.com/reshetovitsme/audience-reach/internal/transport/http"
	telegramHandler "github.com/reshetovitsme/audience-reach/internal/transport/telegram"
	"github.com/samber/do/v2"
)

func TestSetupWiresServices(t *testing.T) {
	dir := t.TempDir()
	injector, err := SetupWith(func() (*config.Config, error) {
		return &config.Config{StoragePath: dir, HTTPPort: "0"}, nil
	})
	if err != nil {
		t.Fatalf("SetupWith: %v", err)
	}

	estimator, err := do.Invoke[*audienceService.Estimator](injector)
	if err != nil {
		t.Fatalf("invoke estimator: %v", err)
	}
	if estimator.Stats().BaseTotal != 15420 {
		t.Errorf("expected seeded stats, got base %d", estimator.Stats().BaseTotal)
	}
	if _, err := os.Stat(filepath.Join(dir, "population", "stats.json")); err != nil {
		t.Errorf("expected stats to be seeded on disk: %v", err)
	}

	presets, err := do.Invoke[*presetService.Service](injector)
	if err != nil {
		t.Fatalf("invoke presets: %v", err)
	}
	if _, err := presets.Save("smoke", domain.NewFilterModel(), 1); err != nil {
		t.Errorf("save preset: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "presets", "smoke.json")); err != nil {
		t.Errorf("expected preset under storage path: %v", err)
	}

	if _, err := do.Invoke[*httpServer.Server](injector); err != nil {
		t.Errorf("invoke http server: %v", err)
	}
	if _, err := do.Invoke[*telegramHandler.Handler](injector); err != nil {
		t.Errorf("invoke telegram handler: %v", err)
	}

	if _, err := do.Invoke[*bot.Bot](injector); err == nil {
		t.Error("expected bot resolution to fail without a token")
	}

	if err := Shutdown(injector); err != nil {
		t.Errorf("Shutdown: %v", err)
	}
}

func TestSetupPropagatesConfigError(t *testing.T) {
	boom := stderrors.New("boom")
	injector, err := SetupWith(func() (*config.Config, error) { return nil, boom })
	if err != nil {
		t.Fatalf("SetupWith: %v", err)
	}
	if _, err := do.Invoke[*config.Config](injector); err == nil {
		t.Error("expected config error to surface")
	}
}
