package service

import (
	"path/filepath"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/xolan/datepicker/internal/config"
	"github.com/xolan/datepicker/internal/daterange"
)

func TestNewServicesWithPaths(t *testing.T) {
	tmpDir := t.TempDir()
	statePath := filepath.Join(tmpDir, "state.json")
	configPath := filepath.Join(tmpDir, "config.toml")

	services := NewServicesWithPaths(statePath, configPath, config.DefaultConfig())

	if services == nil {
		t.Fatal("expected non-nil services")
	}
	if services.Picker == nil {
		t.Error("expected non-nil Picker service")
	}
	if services.Config == nil {
		t.Error("expected non-nil Config service")
	}
	if services.Config.GetPath() != configPath {
		t.Errorf("expected config path %q, got %q", configPath, services.Config.GetPath())
	}
}

func TestNewServicesWithPaths_PickerFollowsConfigUpdates(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Timezone = "UTC"
	cfg.DefaultGranularity = "day"

	services := NewServicesWithPaths(filepath.Join(tmpDir, "state.json"), filepath.Join(tmpDir, "config.toml"), cfg)
	services.Picker.SetClock(func() time.Time { return fixedNow })

	cfg.DefaultGranularity = "month"
	cfg.Timezone = "Asia/Tokyo"
	if err := services.Config.Update(cfg); err != nil {
		t.Fatalf("Update() returned unexpected error: %v", err)
	}

	result, err := services.Picker.Show()
	if err != nil {
		t.Fatalf("Show() returned unexpected error: %v", err)
	}
	if result.Granularity != daterange.Month {
		t.Errorf("Granularity = %q, expected month from the updated config", result.Granularity)
	}
	if got := result.Range.Start.Location().String(); got != "Asia/Tokyo" {
		t.Errorf("range location = %s, expected Asia/Tokyo", got)
	}
}
