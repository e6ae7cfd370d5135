package service

import (
	"github.com/xolan/datepicker/internal/config"
	"github.com/xolan/datepicker/internal/state"
)

// Services holds all service instances used by the application
type Services struct {
	Picker *PickerService
	Config *ConfigService
}

// NewServices creates a new Services instance with default paths
func NewServices() (*Services, error) {
	statePath, err := state.GetStatePath()
	if err != nil {
		return nil, err
	}

	configPath, err := config.GetConfigPath()
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, err
	}

	return NewServicesWithPaths(statePath, configPath, cfg), nil
}

// NewServicesWithPaths creates a new Services instance with custom paths (useful for testing)
func NewServicesWithPaths(statePath, configPath string, cfg config.Config) *Services {
	services := &Services{
		Picker: NewPickerService(statePath, cfg),
		Config: NewConfigService(configPath, cfg),
	}
	// Picker follows config edits made while the program runs (e.g. in the TUI)
	services.Config.OnUpdate(services.Picker.SetConfig)
	return services
}
