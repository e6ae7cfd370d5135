package service

import (
	"fmt"
	"os"

	"github.com/xolan/datepicker/internal/config"
)

// ConfigService reads and writes the config file and tells subscribers
// when the active configuration changes.
type ConfigService struct {
	configPath string
	config     config.Config
	onUpdate   []func(config.Config)
}

// NewConfigService creates a new ConfigService
func NewConfigService(configPath string, cfg config.Config) *ConfigService {
	return &ConfigService{
		configPath: configPath,
		config:     cfg,
	}
}

// Get returns the current configuration
func (s *ConfigService) Get() config.Config {
	return s.config
}

// GetPath returns the path to the config file
func (s *ConfigService) GetPath() string {
	return s.configPath
}

// Exists checks if the config file exists
func (s *ConfigService) Exists() bool {
	_, err := os.Stat(s.configPath)
	return err == nil
}

// OnUpdate registers fn to receive the configuration after every
// successful Update or Reload.
func (s *ConfigService) OnUpdate(fn func(config.Config)) {
	s.onUpdate = append(s.onUpdate, fn)
}

// Update normalizes, validates and saves cfg, then makes it the active config.
func (s *ConfigService) Update(cfg config.Config) error {
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := s.write(config.Render(cfg)); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	s.apply(cfg)
	return nil
}

// Init writes the commented sample config. An existing file is never replaced.
func (s *ConfigService) Init() error {
	if s.Exists() {
		return fmt.Errorf("config file already exists at %s", s.configPath)
	}

	if err := s.write(config.GenerateSampleConfig()); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Reload re-reads the config file, falling back to defaults when it is absent.
func (s *ConfigService) Reload() error {
	cfg, err := config.LoadOrDefault(s.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	s.apply(cfg)
	return nil
}

func (s *ConfigService) apply(cfg config.Config) {
	s.config = cfg
	for _, fn := range s.onUpdate {
		fn(cfg)
	}
}

// write replaces the config file atomically (temp file, then rename)
func (s *ConfigService) write(content string) error {
	tmpFile := s.configPath + ".tmp"
	if err := os.WriteFile(tmpFile, []byte(content), 0644); err != nil {
		return err
	}
	if err := os.Rename(tmpFile, s.configPath); err != nil {
		_ = os.Remove(tmpFile)
		return err
	}
	return nil
}
