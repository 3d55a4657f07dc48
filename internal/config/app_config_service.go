package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"prospecta/backend/internal/features/config/domain"
)

// AppConfigService defines the interface for application configuration management.
type AppConfigService interface {
	LoadAppConfig() (*domain.AppConfig, error)
	SaveAppConfig(config *domain.AppConfig) error
}

// appConfigService is the implementation of AppConfigService.
type appConfigService struct {
	configPath string
	mu         sync.Mutex
}

// NewAppConfigService creates a new instance of appConfigService. Files ending in
// .yaml or .yml are read and written as YAML, everything else as JSON.
func NewAppConfigService(configPath string) AppConfigService {
	return &appConfigService{configPath: configPath}
}

func (s *appConfigService) isYAML() bool {
	ext := strings.ToLower(filepath.Ext(s.configPath))
	return ext == ".yaml" || ext == ".yml"
}

// LoadAppConfig loads the application configuration from the configured file.
func (s *appConfigService) LoadAppConfig() (*domain.AppConfig, error) {
	absPath, err := filepath.Abs(s.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path for %s: %w", s.configPath, err)
	}

	s.mu.Lock()
	data, err := os.ReadFile(absPath)
	s.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("failed to read app config file %s: %w", absPath, err)
	}

	var appConfig domain.AppConfig
	if s.isYAML() {
		err = yaml.Unmarshal(data, &appConfig)
	} else {
		err = json.Unmarshal(data, &appConfig)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal app config from %s: %w", absPath, err)
	}

	return &appConfig, nil
}

// SaveAppConfig saves the application configuration to the configured file.
func (s *appConfigService) SaveAppConfig(appConfig *domain.AppConfig) error {
	absPath, err := filepath.Abs(s.configPath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for %s: %w", s.configPath, err)
	}

	var data []byte
	if s.isYAML() {
		data, err = yaml.Marshal(appConfig)
	} else {
		data, err = json.MarshalIndent(appConfig, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal app config: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.MkdirAll(filepath.Dir(absPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory for %s: %w", absPath, err)
	}
	if err := os.WriteFile(absPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write app config to file %s: %w", absPath, err)
	}

	return nil
}
