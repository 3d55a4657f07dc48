package application

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"prospecta/backend/internal/features/config/domain"
	playbookdomain "prospecta/backend/internal/features/playbook/domain"
)

// FrontendConfigFile is the file name written into the frontend public directory.
const FrontendConfigFile = "config.json"

// ConfigService defines the interface for publishing config to the frontend.
type ConfigService interface {
	PublishFrontendConfig(options playbookdomain.FormOptions) error
}

// configService is the implementation of ConfigService.
type configService struct {
	publicDir string
}

// NewConfigService creates a new instance of configService. An empty publicDir
// turns publishing into a no-op.
func NewConfigService(publicDir string) ConfigService {
	return &configService{publicDir: publicDir}
}

// PublishFrontendConfig writes the form catalogue to <publicDir>/config.json so the
// frontend can render selectors and reset values without a round trip.
func (s *configService) PublishFrontendConfig(options playbookdomain.FormOptions) error {
	if s.publicDir == "" {
		return nil
	}
	publicPath := filepath.Join(s.publicDir, FrontendConfigFile)

	data, err := json.MarshalIndent(domain.FrontendConfig{Form: options}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal frontend config: %w", err)
	}

	if err := os.MkdirAll(s.publicDir, 0755); err != nil {
		return fmt.Errorf("failed to create public directory %s: %w", s.publicDir, err)
	}
	if err := os.WriteFile(publicPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config to file %s: %w", publicPath, err)
	}

	return nil
}
