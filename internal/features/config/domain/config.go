package domain

import playbookdomain "prospecta/backend/internal/features/playbook/domain"

// AppConfig represents the application configuration.
type AppConfig struct {
	// Defaults overrides the built-in default briefing field by field; blank fields keep the built-in value.
	Defaults       playbookdomain.Briefing `json:"defaults" yaml:"defaults"`
	AllowedOrigins []string                `json:"allowed_origins" yaml:"allowed_origins"`
	ModelParams    ModelParams             `json:"model_params" yaml:"model_params"`
}

// ModelParams defines the parameters for the AI model used by the email polisher.
type ModelParams struct {
	Model       string  `json:"model" yaml:"model"`
	Temperature float32 `json:"temperature" yaml:"temperature"`
	MaxTokens   int     `json:"max_tokens" yaml:"max_tokens"`
}

// FrontendConfig is what gets published next to the frontend bundle.
type FrontendConfig struct {
	Form playbookdomain.FormOptions `json:"form"`
}
