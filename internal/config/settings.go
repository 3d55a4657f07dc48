package config

import "os"

// Settings holds process-level settings read from the environment.
type Settings struct {
	Port              string
	Env               string
	ConfigPath        string
	OpenAIAPIKey      string
	OpenAIModel       string
	FrontendPublicDir string
}

const (
	DefaultPort        = "8080"
	DefaultConfigPath  = "config/app_config.json"
	DefaultOpenAIModel = "gpt-4o-mini"
)

// LoadSettings reads Settings from the environment. Call godotenv.Load first to
// pick up a .env file.
func LoadSettings() Settings {
	return Settings{
		Port:              getenv("PORT", DefaultPort),
		Env:               getenv("APP_ENV", "dev"),
		ConfigPath:        getenv("APP_CONFIG_PATH", DefaultConfigPath),
		OpenAIAPIKey:      os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:       getenv("OPENAI_MODEL", DefaultOpenAIModel),
		FrontendPublicDir: os.Getenv("FRONTEND_PUBLIC_DIR"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
