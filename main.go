package main

import (
	"errors"
	"log"
	"net/http"

	"prospecta/backend/internal/config"
	configapp "prospecta/backend/internal/features/config/application"
	configdomain "prospecta/backend/internal/features/config/domain"
	config_http "prospecta/backend/internal/features/config/presentation/http"
	"prospecta/backend/internal/features/playbook/application"
	"prospecta/backend/internal/features/playbook/infrastructure"
	playbook_http "prospecta/backend/internal/features/playbook/presentation/http"
	"prospecta/backend/internal/platform/logger"
	"prospecta/backend/internal/platform/middleware"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	settings := config.LoadSettings()

	appLog, err := logger.New(settings.Env)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLog.Sync()

	if settings.Env == "prod" || settings.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize services
	appConfigService := config.NewAppConfigService(settings.ConfigPath)
	playbookService := application.NewPlaybookService(appConfigService, appLog.With("component", "playbook"))
	frontendConfig := configapp.NewConfigService(settings.FrontendPublicDir)

	openaiClient, err := infrastructure.NewOpenAIClient(settings.OpenAIAPIKey)
	if err != nil {
		if !errors.Is(err, infrastructure.ErrMissingAPIKey) {
			appLog.Fatal("Failed to create OpenAI client", "error", err)
		}
		appLog.Info("OPENAI_API_KEY not set, email polisher disabled")
	}
	polishService := application.NewPolishService(openaiClient, playbookService, appConfigService, settings.OpenAIModel, appLog.With("component", "polisher"))

	publish := func(cfg *configdomain.AppConfig) error {
		return frontendConfig.PublishFrontendConfig(playbookService.OptionsFor(cfg))
	}
	if err := frontendConfig.PublishFrontendConfig(playbookService.Options()); err != nil {
		appLog.Warn("Failed to publish frontend config", "error", err)
	}

	var origins []string
	if appConfig, err := appConfigService.LoadAppConfig(); err == nil {
		origins = appConfig.AllowedOrigins
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger(appLog), middleware.CORS(origins))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// Playbook API routes
	playbook_http.NewPlaybookHandler(playbookService, polishService, appLog).Register(r.Group("/api/playbook"))

	// Config API routes
	configGroup := r.Group("/api/config")
	{
		handler := config_http.NewAppConfigHandler(appConfigService, publish, appLog)
		configGroup.GET("/app", handler.GetAppConfigHandler)
		configGroup.POST("/app", handler.SaveAppConfigHandler)
	}

	appLog.Info("Starting server", "port", settings.Port, "env", settings.Env)
	if err := r.Run(":" + settings.Port); err != nil {
		appLog.Fatal("Server stopped", "error", err)
	}
}
