package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"prospecta/backend/internal/config"
	"prospecta/backend/internal/features/config/domain"
	"prospecta/backend/internal/platform/logger"
)

// AppConfigHandler holds the app config service.
type AppConfigHandler struct {
	appConfigService config.AppConfigService
	onSaved          func(*domain.AppConfig) error
	log              *logger.Logger
}

// NewAppConfigHandler creates a new AppConfigHandler. onSaved, when non-nil, runs
// after every successful save.
func NewAppConfigHandler(appConfigService config.AppConfigService, onSaved func(*domain.AppConfig) error, log *logger.Logger) *AppConfigHandler {
	return &AppConfigHandler{
		appConfigService: appConfigService,
		onSaved:          onSaved,
		log:              log,
	}
}

// GetAppConfigHandler handles fetching the application configuration.
func (h *AppConfigHandler) GetAppConfigHandler(c *gin.Context) {
	appConfig, err := h.appConfigService.LoadAppConfig()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load app config: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, appConfig)
}

// SaveAppConfigHandler handles saving the application configuration.
func (h *AppConfigHandler) SaveAppConfigHandler(c *gin.Context) {
	var appConfig domain.AppConfig
	if err := c.ShouldBindJSON(&appConfig); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.appConfigService.SaveAppConfig(&appConfig); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save app config: " + err.Error()})
		return
	}

	if h.onSaved != nil {
		if err := h.onSaved(&appConfig); err != nil {
			h.log.Warn("post-save hook failed", "error", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "App config saved successfully"})
}
