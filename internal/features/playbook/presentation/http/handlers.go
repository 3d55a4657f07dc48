package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"prospecta/backend/internal/features/playbook/application"
	"prospecta/backend/internal/features/playbook/domain"
	"prospecta/backend/internal/platform/logger"
)

// PlaybookHandler holds the playbook and polish services.
type PlaybookHandler struct {
	playbookService application.PlaybookService
	polishService   application.PolishService
	log             *logger.Logger
}

// NewPlaybookHandler creates a new PlaybookHandler.
func NewPlaybookHandler(playbookService application.PlaybookService, polishService application.PolishService, log *logger.Logger) *PlaybookHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &PlaybookHandler{
		playbookService: playbookService,
		polishService:   polishService,
		log:             log,
	}
}

// Register mounts the playbook routes on the given group.
func (h *PlaybookHandler) Register(g *gin.RouterGroup) {
	g.GET("/options", h.OptionsHandler)
	g.GET("/default", h.DefaultHandler)
	g.POST("/generate", h.GenerateHandler)
	g.POST("/markdown", h.MarkdownHandler)
	g.POST("/polish", h.PolishHandler)
}

// OptionsHandler returns the form catalogue and the default briefing.
func (h *PlaybookHandler) OptionsHandler(c *gin.Context) {
	opts := h.playbookService.Options()
	opts.PolishEnabled = h.polishService != nil && h.polishService.Enabled()
	c.JSON(http.StatusOK, opts)
}

// DefaultHandler returns the default briefing and its playbook, which is what the
// form shows on first load and after a reset.
func (h *PlaybookHandler) DefaultHandler(c *gin.Context) {
	briefing := h.playbookService.Default()
	playbook, err := h.playbookService.Generate(briefing)
	if err != nil {
		h.log.Error("default briefing failed validation", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate default playbook: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"briefing": briefing, "playbook": playbook})
}

// GenerateHandler handles generating a playbook from a briefing.
func (h *PlaybookHandler) GenerateHandler(c *gin.Context) {
	var req domain.Briefing
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error(), "code": "invalid_request"})
		return
	}

	playbook, err := h.playbookService.Generate(req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, playbook)
}

// MarkdownHandler handles generating a playbook and returning it as Markdown.
func (h *PlaybookHandler) MarkdownHandler(c *gin.Context) {
	var req domain.Briefing
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error(), "code": "invalid_request"})
		return
	}

	playbook, err := h.playbookService.Generate(req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	md, err := application.RenderMarkdown(playbook)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(md))
}

// PolishHandler handles rewriting the generated cold email with the AI model.
func (h *PlaybookHandler) PolishHandler(c *gin.Context) {
	if h.polishService == nil || !h.polishService.Enabled() {
		h.respondError(c, domain.ErrPolisherDisabled)
		return
	}

	var req domain.Briefing
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error(), "code": "invalid_request"})
		return
	}

	result, err := h.polishService.Polish(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *PlaybookHandler) respondError(c *gin.Context, err error) {
	status, code := http.StatusInternalServerError, "internal_error"
	switch {
	case errors.Is(err, domain.ErrMissingProduct):
		status, code = http.StatusBadRequest, "missing_product"
	case errors.Is(err, domain.ErrMissingValueProposition):
		status, code = http.StatusBadRequest, "missing_value_proposition"
	case errors.Is(err, domain.ErrInvalidTone):
		status, code = http.StatusBadRequest, "invalid_tone"
	case errors.Is(err, domain.ErrInvalidStage):
		status, code = http.StatusBadRequest, "invalid_stage"
	case errors.Is(err, domain.ErrPolisherDisabled):
		status, code = http.StatusServiceUnavailable, "polisher_disabled"
	default:
		h.log.Error("playbook request failed", "path", c.FullPath(), "error", err)
	}
	c.JSON(status, gin.H{"error": err.Error(), "code": code})
}
