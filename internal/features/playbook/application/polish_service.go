package application

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"prospecta/backend/internal/config"
	"prospecta/backend/internal/features/playbook/domain"
	"prospecta/backend/internal/features/playbook/infrastructure"
	"prospecta/backend/internal/platform/logger"
)

const polishSystemPrompt = `You are a senior SDR coach. You receive a cold email as JSON with the keys "subject", "opening", "body" and "closing".
Rewrite it so it reads naturally while keeping every fact, the product name and the call to action.
Keep the same language. Use %s.
Return only a JSON object with the same four keys. No explanations, headings or lists.`

const defaultPolishTemperature = 0.4

// PolishService defines the interface for the AI email polisher.
type PolishService interface {
	Enabled() bool
	Polish(ctx context.Context, briefing domain.Briefing) (*domain.PolishResult, error)
}

// polishService is the implementation of PolishService.
type polishService struct {
	client           infrastructure.OpenAIClient
	playbooks        PlaybookService
	appConfigService config.AppConfigService
	model            string
	log              *logger.Logger
}

// NewPolishService creates a new instance of polishService. A nil client yields a
// disabled service whose Polish returns domain.ErrPolisherDisabled.
func NewPolishService(client infrastructure.OpenAIClient, playbooks PlaybookService, appConfigService config.AppConfigService, model string, log *logger.Logger) PolishService {
	if log == nil {
		log = logger.Nop()
	}
	return &polishService{
		client:           client,
		playbooks:        playbooks,
		appConfigService: appConfigService,
		model:            model,
		log:              log,
	}
}

func (s *polishService) Enabled() bool {
	return s.client != nil
}

// Polish generates the deterministic email for the briefing and asks the model for
// a rewritten variant in the briefing's tone.
func (s *polishService) Polish(ctx context.Context, briefing domain.Briefing) (*domain.PolishResult, error) {
	if !s.Enabled() {
		return nil, domain.ErrPolisherDisabled
	}

	playbook, err := s.playbooks.Generate(briefing)
	if err != nil {
		return nil, err
	}

	emailJSON, err := json.Marshal(playbook.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal email: %w", err)
	}

	req := infrastructure.CompletionRequest{
		Model:        s.model,
		SystemPrompt: fmt.Sprintf(polishSystemPrompt, tonePresets[briefing.Tone].Intensity),
		UserPrompt:   string(emailJSON),
		Temperature:  defaultPolishTemperature,
	}
	if s.appConfigService != nil {
		if appConfig, err := s.appConfigService.LoadAppConfig(); err == nil {
			if appConfig.ModelParams.Model != "" {
				req.Model = appConfig.ModelParams.Model
			}
			if appConfig.ModelParams.Temperature > 0 {
				req.Temperature = appConfig.ModelParams.Temperature
			}
			req.MaxTokens = appConfig.ModelParams.MaxTokens
		}
	}

	raw, err := s.client.Complete(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to polish email: %w", err)
	}

	var polished domain.EmailPlay
	rawJSON := stripCodeFence(raw)
	if err := json.Unmarshal([]byte(rawJSON), &polished); err != nil {
		s.log.Warn("unparseable polish response", "model", req.Model, "raw", rawJSON)
		return nil, fmt.Errorf("failed to parse polished email from AI: %w, raw response: %s", err, rawJSON)
	}
	if polished.Subject == "" || polished.Body == "" {
		return nil, fmt.Errorf("polished email is incomplete, raw response: %s", rawJSON)
	}

	return &domain.PolishResult{
		Original: playbook.Email,
		Polished: polished,
		Model:    req.Model,
	}, nil
}

// stripCodeFence extracts the JSON payload from a markdown code block if present.
func stripCodeFence(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") && strings.HasSuffix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(s, "```")
	}
	return strings.TrimSpace(s)
}
