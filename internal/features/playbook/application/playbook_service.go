package application

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"prospecta/backend/internal/config"
	configdomain "prospecta/backend/internal/features/config/domain"
	"prospecta/backend/internal/features/playbook/domain"
	"prospecta/backend/internal/platform/logger"
)

// DefaultBriefing is the briefing the form starts with and resets to.
var DefaultBriefing = domain.Briefing{
	Product:          "Outbound prospecting platform",
	ValueProposition: "generate predictable pipeline with sales intelligence",
	Segment:          "Brazilian B2B scale-ups",
	Role:             "Head of Sales",
	Objective:        "speed up qualified meeting generation",
	Pain:             "low reply rate on current cadences",
	Tone:             domain.ToneConsultive,
	Differentiators:  "guided diagnostic + multichannel cadence ready in 7 days",
	Stage:            domain.StageDiscovery,
}

var toneOptions = []domain.ToneOption{
	{Value: domain.ToneConsultive, Label: "Consultive", Description: "Balance between empathy and objectivity."},
	{Value: domain.ToneEnthusiastic, Label: "Enthusiastic", Description: "High energy to spark immediate interest."},
	{Value: domain.ToneDirect, Label: "Direct", Description: "No detours, focused on results."},
}

var stageOptions = []domain.StageOption{
	{Value: domain.StageMapping, Label: "Mapping"},
	{Value: domain.StageDiscovery, Label: "Discovery"},
	{Value: domain.StageQualification, Label: "Qualification"},
	{Value: domain.StageNegotiation, Label: "Negotiation"},
}

var requiredFields = []string{"product", "value_proposition"}

// PlaybookService defines the interface for the playbook application service.
type PlaybookService interface {
	Generate(briefing domain.Briefing) (*domain.Playbook, error)
	Validate(briefing domain.Briefing) error
	Default() domain.Briefing
	Options() domain.FormOptions
	OptionsFor(appConfig *configdomain.AppConfig) domain.FormOptions
}

// playbookService is the implementation of PlaybookService.
type playbookService struct {
	appConfigService config.AppConfigService
	log              *logger.Logger
}

// NewPlaybookService creates a new instance of playbookService. appConfigService
// may be nil, in which case the built-in defaults are always used.
func NewPlaybookService(appConfigService config.AppConfigService, log *logger.Logger) PlaybookService {
	if log == nil {
		log = logger.Nop()
	}
	return &playbookService{appConfigService: appConfigService, log: log}
}

// Validate applies the form rules: product and value proposition must be filled in,
// tone and stage must be known values.
func (s *playbookService) Validate(b domain.Briefing) error {
	if strings.TrimSpace(b.Product) == "" {
		return domain.ErrMissingProduct
	}
	if strings.TrimSpace(b.ValueProposition) == "" {
		return domain.ErrMissingValueProposition
	}
	if !b.Tone.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidTone, b.Tone)
	}
	if !b.Stage.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidStage, b.Stage)
	}
	return nil
}

// Generate validates the briefing and renders its playbook.
func (s *playbookService) Generate(b domain.Briefing) (*domain.Playbook, error) {
	if err := s.Validate(b); err != nil {
		return nil, err
	}
	playbook := Generate(b)
	s.log.Debug("playbook generated", "tone", b.Tone, "stage", b.Stage)
	return &playbook, nil
}

// Default returns the reset briefing, with any overrides from the app config applied.
func (s *playbookService) Default() domain.Briefing {
	return mergeDefaults(DefaultBriefing, s.loadAppConfig())
}

// Options returns the form catalogue using the current app config.
func (s *playbookService) Options() domain.FormOptions {
	return s.OptionsFor(s.loadAppConfig())
}

// OptionsFor returns the form catalogue for the given app config.
func (s *playbookService) OptionsFor(appConfig *configdomain.AppConfig) domain.FormOptions {
	return domain.FormOptions{
		Tones:          append([]domain.ToneOption(nil), toneOptions...),
		Stages:         append([]domain.StageOption(nil), stageOptions...),
		RequiredFields: append([]string(nil), requiredFields...),
		Defaults:       mergeDefaults(DefaultBriefing, appConfig),
	}
}

func (s *playbookService) loadAppConfig() *configdomain.AppConfig {
	if s.appConfigService == nil {
		return nil
	}
	appConfig, err := s.appConfigService.LoadAppConfig()
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.log.Warn("failed to load app config, using built-in defaults", "error", err)
		}
		return nil
	}
	return appConfig
}

func mergeDefaults(base domain.Briefing, appConfig *configdomain.AppConfig) domain.Briefing {
	if appConfig == nil {
		return base
	}
	o := appConfig.Defaults
	pick := func(override, current string) string {
		if v := strings.TrimSpace(override); v != "" {
			return v
		}
		return current
	}
	merged := domain.Briefing{
		Product:          pick(o.Product, base.Product),
		ValueProposition: pick(o.ValueProposition, base.ValueProposition),
		Segment:          pick(o.Segment, base.Segment),
		Role:             pick(o.Role, base.Role),
		Objective:        pick(o.Objective, base.Objective),
		Pain:             pick(o.Pain, base.Pain),
		Tone:             base.Tone,
		Differentiators:  pick(o.Differentiators, base.Differentiators),
		Stage:            base.Stage,
	}
	if o.Tone.Valid() {
		merged.Tone = o.Tone
	}
	if o.Stage.Valid() {
		merged.Stage = o.Stage
	}
	return merged
}
