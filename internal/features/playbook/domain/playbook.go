package domain

// Tone defines the communication style applied to the outreach copy.
type Tone string

const (
	ToneConsultive   Tone = "consultive"
	ToneEnthusiastic Tone = "enthusiastic"
	ToneDirect       Tone = "direct"
)

// Tones lists every supported tone in display order.
var Tones = []Tone{ToneConsultive, ToneEnthusiastic, ToneDirect}

// Valid reports whether t is one of the supported tones.
func (t Tone) Valid() bool {
	for _, v := range Tones {
		if v == t {
			return true
		}
	}
	return false
}

// Stage defines where the deal currently sits in the sales cycle.
type Stage string

const (
	StageMapping       Stage = "mapping"
	StageDiscovery     Stage = "discovery"
	StageQualification Stage = "qualification"
	StageNegotiation   Stage = "negotiation"
)

// Stages lists every supported stage in display order.
var Stages = []Stage{StageMapping, StageDiscovery, StageQualification, StageNegotiation}

// Valid reports whether s is one of the supported stages.
func (s Stage) Valid() bool {
	for _, v := range Stages {
		if v == s {
			return true
		}
	}
	return false
}

// Briefing is the sales context collected from the form.
type Briefing struct {
	Product          string `json:"product" yaml:"product"`
	ValueProposition string `json:"value_proposition" yaml:"value_proposition"`
	Segment          string `json:"segment" yaml:"segment"`
	Role             string `json:"role" yaml:"role"`
	Objective        string `json:"objective" yaml:"objective"`
	Pain             string `json:"pain" yaml:"pain"`
	Tone             Tone   `json:"tone" yaml:"tone"`
	Differentiators  string `json:"differentiators" yaml:"differentiators"`
	Stage            Stage  `json:"stage" yaml:"stage"`
}

// Playbook is the full set of artifacts generated from a briefing.
type Playbook struct {
	Positioning string              `json:"positioning" yaml:"positioning"`
	Triggers    []string            `json:"triggers" yaml:"triggers"`
	Headline    string              `json:"headline" yaml:"headline"`
	Email       EmailPlay           `json:"email" yaml:"email"`
	Sequence    []OutreachStep      `json:"sequence" yaml:"sequence"`
	Discovery   []DiscoverySection  `json:"discovery" yaml:"discovery"`
	CallScript  []CallScriptSection `json:"call_script" yaml:"call_script"`
	FollowUp    []string            `json:"follow_up" yaml:"follow_up"`
	Plan90Days  []string            `json:"plan_90_days" yaml:"plan_90_days"`
	Objections  []ObjectionHandler  `json:"objections" yaml:"objections"`
}

// EmailPlay is a cold email split into its parts.
type EmailPlay struct {
	Subject string `json:"subject" yaml:"subject"`
	Opening string `json:"opening" yaml:"opening"`
	Body    string `json:"body" yaml:"body"`
	Closing string `json:"closing" yaml:"closing"`
}

// OutreachStep is one touch of the social outreach sequence.
type OutreachStep struct {
	Title   string `json:"title" yaml:"title"`
	Message string `json:"message" yaml:"message"`
}

// DiscoverySection groups discovery questions under a focus area.
type DiscoverySection struct {
	Focus     string   `json:"focus" yaml:"focus"`
	Questions []string `json:"questions" yaml:"questions"`
}

// CallScriptSection is one stage of the call script.
type CallScriptSection struct {
	Stage  string   `json:"stage" yaml:"stage"`
	Points []string `json:"points" yaml:"points"`
}

// ObjectionHandler pairs a common objection with a response and a next action.
type ObjectionHandler struct {
	Objection  string `json:"objection" yaml:"objection"`
	Response   string `json:"response" yaml:"response"`
	NextAction string `json:"next_action" yaml:"next_action"`
}

// ToneOption describes a tone for the briefing form.
type ToneOption struct {
	Value       Tone   `json:"value" yaml:"value"`
	Label       string `json:"label" yaml:"label"`
	Description string `json:"description" yaml:"description"`
}

// StageOption describes a stage for the briefing form.
type StageOption struct {
	Value Stage  `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// FormOptions is everything the form needs to render its selectors and reset.
type FormOptions struct {
	Tones          []ToneOption  `json:"tones" yaml:"tones"`
	Stages         []StageOption `json:"stages" yaml:"stages"`
	RequiredFields []string      `json:"required_fields" yaml:"required_fields"`
	Defaults       Briefing      `json:"defaults" yaml:"defaults"`
	PolishEnabled  bool          `json:"polish_enabled" yaml:"-"`
}

// PolishResult carries the generated email next to its AI-polished variant.
type PolishResult struct {
	Original EmailPlay `json:"original"`
	Polished EmailPlay `json:"polished"`
	Model    string    `json:"model"`
}
