package application

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"prospecta/backend/internal/features/playbook/domain"
)

type tonePreset struct {
	Greeting     string
	Intensity    string
	CallToAction string
}

type stagePreset struct {
	Headline    string
	KeyQuestion string
	NextAction  string
}

var tonePresets = map[domain.Tone]tonePreset{
	domain.ToneConsultive: {
		Greeting:     "Hello",
		Intensity:    "a consultative, value-driven approach",
		CallToAction: "Could we set aside 20 minutes next week?",
	},
	domain.ToneEnthusiastic: {
		Greeting:     "Hey",
		Intensity:    "an energetic and optimistic tone",
		CallToAction: "How about a quick chat so I can show you this in practice?",
	},
	domain.ToneDirect: {
		Greeting:     "Hello",
		Intensity:    "objective and pragmatic communication",
		CallToAction: "Up for a 15-minute conversation to move this forward?",
	},
}

var stagePresets = map[domain.Stage]stagePreset{
	domain.StageMapping: {
		Headline:    "Prioritize accounts with the strongest fit and intent signals to sharpen your prospecting list.",
		KeyQuestion: "How do you spot accounts showing buying signals before your competitors do?",
		NextAction:  "Share a mini playbook with the priority micro-segments.",
	},
	domain.StageDiscovery: {
		Headline:    "Run discovery conversations that surface real urgency and make next steps easier.",
		KeyQuestion: "Which signals tell you today that an opportunity is worth pursuing?",
		NextAction:  "Schedule a 30-minute call to co-build the decision map.",
	},
	domain.StageQualification: {
		Headline:    "Set clear qualification criteria to speed up a successful handoff.",
		KeyQuestion: "What minimum requirements does the team need to validate before involving decision makers?",
		NextAction:  "Send the qualification checklist along with relevant cases from the segment.",
	},
	domain.StageNegotiation: {
		Headline:    "Track the buying committee and anticipate objections to shorten the negotiation cycle.",
		KeyQuestion: "What is the main factor that could stall the process this quarter?",
		NextAction:  "Book a quick session to map approvers and inertia risks.",
	},
}

// Fallbacks used when a free-text briefing field is blank.
const (
	FallbackProduct          = "prospecting solution"
	FallbackValueProposition = "generate qualified meetings predictably"
	FallbackSegment          = "growing B2B companies"
	FallbackRole             = "sales director"
	FallbackObjective        = "increase qualified pipeline generation"
	FallbackPain             = "low cadence conversion"
	FallbackDifferentiators  = "strategic support + smart automations"
)

// Generate renders a briefing into a full playbook. It never fails: blank fields
// fall back to fixed phrases, and tone and stage are expected to be valid.
func Generate(input domain.Briefing) domain.Playbook {
	in := Normalize(input)
	tone := tonePresets[in.Tone]
	stage := stagePresets[in.Stage]

	return domain.Playbook{
		Positioning: buildPositioning(in),
		Triggers:    buildTriggers(in),
		Headline:    stage.Headline,
		Email:       buildEmail(in, tone),
		Sequence:    buildSequence(in, stage),
		Discovery:   buildDiscovery(in),
		CallScript:  buildCallScript(in, stage),
		FollowUp:    buildFollowUp(in, stage),
		Plan90Days:  build90Days(in),
		Objections:  buildObjections(in),
	}
}

// Normalize trims every free-text field and substitutes its fallback when blank.
// Tone and stage pass through unchanged.
func Normalize(in domain.Briefing) domain.Briefing {
	return domain.Briefing{
		Product:          orFallback(in.Product, FallbackProduct),
		ValueProposition: orFallback(in.ValueProposition, FallbackValueProposition),
		Segment:          orFallback(in.Segment, FallbackSegment),
		Role:             orFallback(in.Role, FallbackRole),
		Objective:        orFallback(in.Objective, FallbackObjective),
		Pain:             orFallback(in.Pain, FallbackPain),
		Tone:             in.Tone,
		Differentiators:  orFallback(in.Differentiators, FallbackDifferentiators),
		Stage:            in.Stage,
	}
}

func orFallback(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}

func capitalize(value string) string {
	r, size := utf8.DecodeRuneInString(value)
	if size == 0 {
		return ""
	}
	return string(unicode.ToUpper(r)) + value[size:]
}

func sentence(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ""
	}
	if !strings.HasSuffix(trimmed, ".") && !strings.HasSuffix(trimmed, "!") && !strings.HasSuffix(trimmed, "?") {
		trimmed += "."
	}
	return capitalize(trimmed)
}

// clause turns a free-text field into a lower-cased mid-sentence clause with its
// terminal punctuation removed.
func clause(value string) string {
	s := sentence(value)
	_, size := utf8.DecodeLastRuneInString(s)
	return strings.ToLower(s[:len(s)-size])
}

func firstName(role string) string {
	fields := strings.Fields(role)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func lower(value string) string {
	return strings.ToLower(value)
}

func buildPositioning(in domain.Briefing) string {
	return sentence("I'm your prospecting agent specialized in " + in.Segment +
		". My mission is to " + lower(in.Objective) +
		" by showing how " + lower(in.Product) + " eliminates " + lower(in.Pain))
}

func buildTriggers(in domain.Briefing) []string {
	return []string{
		sentence("Companies in " + in.Segment + " looking to " + clause(in.Objective) + " with " + in.Differentiators),
		sentence("Accounts where " + in.Role + " professionals mention challenges related to " + in.Pain),
		sentence("Growing organizations investing in " + in.Product + " to unlock " + lower(in.ValueProposition)),
	}
}

func buildEmail(in domain.Briefing, tone tonePreset) domain.EmailPlay {
	return domain.EmailPlay{
		Subject: "How " + in.Product + " has been accelerating " + in.Objective + " in " + in.Segment,
		Opening: tone.Greeting + " " + firstName(in.Role) + ", I noticed that " + in.Segment +
			" are looking to " + lower(in.Objective) + " while dealing with " + lower(in.Pain) + ".",
		Body: "We are helping teams facing the same scenario to " + lower(in.ValueProposition) +
			", combining " + in.Differentiators + " with an exclusive prospecting framework (" + tone.Intensity + ").",
		Closing: tone.CallToAction + " Can I send you an agenda with two time slots?",
	}
}

func buildSequence(in domain.Briefing, stage stagePreset) []domain.OutreachStep {
	return []domain.OutreachStep{
		{
			Title: "Day 1 • Connection request",
			Message: "Hi " + capitalize(firstName(in.Role)) + ", I've been following " + in.Segment +
				" that are looking to " + lower(in.Objective) + ". I'd love to swap quick learnings about " +
				lower(in.Product) + ". Shall we connect?",
		},
		{
			Title: "Day 3 • Consultative follow-up",
			Message: "Thanks for connecting! I've noticed that " + lower(in.Pain) +
				" is a recurring topic in the segment. Can I send you a micro playbook with 3 levers we are using to " +
				lower(in.ValueProposition) + "?",
		},
		{
			Title: "Day 6 • Conversation invite",
			Message: "We are helping " + in.Segment + " to " + lower(in.Objective) + " with " +
				in.Differentiators + ". " + stage.NextAction,
		},
	}
}

func buildDiscovery(in domain.Briefing) []domain.DiscoverySection {
	return []domain.DiscoverySection{
		{
			Focus: "Current context",
			Questions: []string{
				"How are you working to " + lower(in.Objective) + " today?",
				"Which indicators show that " + lower(in.Pain) + " has become a priority?",
				"Is there any initiative running that competes with " + lower(in.Product) + "?",
			},
		},
		{
			Focus: "Impact and urgency",
			Questions: []string{
				"What happens if " + lower(in.Pain) + " continues over the next 3 months?",
				"Which goals does the " + lower(in.Role) + " team need to hit this quarter?",
				"Who else would feel the effects if we solved " + lower(in.Pain) + " quickly?",
			},
		},
		{
			Focus: "Decision and next steps",
			Questions: []string{
				"Which criteria decide whether it is worth moving to a proof of value?",
				"Who needs to be involved in evaluating the solution?",
				"What is the ideal window to roll out an initiative like this?",
			},
		},
	}
}

func buildCallScript(in domain.Briefing, stage stagePreset) []domain.CallScriptSection {
	return []domain.CallScriptSection{
		{
			Stage: "Opening",
			Points: []string{
				"Restate the context of the conversation and confirm the 30-minute agenda.",
				"Share a specific insight about " + in.Segment + " and the " + lower(in.Pain) + " challenge.",
			},
		},
		{
			Stage: "Diagnosis",
			Points: []string{
				stage.KeyQuestion,
				"Dig into the current process to " + lower(in.Objective) + " and map the gaps.",
				"Quantify the impact of " + lower(in.Pain) + " on the team's goals.",
			},
		},
		{
			Stage: "Recommendation",
			Points: []string{
				"Show how " + in.Product + " solves " + lower(in.Pain) + " with " + in.Differentiators + ".",
				"Bring a quick " + in.Segment + " case with " + lower(in.ValueProposition) + " metrics.",
			},
		},
		{
			Stage: "Commitment",
			Points: []string{
				"Confirm the next action: " + stage.NextAction,
				"Agree on the materials to share after the call.",
			},
		},
	}
}

func buildFollowUp(in domain.Briefing, stage stagePreset) []string {
	return []string{
		"Send a recap of the conversation with the agreed metrics and next steps.",
		"Forward assets: " + in.Segment + " case study + implementation checklist.",
		stage.NextAction,
	}
}

func build90Days(in domain.Briefing) []string {
	return []string{
		"Days 0-30 • Validate the ICP, set up the multichannel cadence and train the pitch.",
		"Days 31-60 • Run experiments focused on " + lower(in.Objective) + " with weekly check-ins.",
		"Days 61-90 • Scale the winning tactics and align the handoff to CS around " + lower(in.ValueProposition) + ".",
	}
}

func buildObjections(in domain.Briefing) []domain.ObjectionHandler {
	return []domain.ObjectionHandler{
		{
			Objection: "We already have something similar",
			Response: "Great to hear. Where do you feel the current solution still leaves gaps when it comes to " +
				lower(in.Objective) + "? That is exactly where we have been working.",
			NextAction: "Propose a benchmark with indicators to compare results.",
		},
		{
			Objection: "It's not a priority right now",
			Response: "Understood. We usually see this when " + lower(in.Pain) +
				" hasn't hit visible goals yet. Can I share the warning signs other " + lower(in.Role) + " leaders monitor?",
			NextAction: "Send an impact checklist with an invitation to review in 30 days.",
		},
		{
			Objection: "No budget available",
			Response: "Very common. We help clients show the ROI of " + lower(in.Product) +
				" by comparing the cost of inaction with the gains from " + lower(in.ValueProposition) +
				". Can I send you the calculator?",
			NextAction: "Schedule a quick call to fill in the calculator with real data.",
		},
	}
}
