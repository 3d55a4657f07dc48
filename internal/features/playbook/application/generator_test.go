package application

import (
	"strings"
	"sync"
	"testing"
	"unicode"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prospecta/backend/internal/features/playbook/domain"
)

func scenarioBriefing() domain.Briefing {
	return domain.Briefing{
		Product:          "Outbound platform",
		ValueProposition: "generate predictable pipeline",
		Segment:          "B2B scale-ups",
		Role:             "Head of Sales",
		Objective:        "speed up qualified-meeting generation",
		Pain:             "low reply rate",
		Tone:             domain.ToneConsultive,
		Differentiators:  "guided diagnostic + ready cadence in 7 days",
		Stage:            domain.StageDiscovery,
	}
}

func blankBriefing(tone domain.Tone, stage domain.Stage) domain.Briefing {
	return domain.Briefing{Tone: tone, Stage: stage}
}

// playbookStrings flattens every text value in a playbook.
func playbookStrings(p domain.Playbook) []string {
	out := []string{p.Positioning, p.Headline, p.Email.Subject, p.Email.Opening, p.Email.Body, p.Email.Closing}
	out = append(out, p.Triggers...)
	for _, s := range p.Sequence {
		out = append(out, s.Title, s.Message)
	}
	for _, d := range p.Discovery {
		out = append(out, d.Focus)
		out = append(out, d.Questions...)
	}
	for _, c := range p.CallScript {
		out = append(out, c.Stage)
		out = append(out, c.Points...)
	}
	out = append(out, p.FollowUp...)
	out = append(out, p.Plan90Days...)
	for _, o := range p.Objections {
		out = append(out, o.Objection, o.Response, o.NextAction)
	}
	return out
}

func assertWellFormedSentence(t *testing.T, s string) {
	t.Helper()
	require.NotEmpty(t, s)
	first, _ := utf8.DecodeRuneInString(s)
	assert.True(t, unicode.IsUpper(first), "expected %q to start uppercase", s)
	last, _ := utf8.DecodeLastRuneInString(s)
	assert.Contains(t, ".!?", string(last), "expected %q to end with terminal punctuation", s)
}

func TestGenerate_Scenario(t *testing.T) {
	p := Generate(scenarioBriefing())

	assert.Equal(t, stagePresets[domain.StageDiscovery].Headline, p.Headline)
	assert.Contains(t, p.Email.Subject, "Outbound platform")
	assert.Contains(t, p.Email.Subject, "B2B scale-ups")
	assert.Equal(t, "How Outbound platform has been accelerating speed up qualified-meeting generation in B2B scale-ups", p.Email.Subject)

	require.Len(t, p.Triggers, 3)
	require.Len(t, p.Objections, 3)
	for _, o := range p.Objections {
		assert.NotEmpty(t, o.Objection)
		assert.NotEmpty(t, o.Response)
		assert.NotEmpty(t, o.NextAction)
	}

	assert.Equal(t,
		"I'm your prospecting agent specialized in B2B scale-ups. My mission is to speed up qualified-meeting generation by showing how outbound platform eliminates low reply rate.",
		p.Positioning)
	assert.Equal(t,
		"Companies in B2B scale-ups looking to speed up qualified-meeting generation with guided diagnostic + ready cadence in 7 days.",
		p.Triggers[0])
	assert.Equal(t,
		"Hello Head, I noticed that B2B scale-ups are looking to speed up qualified-meeting generation while dealing with low reply rate.",
		p.Email.Opening)
	assert.Equal(t, tonePresets[domain.ToneConsultive].CallToAction+" Can I send you an agenda with two time slots?", p.Email.Closing)
	assert.Contains(t, p.Email.Body, tonePresets[domain.ToneConsultive].Intensity)
}

func TestGenerate_ArtifactShape(t *testing.T) {
	p := Generate(scenarioBriefing())

	assert.Len(t, p.Sequence, 3)
	require.Len(t, p.Discovery, 3)
	for _, d := range p.Discovery {
		assert.Len(t, d.Questions, 3)
	}
	require.Len(t, p.CallScript, 4)
	assert.Equal(t, []string{"Opening", "Diagnosis", "Recommendation", "Commitment"},
		[]string{p.CallScript[0].Stage, p.CallScript[1].Stage, p.CallScript[2].Stage, p.CallScript[3].Stage})
	assert.Len(t, p.FollowUp, 3)
	assert.Len(t, p.Plan90Days, 3)

	stage := stagePresets[domain.StageDiscovery]
	assert.Equal(t, stage.KeyQuestion, p.CallScript[1].Points[0])
	assert.Equal(t, "Confirm the next action: "+stage.NextAction, p.CallScript[3].Points[0])
	assert.Equal(t, stage.NextAction, p.FollowUp[2])
	assert.True(t, strings.HasSuffix(p.Sequence[2].Message, stage.NextAction))
}

func TestGenerate_AllBlank(t *testing.T) {
	var p domain.Playbook
	require.NotPanics(t, func() {
		p = Generate(blankBriefing(domain.ToneDirect, domain.StageNegotiation))
	})

	for i, s := range playbookStrings(p) {
		assert.NotEmpty(t, strings.TrimSpace(s), "string #%d is empty", i)
	}

	assert.Equal(t, stagePresets[domain.StageNegotiation].Headline, p.Headline)
	assert.Equal(t, "How "+FallbackProduct+" has been accelerating "+FallbackObjective+" in "+FallbackSegment, p.Email.Subject)
	assert.Equal(t,
		"Hello sales, I noticed that growing B2B companies are looking to increase qualified pipeline generation while dealing with low cadence conversion.",
		p.Email.Opening)
	assert.True(t, strings.HasPrefix(p.Sequence[0].Message, "Hi Sales, "))
	assert.Contains(t, p.Triggers[0], FallbackDifferentiators)
	assert.Contains(t, p.CallScript[2].Points[0], FallbackDifferentiators)
}

func TestGenerate_EnumCoverage(t *testing.T) {
	emails := map[domain.Tone]domain.EmailPlay{}

	for _, tone := range domain.Tones {
		for _, stage := range domain.Stages {
			b := scenarioBriefing()
			b.Tone, b.Stage = tone, stage

			p := Generate(b)
			assert.Equal(t, stagePresets[stage].Headline, p.Headline, "tone=%s stage=%s", tone, stage)
			assertWellFormedSentence(t, p.Headline)
			assertWellFormedSentence(t, p.Positioning)

			// the email depends on the tone only
			if prev, ok := emails[tone]; ok {
				assert.Empty(t, cmp.Diff(prev, p.Email), "email changed with stage for tone %s", tone)
			} else {
				emails[tone] = p.Email
			}
		}
	}

	require.Len(t, emails, 3)
	base := emails[domain.ToneConsultive]
	for _, tone := range []domain.Tone{domain.ToneEnthusiastic, domain.ToneDirect} {
		e := emails[tone]
		assert.Equal(t, base.Subject, e.Subject)
		assert.NotEqual(t, base.Closing, e.Closing)
		assert.NotEqual(t, base.Body, e.Body)
	}
	assert.True(t, strings.HasPrefix(emails[domain.ToneEnthusiastic].Opening, "Hey Head,"))
}

func TestGenerate_Deterministic(t *testing.T) {
	inputs := []domain.Briefing{
		scenarioBriefing(),
		blankBriefing(domain.ToneEnthusiastic, domain.StageMapping),
		DefaultBriefing,
	}
	for _, in := range inputs {
		first := Generate(in)
		second := Generate(in)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Fatalf("Generate not deterministic (-first +second):\n%s", diff)
		}
	}
}

func TestGenerate_ConcurrentCallers(t *testing.T) {
	want := Generate(scenarioBriefing())

	var wg sync.WaitGroup
	results := make([]domain.Playbook, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Generate(scenarioBriefing())
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("result %d differs (-want +got):\n%s", i, diff)
		}
	}
}

func TestGenerate_OutputIsCallerOwned(t *testing.T) {
	p := Generate(scenarioBriefing())
	p.Triggers[0] = "mutated"
	p.CallScript[1].Points[0] = "mutated"

	again := Generate(scenarioBriefing())
	assert.NotEqual(t, "mutated", again.Triggers[0])
	assert.Equal(t, stagePresets[domain.StageDiscovery].KeyQuestion, again.CallScript[1].Points[0])
}

func TestNormalize(t *testing.T) {
	in := domain.Briefing{
		Product:          "  Outbound platform ",
		ValueProposition: "\t",
		Role:             " Head of Sales",
		Tone:             domain.ToneDirect,
		Stage:            domain.StageQualification,
	}

	got := Normalize(in)
	assert.Equal(t, domain.Briefing{
		Product:          "Outbound platform",
		ValueProposition: FallbackValueProposition,
		Segment:          FallbackSegment,
		Role:             "Head of Sales",
		Objective:        FallbackObjective,
		Pain:             FallbackPain,
		Tone:             domain.ToneDirect,
		Differentiators:  FallbackDifferentiators,
		Stage:            domain.StageQualification,
	}, got)
	assert.Equal(t, "  Outbound platform ", in.Product, "input must not be mutated")
}

func TestNormalize_Idempotent(t *testing.T) {
	for _, in := range []domain.Briefing{
		scenarioBriefing(),
		blankBriefing(domain.ToneConsultive, domain.StageMapping),
		{Product: "  x  ", Pain: " y", Tone: domain.ToneEnthusiastic, Stage: domain.StageNegotiation},
	} {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once))
	}
}

func TestTextShaping(t *testing.T) {
	t.Run("capitalize", func(t *testing.T) {
		assert.Equal(t, "", capitalize(""))
		assert.Equal(t, "Hello world", capitalize("hello world"))
		assert.Equal(t, "Éxito", capitalize("éxito"))
	})

	t.Run("sentence", func(t *testing.T) {
		assert.Equal(t, "", sentence("   "))
		assert.Equal(t, "Close deals.", sentence(" close deals "))
		assert.Equal(t, "Close deals!", sentence("close deals!"))
		assert.Equal(t, "Ready?", sentence("ready?"))
		assert.Equal(t, "Done.", sentence("done."))
	})

	t.Run("clause strips terminal punctuation", func(t *testing.T) {
		assert.Equal(t, "close more deals", clause("Close more deals!"))
		assert.Equal(t, "close more deals", clause("close more deals"))
		assert.Equal(t, "", clause(""))
	})

	t.Run("firstName", func(t *testing.T) {
		assert.Equal(t, "Head", firstName("Head of Sales"))
		assert.Equal(t, "VP", firstName("  VP\tRevenue"))
		assert.Equal(t, "", firstName(" "))
	})
}

func TestGenerate_TriggerDropsObjectivePunctuation(t *testing.T) {
	b := scenarioBriefing()
	b.Objective = "Close More Deals!"

	p := Generate(b)
	assert.Equal(t,
		"Companies in B2B scale-ups looking to close more deals with guided diagnostic + ready cadence in 7 days.",
		p.Triggers[0])
}

func TestGenerate_ExistingPunctuationNotDoubled(t *testing.T) {
	b := scenarioBriefing()
	b.Pain = "low reply rate."
	b.Differentiators = "a ready cadence!"

	p := Generate(b)
	assert.True(t, strings.HasSuffix(p.Positioning, "low reply rate."))
	assert.False(t, strings.HasSuffix(p.Positioning, ".."))
	assert.True(t, strings.HasSuffix(p.Triggers[0], "a ready cadence!"))
	assert.Equal(t, "Accounts where Head of Sales professionals mention challenges related to low reply rate.", p.Triggers[1])
}
