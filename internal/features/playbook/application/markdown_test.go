package application

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderMarkdown(t *testing.T) {
	p := Generate(scenarioBriefing())

	md, err := RenderMarkdown(&p)
	require.NoError(t, err)

	for _, heading := range []string{
		"# Prospecting playbook",
		"## Positioning",
		"## Triggers",
		"## Cold email",
		"## Outreach sequence",
		"## Discovery questions",
		"## Call script",
		"## Follow-up",
		"## 90-day plan",
		"## Objections",
	} {
		assert.Contains(t, md, heading)
	}

	assert.Contains(t, md, "> "+p.Headline)
	assert.Contains(t, md, "**Subject:** "+p.Email.Subject)
	assert.Contains(t, md, "1. **"+p.Sequence[0].Title+"**: "+p.Sequence[0].Message)
	assert.Contains(t, md, "3. **"+p.Sequence[2].Title+"**")
	assert.Contains(t, md, "### "+p.Discovery[1].Focus)
	assert.Contains(t, md, "- [ ] "+p.FollowUp[0])
	assert.Contains(t, md, `### "`+p.Objections[2].Objection+`"`)
	assert.Contains(t, md, "_Next action:_ "+p.Objections[0].NextAction)
	for _, item := range p.Plan90Days {
		assert.Contains(t, md, "- "+item)
	}
	assert.False(t, strings.Contains(md, "&#39;"), "text must not be HTML-escaped")

	again, err := RenderMarkdown(&p)
	require.NoError(t, err)
	assert.Equal(t, md, again)
}

func TestRenderMarkdown_Nil(t *testing.T) {
	_, err := RenderMarkdown(nil)
	assert.Error(t, err)
}
