package application

import (
	"fmt"
	"strings"
	"text/template"

	"prospecta/backend/internal/features/playbook/domain"
)

const markdownTemplate = `# Prospecting playbook

> {{.Headline}}

## Positioning

{{.Positioning}}

## Triggers
{{range .Triggers}}
- {{.}}{{end}}

## Cold email

**Subject:** {{.Email.Subject}}

{{.Email.Opening}}

{{.Email.Body}}

{{.Email.Closing}}

## Outreach sequence
{{range $i, $step := .Sequence}}
{{inc $i}}. **{{$step.Title}}**: {{$step.Message}}{{end}}

## Discovery questions
{{range .Discovery}}
### {{.Focus}}
{{range .Questions}}
- {{.}}{{end}}
{{end}}
## Call script
{{range .CallScript}}
### {{.Stage}}
{{range .Points}}
- {{.}}{{end}}
{{end}}
## Follow-up
{{range .FollowUp}}
- [ ] {{.}}{{end}}

## 90-day plan
{{range .Plan90Days}}
- {{.}}{{end}}

## Objections
{{range .Objections}}
### "{{.Objection}}"

{{.Response}}

_Next action:_ {{.NextAction}}
{{end}}`

var playbookMarkdown = template.Must(template.New("playbook").Funcs(template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}).Parse(markdownTemplate))

// RenderMarkdown renders a playbook as a Markdown document.
func RenderMarkdown(p *domain.Playbook) (string, error) {
	if p == nil {
		return "", fmt.Errorf("nil playbook")
	}
	var sb strings.Builder
	if err := playbookMarkdown.Execute(&sb, p); err != nil {
		return "", fmt.Errorf("failed to render playbook markdown: %w", err)
	}
	return sb.String(), nil
}
