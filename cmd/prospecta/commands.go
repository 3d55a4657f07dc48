package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"prospecta/backend/internal/features/playbook/application"
	"prospecta/backend/internal/features/playbook/domain"
)

const (
	formatJSON     = "json"
	formatYAML     = "yaml"
	formatMarkdown = "markdown"
)

type generateOptions struct {
	briefingPath string
	format       string
	useDefaults  bool
	overrides    domain.Briefing
	tone         string
	stage        string
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "prospecta",
		Short:        "Turn a sales briefing into a prospecting playbook",
		SilenceUsage: true,
	}
	root.AddCommand(newGenerateCmd(), newOptionsCmd())
	return root
}

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a playbook from a briefing file and/or flags",
		Example: `  prospecta generate --briefing briefing.yaml --format markdown
  prospecta generate --defaults --tone direct --stage negotiation
  cat briefing.json | prospecta generate --briefing -`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.briefingPath, "briefing", "b", "", "briefing file (.json, .yaml, .yml) or - for JSON/YAML on stdin")
	f.StringVarP(&opts.format, "format", "f", formatMarkdown, "output format: json, yaml or markdown")
	f.BoolVar(&opts.useDefaults, "defaults", false, "start from the default briefing")
	f.StringVar(&opts.overrides.Product, "product", "", "product or solution")
	f.StringVar(&opts.overrides.ValueProposition, "value-proposition", "", "main value proposition")
	f.StringVar(&opts.overrides.Segment, "segment", "", "target segment")
	f.StringVar(&opts.overrides.Role, "role", "", "buyer role")
	f.StringVar(&opts.overrides.Objective, "objective", "", "outreach objective")
	f.StringVar(&opts.overrides.Pain, "pain", "", "main pain point")
	f.StringVar(&opts.overrides.Differentiators, "differentiators", "", "differentiators")
	f.StringVar(&opts.tone, "tone", "", "consultive, enthusiastic or direct")
	f.StringVar(&opts.stage, "stage", "", "mapping, discovery, qualification or negotiation")
	return cmd
}

func newOptionsCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "options",
		Short: "Print the tone and stage catalogue and the default briefing",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := application.NewPlaybookService(nil, nil).Options()
			return writeStructured(cmd.OutOrStdout(), format, opts)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", formatYAML, "output format: json or yaml")
	return cmd
}

func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	var briefing domain.Briefing
	if opts.useDefaults {
		briefing = application.DefaultBriefing
	}

	if opts.briefingPath != "" {
		fromFile, err := readBriefing(cmd.InOrStdin(), opts.briefingPath)
		if err != nil {
			return err
		}
		briefing = overlay(briefing, fromFile)
	}

	flagged := opts.overrides
	flagged.Tone = domain.Tone(opts.tone)
	flagged.Stage = domain.Stage(opts.stage)
	briefing = overlay(briefing, flagged)

	svc := application.NewPlaybookService(nil, nil)
	playbook, err := svc.Generate(briefing)
	if err != nil {
		return fmt.Errorf("invalid briefing: %w", err)
	}

	out := cmd.OutOrStdout()
	switch strings.ToLower(opts.format) {
	case formatMarkdown, "md":
		md, err := application.RenderMarkdown(playbook)
		if err != nil {
			return err
		}
		_, err = io.WriteString(out, md)
		return err
	default:
		return writeStructured(out, opts.format, playbook)
	}
}

func readBriefing(stdin io.Reader, path string) (domain.Briefing, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return domain.Briefing{}, fmt.Errorf("failed to read briefing %s: %w", path, err)
	}

	var b domain.Briefing
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &b)
	} else {
		// YAML is a superset of JSON, so stdin and .yaml files go through the YAML decoder.
		err = yaml.Unmarshal(data, &b)
	}
	if err != nil {
		return domain.Briefing{}, fmt.Errorf("failed to parse briefing %s: %w", path, err)
	}
	return b, nil
}

// overlay returns base with every non-empty field of top applied over it.
func overlay(base, top domain.Briefing) domain.Briefing {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&base.Product, top.Product)
	set(&base.ValueProposition, top.ValueProposition)
	set(&base.Segment, top.Segment)
	set(&base.Role, top.Role)
	set(&base.Objective, top.Objective)
	set(&base.Pain, top.Pain)
	set(&base.Differentiators, top.Differentiators)
	if top.Tone != "" {
		base.Tone = top.Tone
	}
	if top.Stage != "" {
		base.Stage = top.Stage
	}
	return base
}

func writeStructured(w io.Writer, format string, v any) error {
	switch strings.ToLower(format) {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML, "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}
