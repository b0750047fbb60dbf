package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/stylekit/internal/adapter"
	"github.com/alexisbeaulieu97/stylekit/internal/variant"
	stylekiterrors "github.com/alexisbeaulieu97/stylekit/pkg/errors"
)

type resolveFlags struct {
	themeFlags

	kind      string
	variant   string
	size      string
	era       string
	intensity string
	blur      string
	corner    string
	thickness string
	shadow    string
	bg        string
	text      string
	glow      bool
	opacity   float64
	backend   string
	format    string

	state variant.State
}

type resolveOutput struct {
	Design  string              `json:"design" yaml:"design"`
	Mode    string              `json:"mode" yaml:"mode"`
	Kind    string              `json:"kind" yaml:"kind"`
	Backend string              `json:"backend" yaml:"backend"`
	Style   adapter.NativeStyle `json:"style" yaml:"style"`
}

func newResolveCmd(root *rootFlags) *cobra.Command {
	flags := &resolveFlags{}

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve one component style and adapt it to a backend",
		Example: `  stylekit resolve --design neumorphic --kind card --pressed
  stylekit resolve --design glassmorphic --kind badge --intensity strong --backend native --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, root, flags)
		},
	}

	flags.themeFlags.register(cmd)
	cmd.Flags().StringVar(&flags.kind, "kind", "button", "Component kind (button, card, toggle, table, badge, input, modal, alert, chip)")
	cmd.Flags().StringVar(&flags.variant, "variant", "", "Colour variant (primary, secondary, success, warning, danger, info, neutral, outline, ghost)")
	cmd.Flags().StringVar(&flags.size, "size", "", "Component size (sm, md, lg)")
	cmd.Flags().StringVar(&flags.era, "era", "", "Retro era (seventies, eighties, nineties, y2k, vaporwave, synthwave)")
	cmd.Flags().StringVar(&flags.intensity, "intensity", "", "Effect intensity (subtle, medium, strong)")
	cmd.Flags().StringVar(&flags.blur, "blur", "", "Glass blur level (light, medium, heavy)")
	cmd.Flags().StringVar(&flags.corner, "corner", "", "Retro corner radius (sharp, soft, round)")
	cmd.Flags().StringVar(&flags.thickness, "border", "", "Retro border thickness (thin, medium, thick)")
	cmd.Flags().StringVar(&flags.shadow, "shadow", "", "Retro shadow style (none, hard, soft)")
	cmd.Flags().StringVar(&flags.bg, "bg", "", "Background colour override")
	cmd.Flags().StringVar(&flags.text, "text", "", "Text colour override")
	cmd.Flags().BoolVar(&flags.glow, "glow", false, "Enable retro glow")
	cmd.Flags().Float64Var(&flags.opacity, "opacity", 1, "Opacity override between 0 and 1")
	cmd.Flags().BoolVar(&flags.state.Pressed, "pressed", false, "Resolve the pressed state")
	cmd.Flags().BoolVar(&flags.state.Disabled, "disabled", false, "Resolve the disabled state")
	cmd.Flags().BoolVar(&flags.state.Focused, "focused", false, "Resolve the focused state")
	cmd.Flags().BoolVar(&flags.state.Selected, "selected", false, "Resolve the selected state")
	cmd.Flags().StringVar(&flags.backend, "backend", adapter.Web.ID, "Render backend id")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "json", "Output format (json, yaml)")

	return cmd
}

func runResolve(cmd *cobra.Command, root *rootFlags, flags *resolveFlags) error {
	format := strings.ToLower(strings.TrimSpace(flags.format))
	if format != "json" && format != "yaml" {
		return newCommandError("resolve style", "reading --format",
			stylekiterrors.NewValidationError("format", fmt.Sprintf("unsupported format %q", flags.format), nil),
			"Use --format json or --format yaml.")
	}

	kind, opts, err := flags.options(cmd)
	if err != nil {
		return newCommandError("resolve style", "reading component options", err, "Run 'stylekit resolve --help' to list accepted values.")
	}

	app, err := loadAppContext(cmd, "resolve style", root, &flags.themeFlags)
	if err != nil {
		return err
	}

	caps, err := app.Backends.Lookup(flags.backend)
	if err != nil {
		return newCommandError("resolve style", fmt.Sprintf("looking up backend %q", flags.backend), err, "Run 'stylekit backends' to list registered backends.")
	}

	th := app.Engine.Theme()
	out := resolveOutput{
		Design:  th.Design.String(),
		Mode:    th.Mode.String(),
		Kind:    kind.String(),
		Backend: caps.ID,
		Style:   app.Engine.Render(kind, flags.state, opts, caps),
	}

	app.Logger.WithFields(map[string]any{
		"design":  out.Design,
		"kind":    out.Kind,
		"backend": out.Backend,
	}).Debug("style resolved")

	if format == "yaml" {
		data, err := yaml.Marshal(out)
		if err != nil {
			return newCommandError("resolve style", "encoding YAML output", err, "Report this as a bug.")
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

func (f *resolveFlags) options(cmd *cobra.Command) (variant.Kind, variant.Options, error) {
	var opts variant.Options

	kind, err := parseFlag("kind", f.kind, variant.ParseKind)
	if err != nil {
		return 0, opts, err
	}
	if opts.Variant, err = parseFlag("variant", f.variant, variant.ParseVariant); err != nil {
		return 0, opts, err
	}
	if opts.Size, err = parseFlag("size", f.size, variant.ParseSize); err != nil {
		return 0, opts, err
	}
	if opts.Era, err = parseFlag("era", f.era, variant.ParseEra); err != nil {
		return 0, opts, err
	}
	if opts.Intensity, err = parseFlag("intensity", f.intensity, variant.ParseIntensity); err != nil {
		return 0, opts, err
	}
	if opts.Blur, err = parseFlag("blur", f.blur, variant.ParseBlur); err != nil {
		return 0, opts, err
	}
	if opts.CornerRadius, err = parseFlag("corner", f.corner, variant.ParseCorner); err != nil {
		return 0, opts, err
	}
	if opts.BorderThickness, err = parseFlag("border", f.thickness, variant.ParseThickness); err != nil {
		return 0, opts, err
	}
	if opts.ShadowStyle, err = parseFlag("shadow", f.shadow, variant.ParseShadowStyle); err != nil {
		return 0, opts, err
	}

	opts.BackgroundOverride = f.bg
	opts.TextOverride = f.text
	opts.Glow = f.glow
	if cmd.Flags().Changed("opacity") {
		opacity := f.opacity
		opts.Opacity = &opacity
	}

	return kind, opts, nil
}

// parseFlag returns the zero value for an empty flag so the resolver
// applies its own default.
func parseFlag[T any](name, value string, parse func(string) (T, bool)) (T, error) {
	var zero T
	value = strings.TrimSpace(value)
	if value == "" {
		return zero, nil
	}
	parsed, ok := parse(value)
	if !ok {
		return zero, stylekiterrors.NewValidationError(name, fmt.Sprintf("unknown %s %q", name, value), nil)
	}
	return parsed, nil
}
