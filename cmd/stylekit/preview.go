package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/stylekit/internal/adapter"
	"github.com/alexisbeaulieu97/stylekit/internal/variant"
)

type previewFlags struct {
	themeFlags

	variant string
	state   variant.State
	plain   bool
}

func newPreviewCmd(root *rootFlags) *cobra.Command {
	flags := &previewFlags{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render every component kind in the terminal",
		Long: `Resolve every component kind for the active theme, adapt it to the
terminal backend and draw it with lipgloss.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, root, flags)
		},
	}

	flags.themeFlags.register(cmd)
	cmd.Flags().StringVar(&flags.variant, "variant", "", "Colour variant applied to every kind")
	cmd.Flags().BoolVar(&flags.state.Pressed, "pressed", false, "Preview the pressed state")
	cmd.Flags().BoolVar(&flags.state.Disabled, "disabled", false, "Preview the disabled state")
	cmd.Flags().BoolVar(&flags.state.Focused, "focused", false, "Preview the focused state")
	cmd.Flags().BoolVar(&flags.state.Selected, "selected", false, "Preview the selected state")
	cmd.Flags().BoolVar(&flags.plain, "plain", false, "Print resolved colours instead of drawing boxes")

	return cmd
}

func runPreview(cmd *cobra.Command, root *rootFlags, flags *previewFlags) error {
	v, err := parseFlag("variant", flags.variant, variant.ParseVariant)
	if err != nil {
		return newCommandError("preview styles", "reading --variant", err, "Run 'stylekit preview --help' to list accepted values.")
	}

	app, err := loadAppContext(cmd, "preview styles", root, &flags.themeFlags)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	th := app.Engine.Theme()
	fmt.Fprintf(out, "%s %s (%s)\n", headingMarker(out), th.Design, th.Mode)
	if !app.Registry.Supports(th.Design) {
		fmt.Fprintf(out, "%s has no resolver yet; showing the flat rendering\n", th.Design)
	}
	fmt.Fprintln(out)

	plain := flags.plain || !isTerminal(out)
	opts := variant.Options{Variant: v}

	for _, kind := range variant.Kinds() {
		ns := app.Engine.Render(kind, flags.state, opts, adapter.Terminal)
		if plain {
			fmt.Fprintf(out, "%-8s background=%s text=%s border=%s\n",
				kind,
				valueOrFallback(ns[adapter.PropBackgroundColor], "-"),
				valueOrFallback(ns[adapter.PropColor], "-"),
				valueOrFallback(ns[adapter.PropBorderColor], "-"),
			)
			continue
		}
		fmt.Fprintln(out, adapter.Lipgloss(ns).Render(kind.String()))
	}

	stats := app.Engine.Stats()
	app.Logger.WithFields(map[string]any{
		"entries": stats.Size,
		"misses":  stats.Misses,
	}).Debug("preview rendered")

	return nil
}

func headingMarker(writer any) string {
	if supportsUnicode(writer) {
		return "◆"
	}
	return "*"
}

func isTerminal(writer any) bool {
	f, ok := writer.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func supportsUnicode(writer any) bool {
	if !isTerminal(writer) {
		return false
	}

	locale := strings.ToLower(os.Getenv("LC_ALL") + os.Getenv("LC_CTYPE") + os.Getenv("LANG"))
	return locale == "" || strings.Contains(locale, "utf")
}

func valueOrFallback(value any, fallback string) string {
	if value == nil {
		return fallback
	}
	if s := strings.TrimSpace(fmt.Sprint(value)); s != "" {
		return s
	}
	return fallback
}
