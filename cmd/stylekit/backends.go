package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/stylekit/internal/adapter"
)

type backendsFlags struct {
	json bool
}

func newBackendsCmd(root *rootFlags) *cobra.Command {
	flags := &backendsFlags{}

	cmd := &cobra.Command{
		Use:   "backends",
		Short: "List registered render backends and their capabilities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadAppContext(cmd, "list backends", root, nil)
			if err != nil {
				return err
			}

			backends := app.Backends.List()
			if flags.json {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(backends)
			}

			return printBackends(cmd, backends)
		},
	}

	cmd.Flags().BoolVar(&flags.json, "json", false, "Output backends as JSON")

	return cmd
}

func printBackends(cmd *cobra.Command, backends []adapter.Capabilities) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tFEATURES\tUNITS\tSHADOWS\tTRANSFORMS\tPROPERTIES")
	for _, caps := range backends {
		caps = caps.WithDefaults()
		properties := "all"
		if len(caps.Properties) > 0 {
			properties = fmt.Sprintf("%d", len(caps.Properties))
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			caps.ID,
			features(caps),
			caps.Units,
			caps.ShadowFormat,
			caps.TransformFormat,
			properties,
		)
	}
	return tw.Flush()
}

func features(caps adapter.Capabilities) string {
	var out []string
	flags := []struct {
		name string
		on   bool
	}{
		{"blur", caps.SupportsBackgroundBlur},
		{"multi-shadow", caps.SupportsMultiShadow},
		{"gradient", caps.SupportsGradient},
		{"glow", caps.SupportsGlow},
		{"elevation", caps.SupportsElevation},
		{"shorthand", caps.SupportsShorthand},
	}
	for _, f := range flags {
		if f.on {
			out = append(out, f.name)
		}
	}
	return valueOrFallback(strings.Join(out, ","), "-")
}
