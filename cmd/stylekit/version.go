package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/stylekit/internal/theme"
	"github.com/alexisbeaulieu97/stylekit/internal/variant"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type versionInfo struct {
	Version string   `json:"version"`
	Commit  string   `json:"commit"`
	Built   string   `json:"built"`
	Designs []string `json:"designs"`
}

func newVersionCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Display build information and the design languages with resolvers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := versionInfo{Version: version, Commit: commit, Built: date, Designs: resolvedDesigns()}
			if asJSON {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(info)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "stylekit %s\ncommit: %s\nbuilt: %s\ndesigns: %s\n",
				info.Version, info.Commit, info.Built, strings.Join(info.Designs, ", "))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output build information as JSON")

	return cmd
}

func resolvedDesigns() []string {
	var names []string
	for _, d := range theme.Designs() {
		if variant.Default().Supports(d) {
			names = append(names, d.String())
		}
	}
	return names
}
