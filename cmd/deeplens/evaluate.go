// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/deeplens/pkg/types"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate [profile link]",
	Short: "Classify a researcher's strategy from their publication history",
	Long: `Evaluate fetches a Google Scholar profile and classifies the researcher
as a trend follower, deep specialist, or abstraction upleveler, with
evidence, topic evolution, and career trajectory.

When the profile cannot be fetched (Scholar serves CAPTCHAs under
load), supply the publications yourself with --publications, or paste
a publication listing (one title per line, year included) in place of
the link.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var input string
		if len(args) > 0 {
			input = args[0]
		}

		var pubs []types.Publication
		if file, _ := cmd.Flags().GetString("publications"); file != "" {
			var err error
			pubs, err = readPublications(file)
			if err != nil {
				return err
			}
		}
		name, _ := cmd.Flags().GetString("name")

		o, err := newOrchestrator(cmd)
		if err != nil {
			return err
		}
		result := o.EvaluateResearcher(cmd.Context(), input, pubs, name)
		return renderResult(cmd, cmd.OutOrStdout(), result)
	},
}

// readPublications decodes a publications file. The extension picks the
// format: .json, or .yaml/.yml.
func readPublications(path string) ([]types.Publication, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading publications file: %w", err)
	}

	pubs := []types.Publication{}
	switch {
	case strings.HasSuffix(path, ".json"):
		if err := json.Unmarshal(data, &pubs); err != nil {
			return nil, fmt.Errorf("parsing publications JSON: %w", err)
		}
	case strings.HasSuffix(path, ".yaml"), strings.HasSuffix(path, ".yml"):
		if err := yaml.Unmarshal(data, &pubs); err != nil {
			return nil, fmt.Errorf("parsing publications YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported publications format %q (expected .json, .yaml, or .yml)", path)
	}
	return pubs, nil
}

func init() {
	evaluateCmd.Flags().String("publications", "", "publications file (.json or .yaml) used instead of fetching the profile")
	evaluateCmd.Flags().String("name", "", "researcher name override")

	rootCmd.AddCommand(evaluateCmd)
}
