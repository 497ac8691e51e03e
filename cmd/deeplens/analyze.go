// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [link or text]",
	Short: "Explain and analyze a research paper in plain language",
	Long: `Analyze fetches a paper from an arXiv link, DOI, Semantic Scholar entry,
or any technical page, then runs a two-stage analysis: a plain-language
translation followed by an assessment of the fundamental problem,
research stage, and industry demand.

When the input is not a link, it is analyzed as pasted text. When a
link cannot be fetched, rerun with the relevant text pasted directly.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		input := strings.Join(args, " ")

		if file, _ := cmd.Flags().GetString("file"); file != "" {
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("reading input file: %w", err)
			}
			input = string(data)
		}

		o, err := newOrchestrator(cmd)
		if err != nil {
			return err
		}
		result := o.AnalyzePaper(cmd.Context(), input)
		return renderResult(cmd, cmd.OutOrStdout(), result)
	},
}

func init() {
	analyzeCmd.Flags().String("file", "", "read the content to analyze from a file")

	rootCmd.AddCommand(analyzeCmd)
}
