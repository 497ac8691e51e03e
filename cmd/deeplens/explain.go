// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"strings"

	"github.com/spf13/cobra"
)

var explainCmd = &cobra.Command{
	Use:   "explain <term>",
	Short: "Explain a research buzzword in plain language",
	Long: `Explain strips the hype from a research buzzword: what it actually
means, where it came from, and whether it is genuinely new or a
rebranding of existing ideas.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		o, err := newOrchestrator(cmd)
		if err != nil {
			return err
		}
		result := o.ExplainTerm(cmd.Context(), strings.Join(args, " "))
		return renderResult(cmd, cmd.OutOrStdout(), result)
	},
}

func init() {
	rootCmd.AddCommand(explainCmd)
}
