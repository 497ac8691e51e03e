// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var trendCmd = &cobra.Command{
	Use:   "trend <topic>",
	Short: "Assess a technical trend with a critical, long-term view",
	Long: `Trend assesses a research area or technology: its maturity, whether it
is a hard problem or an engineering problem, obsolescence risk, hype
level, researcher oversupply, and what to focus on instead.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var extra string
		if file, _ := cmd.Flags().GetString("context"); file != "" {
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("reading context file: %w", err)
			}
			extra = string(data)
		}

		o, err := newOrchestrator(cmd)
		if err != nil {
			return err
		}
		result := o.AssessTrend(cmd.Context(), strings.Join(args, " "), extra)
		return renderResult(cmd, cmd.OutOrStdout(), result)
	},
}

func init() {
	trendCmd.Flags().String("context", "", "file with supporting context (recent papers, adoption notes)")

	rootCmd.AddCommand(trendCmd)
}
