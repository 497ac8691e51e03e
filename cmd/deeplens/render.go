// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/deeplens/internal/workflow"
	"github.com/pdiddy/deeplens/pkg/types"
)

// renderResult writes the workflow result to w. The default rendering
// is section headers over the unified view; --json and --yaml emit the
// full structured result.
func renderResult(cmd *cobra.Command, w io.Writer, result *types.WorkflowResult) error {
	asJSON, _ := cmd.Flags().GetBool("json")
	asYAML, _ := cmd.Flags().GetBool("yaml")

	switch {
	case asJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
	case asYAML:
		data, err := yaml.Marshal(result)
		if err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
		fmt.Fprint(w, string(data))
	default:
		renderText(w, result)
	}

	if !result.Succeeded() {
		return &workflow.CategoryError{Category: result.Category, Hint: result.Hint}
	}
	return nil
}

// renderText prints warnings, then each section in declared step and
// field order, then the failure notice last.
func renderText(w io.Writer, result *types.WorkflowResult) {
	if result.Hint != "" {
		fmt.Fprintf(w, "%s\n", result.Hint)
		return
	}
	for _, warning := range result.Warnings {
		fmt.Fprintf(w, "Warning: %s\n", warning)
	}
	if len(result.Warnings) > 0 {
		fmt.Fprintln(w)
	}

	unified := result.Unified()
	for _, name := range orderedFields(result) {
		text, ok := unified[name]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "== %s ==\n%s\n\n", fieldTitle(name), text)
	}
	if notice, ok := unified["notice"]; ok {
		fmt.Fprintf(w, "== Notice ==\n%s\n", notice)
	}
}

// orderedFields lists unified field names in declared step and field
// order, with per-step extras (like caveat) after the declared fields.
func orderedFields(result *types.WorkflowResult) []string {
	var names []string
	for _, stepName := range result.StepOrder {
		step, ok := workflow.Steps[stepName]
		if !ok {
			continue
		}
		declared := make(map[string]bool, len(step.Fields))
		for _, fs := range step.Fields {
			names = append(names, fs.Name)
			declared[fs.Name] = true
		}

		out := result.Steps[stepName]
		var extras []string
		for field := range out.Fields {
			if !declared[field] {
				extras = append(extras, field)
			}
		}
		sort.Strings(extras)
		names = append(names, extras...)
	}
	return names
}

// fieldTitle turns a field name like "strengths_blind_spots" into a
// display header.
func fieldTitle(name string) string {
	words := strings.Split(name, "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
