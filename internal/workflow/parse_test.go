// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package workflow

import (
	"testing"
)

const sampleEvaluation = `## Researcher Pattern

**Classification:** ` + "`Deep Specialist`" + `
**Confidence:** ` + "`High`" + `

| Pattern | Description |
|---------|-------------|
| Deep Specialist | Sustained deep work on core problems |

## Evidence & Reasoning
- 2019: "Sparse Attention at Scale" builds directly on the 2017 work.
- Every paper targets the same family of attention mechanisms.

## Topic Evolution
Steady deepening within efficient attention, no pivots.

## Career Trajectory
Started with approximation theory, heading toward hardware-aware attention.

## Key Strengths & Blind Spots
- **Strengths:** Systematic follow-through.
- **Blind spots:** Little exposure to adjacent fields.
`

func TestParseFields_Evaluation(t *testing.T) {
	fields := ParseFields(sampleEvaluation, Steps["evaluation"].Fields)

	if got := fields["pattern"]; got != "deep-specialist" {
		t.Errorf("pattern = %q, want %q", got, "deep-specialist")
	}
	if got := fields["confidence"]; got != "high" {
		t.Errorf("confidence = %q, want %q", got, "high")
	}
	if got := fields["topic_evolution"]; got != "Steady deepening within efficient attention, no pivots." {
		t.Errorf("topic_evolution = %q", got)
	}
	for _, name := range []string{"evidence", "trajectory", "strengths_blind_spots"} {
		if fields[name] == NotIdentified || fields[name] == "" {
			t.Errorf("field %s not parsed", name)
		}
	}
}

func TestParseFields_MissingSections(t *testing.T) {
	raw := "## Evidence & Reasoning\nSome evidence.\n"
	fields := ParseFields(raw, Steps["evaluation"].Fields)

	if got := fields["evidence"]; got != "Some evidence." {
		t.Errorf("evidence = %q", got)
	}
	for _, name := range []string{"pattern", "confidence", "topic_evolution", "trajectory", "strengths_blind_spots"} {
		if fields[name] != NotIdentified {
			t.Errorf("field %s = %q, want placeholder", name, fields[name])
		}
	}
}

func TestParseFields_HeadingTolerance(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"lowercase", "## key strengths & blind spots\nbody text"},
		{"no ampersand", "## Key Strengths and Blind Spots\nbody text"},
		{"deeper heading", "### Key Strengths & Blind Spots\nbody text"},
	}
	spec := []FieldSpec{{Name: "strengths_blind_spots", Heading: "Key Strengths & Blind Spots"}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := ParseFields(tt.raw, spec)
			if fields["strengths_blind_spots"] != "body text" {
				t.Errorf("got %q, want body text", fields["strengths_blind_spots"])
			}
		})
	}
}

func TestParseFields_EnumCanonicalization(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{"title case with backticks", "**Classification:** `Trend Follower`", "trend-follower"},
		{"underscored", "**Classification:** abstraction_upleveler", "abstraction-upleveler"},
		{"echoed alternatives", "**Classification:** `Trend Follower` / `Deep Specialist`", NotIdentified},
		{"free text", "**Classification:** hard to say", NotIdentified},
		{"missing marker", "no classification here", NotIdentified},
	}
	spec := []FieldSpec{{
		Name:    "pattern",
		Heading: "Researcher Pattern",
		Marker:  "Classification",
		Enum:    []string{"trend-follower", "deep-specialist", "abstraction-upleveler"},
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := "## Researcher Pattern\n" + tt.line + "\n"
			fields := ParseFields(raw, spec)
			if fields["pattern"] != tt.want {
				t.Errorf("pattern = %q, want %q", fields["pattern"], tt.want)
			}
		})
	}
}

func TestParseFields_MarkerOutsideSection(t *testing.T) {
	// Some responses put the classification above the expected heading.
	raw := "**Status:** `Hyped`\n\n## Hype Assessment\nMostly hype.\n"
	spec := []FieldSpec{{
		Name:    "trend_status",
		Heading: "Trend Status",
		Marker:  "Status",
		Enum:    []string{"emerging", "hyped", "mature", "declining", "obsolete"},
	}}

	fields := ParseFields(raw, spec)
	if fields["trend_status"] != "hyped" {
		t.Errorf("trend_status = %q, want hyped", fields["trend_status"])
	}
}

func TestParseFields_AllDeclaredFieldsPresent(t *testing.T) {
	for name, step := range Steps {
		fields := ParseFields("no structure at all", step.Fields)
		if len(fields) != len(step.Fields) {
			t.Errorf("step %s: got %d fields, want %d", name, len(fields), len(step.Fields))
		}
		for _, spec := range step.Fields {
			if _, ok := fields[spec.Name]; !ok {
				t.Errorf("step %s: field %s absent", name, spec.Name)
			}
		}
	}
}
