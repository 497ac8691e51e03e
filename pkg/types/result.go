// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"sort"
	"strings"
)

// StepStatus is the outcome of a single workflow step invocation.
type StepStatus string

const (
	StepOK      StepStatus = "ok"
	StepError   StepStatus = "error"
	StepSkipped StepStatus = "skipped"
)

// StepOutput holds the parsed fields of one step invocation. It is
// created once per run and owned by the WorkflowResult that contains it.
type StepOutput struct {
	// Fields maps declared field names to parsed text. Every field the
	// step declares is present; missing sections carry a placeholder.
	Fields map[string]string `json:"fields,omitempty" yaml:"fields,omitempty"`

	// Status reports whether the step produced usable output.
	Status StepStatus `json:"status" yaml:"status"`

	// ErrorDetail carries the provider or precondition message for
	// error and skipped steps.
	ErrorDetail string `json:"error_detail,omitempty" yaml:"error_detail,omitempty"`
}

// Category classifies the overall outcome of a workflow run.
type Category string

const (
	CategoryOK           Category = "ok"
	CategoryInputEmpty   Category = "input-empty"
	CategoryFetchFailed  Category = "fetch-failed"
	CategoryPrecondition Category = "precondition-not-met"
	CategoryAgentFailed  Category = "agent-invocation-failed"
	CategoryPartial      Category = "partial-success"
)

// WorkflowResult is the merged outcome of one workflow run. Steps holds
// exactly the steps that ran (or were skipped); a failed step appears as
// an explicit error entry, never silently omitted.
type WorkflowResult struct {
	// Workflow is the workflow identifier (e.g. "understand-paper").
	Workflow string `json:"workflow" yaml:"workflow"`

	// Category summarizes the run outcome.
	Category Category `json:"category" yaml:"category"`

	// Steps maps step name to its output.
	Steps map[string]StepOutput `json:"steps" yaml:"steps"`

	// StepOrder records the declared execution order, so merged views
	// are deterministic across runs.
	StepOrder []string `json:"step_order" yaml:"step_order"`

	// Warnings holds data-quality caveats (e.g. limited publication data)
	// that do not prevent a successful run.
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`

	// Hint carries a remediation message for runs that failed before any
	// step could execute.
	Hint string `json:"hint,omitempty" yaml:"hint,omitempty"`

	// Remediation phrases the retry advice appended to failure notices.
	// Workflows set it to match their input kind (paste text, provide
	// publications); empty falls back to a generic retry hint.
	Remediation string `json:"remediation,omitempty" yaml:"remediation,omitempty"`
}

// Unified flattens the result into a single section-name to text mapping
// with no step or agent identifiers. Step field namespaces are disjoint,
// so the merge needs no conflict resolution. Failed or skipped steps
// contribute a single "notice" section with a plain-language hint, and
// data-quality warnings surface as a "warnings" section.
func (r *WorkflowResult) Unified() map[string]string {
	out := make(map[string]string)
	notices := make([]string, 0)

	if len(r.Warnings) > 0 {
		out["warnings"] = strings.Join(r.Warnings, "; ")
	}

	for _, name := range r.StepOrder {
		step, ok := r.Steps[name]
		if !ok {
			continue
		}
		if step.Status == StepOK {
			for field, text := range step.Fields {
				out[field] = text
			}
			continue
		}
		notices = append(notices, step.ErrorDetail)
	}

	if len(notices) > 0 {
		sort.Strings(notices)
		remediation := r.Remediation
		if remediation == "" {
			remediation = "You can retry."
		}
		notice := "Part of the analysis is unavailable: " + notices[0]
		for _, n := range notices[1:] {
			notice += "; " + n
		}
		notice += ". " + remediation
		out["notice"] = notice
	}
	return out
}

// Succeeded reports whether at least one step produced usable output.
func (r *WorkflowResult) Succeeded() bool {
	for _, s := range r.Steps {
		if s.Status == StepOK {
			return true
		}
	}
	return false
}
