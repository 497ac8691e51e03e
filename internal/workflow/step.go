// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package workflow runs sequences of generative analysis steps over
// fetched research content and merges their parsed outputs into a
// single result.
package workflow

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"text/template"

	"github.com/pdiddy/deeplens/internal/agent"
	"github.com/pdiddy/deeplens/pkg/types"
)

// StepDescriptor is one entry in the static step table. Descriptors are
// immutable; per-run state lives in the data map and the StepOutput.
type StepDescriptor struct {
	// Name identifies the step within its workflow.
	Name string

	// Role is the system framing sent to the provider.
	Role string

	// Requires lists data keys that must be non-empty before the step
	// can run.
	Requires []string

	// DependsOn names prior steps whose success this step needs. A
	// failed dependency marks this step skipped.
	DependsOn []string

	// MinWords, when positive, is the content length under which the
	// step still runs but attaches a caveat field.
	MinWords int

	// Template renders the task instruction from the data map.
	Template *template.Template

	// Fields declares the step's output fields and how to parse them.
	Fields []FieldSpec
}

// Run renders the instruction, performs exactly one invocation, and
// parses the response into the declared fields. The returned error is
// non-nil only for an invocation failure; the StepOutput always
// describes the outcome either way.
func (s *StepDescriptor) Run(ctx context.Context, inv agent.Invoker, data map[string]string, opts agent.Options) (types.StepOutput, error) {
	for _, key := range s.Requires {
		if strings.TrimSpace(data[key]) == "" {
			return types.StepOutput{
				Status:      types.StepError,
				ErrorDetail: fmt.Sprintf("required input %q is missing", key),
			}, nil
		}
	}

	var buf bytes.Buffer
	if err := s.Template.Execute(&buf, data); err != nil {
		return types.StepOutput{
			Status:      types.StepError,
			ErrorDetail: "internal error preparing the analysis prompt",
		}, fmt.Errorf("rendering %s prompt: %w", s.Name, err)
	}

	raw, err := inv.Invoke(ctx, s.Role, buf.String(), opts)
	if err != nil {
		return types.StepOutput{
			Status:      types.StepError,
			ErrorDetail: fmt.Sprintf("the analysis service is unavailable (%v)", err),
		}, err
	}

	fields := ParseFields(raw, s.Fields)
	if s.MinWords > 0 && wordCount(data["content"]) < s.MinWords {
		fields["caveat"] = "The provided content is very short; this analysis may be incomplete or unreliable."
	}

	return types.StepOutput{Fields: fields, Status: types.StepOK}, nil
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}
