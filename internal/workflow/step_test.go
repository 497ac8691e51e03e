// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package workflow

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/pdiddy/deeplens/internal/agent"
)

// stubInvoker returns canned text keyed by role, or fails for roles in
// failRoles.
type stubInvoker struct {
	responses map[string]string
	failRoles map[string]bool
	calls     int
}

func (s *stubInvoker) Invoke(_ context.Context, role, _ string, _ agent.Options) (string, error) {
	s.calls++
	if s.failRoles[role] {
		return "", errors.New("backend unavailable")
	}
	if resp, ok := s.responses[role]; ok {
		return resp, nil
	}
	return "## Explanation\nGenerated.\n", nil
}

func TestStepRun_MissingRequiredInput(t *testing.T) {
	inv := &stubInvoker{}
	out, err := Steps["summary"].Run(context.Background(), inv, map[string]string{}, agent.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Status != "error" {
		t.Errorf("status = %q, want error", out.Status)
	}
	if !strings.Contains(out.ErrorDetail, "content") {
		t.Errorf("error detail %q should name the missing input", out.ErrorDetail)
	}
	if inv.calls != 0 {
		t.Errorf("invoker called %d times for failed precondition", inv.calls)
	}
}

func TestStepRun_ShortContentCaveat(t *testing.T) {
	inv := &stubInvoker{responses: map[string]string{
		summaryRole: "## Simplified Explanation\nShort take.\n",
	}}
	data := map[string]string{"content": "attention is all you need"}

	out, err := Steps["summary"].Run(context.Background(), inv, data, agent.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Status != "ok" {
		t.Fatalf("status = %q, want ok", out.Status)
	}
	if out.Fields["caveat"] == "" {
		t.Error("short content should attach a caveat field")
	}
	if out.Fields["simplified"] != "Short take." {
		t.Errorf("simplified = %q", out.Fields["simplified"])
	}
}

func TestStepRun_LongContentNoCaveat(t *testing.T) {
	inv := &stubInvoker{responses: map[string]string{
		summaryRole: "## Simplified Explanation\nFull take.\n",
	}}
	data := map[string]string{"content": strings.Repeat("word ", 100)}

	out, err := Steps["summary"].Run(context.Background(), inv, data, agent.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := out.Fields["caveat"]; ok {
		t.Error("long content should not attach a caveat")
	}
}

func TestStepRun_InvocationFailure(t *testing.T) {
	inv := &stubInvoker{failRoles: map[string]bool{summaryRole: true}}
	data := map[string]string{"content": strings.Repeat("word ", 100)}

	out, err := Steps["summary"].Run(context.Background(), inv, data, agent.Options{})
	if err == nil {
		t.Fatal("expected invocation error")
	}
	if out.Status != "error" {
		t.Errorf("status = %q, want error", out.Status)
	}
	if inv.calls != 1 {
		t.Errorf("invoker called %d times, want exactly 1", inv.calls)
	}
}
