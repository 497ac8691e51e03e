// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package agent defines the generative AI invocation boundary. A step
// hands an Invoker a role description and a task instruction and gets
// generated text back; everything behind that call is provider detail.
// The same role+instruction pair may legitimately return different text
// on different calls.
package agent

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pdiddy/deeplens/pkg/types"
)

// Options tune a single invocation.
type Options struct {
	// Temperature is the sampling temperature.
	Temperature float64

	// MaxTokens bounds the generated output length.
	MaxTokens int
}

// Invoker is the opaque model-call capability. Implementations issue
// exactly one provider request per call; there is no internal retry.
type Invoker interface {
	Invoke(ctx context.Context, role, instruction string, opts Options) (string, error)
}

// ProviderError wraps a backend failure with a message suitable for
// display. The orchestrator surfaces it per-step without naming the
// backend request details.
type ProviderError struct {
	Provider string
	Message  string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// New selects a provider adapter from configuration. Selection is
// explicit; there is no auto-detection from available keys.
func New(cfg types.AgentConfig, client *http.Client) (Invoker, error) {
	switch cfg.Provider {
	case types.ProviderAnthropic, "":
		return NewAnthropicInvoker(cfg, client), nil
	case types.ProviderGemini:
		return NewGeminiInvoker(cfg)
	default:
		return nil, fmt.Errorf("unknown agent provider %q (expected anthropic or gemini)", cfg.Provider)
	}
}
