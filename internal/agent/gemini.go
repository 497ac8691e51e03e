// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/pdiddy/deeplens/pkg/types"
)

// GeminiInvoker calls the Gemini API through the google.golang.org/genai
// client. The role description travels as the system instruction.
type GeminiInvoker struct {
	client *genai.Client
	model  string
}

// NewGeminiInvoker builds a Gemini-backed invoker from configuration.
func NewGeminiInvoker(cfg types.AgentConfig) (*GeminiInvoker, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	model := cfg.Model
	if model == "" {
		model = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}

	return &GeminiInvoker{client: client, model: model}, nil
}

// Invoke issues one GenerateContent call and returns the response text.
func (g *GeminiInvoker) Invoke(ctx context.Context, role, instruction string, opts Options) (string, error) {
	config := &genai.GenerateContentConfig{}
	if role != "" {
		config.SystemInstruction = genai.NewContentFromText(role, genai.RoleUser)
	}
	config.Temperature = genai.Ptr(float32(opts.Temperature))
	if opts.MaxTokens > 0 {
		config.MaxOutputTokens = int32(opts.MaxTokens)
	}

	contents := []*genai.Content{
		genai.NewContentFromText(instruction, genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return "", &ProviderError{Provider: "gemini", Message: "request failed", Err: err}
	}

	text := resp.Text()
	if text == "" {
		return "", &ProviderError{Provider: "gemini", Message: "response contained no text content"}
	}
	return text, nil
}
