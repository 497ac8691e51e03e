// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/pdiddy/deeplens/pkg/types"
)

// anthropicAPIURL is the Claude Messages API endpoint. Package-level var
// for test substitution.
var anthropicAPIURL = "https://api.anthropic.com/v1/messages"

const anthropicVersion = "2023-06-01"

// AnthropicInvoker calls the Claude Messages API. The role description
// travels in the system field; the instruction is the user message.
type AnthropicInvoker struct {
	apiKey string
	model  string
	client *http.Client
}

// NewAnthropicInvoker builds an invoker from configuration. A nil client
// falls back to http.DefaultClient.
func NewAnthropicInvoker(cfg types.AgentConfig, client *http.Client) *AnthropicInvoker {
	if client == nil {
		client = http.DefaultClient
	}
	return &AnthropicInvoker{apiKey: cfg.APIKey, model: cfg.Model, client: client}
}

// anthropicRequest is the request body for the Claude Messages API.
type anthropicRequest struct {
	Model       string             `json:"model"`
	MaxTokens   int                `json:"max_tokens"`
	Temperature float64            `json:"temperature"`
	System      string             `json:"system,omitempty"`
	Messages    []anthropicMessage `json:"messages"`
}

// anthropicMessage is a single message in the conversation.
type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// anthropicResponse is the response body from the Claude Messages API.
type anthropicResponse struct {
	Content []anthropicContent `json:"content"`
}

// anthropicContent is a content block in the response.
type anthropicContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Invoke issues one Messages API call and returns the concatenated text
// blocks of the response.
func (a *AnthropicInvoker) Invoke(ctx context.Context, role, instruction string, opts Options) (string, error) {
	maxTokens := opts.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 4096
	}

	reqBody := anthropicRequest{
		Model:       a.model,
		MaxTokens:   maxTokens,
		Temperature: opts.Temperature,
		System:      role,
		Messages: []anthropicMessage{
			{Role: "user", Content: instruction},
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, anthropicAPIURL, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", a.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	resp, err := a.client.Do(req)
	if err != nil {
		return "", &ProviderError{Provider: "anthropic", Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", &ProviderError{
			Provider: "anthropic",
			Message:  fmt.Sprintf("API returned %d: %s", resp.StatusCode, string(body)),
		}
	}

	var aResp anthropicResponse
	if err := json.NewDecoder(resp.Body).Decode(&aResp); err != nil {
		return "", &ProviderError{Provider: "anthropic", Message: "decoding response", Err: err}
	}

	var text bytes.Buffer
	for _, block := range aResp.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	if text.Len() == 0 {
		return "", &ProviderError{Provider: "anthropic", Message: "response contained no text content"}
	}
	return text.String(), nil
}
