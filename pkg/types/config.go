// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "deeplens/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// FetchConfig holds settings for the content fetch stage.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxContentChars caps full-text extraction from arXiv HTML renderings
	// (default 30000). Longer content is truncated with a marker.
	MaxContentChars int `json:"max_content_chars" yaml:"max_content_chars"`

	// MaxPageChars caps best-effort extraction from generic pages (default 15000).
	MaxPageChars int `json:"max_page_chars" yaml:"max_page_chars"`

	// ScholarPageSize is the number of publications requested from a
	// profile page in one fetch (default 100).
	ScholarPageSize int `json:"scholar_page_size" yaml:"scholar_page_size"`

	// SemanticScholarAPIKey is an optional API key for higher rate limits.
	SemanticScholarAPIKey string `json:"semantic_scholar_api_key,omitempty" yaml:"semantic_scholar_api_key,omitempty"`
}

// AgentProvider identifies the generative AI backend.
type AgentProvider string

const (
	ProviderAnthropic AgentProvider = "anthropic"
	ProviderGemini    AgentProvider = "gemini"
)

// AgentConfig holds settings for the agent invocation boundary.
type AgentConfig struct {
	// Provider selects the backend adapter: anthropic or gemini.
	Provider AgentProvider `json:"provider" yaml:"provider"`

	// Model is the model identifier (e.g. "claude-sonnet-4-5-20250929").
	Model string `json:"model" yaml:"model"`

	// APIKey is the authentication key for the provider API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// Temperature is the sampling temperature (default 0.7).
	Temperature float64 `json:"temperature" yaml:"temperature"`

	// MaxTokens bounds the generated output length (default 4096).
	MaxTokens int `json:"max_tokens" yaml:"max_tokens"`

	// Timeout bounds a single invocation. A timeout is reported the same
	// way as any other provider failure.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// WorkflowConfig holds orchestration thresholds.
type WorkflowConfig struct {
	// MinContentWords is the content length below which paper analysis
	// proceeds with a limited-analysis caveat (default 40).
	MinContentWords int `json:"min_content_words" yaml:"min_content_words"`

	// MinPublications is the hard minimum for researcher evaluation (default 1).
	MinPublications int `json:"min_publications" yaml:"min_publications"`

	// RecommendedPublications is the count under which evaluation carries
	// a limited-data warning (default 3).
	RecommendedPublications int `json:"recommended_publications" yaml:"recommended_publications"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Fetch    FetchConfig    `json:"fetch" yaml:"fetch"`
	Agent    AgentConfig    `json:"agent" yaml:"agent"`
	Workflow WorkflowConfig `json:"workflow" yaml:"workflow"`
}
