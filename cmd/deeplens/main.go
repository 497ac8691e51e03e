// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the deeplens CLI: research papers,
// researcher profiles, buzzwords, and trends analyzed through generative
// AI workflows.
package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/deeplens/internal/agent"
	"github.com/pdiddy/deeplens/internal/fetch"
	"github.com/pdiddy/deeplens/internal/secrets"
	"github.com/pdiddy/deeplens/internal/workflow"
	"github.com/pdiddy/deeplens/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets secrets.Store

// rootCmd is the base command for the deeplens CLI.
var rootCmd = &cobra.Command{
	Use:   "deeplens",
	Short: "Plain-language analysis of research papers and researchers",
	Long: `deeplens turns research links into plain-language analysis. Point it at an
arXiv paper, a DOI, a Semantic Scholar entry, or any technical page and it
explains the work, classifies its research stage, and assesses industry
demand. Point it at a Google Scholar profile and it classifies the
researcher's strategy from their publication history.

Each analysis is a subcommand: analyze, evaluate, explain, and trend.
When a link cannot be fetched, paste the relevant text directly.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", s.Keys())
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./deeplens.yaml or ~/.config/deeplens/config.yaml)")
	rootCmd.PersistentFlags().Bool("json", false, "output the full result as JSON")
	rootCmd.PersistentFlags().Bool("yaml", false, "output the full result as YAML")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("deeplens")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "deeplens"))
		}
	}

	viper.SetDefault("fetch.timeout", "30s")
	viper.SetDefault("fetch.user_agent", "deeplens/0.1")
	viper.SetDefault("fetch.max_content_chars", 30000)
	viper.SetDefault("fetch.max_page_chars", 15000)
	viper.SetDefault("fetch.scholar_page_size", 100)
	viper.SetDefault("agent.provider", "anthropic")
	viper.SetDefault("agent.model", "claude-sonnet-4-5-20250929")
	viper.SetDefault("agent.temperature", 0.7)
	viper.SetDefault("agent.max_tokens", 4096)
	viper.SetDefault("agent.timeout", "120s")
	viper.SetDefault("workflow.min_content_words", 40)
	viper.SetDefault("workflow.min_publications", 1)
	viper.SetDefault("workflow.recommended_publications", 3)

	viper.SetEnvPrefix("DEEPLENS")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// pipelineConfig assembles the stage configuration from viper and the
// loaded secrets.
func pipelineConfig() types.PipelineConfig {
	provider := types.AgentProvider(viper.GetString("agent.provider"))
	keyFile := secrets.AnthropicKey
	if provider == types.ProviderGemini {
		keyFile = secrets.GeminiKey
	}

	return types.PipelineConfig{
		Fetch: types.FetchConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("fetch.timeout"),
				UserAgent: viper.GetString("fetch.user_agent"),
			},
			MaxContentChars:       viper.GetInt("fetch.max_content_chars"),
			MaxPageChars:          viper.GetInt("fetch.max_page_chars"),
			ScholarPageSize:       viper.GetInt("fetch.scholar_page_size"),
			SemanticScholarAPIKey: loadedSecrets.Get(secrets.SemanticScholarKey, viper.GetString("fetch.semantic_scholar_api_key")),
		},
		Agent: types.AgentConfig{
			Provider:    provider,
			Model:       viper.GetString("agent.model"),
			APIKey:      loadedSecrets.Get(keyFile, viper.GetString("agent.api_key")),
			Temperature: viper.GetFloat64("agent.temperature"),
			MaxTokens:   viper.GetInt("agent.max_tokens"),
			Timeout:     viper.GetDuration("agent.timeout"),
		},
		Workflow: types.WorkflowConfig{
			MinContentWords:         viper.GetInt("workflow.min_content_words"),
			MinPublications:         viper.GetInt("workflow.min_publications"),
			RecommendedPublications: viper.GetInt("workflow.recommended_publications"),
		},
	}
}

// newOrchestrator wires the fetcher, provider adapter, and logger for
// one command invocation.
func newOrchestrator(cmd *cobra.Command) (*workflow.Orchestrator, error) {
	cfg := pipelineConfig()

	verbose, _ := cmd.Flags().GetBool("verbose")
	log, err := newLogger(verbose)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	fetcher := fetch.NewFetcher(&http.Client{Timeout: cfg.Fetch.Timeout}, cfg.Fetch, log)

	agentClient := &http.Client{Timeout: cfg.Agent.Timeout}
	if cfg.Agent.Timeout <= 0 {
		agentClient.Timeout = 120 * time.Second
	}
	invoker, err := agent.New(cfg.Agent, agentClient)
	if err != nil {
		return nil, err
	}

	return workflow.NewOrchestrator(fetcher, invoker, cfg, log), nil
}

// newLogger builds a stderr logger; diagnostics never mix with results
// on stdout.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	return cfg.Build()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
