// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package workflow

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/deeplens/internal/agent"
	"github.com/pdiddy/deeplens/internal/fetch"
	"github.com/pdiddy/deeplens/pkg/types"
)

// maxAbstractChars caps per-publication abstract text in the evaluation
// prompt, keeping large profiles within a single request.
const maxAbstractChars = 300

// Orchestrator runs workflows over a single request. It holds no state
// between runs; every call builds its result from scratch.
type Orchestrator struct {
	fetcher *fetch.Fetcher
	invoker agent.Invoker
	cfg     types.PipelineConfig
	log     *zap.Logger
}

// NewOrchestrator wires the fetcher and invoker into a workflow runner.
// A nil logger defaults to a no-op logger.
func NewOrchestrator(fetcher *fetch.Fetcher, invoker agent.Invoker, cfg types.PipelineConfig, log *zap.Logger) *Orchestrator {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.Workflow.MinContentWords <= 0 {
		cfg.Workflow.MinContentWords = 40
	}
	if cfg.Workflow.MinPublications <= 0 {
		cfg.Workflow.MinPublications = 1
	}
	if cfg.Workflow.RecommendedPublications <= 0 {
		cfg.Workflow.RecommendedPublications = 3
	}
	if cfg.Agent.Temperature == 0 {
		cfg.Agent.Temperature = 0.7
	}
	if cfg.Agent.MaxTokens <= 0 {
		cfg.Agent.MaxTokens = 4096
	}
	return &Orchestrator{fetcher: fetcher, invoker: invoker, cfg: cfg, log: log}
}

// AnalyzePaper runs the understand-paper workflow. The input may be a
// paper link (arXiv, Semantic Scholar, DOI, or any web page) or literal
// text; non-URL input is analyzed as pasted content.
func (o *Orchestrator) AnalyzePaper(ctx context.Context, input string) *types.WorkflowResult {
	input = strings.TrimSpace(input)
	if input == "" {
		return failedResult(WorkflowUnderstandPaper, types.CategoryInputEmpty,
			"No input provided. Paste a paper link or the text you want analyzed.")
	}

	var content string
	if fetch.IsURL(input) {
		rec, err := o.fetcher.FetchPaper(ctx, input)
		if err != nil {
			o.log.Info("paper fetch failed", zap.String("input", input), zap.Error(err))
			return failedResult(WorkflowUnderstandPaper, types.CategoryFetchFailed,
				fmt.Sprintf("Could not retrieve the linked content (%v). You can retry, or paste the relevant text directly.", err))
		}
		content = formatRecord(rec)
	} else {
		// Not a link: the input itself is the content under analysis.
		content = input
	}

	return o.runStages(ctx, WorkflowUnderstandPaper, map[string]string{"content": content}, nil)
}

// EvaluateResearcher runs the evaluate-researcher workflow. Input is a
// Google Scholar profile link or a pasted publication listing;
// alternatively the caller supplies the publication records directly
// (with an optional researcher name).
func (o *Orchestrator) EvaluateResearcher(ctx context.Context, input string, pubs []types.Publication, name string) *types.WorkflowResult {
	input = strings.TrimSpace(input)
	if input == "" && pubs == nil {
		return failedResult(WorkflowEvaluateResearcher, types.CategoryInputEmpty,
			"No input provided. Give a Scholar profile link or a publications file.")
	}

	if len(pubs) == 0 && input != "" {
		if fetch.IsURL(input) {
			profile, err := o.fetcher.FetchProfile(ctx, input)
			if err != nil {
				o.log.Info("profile fetch failed", zap.String("input", input), zap.Error(err))
				return failedResult(WorkflowEvaluateResearcher, types.CategoryFetchFailed,
					fmt.Sprintf("Could not retrieve the profile (%v). You can retry, or provide the publications directly.", err))
			}
			pubs = profile.Publications
			if name == "" {
				name = profile.Name
			}
		} else {
			// Pasted listing: extract what we can, one entry per line.
			pubs = ExtractPublications(input)
		}
	}

	if len(pubs) < o.cfg.Workflow.MinPublications {
		return failedResult(WorkflowEvaluateResearcher, types.CategoryPrecondition,
			"No publications to evaluate. Provide at least one publication.")
	}

	var warnings []string
	if len(pubs) < o.cfg.Workflow.RecommendedPublications {
		warnings = append(warnings, "limited-data: fewer than 3 publications; the classification may be unreliable")
	}
	if yearSpan(pubs) <= 1 {
		warnings = append(warnings, "limited-trajectory: publications span a single year; trajectory signals are weak")
	}

	data := map[string]string{
		"publications": formatPublications(pubs),
		"name":         name,
	}
	return o.runStages(ctx, WorkflowEvaluateResearcher, data, warnings)
}

// ExplainTerm runs the explain-term workflow over a buzzword or phrase.
func (o *Orchestrator) ExplainTerm(ctx context.Context, term string) *types.WorkflowResult {
	term = strings.TrimSpace(term)
	if term == "" {
		return failedResult(WorkflowExplainTerm, types.CategoryInputEmpty,
			"No term provided. Give the buzzword you want explained.")
	}
	return o.runStages(ctx, WorkflowExplainTerm, map[string]string{"term": term}, nil)
}

// AssessTrend runs the assess-trend workflow over a topic with optional
// supporting context.
func (o *Orchestrator) AssessTrend(ctx context.Context, topic, extra string) *types.WorkflowResult {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return failedResult(WorkflowAssessTrend, types.CategoryInputEmpty,
			"No topic provided. Give the trend or research area to assess.")
	}
	data := map[string]string{"topic": topic, "context": strings.TrimSpace(extra)}
	return o.runStages(ctx, WorkflowAssessTrend, data, nil)
}

// runStages executes the workflow's dependency stages. Steps within a
// stage run concurrently; a failed step marks its dependents skipped
// with the reason propagated.
func (o *Orchestrator) runStages(ctx context.Context, workflow string, data map[string]string, warnings []string) *types.WorkflowResult {
	stages := Workflows[workflow]
	result := &types.WorkflowResult{
		Workflow:    workflow,
		Steps:       make(map[string]types.StepOutput),
		Warnings:    warnings,
		Remediation: remediationFor(workflow),
	}
	for _, stage := range stages {
		result.StepOrder = append(result.StepOrder, stage...)
	}

	opts := agent.Options{
		Temperature: o.cfg.Agent.Temperature,
		MaxTokens:   o.cfg.Agent.MaxTokens,
	}

	var mu sync.Mutex
	for _, stage := range stages {
		g, gctx := errgroup.WithContext(ctx)
		for _, name := range stage {
			step := o.step(name)
			mu.Lock()
			skip, reason := dependencyFailure(step, result.Steps)
			mu.Unlock()
			if skip {
				mu.Lock()
				result.Steps[name] = types.StepOutput{
					Status:      types.StepSkipped,
					ErrorDetail: reason,
				}
				mu.Unlock()
				continue
			}

			g.Go(func() error {
				out, err := step.Run(gctx, o.invoker, data, opts)
				if err != nil {
					o.log.Info("step failed", zap.String("workflow", workflow),
						zap.String("step", step.Name), zap.Error(err))
				}
				mu.Lock()
				result.Steps[step.Name] = out
				mu.Unlock()
				// Step failures are recorded, not fatal to the stage.
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			break
		}

		// Expose this stage's parsed fields to later stages.
		mu.Lock()
		for _, name := range stage {
			out := result.Steps[name]
			if out.Status != types.StepOK {
				continue
			}
			for field, value := range out.Fields {
				data[name+"_"+field] = value
			}
		}
		mu.Unlock()
	}

	result.Category = categorize(result)
	return result
}

// step returns the descriptor for name, applying per-run config
// overrides without mutating the shared table.
func (o *Orchestrator) step(name string) *StepDescriptor {
	step := Steps[name]
	if step.MinWords > 0 && o.cfg.Workflow.MinContentWords != step.MinWords {
		clone := *step
		clone.MinWords = o.cfg.Workflow.MinContentWords
		return &clone
	}
	return step
}

// remediationFor phrases the failure-notice retry advice for the
// workflow's input kind.
func remediationFor(workflow string) string {
	switch workflow {
	case WorkflowUnderstandPaper:
		return "You can retry, or paste the relevant text directly."
	case WorkflowEvaluateResearcher:
		return "You can retry, or provide the publications directly."
	default:
		return "You can retry."
	}
}

// dependencyFailure reports whether any of the step's dependencies did
// not succeed, with a user-facing reason.
func dependencyFailure(step *StepDescriptor, done map[string]types.StepOutput) (bool, string) {
	for _, dep := range step.DependsOn {
		out, ok := done[dep]
		if !ok {
			continue
		}
		if out.Status != types.StepOK {
			return true, fmt.Sprintf("skipped because an earlier analysis stage failed: %s", out.ErrorDetail)
		}
	}
	return false, ""
}

// categorize derives the overall category from per-step outcomes. A
// run with a skipped step is partial even when nothing succeeded: the
// skip entry carries the propagated reason, so the result is not blank.
// Agent failure is reserved for runs where every step itself failed.
func categorize(result *types.WorkflowResult) types.Category {
	okCount, skipped, total := 0, 0, 0
	for _, out := range result.Steps {
		total++
		switch out.Status {
		case types.StepOK:
			okCount++
		case types.StepSkipped:
			skipped++
		}
	}
	switch {
	case total == 0 || (okCount == 0 && skipped == 0):
		return types.CategoryAgentFailed
	case okCount == total:
		return types.CategoryOK
	default:
		return types.CategoryPartial
	}
}

// failedResult builds a result for a run that never reached the steps.
func failedResult(workflow string, category types.Category, hint string) *types.WorkflowResult {
	return &types.WorkflowResult{
		Workflow: workflow,
		Category: category,
		Steps:    make(map[string]types.StepOutput),
		Hint:     hint,
	}
}

// formatRecord flattens a fetched record into the content block the
// analysis steps consume.
func formatRecord(rec *types.ContentRecord) string {
	var b strings.Builder
	if rec.Title != "" {
		fmt.Fprintf(&b, "Title: %s\n", rec.Title)
	}
	if len(rec.Authors) > 0 {
		fmt.Fprintf(&b, "Authors: %s\n", strings.Join(rec.Authors, ", "))
	}
	if b.Len() > 0 {
		b.WriteString("\n")
	}
	b.WriteString(rec.Content)
	return b.String()
}

// formatPublications renders the publication list chronologically, one
// block per publication, abstracts truncated.
func formatPublications(pubs []types.Publication) string {
	var blocks []string
	for _, pub := range pubs {
		year := "Unknown"
		if pub.Year > 0 {
			year = fmt.Sprintf("%d", pub.Year)
		}
		block := fmt.Sprintf("Year %s: %s", year, pub.Title)
		if pub.Abstract != "" {
			abstract := pub.Abstract
			if len(abstract) > maxAbstractChars {
				abstract = abstract[:maxAbstractChars] + "..."
			}
			block += "\nAbstract: " + abstract
		}
		if pub.CitedBy > 0 {
			block += fmt.Sprintf("\nCited by: %d", pub.CitedBy)
		}
		blocks = append(blocks, block)
	}
	return strings.Join(blocks, "\n\n")
}

// yearSpan returns the distinct count of known publication years.
func yearSpan(pubs []types.Publication) int {
	years := make(map[int]bool)
	for _, pub := range pubs {
		if pub.Year > 0 {
			years[pub.Year] = true
		}
	}
	return len(years)
}
