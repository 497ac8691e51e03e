// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package workflow

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/deeplens/internal/fetch"
	"github.com/pdiddy/deeplens/pkg/types"
)

const sampleSummary = `## Simplified Explanation
The paper proposes a simpler way to focus a model's attention.

## Core Idea
Attention can be approximated without quadratic cost.

## Key Terms
- **Attention:** how a model weighs input parts.

## Analogies
Like skimming a book instead of reading every word.
`

const sampleAnalysis = "## Fundamental Problem\nQuadratic attention cost limits context length.\n\n" +
	"## Research Stage\n\n**Classification:** `Scaling`\n\n**Reasoning:** The concept is proven; the work targets efficiency.\n\n" +
	"## Industry Demand\n\n**Demand Level:** `High`\n\n- **Evidence:** Long-context products ship today.\n\n" +
	"## Key Challenges\n\n| Challenge | Type | Notes |\n|---|---|---|\n| Numerical stability | Technical | approximation error grows |\n\n" +
	"## Bottom Line\nWorth attention for anyone serving long-context models.\n"

func newStub() *stubInvoker {
	return &stubInvoker{
		responses: map[string]string{
			summaryRole:    sampleSummary,
			analysisRole:   sampleAnalysis,
			evaluationRole: sampleEvaluation,
		},
		failRoles: map[string]bool{},
	}
}

func newTestOrchestrator(t *testing.T, inv *stubInvoker, fetcher *fetch.Fetcher) *Orchestrator {
	t.Helper()
	return NewOrchestrator(fetcher, inv, types.PipelineConfig{}, nil)
}

func pub(year int, title string) types.Publication {
	return types.Publication{Year: year, Title: title}
}

func TestAnalyzePaper_RawText(t *testing.T) {
	o := newTestOrchestrator(t, newStub(), nil)
	text := strings.Repeat("transformer attention scaling ", 30)

	result := o.AnalyzePaper(context.Background(), text)

	assert.Equal(t, types.CategoryOK, result.Category)
	require.Len(t, result.Steps, 2)

	unified := result.Unified()
	assert.Equal(t, "Attention can be approximated without quadratic cost.", unified["core_idea"])
	assert.Equal(t, "scaling", unified["research_stage"])
	assert.Contains(t, unified["fundamental_problem"], "Quadratic attention cost")
	assert.NotContains(t, unified, "notice")
}

func TestAnalyzePaper_EmptyInput(t *testing.T) {
	o := newTestOrchestrator(t, newStub(), nil)

	result := o.AnalyzePaper(context.Background(), "   ")

	assert.Equal(t, types.CategoryInputEmpty, result.Category)
	assert.Empty(t, result.Steps)
	assert.NotEmpty(t, result.Hint)
}

func TestAnalyzePaper_FetchFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer server.Close()

	fetcher := fetch.NewFetcher(server.Client(), types.FetchConfig{}, nil)
	o := newTestOrchestrator(t, newStub(), fetcher)

	result := o.AnalyzePaper(context.Background(), server.URL+"/paper")

	assert.Equal(t, types.CategoryFetchFailed, result.Category)
	assert.Contains(t, result.Hint, "paste the relevant text directly")
	assert.Empty(t, result.Steps)
}

func TestAnalyzePaper_FetchedPage(t *testing.T) {
	page := "<html><head><title>Linear Attention</title></head><body><article>" +
		strings.Repeat("<p>attention mechanism scaling results </p>", 20) +
		"</article></body></html>"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(page))
	}))
	defer server.Close()

	fetcher := fetch.NewFetcher(server.Client(), types.FetchConfig{}, nil)
	o := newTestOrchestrator(t, newStub(), fetcher)

	result := o.AnalyzePaper(context.Background(), server.URL+"/post")

	assert.Equal(t, types.CategoryOK, result.Category)
	assert.Contains(t, result.Unified()["simplified"], "simpler way")
}

func TestAnalyzePaper_PartialSuccess(t *testing.T) {
	inv := newStub()
	inv.failRoles[analysisRole] = true
	o := newTestOrchestrator(t, inv, nil)

	result := o.AnalyzePaper(context.Background(), strings.Repeat("long content ", 50))

	assert.Equal(t, types.CategoryPartial, result.Category)
	assert.Equal(t, types.StepOK, result.Steps["summary"].Status)
	assert.Equal(t, types.StepError, result.Steps["analysis"].Status)

	unified := result.Unified()
	assert.Contains(t, unified["notice"], "You can retry")
	assert.NotEmpty(t, unified["simplified"])
}

func TestAnalyzePaper_FirstStepFailureSkipsDependent(t *testing.T) {
	inv := newStub()
	inv.failRoles[summaryRole] = true
	o := newTestOrchestrator(t, inv, nil)

	result := o.AnalyzePaper(context.Background(), strings.Repeat("long content ", 50))

	// A skipped dependent keeps the run partial: the skip entry carries
	// the propagated reason, so the result is not a blank failure.
	assert.Equal(t, types.CategoryPartial, result.Category)
	assert.Equal(t, types.StepError, result.Steps["summary"].Status)
	assert.Equal(t, types.StepSkipped, result.Steps["analysis"].Status)
	assert.Contains(t, result.Steps["analysis"].ErrorDetail, "earlier analysis stage failed")
}

func TestEvaluateResearcher_PublicationMatrix(t *testing.T) {
	tests := []struct {
		name         string
		pubs         []types.Publication
		wantCategory types.Category
		wantWarnings []string
	}{
		{
			name:         "zero publications",
			pubs:         []types.Publication{},
			wantCategory: types.CategoryPrecondition,
		},
		{
			name:         "two publications multi-year",
			pubs:         []types.Publication{pub(2019, "A"), pub(2022, "B")},
			wantCategory: types.CategoryOK,
			wantWarnings: []string{"limited-data"},
		},
		{
			name: "three publications single year",
			pubs: []types.Publication{pub(2021, "A"), pub(2021, "B"), pub(2021, "C")},
			wantCategory: types.CategoryOK,
			wantWarnings: []string{"limited-trajectory"},
		},
		{
			name: "one publication",
			pubs: []types.Publication{pub(2021, "A")},
			wantCategory: types.CategoryOK,
			wantWarnings: []string{"limited-data", "limited-trajectory"},
		},
		{
			name: "healthy history",
			pubs: []types.Publication{pub(2017, "A"), pub(2019, "B"),
				pub(2021, "C"), pub(2023, "D")},
			wantCategory: types.CategoryOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := newTestOrchestrator(t, newStub(), nil)
			result := o.EvaluateResearcher(context.Background(), "", tt.pubs, "Dr. Example")

			assert.Equal(t, tt.wantCategory, result.Category)
			assert.Len(t, result.Warnings, len(tt.wantWarnings))
			for i, prefix := range tt.wantWarnings {
				assert.Contains(t, result.Warnings[i], prefix)
			}

			// The unified view is the only shape presentation layers
			// consume, so warnings must surface there too.
			unified := result.Unified()
			if len(tt.wantWarnings) > 0 {
				for _, prefix := range tt.wantWarnings {
					assert.Contains(t, unified["warnings"], prefix)
				}
			} else {
				assert.NotContains(t, unified, "warnings")
			}
			if tt.wantCategory == types.CategoryOK {
				assert.Equal(t, "deep-specialist", unified["pattern"])
			}
		})
	}
}

func TestEvaluateResearcher_PastedListing(t *testing.T) {
	o := newTestOrchestrator(t, newStub(), nil)
	listing := `- Sparse Attention at Scale (2023)
- Efficient Transformers (2021)
- Long-Context Survey (2019)`

	result := o.EvaluateResearcher(context.Background(), listing, nil, "Dr. Example")

	assert.Equal(t, types.CategoryOK, result.Category)
	assert.Empty(t, result.Warnings)
	assert.Equal(t, "deep-specialist", result.Unified()["pattern"])

	useless := o.EvaluateResearcher(context.Background(), "Publications:\n2020\n", nil, "")
	assert.Equal(t, types.CategoryPrecondition, useless.Category)
}

func TestEvaluateResearcher_NoInput(t *testing.T) {
	o := newTestOrchestrator(t, newStub(), nil)
	result := o.EvaluateResearcher(context.Background(), "", nil, "")
	assert.Equal(t, types.CategoryInputEmpty, result.Category)
}

func TestEvaluateResearcher_FailureNotice(t *testing.T) {
	inv := newStub()
	inv.failRoles[evaluationRole] = true
	o := newTestOrchestrator(t, inv, nil)

	history := []types.Publication{pub(2018, "A"), pub(2020, "B"), pub(2023, "C")}
	result := o.EvaluateResearcher(context.Background(), "", history, "Dr. Example")

	assert.Equal(t, types.CategoryAgentFailed, result.Category)
	notice := result.Unified()["notice"]
	assert.Contains(t, notice, "provide the publications directly")
	assert.NotContains(t, notice, "paste the relevant text")
}

func TestExplainTerm(t *testing.T) {
	o := newTestOrchestrator(t, newStub(), nil)
	result := o.ExplainTerm(context.Background(), "mixture of experts")

	assert.Equal(t, types.CategoryOK, result.Category)
	assert.Equal(t, "Generated.", result.Unified()["explanation"])

	empty := o.ExplainTerm(context.Background(), "")
	assert.Equal(t, types.CategoryInputEmpty, empty.Category)
}

func TestAssessTrend(t *testing.T) {
	inv := newStub()
	inv.responses[trendRole] = "## Trend Status\n\n**Status:** `Hyped`\n\n" +
		"## Problem Type\n\n**Type:** `Engineering Problem`\n\n" +
		"## Recommendation\nLook at data quality instead.\n"
	o := newTestOrchestrator(t, inv, nil)

	result := o.AssessTrend(context.Background(), "prompt optimization", "")

	assert.Equal(t, types.CategoryOK, result.Category)
	unified := result.Unified()
	assert.Equal(t, "hyped", unified["trend_status"])
	assert.Equal(t, "engineering-problem", unified["problem_type"])
	assert.Equal(t, NotIdentified, unified["obsolescence"])
}

func TestRepeatRunsMergeIdentically(t *testing.T) {
	o := newTestOrchestrator(t, newStub(), nil)

	history := []types.Publication{pub(2018, "A"), pub(2020, "B"), pub(2023, "C")}
	first := o.EvaluateResearcher(context.Background(), "", history, "Dr. Example")
	second := o.EvaluateResearcher(context.Background(), "", history, "Dr. Example")

	require.True(t, reflect.DeepEqual(first, second))
	assert.Equal(t, first.Unified(), second.Unified())
}
