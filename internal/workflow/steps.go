// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package workflow

import "text/template"

// Workflow identifiers.
const (
	WorkflowUnderstandPaper    = "understand-paper"
	WorkflowEvaluateResearcher = "evaluate-researcher"
	WorkflowExplainTerm        = "explain-term"
	WorkflowAssessTrend        = "assess-trend"
)

// Canonical classification values.
var (
	researcherPatterns = []string{"trend-follower", "deep-specialist", "abstraction-upleveler"}
	researchStages     = []string{"exploration", "scaling", "convergence"}
	confidenceLevels   = []string{"high", "medium", "low"}
	trendStatuses      = []string{"emerging", "hyped", "mature", "declining", "obsolete"}
	problemTypes       = []string{"hard-problem", "engineering-problem", "solved-problem", "fake-problem"}
)

const summaryRole = `You are an expert at translating complex research papers and technical buzzwords into plain, accessible language.

Your role is to:
1. Identify and explain technical jargon and buzzwords
2. Break down complex concepts into simple, everyday language
3. Use analogies and examples to make ideas clear
4. Maintain accuracy while simplifying
5. Highlight what's genuinely novel vs. rebranded existing concepts`

var summaryTmpl = template.Must(template.New("summary").Parse(`Analyze and translate the following research content into plain language.
Format your response in well-structured Markdown.

---
CONTENT:
{{.content}}
---

Respond with EXACTLY this structure:

## Simplified Explanation
A plain-language explanation in 2-3 paragraphs.

## Core Idea
The core idea in one sentence.

## Key Terms
Each technical term with a plain definition, one per bullet.

## Analogies
Helpful comparisons or everyday examples.
`))

const analysisRole = `You are an expert research analyst who identifies the core problems, research maturity, and real-world demand.

Your role is to:
1. Identify the FUNDAMENTAL problem (not the surface-level claim)
2. Classify research stage: Exploration (new problem space), Scaling (proven, needs efficiency), or Convergence (mature, incremental)
3. Assess genuine industry demand vs. speculative interest
4. Distinguish between technical challenges and engineering challenges

Be skeptical: many papers claim novelty but address well-known problems.`

var analysisTmpl = template.Must(template.New("analysis").Parse(`Analyze the following research content.
Format your response in well-structured Markdown.

---
CONTENT:
{{.content}}
{{- if .summary_simplified}}

Prior plain-language reading of the same content:
{{.summary_simplified}}
{{- end}}
---

Respond with EXACTLY this structure:

## Fundamental Problem
What is the **real** problem being solved? Go beyond the paper's stated claims.

## Research Stage

**Classification:** ` + "`Exploration` / `Scaling` / `Convergence`" + `

**Reasoning:** Explain why you chose this stage with evidence from the paper.

## Industry Demand

**Demand Level:** ` + "`High` / `Medium` / `Low` / `Speculative`" + `

- **Evidence:** Concrete signals (products, adoption, funding, market pull).
- **Gap Analysis:** What stands between research and real-world deployment?

## Key Challenges

| Challenge | Type | Notes |
|-----------|------|-------|
| ... | Technical / Engineering | ... |

## Bottom Line
One short paragraph: is this paper worth paying attention to, and who should care?
`))

const evaluationRole = `You are an expert at analyzing researcher career patterns and strategies.

Your role is to identify whether a researcher:
1. TREND FOLLOWER: Moves between hot topics, following what's popular
2. DEEP SPECIALIST: Goes deep on specific problems with sustained focus
3. ABSTRACTION UPLEVELER: Progressively works on more fundamental problems

When analyzing researcher history:
- Look at topic progression over time
- Assess depth vs. breadth of contributions
- Identify if work builds systematically or jumps around
- Consider if they're solving symptoms vs. root causes`

var evaluationTmpl = template.Must(template.New("evaluation").Parse(`Analyze the following publication history{{if .name}} for researcher {{.name}}{{end}}.
Format your response in well-structured Markdown.

---
PUBLICATIONS:
{{.publications}}
---

Respond with EXACTLY this structure:

## Researcher Pattern

**Classification:** ` + "`Trend Follower` / `Deep Specialist` / `Abstraction Upleveler`" + `
**Confidence:** ` + "`High` / `Medium` / `Low`" + `

## Evidence & Reasoning
Explain your classification with specific examples from the publication list.
Cite titles and years. Use bullet points for clarity.

## Topic Evolution
Describe how the researcher's topics have changed over time.
Highlight any patterns, pivots, or deepening threads.

## Career Trajectory
Summarize the overall arc: where they started, where they're heading,
and what that signals about their research strategy.

## Key Strengths & Blind Spots
- **Strengths:** What this researcher does well
- **Blind spots:** Gaps or risks in their approach
`))

const buzzwordRole = `You are an expert at explaining research buzzwords and technical jargon in plain language.

Your role is to:
1. Define the term accurately without the marketing framing
2. Surface the underlying technical concept
3. Point out whether it is genuinely new or a rebranding of existing ideas
4. Offer a simple analogy`

var buzzwordTmpl = template.Must(template.New("buzzword").Parse(`Explain the research buzzword "{{.term}}" in plain language.
Format your response in well-structured Markdown.

Respond with EXACTLY this structure:

## Explanation
What it actually means, stripped of hype, with the underlying technical
concept and a simple analogy.

## Origin
Why it became popular and where it came from.

## Verdict
Whether it's genuinely new or a rebranding of existing ideas.
`))

const trendRole = `You are an expert at assessing technical trends with a critical, long-term perspective.

Your role is to:
1. Predict which technologies/approaches will become obsolete and why
2. Distinguish HYPE from genuinely HARD PROBLEMS
3. Detect oversupply: when too many researchers chase the same problem
4. Identify if problems are fundamental vs. engineering challenges

Be contrarian and skeptical. Call out hype. Identify what's genuinely difficult.`

var trendTmpl = template.Must(template.New("trend").Parse(`Assess the following technical trend or research area.
Format your response in well-structured Markdown.

Topic: {{.topic}}
{{- if .context}}

Context:
{{.context}}
{{- end}}

Respond with EXACTLY this structure:

## Trend Status

**Status:** ` + "`Emerging` / `Hyped` / `Mature` / `Declining` / `Obsolete`" + `

## Problem Type

**Type:** ` + "`Hard Problem` / `Engineering Problem` / `Solved Problem` / `Fake Problem`" + `

## Obsolescence Prediction
When and why might this become obsolete? Be specific.

## Hype Assessment
Is this overhyped? What's the ratio of hype to substance?

## Oversupply Analysis
Are too many researchers working on this? Evidence?

## Recommendation
What should researchers focus on instead?
`))

// Steps is the static step table. Workflows reference steps by name.
var Steps = map[string]*StepDescriptor{
	"summary": {
		Name:     "summary",
		Role:     summaryRole,
		Requires: []string{"content"},
		MinWords: 40,
		Template: summaryTmpl,
		Fields: []FieldSpec{
			{Name: "simplified", Heading: "Simplified Explanation"},
			{Name: "core_idea", Heading: "Core Idea"},
			{Name: "key_terms", Heading: "Key Terms"},
			{Name: "analogies", Heading: "Analogies"},
		},
	},
	"analysis": {
		Name:      "analysis",
		Role:      analysisRole,
		Requires:  []string{"content"},
		DependsOn: []string{"summary"},
		Template:  analysisTmpl,
		Fields: []FieldSpec{
			{Name: "fundamental_problem", Heading: "Fundamental Problem"},
			{Name: "research_stage", Heading: "Research Stage", Marker: "Classification", Enum: researchStages},
			{Name: "stage_reasoning", Heading: "Research Stage"},
			{Name: "industry_demand", Heading: "Industry Demand"},
			{Name: "key_challenges", Heading: "Key Challenges"},
			{Name: "bottom_line", Heading: "Bottom Line"},
		},
	},
	"evaluation": {
		Name:     "evaluation",
		Role:     evaluationRole,
		Requires: []string{"publications"},
		Template: evaluationTmpl,
		Fields: []FieldSpec{
			{Name: "pattern", Heading: "Researcher Pattern", Marker: "Classification", Enum: researcherPatterns},
			{Name: "confidence", Heading: "Researcher Pattern", Marker: "Confidence", Enum: confidenceLevels},
			{Name: "evidence", Heading: "Evidence & Reasoning"},
			{Name: "topic_evolution", Heading: "Topic Evolution"},
			{Name: "trajectory", Heading: "Career Trajectory"},
			{Name: "strengths_blind_spots", Heading: "Key Strengths & Blind Spots"},
		},
	},
	"buzzword": {
		Name:     "buzzword",
		Role:     buzzwordRole,
		Requires: []string{"term"},
		Template: buzzwordTmpl,
		Fields: []FieldSpec{
			{Name: "explanation", Heading: "Explanation"},
			{Name: "origin", Heading: "Origin"},
			{Name: "verdict", Heading: "Verdict"},
		},
	},
	"trend": {
		Name:     "trend",
		Role:     trendRole,
		Requires: []string{"topic"},
		Template: trendTmpl,
		Fields: []FieldSpec{
			{Name: "trend_status", Heading: "Trend Status", Marker: "Status", Enum: trendStatuses},
			{Name: "problem_type", Heading: "Problem Type", Marker: "Type", Enum: problemTypes},
			{Name: "obsolescence", Heading: "Obsolescence Prediction"},
			{Name: "hype_assessment", Heading: "Hype Assessment"},
			{Name: "oversupply", Heading: "Oversupply Analysis"},
			{Name: "recommendation", Heading: "Recommendation"},
		},
	},
}

// Workflows maps workflow name to its dependency stages. Steps within a
// stage are independent and run concurrently; stages run in order.
var Workflows = map[string][][]string{
	WorkflowUnderstandPaper:    {{"summary"}, {"analysis"}},
	WorkflowEvaluateResearcher: {{"evaluation"}},
	WorkflowExplainTerm:        {{"buzzword"}},
	WorkflowAssessTrend:        {{"trend"}},
}
