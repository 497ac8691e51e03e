// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// SourceType identifies how a ContentRecord was produced.
type SourceType string

const (
	SourceArxiv           SourceType = "arxiv"
	SourceSemanticScholar SourceType = "semantic_scholar"
	SourceDOI             SourceType = "doi"
	SourceWeb             SourceType = "web"
	SourceRawText         SourceType = "raw-text"
)

// ContentRecord is the normalized representation of fetched or pasted
// source material. It is created once per request and not mutated after.
type ContentRecord struct {
	// Title is the paper or page title. Non-empty for fetched records.
	Title string `json:"title" yaml:"title"`

	// Abstract is the paper abstract when the source provides one.
	Abstract string `json:"abstract,omitempty" yaml:"abstract,omitempty"`

	// Content is the analyzable text: full text when available, else the
	// abstract, else the raw pasted input. Never empty.
	Content string `json:"content" yaml:"content"`

	// Authors lists authors in source order, when known.
	Authors []string `json:"authors,omitempty" yaml:"authors,omitempty"`

	// Source identifies the extraction strategy that produced the record.
	Source SourceType `json:"source" yaml:"source"`

	// SourceURL is the canonical URL the content came from. Empty for raw text.
	SourceURL string `json:"source_url,omitempty" yaml:"source_url,omitempty"`
}

// Publication is one entry in a researcher's publication history.
// Sequences are kept in profile order; chronology matters for
// trajectory analysis.
type Publication struct {
	Title    string `json:"title" yaml:"title"`
	Year     int    `json:"year,omitempty" yaml:"year,omitempty"`
	Abstract string `json:"abstract,omitempty" yaml:"abstract,omitempty"`
	CitedBy  int    `json:"cited_by,omitempty" yaml:"cited_by,omitempty"`
}

// ResearcherProfile is the researcher-specific fetch result: a display
// name plus the ordered publication list scraped from a profile page.
type ResearcherProfile struct {
	Name         string        `json:"name" yaml:"name"`
	Affiliation  string        `json:"affiliation,omitempty" yaml:"affiliation,omitempty"`
	Publications []Publication `json:"publications" yaml:"publications"`
	SourceURL    string        `json:"source_url,omitempty" yaml:"source_url,omitempty"`
}
