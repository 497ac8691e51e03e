// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch resolves paper and researcher-profile links into
// normalized content records. Each source type has its own extraction
// strategy; every failure mode collapses into a single FetchError so
// callers can fall back to user-supplied text uniformly.
package fetch

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/deeplens/pkg/types"
)

// FetchError signals that automated content acquisition failed. The
// reason is a human-readable string; callers do not branch on failure
// cause because every cause is handled the same way (ask the user for
// the content directly).
type FetchError struct {
	Reason string
	Err    error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch failed: %s: %v", e.Reason, e.Err)
	}
	return "fetch failed: " + e.Reason
}

func (e *FetchError) Unwrap() error { return e.Err }

// fetchErr wraps a cause into a FetchError.
func fetchErr(reason string, err error) *FetchError {
	return &FetchError{Reason: reason, Err: err}
}

// Fetcher resolves URLs into content records. One outbound request per
// source lookup, no caching across calls.
type Fetcher struct {
	client *http.Client
	cfg    types.FetchConfig
	log    *zap.Logger
}

// NewFetcher builds a Fetcher. A nil logger disables diagnostics.
func NewFetcher(client *http.Client, cfg types.FetchConfig, log *zap.Logger) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "deeplens/0.1"
	}
	if cfg.MaxContentChars <= 0 {
		cfg.MaxContentChars = 30000
	}
	if cfg.MaxPageChars <= 0 {
		cfg.MaxPageChars = 15000
	}
	if cfg.ScholarPageSize <= 0 {
		cfg.ScholarPageSize = 100
	}
	return &Fetcher{client: client, cfg: cfg, log: log}
}

// FetchPaper resolves a paper link or identifier into a ContentRecord.
// Inputs that classify as raw text or as a researcher profile are
// rejected here; the orchestrator routes those separately.
func (f *Fetcher) FetchPaper(ctx context.Context, input string) (*types.ContentRecord, error) {
	kind, id := Classify(input)
	f.log.Debug("classified paper input", zap.String("kind", kind.String()), zap.String("id", id))

	var (
		rec *types.ContentRecord
		err error
	)
	switch kind {
	case KindArxiv:
		rec, err = f.fetchArxiv(ctx, id, Variant(input))
	case KindSemanticScholar:
		rec, err = f.fetchSemanticScholar(ctx, id)
	case KindDOI:
		rec, err = f.fetchDOI(ctx, id)
	case KindWeb:
		rec, err = f.fetchGenericPage(ctx, id)
	case KindScholarProfile:
		return nil, fetchErr("input is a researcher profile, not a paper", nil)
	default:
		return nil, fetchErr("input is not a recognized URL", nil)
	}
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(rec.Content) == "" {
		return nil, fetchErr("no analyzable content could be extracted from "+input, nil)
	}
	f.log.Info("fetched paper content",
		zap.String("source", string(rec.Source)),
		zap.Int("content_chars", len(rec.Content)))
	return rec, nil
}

// FetchProfile resolves a researcher-profile URL into a profile with an
// ordered publication list.
func (f *Fetcher) FetchProfile(ctx context.Context, input string) (*types.ResearcherProfile, error) {
	kind, u := Classify(input)
	if kind != KindScholarProfile {
		return nil, fetchErr("not a researcher profile URL: "+input, nil)
	}
	return f.fetchScholarProfile(ctx, u)
}

// truncate caps text at max characters, appending a marker when content
// was dropped.
func truncate(text string, max int) string {
	if max <= 0 || len(text) <= max {
		return text
	}
	return text[:max] + "\n\n[... content truncated ...]"
}
