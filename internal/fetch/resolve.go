// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"net/url"
	"regexp"
	"strings"
)

// InputKind classifies a user-supplied link or identifier.
type InputKind int

const (
	KindRawText InputKind = iota
	KindArxiv
	KindSemanticScholar
	KindDOI
	KindScholarProfile
	KindWeb
)

func (k InputKind) String() string {
	switch k {
	case KindArxiv:
		return "arxiv"
	case KindSemanticScholar:
		return "semantic_scholar"
	case KindDOI:
		return "doi"
	case KindScholarProfile:
		return "scholar_profile"
	case KindWeb:
		return "web"
	default:
		return "raw_text"
	}
}

// ArxivVariant is the arXiv URL path kind. It controls whether the
// fetcher attempts the full-text HTML rendering.
type ArxivVariant string

const (
	VariantAbs  ArxivVariant = "abs"
	VariantPDF  ArxivVariant = "pdf"
	VariantHTML ArxivVariant = "html"
)

// Base URLs for source resolution. Declared as vars so tests can
// substitute httptest servers.
var (
	arxivAPIBase    = "https://export.arxiv.org/api/query"
	arxivHTMLBase   = "https://arxiv.org/html/"
	arxivCanonBase  = "https://arxiv.org/abs/"
	crossrefAPIBase = "https://api.crossref.org/works/"
	semanticAPIBase = "https://api.semanticscholar.org/graph/v1/paper/"
	doiCanonBase    = "https://doi.org/"
)

// arxivURLPattern matches arXiv IDs inside abs/pdf/html URLs:
// "arxiv.org/abs/2301.12345", "/pdf/2301.12345v2", "/html/2301.12345".
var arxivURLPattern = regexp.MustCompile(`arxiv\.org/(abs|pdf|html)/(\d{4}\.\d{4,5}(?:v\d+)?)`)

// arxivIDPattern matches bare arXiv IDs: "2301.07041", "arXiv:2301.07041v2".
var arxivIDPattern = regexp.MustCompile(`^(?:arXiv:)?(\d{4}\.\d{4,5}(?:v\d+)?)$`)

// doiPattern matches bare DOIs: "10.1145/1234567.1234568".
var doiPattern = regexp.MustCompile(`^10\.\d{4,9}/[^\s]+$`)

// semanticPaperPattern extracts the hex paper ID from Semantic Scholar
// paper URLs, with or without a title slug segment.
var semanticPaperPattern = regexp.MustCompile(`semanticscholar\.org/paper/(?:[^/]*/)?([a-f0-9]{8,})`)

// IsURL reports whether the input looks like a link rather than pasted text.
func IsURL(input string) bool {
	input = strings.TrimSpace(input)
	return strings.HasPrefix(input, "http://") ||
		strings.HasPrefix(input, "https://") ||
		strings.HasPrefix(input, "www.")
}

// Classify determines the input kind and returns the normalized
// identifier: the bare arXiv ID, Semantic Scholar paper ID, DOI, or the
// URL itself for profile and generic web inputs. Inputs that are not
// recognized URLs classify as KindRawText, which is not an error; the
// caller treats them as literal content.
func Classify(input string) (InputKind, string) {
	input = strings.TrimSpace(input)

	if m := arxivIDPattern.FindStringSubmatch(input); m != nil {
		return KindArxiv, m[1]
	}
	if doiPattern.MatchString(input) {
		return KindDOI, input
	}

	if !IsURL(input) {
		return KindRawText, input
	}
	if strings.HasPrefix(input, "www.") {
		input = "https://" + input
	}

	u, err := url.Parse(input)
	if err != nil {
		return KindRawText, input
	}
	host := strings.ToLower(u.Hostname())

	switch {
	case strings.HasSuffix(host, "arxiv.org"):
		if m := arxivURLPattern.FindStringSubmatch(input); m != nil {
			return KindArxiv, m[2]
		}
		return KindWeb, input
	case strings.HasSuffix(host, "semanticscholar.org"):
		if m := semanticPaperPattern.FindStringSubmatch(input); m != nil {
			return KindSemanticScholar, m[1]
		}
		return KindWeb, input
	case strings.HasSuffix(host, "doi.org"):
		doi := strings.TrimPrefix(u.Path, "/")
		if doi != "" {
			return KindDOI, doi
		}
		return KindWeb, input
	case strings.Contains(host, "scholar.google") && strings.Contains(u.Path, "citations"):
		return KindScholarProfile, input
	default:
		return KindWeb, input
	}
}

// Variant returns the arXiv URL path kind for an input already
// classified as KindArxiv. Bare IDs count as abstract links.
func Variant(input string) ArxivVariant {
	if m := arxivURLPattern.FindStringSubmatch(input); m != nil {
		switch m[1] {
		case "pdf":
			return VariantPDF
		case "html":
			return VariantHTML
		}
	}
	return VariantAbs
}
