// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"context"
	"encoding/xml"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/pdiddy/deeplens/internal/httputil"
	"github.com/pdiddy/deeplens/pkg/types"
)

// minHTMLContentChars rejects HTML extractions that are too short to be
// a real paper; short pages are usually error placeholders.
const minHTMLContentChars = 500

// arXiv Atom feed XML structures.
type arxivFeed struct {
	Entries []arxivEntry `xml:"entry"`
}

type arxivEntry struct {
	Title   string        `xml:"title"`
	Summary string        `xml:"summary"`
	Authors []arxivAuthor `xml:"author"`
}

type arxivAuthor struct {
	Name string `xml:"name"`
}

// fetchArxiv retrieves paper metadata from the arXiv Atom API. For pdf
// and html links the user likely wants the full text, so the HTML
// rendering is attempted as well; when it is unavailable the abstract
// stands in (not an error — not every paper has an HTML version).
func (f *Fetcher) fetchArxiv(ctx context.Context, arxivID string, variant ArxivVariant) (*types.ContentRecord, error) {
	apiURL := arxivAPIBase + "?id_list=" + arxivID

	body, err := httputil.Get(ctx, f.client, apiURL, f.cfg.UserAgent, 0)
	if err != nil {
		return nil, fetchErr("arXiv API lookup for "+arxivID, err)
	}

	var feed arxivFeed
	if err := xml.Unmarshal(body, &feed); err != nil {
		return nil, fetchErr("parsing arXiv API response", err)
	}
	if len(feed.Entries) == 0 {
		return nil, fetchErr("no arXiv entry found for ID "+arxivID, nil)
	}

	entry := feed.Entries[0]
	rec := &types.ContentRecord{
		Title:     strings.TrimSpace(entry.Title),
		Abstract:  strings.TrimSpace(entry.Summary),
		Source:    types.SourceArxiv,
		SourceURL: arxivCanonBase + arxivID,
	}
	for _, a := range entry.Authors {
		rec.Authors = append(rec.Authors, strings.TrimSpace(a.Name))
	}
	rec.Content = rec.Abstract

	if variant == VariantPDF || variant == VariantHTML {
		if full := f.fetchArxivHTML(ctx, arxivID); full != "" {
			rec.Content = full
			f.log.Info("fetched arXiv full text",
				zap.String("id", arxivID), zap.Int("chars", len(full)))
		} else {
			f.log.Debug("arXiv HTML rendering unavailable, using abstract",
				zap.String("id", arxivID))
		}
	}
	return rec, nil
}

// fetchArxivHTML attempts to pull the full paper text from the arXiv
// HTML rendering. Returns "" when the rendering is missing or unusable.
func (f *Fetcher) fetchArxivHTML(ctx context.Context, arxivID string) string {
	body, err := httputil.Get(ctx, f.client, arxivHTMLBase+arxivID, f.cfg.UserAgent, 0)
	if err != nil {
		return ""
	}

	doc, err := html.Parse(strings.NewReader(string(body)))
	if err != nil {
		return ""
	}

	article := findElement(doc, func(n *html.Node) bool { return n.Data == "article" })
	if article == nil {
		article = findByAttr(doc, "div", "class", "ltx_document")
	}
	if article == nil {
		article = findElement(doc, func(n *html.Node) bool { return n.Data == "main" })
	}
	if article == nil {
		article = findElement(doc, func(n *html.Node) bool { return n.Data == "body" })
	}
	if article == nil {
		return ""
	}

	content := collapseBlank(textContent(article))
	if len(content) < minHTMLContentChars {
		return ""
	}
	return truncate(content, f.cfg.MaxContentChars)
}
