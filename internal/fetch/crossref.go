// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"

	"github.com/pdiddy/deeplens/internal/httputil"
	"github.com/pdiddy/deeplens/pkg/types"
)

// CrossRef API JSON structures.
type crossrefResponse struct {
	Message crossrefWork `json:"message"`
}

type crossrefWork struct {
	Title    []string         `json:"title"`
	Abstract string           `json:"abstract"`
	Author   []crossrefAuthor `json:"author"`
}

type crossrefAuthor struct {
	Given  string `json:"given"`
	Family string `json:"family"`
}

// jatsTagPattern strips JATS/XML markup that CrossRef embeds in abstracts.
var jatsTagPattern = regexp.MustCompile(`</?[^>]+>`)

// fetchDOI resolves a DOI through the CrossRef works API. CrossRef
// rarely exposes full text, so the abstract doubles as content.
func (f *Fetcher) fetchDOI(ctx context.Context, doi string) (*types.ContentRecord, error) {
	body, err := httputil.Get(ctx, f.client, crossrefAPIBase+doi, f.cfg.UserAgent, 0)
	if err != nil {
		return nil, fetchErr("CrossRef lookup for DOI "+doi, err)
	}

	var cr crossrefResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return nil, fetchErr("parsing CrossRef response", err)
	}

	rec := &types.ContentRecord{
		Source:    types.SourceDOI,
		SourceURL: doiCanonBase + doi,
	}
	if len(cr.Message.Title) > 0 {
		rec.Title = cr.Message.Title[0]
	}
	rec.Abstract = strings.TrimSpace(jatsTagPattern.ReplaceAllString(cr.Message.Abstract, " "))
	rec.Abstract = strings.Join(strings.Fields(rec.Abstract), " ")
	rec.Content = rec.Abstract

	for _, a := range cr.Message.Author {
		if name := strings.TrimSpace(a.Given + " " + a.Family); name != "" {
			rec.Authors = append(rec.Authors, name)
		}
	}
	return rec, nil
}
