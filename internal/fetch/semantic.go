// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"context"
	"encoding/json"

	"github.com/pdiddy/deeplens/internal/httputil"
	"github.com/pdiddy/deeplens/pkg/types"
)

const semanticFields = "title,abstract,authors"

// Semantic Scholar Graph API JSON structures.
type semanticPaper struct {
	PaperID  string           `json:"paperId"`
	Title    string           `json:"title"`
	Abstract string           `json:"abstract"`
	Authors  []semanticAuthor `json:"authors"`
}

type semanticAuthor struct {
	Name string `json:"name"`
}

// fetchSemanticScholar looks a paper up by its Graph API ID. The API
// serves abstracts, not full text. An API key raises rate limits but is
// not required.
func (f *Fetcher) fetchSemanticScholar(ctx context.Context, paperID string) (*types.ContentRecord, error) {
	apiURL := semanticAPIBase + paperID + "?fields=" + semanticFields

	var headers map[string]string
	if f.cfg.SemanticScholarAPIKey != "" {
		headers = map[string]string{"x-api-key": f.cfg.SemanticScholarAPIKey}
	}
	body, err := httputil.GetWithHeaders(ctx, f.client, apiURL, f.cfg.UserAgent, headers, 0)
	if err != nil {
		return nil, fetchErr("Semantic Scholar lookup for "+paperID, err)
	}

	var paper semanticPaper
	if err := json.Unmarshal(body, &paper); err != nil {
		return nil, fetchErr("parsing Semantic Scholar response", err)
	}

	rec := &types.ContentRecord{
		Title:     paper.Title,
		Abstract:  paper.Abstract,
		Content:   paper.Abstract,
		Source:    types.SourceSemanticScholar,
		SourceURL: "https://www.semanticscholar.org/paper/" + paperID,
	}
	for _, a := range paper.Authors {
		rec.Authors = append(rec.Authors, a.Name)
	}
	return rec, nil
}
