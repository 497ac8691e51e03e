// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"context"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/pdiddy/deeplens/internal/httputil"
	"github.com/pdiddy/deeplens/pkg/types"
)

// fetchScholarProfile scrapes a researcher's publication list from a
// Google Scholar profile page. Profile pages do not expose abstracts;
// titles and years are enough for trajectory analysis.
func (f *Fetcher) fetchScholarProfile(ctx context.Context, profileURL string) (*types.ResearcherProfile, error) {
	// Request a full publication page in one fetch.
	if !strings.Contains(profileURL, "cstart") && !strings.Contains(profileURL, "pagesize") {
		sep := "?"
		if strings.Contains(profileURL, "?") {
			sep = "&"
		}
		profileURL += sep + "cstart=0&pagesize=" + strconv.Itoa(f.cfg.ScholarPageSize)
	}

	body, err := httputil.Get(ctx, f.client, profileURL, f.cfg.UserAgent, 0)
	if err != nil {
		return nil, fetchErr("could not retrieve profile page", err)
	}
	page := string(body)

	doc, err := html.Parse(strings.NewReader(page))
	if err != nil {
		return nil, fetchErr("could not parse profile page", err)
	}

	if strings.Contains(page, "Please show you") || findByAttr(doc, "form", "id", "gs_captcha_f") != nil {
		return nil, fetchErr("the profile host returned a CAPTCHA; try again later or provide publications manually", nil)
	}

	profile := &types.ResearcherProfile{SourceURL: profileURL}

	if n := findByAttr(doc, "div", "id", "gsc_prf_in"); n != nil {
		profile.Name = strings.TrimSpace(textContent(n))
	}
	if n := findByAttr(doc, "div", "class", "gsc_prf_il"); n != nil {
		profile.Affiliation = strings.TrimSpace(textContent(n))
	}

	eachElement(doc, func(n *html.Node) bool {
		return n.Data == "tr" && hasAttrValue(n, "class", "gsc_a_tr")
	}, func(row *html.Node) {
		pub := parsePublicationRow(row)
		if pub.Title != "" {
			profile.Publications = append(profile.Publications, pub)
		}
	})

	if len(profile.Publications) == 0 {
		return nil, fetchErr("no publications found; the profile may be empty or restricted", nil)
	}

	f.log.Info("fetched researcher profile",
		zap.String("name", profile.Name),
		zap.Int("publications", len(profile.Publications)))
	return profile, nil
}

// parsePublicationRow extracts one publication entry from a profile
// table row.
func parsePublicationRow(row *html.Node) types.Publication {
	var pub types.Publication

	if n := findByAttr(row, "a", "class", "gsc_a_at"); n != nil {
		pub.Title = strings.TrimSpace(textContent(n))
	}

	// Year lives in a span inside the year cell; older page layouts use
	// a second class on the span itself.
	if n := findByAttr(row, "span", "class", "gsc_a_hc"); n != nil {
		pub.Year = parseYear(textContent(n))
	}
	if pub.Year == 0 {
		if cell := findByAttr(row, "td", "class", "gsc_a_y"); cell != nil {
			if n := findElement(cell, func(n *html.Node) bool { return n.Data == "span" }); n != nil {
				pub.Year = parseYear(textContent(n))
			}
		}
	}

	if n := findByAttr(row, "a", "class", "gsc_a_ac"); n != nil {
		if v, err := strconv.Atoi(strings.TrimSpace(textContent(n))); err == nil {
			pub.CitedBy = v
		}
	}
	return pub
}

func parseYear(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return v
}
