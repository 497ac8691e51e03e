// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package workflow

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pdiddy/deeplens/pkg/types"
)

var (
	pubYearPattern   = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	pubBulletPattern = regexp.MustCompile(`^(\d+[.)]|[-*•]|\[\d+\])\s*`)
)

// ExtractPublications parses a free-form publication listing into
// records, one entry per non-empty line. The last four-digit year on a
// line becomes the publication year (listings put the year after the
// title); the rest of the line is the title. Lines with no usable title
// are dropped. Extraction is best-effort: it accepts pasted CVs and
// profile pages, not a strict format.
func ExtractPublications(text string) []types.Publication {
	var pubs []types.Publication
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = pubBulletPattern.ReplaceAllString(line, "")
		if line == "" || strings.HasSuffix(line, ":") {
			continue
		}

		year := 0
		if matches := pubYearPattern.FindAllString(line, -1); len(matches) > 0 {
			match := matches[len(matches)-1]
			year, _ = strconv.Atoi(match)
			idx := strings.LastIndex(line, match)
			line = line[:idx] + line[idx+len(match):]
		}

		title := strings.Trim(line, " \t-–—.,;()[]")
		title = strings.Join(strings.Fields(title), " ")
		if title == "" {
			continue
		}
		pubs = append(pubs, types.Publication{Title: title, Year: year})
	}
	return pubs
}
