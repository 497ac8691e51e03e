// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"context"
	"strings"

	"golang.org/x/net/html"

	"github.com/pdiddy/deeplens/internal/httputil"
	"github.com/pdiddy/deeplens/pkg/types"
)

// skippedElements are dropped wholesale during text extraction.
var skippedElements = map[string]bool{
	"script": true, "style": true, "noscript": true, "iframe": true,
	"svg": true, "nav": true, "footer": true, "header": true,
}

// fetchGenericPage extracts a best-effort title and body from an
// unrecognized web page.
func (f *Fetcher) fetchGenericPage(ctx context.Context, pageURL string) (*types.ContentRecord, error) {
	body, err := httputil.Get(ctx, f.client, pageURL, f.cfg.UserAgent, 0)
	if err != nil {
		return nil, fetchErr("could not retrieve "+pageURL, err)
	}

	doc, err := html.Parse(strings.NewReader(string(body)))
	if err != nil {
		return nil, fetchErr("could not parse page "+pageURL, err)
	}

	title := pageTitle(doc)
	content := mainText(doc)

	return &types.ContentRecord{
		Title:     title,
		Content:   truncate(content, f.cfg.MaxPageChars),
		Source:    types.SourceWeb,
		SourceURL: pageURL,
	}, nil
}

// pageTitle returns the text of the document's <title> element.
func pageTitle(doc *html.Node) string {
	n := findElement(doc, func(n *html.Node) bool { return n.Data == "title" })
	if n == nil {
		return ""
	}
	return strings.TrimSpace(textContent(n))
}

// mainText returns the text of the page's main content container,
// preferring <article>, then <main>, then <body>.
func mainText(doc *html.Node) string {
	for _, tag := range []string{"article", "main", "body"} {
		n := findElement(doc, func(n *html.Node) bool { return n.Data == tag })
		if n != nil {
			return collapseBlank(textContent(n))
		}
	}
	return ""
}

// findElement returns the first element node matching the predicate,
// depth-first, skipping non-content elements.
func findElement(root *html.Node, match func(*html.Node) bool) *html.Node {
	if root.Type == html.ElementNode {
		if skippedElements[root.Data] {
			return nil
		}
		if match(root) {
			return root
		}
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, match); found != nil {
			return found
		}
	}
	return nil
}

// findByAttr returns the first element with the given tag and attribute value.
func findByAttr(root *html.Node, tag, key, value string) *html.Node {
	return findElement(root, func(n *html.Node) bool {
		return n.Data == tag && hasAttrValue(n, key, value)
	})
}

// eachElement visits every matching element, depth-first, skipping
// non-content elements.
func eachElement(root *html.Node, match func(*html.Node) bool, visit func(*html.Node)) {
	if root.Type == html.ElementNode {
		if skippedElements[root.Data] {
			return
		}
		if match(root) {
			visit(root)
		}
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		eachElement(c, match, visit)
	}
}

// textContent concatenates all text nodes under n, newline-separated by
// block boundaries.
func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode && skippedElements[node.Data] {
			return
		}
		if node.Type == html.TextNode {
			text := strings.TrimSpace(node.Data)
			if text != "" {
				sb.WriteString(text)
				sb.WriteString("\n")
			}
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(sb.String())
}

// hasAttrValue reports whether the node carries the attribute with the
// given value. For class attributes, any whitespace-separated token may match.
func hasAttrValue(n *html.Node, key, value string) bool {
	for _, attr := range n.Attr {
		if attr.Key != key {
			continue
		}
		if attr.Val == value {
			return true
		}
		if key == "class" {
			for _, token := range strings.Fields(attr.Val) {
				if token == value {
					return true
				}
			}
		}
	}
	return false
}

// collapseBlank squeezes runs of blank lines down to one line break.
func collapseBlank(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
