// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package workflow

import (
	"strings"
)

// NotIdentified is the placeholder value for declared fields the model
// response did not contain. Callers can rely on every declared field
// being present.
const NotIdentified = "not identified"

// FieldSpec declares one output field of a step and where to find it in
// the generated Markdown.
type FieldSpec struct {
	// Name is the field name in the merged result.
	Name string

	// Heading is the Markdown section heading carrying the field.
	// Matching is tolerant: case, punctuation, and emoji are ignored.
	Heading string

	// Marker, when set, extracts the value from a "**Marker:**" line
	// inside the section instead of the section body. The section body
	// is searched first, then the whole response.
	Marker string

	// Enum, when set, restricts the value to one of the canonical
	// values; unrecognizable values fall back to the placeholder.
	Enum []string
}

// ParseFields maps a generated Markdown response onto the declared
// fields. The grammar is tolerant: headings match by normalized text,
// inline markers are searched section-first then response-wide, and a
// missing field yields the placeholder rather than an error.
func ParseFields(raw string, specs []FieldSpec) map[string]string {
	sections := splitSections(raw)
	out := make(map[string]string, len(specs))

	for _, spec := range specs {
		body, found := sections[normalizeHeading(spec.Heading)]

		var value string
		switch {
		case spec.Marker != "":
			value = extractMarker(body, spec.Marker)
			if value == "" {
				value = extractMarker(raw, spec.Marker)
			}
		case found:
			value = strings.TrimSpace(body)
		}

		if len(spec.Enum) > 0 {
			value = canonicalize(value, spec.Enum)
		}
		if value == "" {
			value = NotIdentified
		}
		out[spec.Name] = value
	}
	return out
}

// splitSections breaks Markdown into heading → body. Both ## and ###
// headings open a section; text before the first heading is keyed "".
func splitSections(raw string) map[string]string {
	sections := make(map[string]string)
	current := ""
	var body []string

	flush := func() {
		text := strings.TrimSpace(strings.Join(body, "\n"))
		if text != "" {
			if prev, ok := sections[current]; ok && prev != "" {
				text = prev + "\n" + text
			}
			sections[current] = text
		}
		body = nil
	}

	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "## ") || strings.HasPrefix(trimmed, "### ") {
			flush()
			current = normalizeHeading(strings.TrimLeft(trimmed, "# "))
			continue
		}
		body = append(body, line)
	}
	flush()
	return sections
}

// normalizeHeading lowercases a heading and strips everything except
// letters, digits, and single spaces, so "Key Strengths & Blind Spots"
// and "key strengths blind spots" compare equal.
func normalizeHeading(h string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(h) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '\t' || r == '-' || r == '_':
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// extractMarker finds a "**Marker:**" line and returns the remainder of
// that line, stripped of backticks and surrounding whitespace.
func extractMarker(text, marker string) string {
	want := normalizeHeading(marker)
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "**") {
			continue
		}
		rest := strings.TrimPrefix(trimmed, "**")
		idx := strings.Index(rest, ":**")
		if idx < 0 {
			continue
		}
		if normalizeHeading(rest[:idx]) != want {
			continue
		}
		value := strings.TrimSpace(rest[idx+len(":**"):])
		return strings.TrimSpace(strings.ReplaceAll(value, "`", ""))
	}
	return ""
}

// canonicalize maps a free-form enum value (e.g. "Deep Specialist") onto
// its canonical hyphenated form, or the placeholder when unrecognizable.
// Values carrying alternatives ("a / b") never match.
func canonicalize(value string, enum []string) string {
	slug := strings.Join(strings.Fields(normalizeHeading(value)), "-")
	for _, canonical := range enum {
		if slug == strings.Join(strings.Fields(normalizeHeading(canonical)), "-") {
			return canonical
		}
	}
	return NotIdentified
}
