// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/deeplens/pkg/types"
)

func TestRenderText_SectionOrder(t *testing.T) {
	result := &types.WorkflowResult{
		Workflow:  "explain-term",
		Category:  types.CategoryOK,
		StepOrder: []string{"buzzword"},
		Steps: map[string]types.StepOutput{
			"buzzword": {
				Status: types.StepOK,
				Fields: map[string]string{
					"explanation": "A plain explanation.",
					"origin":      "Marketing decks.",
					"verdict":     "Rebranded.",
				},
			},
		},
	}

	var sb strings.Builder
	renderText(&sb, result)
	out := sb.String()

	expIdx := strings.Index(out, "== Explanation ==")
	orgIdx := strings.Index(out, "== Origin ==")
	verIdx := strings.Index(out, "== Verdict ==")
	require.True(t, expIdx >= 0 && orgIdx >= 0 && verIdx >= 0, "all sections rendered:\n%s", out)
	assert.Less(t, expIdx, orgIdx)
	assert.Less(t, orgIdx, verIdx)
}

func TestRenderText_HintOnly(t *testing.T) {
	result := &types.WorkflowResult{
		Workflow: "understand-paper",
		Category: types.CategoryFetchFailed,
		Steps:    map[string]types.StepOutput{},
		Hint:     "Could not retrieve the linked content.",
	}

	var sb strings.Builder
	renderText(&sb, result)
	assert.Equal(t, "Could not retrieve the linked content.\n", sb.String())
}

func TestReadPublications(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "pubs.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`[{"title":"A","year":2020,"cited_by":10}]`), 0o644))

	yamlPath := filepath.Join(dir, "pubs.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("- title: B\n  year: 2021\n"), 0o644))

	jsonPubs, err := readPublications(jsonPath)
	require.NoError(t, err)
	require.Len(t, jsonPubs, 1)
	assert.Equal(t, "A", jsonPubs[0].Title)
	assert.Equal(t, 2020, jsonPubs[0].Year)
	assert.Equal(t, 10, jsonPubs[0].CitedBy)

	yamlPubs, err := readPublications(yamlPath)
	require.NoError(t, err)
	require.Len(t, yamlPubs, 1)
	assert.Equal(t, "B", yamlPubs[0].Title)

	_, err = readPublications(filepath.Join(dir, "pubs.txt"))
	assert.Error(t, err)
}

func TestFieldTitle(t *testing.T) {
	tests := []struct{ in, want string }{
		{"core_idea", "Core Idea"},
		{"strengths_blind_spots", "Strengths Blind Spots"},
		{"caveat", "Caveat"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, fieldTitle(tt.in))
	}
}
