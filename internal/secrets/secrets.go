// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads API keys from a directory of plain-text files.
// Each file holds one secret: the filename is the key name and the file
// contents (trimmed) are the value.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Well-known key files the pipeline reads.
const (
	AnthropicKey       = "anthropic-api-key"
	GeminiKey          = "gemini-api-key"
	SemanticScholarKey = "semantic-scholar-api-key"
)

// Store holds loaded secrets keyed by file name.
type Store map[string]string

// Load reads all files in dir into a Store. A missing directory is not
// an error; Load returns an empty Store. Unreadable files produce a
// warning on stderr but do not abort.
func Load(dir string) (Store, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return Store{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	store := make(Store)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", name, err)
			continue
		}

		value := strings.TrimSpace(string(data))
		if value != "" {
			store[name] = value
		}
	}

	return store, nil
}

// Get returns override when it is non-empty, otherwise the stored value
// for key. Explicit configuration wins over key files.
func (s Store) Get(key, override string) string {
	if override != "" {
		return override
	}
	return s[key]
}

// Keys lists the loaded key names, sorted.
func (s Store) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
