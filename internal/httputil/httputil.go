// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across fetch sources.
package httputil

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// DefaultMaxBody bounds response body reads. Pages larger than this are
// truncated at the transport level before extraction ever sees them.
const DefaultMaxBody = 2 << 20 // 2 MiB

// Get issues a single GET request and returns the size-limited response
// body. There is no retry: fetch failures are expected and cheap to
// recover from via the raw-text fallback, so a failed attempt is
// surfaced immediately. Non-2xx statuses are errors.
func Get(ctx context.Context, client *http.Client, url, userAgent string, maxBody int64) ([]byte, error) {
	return GetWithHeaders(ctx, client, url, userAgent, nil, maxBody)
}

// GetWithHeaders is Get with additional request headers (e.g. API keys).
func GetWithHeaders(ctx context.Context, client *http.Client, url, userAgent string, headers map[string]string, maxBody int64) ([]byte, error) {
	if maxBody <= 0 {
		maxBody = DefaultMaxBody
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	return body, nil
}
