// Package fetch downloads the Flash client binary the AVM2 extractor
// (internal/avm2) parses. Kept as a thin HTTP collaborator so the core
// extraction component never touches the network directly.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

const defaultClientURL = "https://realmofthemadgodhrd.appspot.com/client"

// Client downloads a small blob over HTTP, resolving redirects and
// reporting the final URL reached (used by paramcache to detect when the
// client binary has moved to a new build).
type Client struct {
	httpClient *http.Client
	url        string
}

// New returns a fetch client for the given URL, or the well-known ROTMG
// client download URL if url is empty.
func New(url string) *Client {
	if url == "" {
		url = defaultClientURL
	}
	return &Client{httpClient: http.DefaultClient, url: url}
}

// Result is a downloaded blob plus the URL it was ultimately served from.
type Result struct {
	URL  string
	Body []byte
}

// Fetch downloads the configured URL.
func (c *Client) Fetch(ctx context.Context) (Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return Result{}, fmt.Errorf("fetch: building request for %s: %w", c.url, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("fetch: requesting %s: %w", c.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("fetch: %s returned status %s", c.url, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("fetch: reading body from %s: %w", c.url, err)
	}

	finalURL := c.url
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}

	return Result{URL: finalURL, Body: body}, nil
}
