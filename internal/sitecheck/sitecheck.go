// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package sitecheck looks up whether a business already has a website
// using the Google Programmable Search JSON API. The check is advisory:
// generation must proceed when the check is disabled, skipped, or fails.
package sitecheck

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"sitespark/internal/models"
)

// Checker queries a web search API for an existing business website.
type Checker struct {
	apiKey   string
	engineID string
	baseURL  string
	client   *http.Client
}

// New creates a Checker. Returns nil when credentials are not configured;
// a nil Checker is valid and reports no website for every business.
func New(apiKey, engineID string) *Checker {
	if apiKey == "" || engineID == "" {
		return nil
	}
	return &Checker{
		apiKey:   apiKey,
		engineID: engineID,
		baseURL:  "https://www.googleapis.com/customsearch/v1",
		client:   &http.Client{Timeout: 15 * time.Second},
	}
}

// Enabled reports whether the checker has credentials to query with.
func (c *Checker) Enabled() bool { return c != nil }

// Lookup searches for an existing website for the business and returns
// its URL, or "" when none is found. Directory and social profiles do
// not count as the business's own site.
func (c *Checker) Lookup(ctx context.Context, b *models.Business) (string, error) {
	if c == nil {
		return "", nil
	}

	query := fmt.Sprintf("%q %s website", b.Name, b.Location())

	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("cx", c.engineID)
	params.Set("q", query)
	params.Set("num", "5")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("sitecheck request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("sitecheck http: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("sitecheck read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("sitecheck API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var result searchResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("sitecheck unmarshal: %w", err)
	}

	for _, item := range result.Items {
		if item.Link == "" || isDirectory(item.Link) {
			continue
		}
		if matchesBusiness(item, b) {
			return item.Link, nil
		}
	}
	return "", nil
}

// directoryHosts are aggregators whose listings do not indicate the
// business runs its own site.
var directoryHosts = []string{
	"yelp.com",
	"facebook.com",
	"instagram.com",
	"yellowpages.com",
	"bbb.org",
	"google.com",
	"mapquest.com",
	"tripadvisor.com",
	"linkedin.com",
	"angi.com",
	"thumbtack.com",
	"nextdoor.com",
}

func isDirectory(link string) bool {
	u, err := url.Parse(link)
	if err != nil {
		return true
	}
	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	for _, d := range directoryHosts {
		if host == d || strings.HasSuffix(host, "."+d) {
			return true
		}
	}
	return false
}

// matchesBusiness requires the business name to appear in the result
// title or snippet. Search results for small businesses are noisy and a
// bare domain hit is not enough.
func matchesBusiness(item searchItem, b *models.Business) bool {
	name := strings.ToLower(b.Name)
	haystack := strings.ToLower(item.Title + " " + item.Snippet)
	return strings.Contains(haystack, name)
}

// --- Programmable Search API types ---

type searchItem struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

type searchResponse struct {
	Items []searchItem `json:"items"`
}
