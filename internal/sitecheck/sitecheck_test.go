// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package sitecheck

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"sitespark/internal/models"
)

func testBusiness() *models.Business {
	return &models.Business{Name: "Joe's Pizza", City: "Austin", State: "TX"}
}

// searchServer fakes the Programmable Search endpoint with fixed items.
func searchServer(t *testing.T, items []searchItem) *Checker {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") == "" || r.URL.Query().Get("cx") == "" {
			t.Error("request missing key or cx parameter")
		}
		if q := r.URL.Query().Get("q"); q == "" {
			t.Error("request missing q parameter")
		}
		json.NewEncoder(w).Encode(searchResponse{Items: items})
	}))
	t.Cleanup(srv.Close)

	c := New("test-key", "test-cx")
	c.baseURL = srv.URL
	return c
}

func TestNewUnconfigured(t *testing.T) {
	if c := New("", "cx"); c != nil {
		t.Error("missing API key should produce a nil checker")
	}
	if c := New("key", ""); c != nil {
		t.Error("missing engine ID should produce a nil checker")
	}
	var c *Checker
	if c.Enabled() {
		t.Error("nil checker should report disabled")
	}
	url, err := c.Lookup(context.Background(), testBusiness())
	if err != nil || url != "" {
		t.Errorf("nil checker Lookup = (%q, %v), want empty and nil", url, err)
	}
}

func TestLookupFindsOwnSite(t *testing.T) {
	c := searchServer(t, []searchItem{
		{Title: "Joe's Pizza | Austin TX", Link: "https://joespizzaaustin.com", Snippet: "Best pizza downtown."},
	})

	url, err := c.Lookup(context.Background(), testBusiness())
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if url != "https://joespizzaaustin.com" {
		t.Errorf("Lookup = %q, want the business site", url)
	}
}

func TestLookupIgnoresDirectories(t *testing.T) {
	c := searchServer(t, []searchItem{
		{Title: "Joe's Pizza - Yelp", Link: "https://www.yelp.com/biz/joes-pizza-austin", Snippet: "Joe's Pizza reviews"},
		{Title: "Joe's Pizza | Facebook", Link: "https://facebook.com/joespizza", Snippet: "Joe's Pizza on Facebook"},
		{Title: "Joe's Pizza - MapQuest", Link: "https://mapquest.com/joes", Snippet: "Joe's Pizza directions"},
	})

	url, err := c.Lookup(context.Background(), testBusiness())
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if url != "" {
		t.Errorf("Lookup = %q; directory listings should not count as a website", url)
	}
}

func TestLookupRequiresNameMatch(t *testing.T) {
	c := searchServer(t, []searchItem{
		{Title: "Tony's Pasta House", Link: "https://tonyspasta.com", Snippet: "Italian dining in Austin"},
	})

	url, err := c.Lookup(context.Background(), testBusiness())
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if url != "" {
		t.Errorf("Lookup = %q; unrelated result should not match", url)
	}
}

func TestLookupSkipsDirectoryThenMatches(t *testing.T) {
	c := searchServer(t, []searchItem{
		{Title: "Joe's Pizza - Yelp", Link: "https://yelp.com/biz/joes-pizza", Snippet: "Joe's Pizza reviews"},
		{Title: "Joe's Pizza Austin", Link: "https://joespizza.net", Snippet: "Order from Joe's Pizza online"},
	})

	url, err := c.Lookup(context.Background(), testBusiness())
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if url != "https://joespizza.net" {
		t.Errorf("Lookup = %q, want the non-directory match", url)
	}
}

func TestLookupAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":429}}`, http.StatusTooManyRequests)
	}))
	t.Cleanup(srv.Close)

	c := New("test-key", "test-cx")
	c.baseURL = srv.URL

	if _, err := c.Lookup(context.Background(), testBusiness()); err == nil {
		t.Error("API error status should surface as an error")
	}
}

func TestIsDirectory(t *testing.T) {
	tests := []struct {
		link string
		want bool
	}{
		{"https://www.yelp.com/biz/x", true},
		{"https://m.facebook.com/x", true},
		{"https://joespizza.com", false},
		{"https://yelp.com.evil.example", false},
		{"://bad url", true},
	}
	for _, tt := range tests {
		if got := isDirectory(tt.link); got != tt.want {
			t.Errorf("isDirectory(%q) = %v, want %v", tt.link, got, tt.want)
		}
	}
}
