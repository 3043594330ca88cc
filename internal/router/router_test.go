// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router tests verify the HTTP routing configuration, middleware
// chains, and the health endpoint.
package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"sitespark/internal/handlers"
)

func TestHealthHandler(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/health", nil)

	healthHandler(w, r)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status: got %d, want 200", resp.StatusCode)
	}

	ct := resp.Header.Get("Content-Type")
	if ct != "application/json" {
		t.Errorf("content-type: got %q, want %q", ct, "application/json")
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field: got %q, want %q", body["status"], "ok")
	}
}

func TestHealthHandlerMethods(t *testing.T) {
	// Health endpoint only accepts GET.
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/health", nil)

	healthHandler(w, r)

	if w.Code != http.StatusOK {
		t.Errorf("GET /health: got %d, want 200", w.Code)
	}
}

// testRouter builds a full router. The handlers' collaborators are nil:
// these tests only reach routes that are rejected by middleware or served
// without touching a handler's dependencies.
func testRouter() http.Handler {
	return New("test-api-key", handlers.NewGenerate(nil), handlers.NewPreview(nil, nil))
}

func TestRouterHealthNoAuth(t *testing.T) {
	w := httptest.NewRecorder()
	testRouter().ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))

	if w.Code != http.StatusOK {
		t.Errorf("GET /health: got %d, want 200", w.Code)
	}
}

func TestRouterAPIRequiresKey(t *testing.T) {
	tests := []struct {
		name string
		path string
		key  string
		want int
	}{
		{"batch without key", "/api/generate", "", http.StatusUnauthorized},
		{"single without key", "/api/generate/6ba7b810-9dad-11d1-80b4-00c04fd430c8", "", http.StatusUnauthorized},
		{"wrong key", "/api/generate", "wrong-key", http.StatusUnauthorized},
	}
	router := testRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", tt.path, nil)
			if tt.key != "" {
				r.Header.Set("X-API-Key", tt.key)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, r)

			if w.Code != tt.want {
				t.Errorf("POST %s: got %d, want %d", tt.path, w.Code, tt.want)
			}
		})
	}
}

func TestRouterAPIRejectsGet(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/generate", nil)
	r.Header.Set("X-API-Key", "test-api-key")
	w := httptest.NewRecorder()
	testRouter().ServeHTTP(w, r)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("GET /api/generate: got %d, want 405", w.Code)
	}
}
