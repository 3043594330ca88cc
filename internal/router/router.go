// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up the HTTP routes and middleware chains: the
// API-key-guarded generation API and the public preview pages.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"sitespark/internal/handlers"
	"sitespark/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(apiKey string, gen *handlers.Generate, preview *handlers.Preview) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	// Health check — no auth.
	r.Get("/health", healthHandler)

	// Generation API — static API key.
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.RequireAPIKey(apiKey))
		r.Post("/generate", gen.Batch)
		r.Post("/generate/{businessID}", gen.Single)
	})

	// Public preview pages — rate limited, previews get shared widely.
	previewLimiter := middleware.NewRateLimiter(120, time.Minute)
	r.Group(func(r chi.Router) {
		r.Use(previewLimiter.Middleware)
		r.Get("/p/{slug}", preview.BySlug)
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
