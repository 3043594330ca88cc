// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"sitespark/internal/cache"
	"sitespark/internal/store"
)

// Preview serves the public, shareable preview pages. It checks the
// Valkey cache before the store and caches on miss.
type Preview struct {
	previews *store.PreviewStore
	cache    *cache.PreviewCache
}

// NewPreview creates the preview handler group. The cache may be nil.
func NewPreview(previews *store.PreviewStore, pc *cache.PreviewCache) *Preview {
	return &Preview{previews: previews, cache: pc}
}

// BySlug handles GET /p/{slug}.
func (h *Preview) BySlug(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := chi.URLParam(r, "slug")

	if cached, ok := h.cache.Get(ctx, slug); ok {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(cached)
		return
	}

	artifact, err := h.previews.FindBySlug(ctx, slug)
	if err != nil {
		slog.Error("preview lookup failed", "slug", slug, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if artifact == nil {
		http.NotFound(w, r)
		return
	}

	doc := []byte(artifact.HTMLContent)
	h.cache.Set(ctx, slug, doc)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(doc)
}
