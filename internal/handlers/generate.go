// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers groups the HTTP handlers: the JSON generation API and
// the public preview pages.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"sitespark/internal/generate"
)

// Generate serves the JSON generation API.
type Generate struct {
	pipeline *generate.Pipeline
}

// NewGenerate creates the generation handler group.
func NewGenerate(pipeline *generate.Pipeline) *Generate {
	return &Generate{pipeline: pipeline}
}

// Single handles POST /api/generate/{businessID}. The optional
// ?skip_site_check=1 query flag bypasses the website-existence lookup.
func (h *Generate) Single(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "businessID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid business id")
		return
	}

	opts := generate.Options{
		SkipSiteCheck: r.URL.Query().Get("skip_site_check") == "1",
	}

	res, err := h.pipeline.ForBusinessID(r.Context(), id, opts)
	if err != nil {
		slog.Error("generation failed", "business_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "generation failed")
		return
	}
	if res == nil {
		writeError(w, http.StatusNotFound, "business not found")
		return
	}

	writeJSON(w, http.StatusOK, singleResponse{
		Success: !res.Skipped,
		Result:  res,
	})
}

// Batch handles POST /api/generate: previews for every business that has
// neither a website nor a stored preview.
func (h *Generate) Batch(w http.ResponseWriter, r *http.Request) {
	opts := generate.Options{
		SkipSiteCheck: r.URL.Query().Get("skip_site_check") == "1",
	}

	summary, err := h.pipeline.Batch(r.Context(), opts)
	if err != nil {
		slog.Error("batch generation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "batch generation failed")
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

type singleResponse struct {
	Success bool             `json:"success"`
	Result  *generate.Result `json:"result"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
