// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package generate orchestrates the preview pipeline: classify the
// business, produce content and images, compose and assemble the
// document, mint a unique slug, and persist the artifact. The pipeline
// degrades instead of failing: AI outages fall back to curated content,
// and only storage errors abort a run.
package generate

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"sitespark/internal/assemble"
	"sitespark/internal/cache"
	"sitespark/internal/classify"
	"sitespark/internal/compose"
	"sitespark/internal/content"
	"sitespark/internal/images"
	"sitespark/internal/models"
	"sitespark/internal/sitecheck"
	"sitespark/internal/slug"
	"sitespark/internal/store"
	"sitespark/internal/theme"
)

// maxMetaDescription caps the <meta name="description"> length.
const maxMetaDescription = 160

// Pipeline wires the generation stages together.
type Pipeline struct {
	businesses *store.BusinessStore
	previews   *store.PreviewStore
	content    *content.Generator
	images     *images.Provider
	checker    *sitecheck.Checker
	cache      *cache.PreviewCache
	baseURL    string
	workers    int
}

// Config collects the pipeline's collaborators. Checker and Cache may be
// nil; Workers below 1 means sequential batch processing.
type Config struct {
	Businesses *store.BusinessStore
	Previews   *store.PreviewStore
	Content    *content.Generator
	Images     *images.Provider
	Checker    *sitecheck.Checker
	Cache      *cache.PreviewCache
	BaseURL    string
	Workers    int
}

// New creates a Pipeline.
func New(cfg Config) *Pipeline {
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	return &Pipeline{
		businesses: cfg.Businesses,
		previews:   cfg.Previews,
		content:    cfg.Content,
		images:     cfg.Images,
		checker:    cfg.Checker,
		cache:      cfg.Cache,
		baseURL:    cfg.BaseURL,
		workers:    workers,
	}
}

// Result describes the outcome of one business's generation run.
type Result struct {
	BusinessID   uuid.UUID             `json:"business_id"`
	BusinessName string                `json:"business_name"`
	Skipped      bool                  `json:"skipped"`
	SkipReason   string                `json:"skip_reason,omitempty"`
	Slug         string                `json:"slug,omitempty"`
	PreviewURL   string                `json:"preview_url,omitempty"`
	Category     models.Category       `json:"category,omitempty"`
	Variant      models.LayoutVariant  `json:"variant,omitempty"`
	TemplateUsed string                `json:"template_used,omitempty"`
	AIContent    bool                  `json:"ai_content"`
	AIImages     bool                  `json:"ai_images"`
}

// Options tune a single generation run.
type Options struct {
	// SkipSiteCheck bypasses the website-existence lookup. Useful for
	// demos and for re-generating a business known to lack a site.
	SkipSiteCheck bool
}

// ForBusinessID loads a business and runs the pipeline for it. Returns
// (nil, nil) when the business does not exist.
func (p *Pipeline) ForBusinessID(ctx context.Context, id uuid.UUID, opts Options) (*Result, error) {
	b, err := p.businesses.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load business: %w", err)
	}
	if b == nil {
		return nil, nil
	}
	return p.ForBusiness(ctx, b, opts)
}

// ForBusiness runs the full pipeline for one business record. A business
// that already has a website is skipped, never overwritten. Regenerating
// a business that already has a preview updates the stored artifact in
// place and keeps its slug.
func (p *Pipeline) ForBusiness(ctx context.Context, b *models.Business, opts Options) (*Result, error) {
	res := &Result{BusinessID: b.ID, BusinessName: b.Name}

	if b.HasWebsite() {
		res.Skipped = true
		res.SkipReason = "business already has a website on record"
		return res, nil
	}

	if !opts.SkipSiteCheck && p.checker.Enabled() {
		found, err := p.checker.Lookup(ctx, b)
		if err != nil {
			// Advisory check: log and generate anyway.
			slog.Warn("site check failed, generating anyway", "business", b.Name, "error", err)
		} else if found != "" {
			if err := p.businesses.BackfillGenerated(ctx, b.ID, "", found); err != nil {
				return nil, fmt.Errorf("record discovered website: %w", err)
			}
			res.Skipped = true
			res.SkipReason = "existing website found: " + found
			return res, nil
		}
	}

	category := classify.ClassifyBusiness(b)
	t := theme.ForCategory(category)
	variant := theme.VariantFor(b.ID)

	gc := p.content.Generate(ctx, b, category)
	bundle := p.images.Bundle(ctx, b.ID, category)
	gc.Images = bundle

	sections := compose.Compose(&compose.Input{
		Business: b,
		Content:  gc,
		Theme:    t,
		Images:   bundle,
		Variant:  variant,
		Category: category,
	})
	doc := assemble.Document(b, t, category, variant, metaDescription(gc.Description), sections)
	templateUsed := assemble.TemplateTag(category, variant)

	// Regeneration keeps the existing slug so shared preview links
	// stay valid.
	existing, err := p.previews.FindByBusinessID(ctx, b.ID)
	if err != nil {
		return nil, fmt.Errorf("lookup existing preview: %w", err)
	}
	var previewSlug string
	if existing != nil {
		previewSlug = existing.Slug
	} else {
		previewSlug, err = slug.Unique(ctx, b.Name, p.previews.SlugExists)
		if err != nil {
			return nil, fmt.Errorf("mint slug: %w", err)
		}
	}

	artifact := &models.PreviewArtifact{
		BusinessID:   b.ID,
		Slug:         previewSlug,
		PreviewURL:   p.previewURL(previewSlug),
		HTMLContent:  doc,
		TemplateUsed: templateUsed,
	}
	saved, err := p.previews.Upsert(ctx, artifact)
	if err != nil {
		return nil, fmt.Errorf("persist preview: %w", err)
	}

	if err := p.businesses.BackfillGenerated(ctx, b.ID, string(category), ""); err != nil {
		return nil, fmt.Errorf("backfill industry type: %w", err)
	}

	p.cache.Invalidate(ctx, saved.Slug)

	res.Slug = saved.Slug
	res.PreviewURL = saved.PreviewURL
	res.Category = category
	res.Variant = variant
	res.TemplateUsed = templateUsed
	res.AIContent = gc.AIGenerated
	res.AIImages = bundle.AIGenerated

	slog.Info("preview generated",
		"business", b.Name,
		"slug", saved.Slug,
		"template", templateUsed,
		"ai_content", gc.AIGenerated,
		"ai_images", bundle.AIGenerated,
	)
	return res, nil
}

func (p *Pipeline) previewURL(s string) string {
	return strings.TrimSuffix(p.baseURL, "/") + "/p/" + s
}

// metaDescription trims the generated description to meta-tag length at
// a word boundary.
func metaDescription(desc string) string {
	if len(desc) <= maxMetaDescription {
		return desc
	}
	// Back up to a rune boundary before slicing so a multibyte
	// character straddling the cap is dropped whole.
	end := maxMetaDescription
	for end > 0 && !utf8.RuneStart(desc[end]) {
		end--
	}
	cut := desc[:end]
	if i := strings.LastIndex(cut, " "); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,.;:") + "…"
}

func elapsed(start time.Time) slog.Attr {
	return slog.Duration("elapsed", time.Since(start))
}
