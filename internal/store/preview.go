// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"sitespark/internal/models"
)

// PreviewStore handles persistence of generated preview artifacts. The
// table carries a UNIQUE constraint on business_id (one live artifact per
// business) and on slug (global uniqueness), so the invariants hold even
// if two generations race.
type PreviewStore struct {
	db *sql.DB
}

// NewPreviewStore creates a new PreviewStore with the given database connection.
func NewPreviewStore(db *sql.DB) *PreviewStore {
	return &PreviewStore{db: db}
}

const previewColumns = `id, business_id, slug, preview_url, html_content,
       template_used, created_at, updated_at`

func scanPreview(row interface{ Scan(...any) error }) (*models.PreviewArtifact, error) {
	p := &models.PreviewArtifact{}
	err := row.Scan(
		&p.ID, &p.BusinessID, &p.Slug, &p.PreviewURL, &p.HTMLContent,
		&p.TemplateUsed, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// SlugExists reports whether a slug is already assigned to any preview.
func (s *PreviewStore) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM website_previews WHERE slug = $1)`, slug,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("slug exists check: %w", err)
	}
	return exists, nil
}

// FindBySlug retrieves a preview artifact by slug. Returns nil if not found.
// Used by the public preview handler.
func (s *PreviewStore) FindBySlug(ctx context.Context, slug string) (*models.PreviewArtifact, error) {
	p, err := scanPreview(s.db.QueryRowContext(ctx, `
		SELECT `+previewColumns+`
		FROM website_previews WHERE slug = $1
	`, slug))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find preview by slug: %w", err)
	}
	return p, nil
}

// FindByBusinessID retrieves the preview artifact for a business.
// Returns nil if the business has no preview yet.
func (s *PreviewStore) FindByBusinessID(ctx context.Context, businessID uuid.UUID) (*models.PreviewArtifact, error) {
	p, err := scanPreview(s.db.QueryRowContext(ctx, `
		SELECT `+previewColumns+`
		FROM website_previews WHERE business_id = $1
	`, businessID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find preview by business: %w", err)
	}
	return p, nil
}

// Upsert stores the artifact for a business. When a row already exists for
// the business, it is updated in place — slug, html, template, and
// updated_at are replaced, created_at is preserved. Otherwise a new row is
// inserted. Returns the stored artifact.
func (s *PreviewStore) Upsert(ctx context.Context, p *models.PreviewArtifact) (*models.PreviewArtifact, error) {
	stored, err := scanPreview(s.db.QueryRowContext(ctx, `
		INSERT INTO website_previews (business_id, slug, preview_url, html_content, template_used)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (business_id) DO UPDATE SET
			slug          = EXCLUDED.slug,
			preview_url   = EXCLUDED.preview_url,
			html_content  = EXCLUDED.html_content,
			template_used = EXCLUDED.template_used,
			updated_at    = NOW()
		RETURNING `+previewColumns+`
	`, p.BusinessID, p.Slug, p.PreviewURL, p.HTMLContent, p.TemplateUsed))
	if err != nil {
		return nil, fmt.Errorf("upsert preview: %w", err)
	}
	return stored, nil
}

// CountAll returns the number of stored preview artifacts.
func (s *PreviewStore) CountAll(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM website_previews`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count previews: %w", err)
	}
	return count, nil
}
