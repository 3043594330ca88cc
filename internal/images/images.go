// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package images resolves the image bundle for a generated website: three
// AI-generated images hosted in object storage, or a curated stock set
// when generation fails. The bundle is strictly all-AI or all-stock —
// one stock photo among two generated ones reads as broken.
package images

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"sitespark/internal/imaging"
	"sitespark/internal/models"
)

// ImageGenerator is the slice of the AI registry the provider needs.
// Satisfied by *ai.Registry and by test doubles.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) ([]byte, string, error)
}

// Uploader hosts generated image bytes and returns public URLs.
// Satisfied by *storage.Client.
type Uploader interface {
	Upload(ctx context.Context, bucket, key, contentType string, body io.Reader, size int64) error
	FileURL(key string) string
	PublicBucket() string
}

// Provider resolves image bundles for businesses.
type Provider struct {
	ai      ImageGenerator // may be nil: stock-only mode
	storage Uploader       // may be nil: stock-only mode
}

// NewProvider creates an image provider. Either dependency may be nil, in
// which case every bundle is the stock fallback.
func NewProvider(ai ImageGenerator, storage Uploader) *Provider {
	return &Provider{ai: ai, storage: storage}
}

// slot names the three image positions on the page.
type slot int

const (
	slotHero slot = iota
	slotService
	slotTeam
)

// prompts returns the category-specific descriptive prompt for each slot.
// The business name is deliberately not embedded: models render literal
// text badly, and the imagery should evoke the trade, not spell the name.
func prompts(category models.Category) [3]string {
	base := map[models.Category][3]string{
		models.CategoryRestaurant: {
			"warm inviting restaurant interior with soft evening lighting, wooden tables set for dinner, professional photography",
			"beautifully plated fresh dish on a rustic table, shallow depth of field, food photography",
			"friendly restaurant kitchen team at work, candid professional photo",
		},
		models.CategoryPlumbing: {
			"professional plumber's service van parked outside a suburban home, bright daylight, commercial photography",
			"plumber's hands fixing a modern chrome faucet with quality tools, close-up professional photo",
			"two friendly uniformed tradespeople smiling in a workshop, professional portrait",
		},
		models.CategoryBeauty: {
			"elegant modern hair salon interior with styling chairs and soft natural light, editorial photography",
			"stylist blow-drying a client's hair in a bright salon, candid professional photo",
			"welcoming salon team standing together in their studio, professional group portrait",
		},
		models.CategoryAuto: {
			"clean professional auto repair shop with a car on a lift, bright workshop lighting, commercial photography",
			"mechanic inspecting an engine bay with diagnostic tools, close-up professional photo",
			"friendly team of mechanics in uniform standing in their garage, professional portrait",
		},
		models.CategoryCleaning: {
			"sparkling clean bright modern living room, sunlight through windows, real estate photography",
			"professional cleaner wiping a kitchen counter with eco supplies, candid photo",
			"cheerful uniformed cleaning crew with equipment, professional group photo",
		},
		models.CategoryElectrical: {
			"electrician working on a modern electrical panel, safety gear, bright professional photography",
			"close-up of skilled hands wiring a light fixture, shallow depth of field",
			"professional electrical contractor team with service vehicle, commercial portrait",
		},
		models.CategoryConstruction: {
			"construction site at golden hour with timber framing going up, wide professional shot",
			"carpenter measuring lumber on sawhorses, close-up professional photo",
			"construction crew in hard hats reviewing blueprints together, professional photo",
		},
		models.CategoryRetail: {
			"charming boutique storefront with attractive window display, warm inviting light, commercial photography",
			"neatly arranged shelves of curated goods inside a small shop, editorial photo",
			"friendly shop owner behind the counter of a local store, candid portrait",
		},
		models.CategoryDental: {
			"bright modern dental office reception with comfortable seating, clean airy photography",
			"dentist's treatment room with modern equipment, calm and spotless, professional photo",
			"smiling dental team in scrubs at their practice, professional group portrait",
		},
		models.CategoryMedical: {
			"welcoming modern medical clinic reception area, natural light, architectural photography",
			"doctor consulting with a patient in a bright exam room, candid professional photo",
			"diverse team of healthcare providers in a clinic hallway, professional portrait",
		},
	}

	if p, ok := base[category]; ok {
		return p
	}
	return [3]string{
		"modern professional small business office exterior, welcoming entrance, commercial photography",
		"professional at work helping a customer, bright candid photo",
		"friendly small business team standing together, professional group portrait",
	}
}

// Bundle resolves the image bundle for a business. The three slots are
// generated in parallel; each result is uploaded to the public bucket and
// referenced by URL. If any slot fails — generation or upload — the whole
// bundle falls back to stock. Never returns an error.
func (p *Provider) Bundle(ctx context.Context, businessID uuid.UUID, category models.Category) *models.ImageBundle {
	if p.ai == nil || p.storage == nil {
		return StockBundle(category)
	}

	slotPrompts := prompts(category)
	var urls [3]string

	g, gctx := errgroup.WithContext(ctx)
	for s, prompt := range slotPrompts {
		g.Go(func() error {
			url, err := p.generateAndHost(gctx, businessID, slot(s), prompt)
			if err != nil {
				return err
			}
			urls[s] = url
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		slog.Warn("ai image generation failed, using stock bundle",
			"business_id", businessID, "category", category, "error", err)
		return StockBundle(category)
	}

	// Gallery slots reuse the stock set: generating six more images per
	// business is not worth the spend for a throwaway preview.
	stock := StockBundle(category)
	return &models.ImageBundle{
		Hero:        urls[slotHero],
		Service:     urls[slotService],
		Team:        urls[slotTeam],
		Gallery:     stock.Gallery,
		AIGenerated: true,
	}
}

// generateAndHost produces one image, optimises it for web delivery, and
// uploads it, returning the public URL.
func (p *Provider) generateAndHost(ctx context.Context, businessID uuid.UUID, s slot, prompt string) (string, error) {
	imgBytes, contentType, err := p.ai.GenerateImage(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("generate slot %d: %w", s, err)
	}

	if webp, err := imaging.Optimize(imgBytes); err != nil {
		// The raw provider output still renders; ship it as-is.
		slog.Warn("image optimisation failed, uploading original",
			"business_id", businessID, "slot", s, "error", err)
	} else {
		imgBytes, contentType = webp, imaging.ContentType
	}

	ext := ".png"
	switch contentType {
	case "image/jpeg":
		ext = ".jpg"
	case "image/webp":
		ext = ".webp"
	}

	key := fmt.Sprintf("previews/%s/%d%s", businessID, s, ext)
	bucket := p.storage.PublicBucket()
	if err := p.storage.Upload(ctx, bucket, key, contentType, bytes.NewReader(imgBytes), int64(len(imgBytes))); err != nil {
		return "", fmt.Errorf("upload slot %d: %w", s, err)
	}

	return p.storage.FileURL(key), nil
}
