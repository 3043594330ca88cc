// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package content produces the full copy package for a business website:
// tagline, description, services, testimonials, and opening hours. Copy is
// AI-generated when a provider is available and responding; otherwise a
// deterministic per-category fallback fills the identical shape. Callers
// never see a partially populated result and never see an error escape
// the generator.
package content

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"sitespark/internal/models"
)

// TextGenerator is the slice of the AI registry the content generator
// needs. Satisfied by *ai.Registry and by test doubles.
type TextGenerator interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Generator builds website copy for classified businesses.
type Generator struct {
	ai TextGenerator // may be nil: fallback-only mode
}

// NewGenerator creates a content generator backed by the given text
// provider. A nil provider is valid and forces fallback copy.
func NewGenerator(ai TextGenerator) *Generator {
	return &Generator{ai: ai}
}

const systemPrompt = `You are a marketing copywriter for small-business websites.
You write warm, concrete, trustworthy copy that sounds like a local business, not a corporation.
Respond in EXACTLY the labeled plain-text format requested. No markdown, no extra commentary.`

// buildPrompt constructs the labeled-field request for one business.
// The response format is fixed so parseResponse can split it reliably.
func buildPrompt(b *models.Business, category models.Category, keywords []string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Write website copy for this business:\n")
	fmt.Fprintf(&sb, "Name: %s\n", b.Name)
	fmt.Fprintf(&sb, "Category: %s\n", category)
	if loc := b.Location(); loc != "" {
		fmt.Fprintf(&sb, "Location: %s\n", loc)
	}
	if len(keywords) > 0 {
		fmt.Fprintf(&sb, "Work these search phrases in naturally: %s\n", strings.Join(keywords, ", "))
	}

	sb.WriteString(`
Respond with exactly three labeled fields in this format:

TAGLINE: <one punchy sentence, max 10 words>
ABOUT_US: <2-3 sentences about the business, first person plural>
SERVICES: <comma-separated list of 5-6 short service names>
`)
	return sb.String()
}

// parseResponse extracts the three labeled fields from the model output.
// Labels may appear in any order; text continues until the next label or
// end of input. Returns an error if any field is missing or empty.
func parseResponse(raw string) (tagline, about string, services []string, err error) {
	fields := map[string]*strings.Builder{
		"TAGLINE":  {},
		"ABOUT_US": {},
		"SERVICES": {},
	}

	var current *strings.Builder
	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)

		matched := false
		for label, buf := range fields {
			prefix := label + ":"
			if strings.HasPrefix(trimmed, prefix) {
				current = buf
				current.WriteString(strings.TrimSpace(strings.TrimPrefix(trimmed, prefix)))
				matched = true
				break
			}
		}
		if matched || current == nil || trimmed == "" {
			continue
		}
		current.WriteString(" ")
		current.WriteString(trimmed)
	}

	tagline = strings.TrimSpace(fields["TAGLINE"].String())
	about = strings.TrimSpace(fields["ABOUT_US"].String())
	for _, s := range strings.Split(fields["SERVICES"].String(), ",") {
		if s = strings.TrimSpace(s); s != "" {
			services = append(services, s)
		}
	}

	if tagline == "" {
		return "", "", nil, fmt.Errorf("content: response missing TAGLINE")
	}
	if about == "" {
		return "", "", nil, fmt.Errorf("content: response missing ABOUT_US")
	}
	if len(services) == 0 {
		return "", "", nil, fmt.Errorf("content: response missing SERVICES")
	}
	return tagline, about, services, nil
}

// Generate produces the complete content package for a business. The AI
// path supplies tagline, description, and services; testimonials and
// hours always come from the curated per-category pools. Any failure —
// no provider, transport error, or an unparseable response — switches
// the whole package to the deterministic fallback. Never returns an
// error and never returns partial content.
func (g *Generator) Generate(ctx context.Context, b *models.Business, category models.Category) *models.GeneratedContent {
	if g.ai == nil {
		return Fallback(b, category)
	}

	raw, err := g.ai.Generate(ctx, systemPrompt, buildPrompt(b, category, Keywords(category)))
	if err != nil {
		slog.Warn("ai content generation failed, using fallback",
			"business", b.Name, "category", category, "error", err)
		return Fallback(b, category)
	}

	tagline, about, services, err := parseResponse(raw)
	if err != nil {
		slog.Warn("ai content response unparseable, using fallback",
			"business", b.Name, "category", category, "error", err)
		return Fallback(b, category)
	}

	// Testimonials and hours are always curated: asking a model to invent
	// named reviews produces fabrications we don't want attributed to
	// real-looking people on a claimable site.
	cc := copyFor(category)
	return &models.GeneratedContent{
		Tagline:      tagline,
		Description:  about,
		Services:     services,
		Testimonials: append([]models.Testimonial(nil), cc.testimonials...),
		Hours:        append([]models.DayHours(nil), cc.hours...),
		Category:     category,
		AIGenerated:  true,
	}
}
