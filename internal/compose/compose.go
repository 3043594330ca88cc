// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package compose assembles the ordered list of page sections for a
// generated website. Every builder is a pure function of its input —
// content, theme, images, layout variant — and performs no I/O. The
// category decides which extra sections join the universal flow via a
// strategy table, not a branching switch.
//
// All business-derived text passes through html.EscapeString before it is
// interpolated into markup or attribute values. Business records come from
// scraped lead lists and are not trusted.
package compose

import (
	"html"

	"sitespark/internal/models"
)

// Input carries everything a section builder may draw on.
type Input struct {
	Business *models.Business
	Content  *models.GeneratedContent
	Theme    models.Theme
	Images   *models.ImageBundle
	Variant  models.LayoutVariant
	Category models.Category
}

// Section is one composed page fragment. ID doubles as the DOM id and the
// marker downstream tests and tooling look for.
type Section struct {
	ID   string
	HTML string
}

// builder produces one section from the composed input.
type builder func(in *Input) Section

// insert places a category-specific section into the universal flow,
// directly after the section whose ID matches Anchor.
type insert struct {
	Anchor string
	Build  builder
}

// universalFlow is the section order shared by every category.
var universalFlow = []builder{
	navSection,
	heroSection,
	trustSection,
	engagementSection,
	servicesSection,
	gallerySection,
	testimonialsSection,
	contactSection,
	footerSection,
}

// categoryInserts is the strategy table: which extra sections each
// category contributes and where they slot in. Categories absent from the
// table (retail, dental, medical, general-service) use the universal flow
// as is. The service trades share one insert set.
var categoryInserts = map[models.Category][]insert{
	models.CategoryRestaurant: {
		{Anchor: "services", Build: menuSection},
		{Anchor: "menu", Build: reservationSection},
	},
	models.CategoryPlumbing:     tradeInserts,
	models.CategoryElectrical:   tradeInserts,
	models.CategoryCleaning:     tradeInserts,
	models.CategoryConstruction: tradeInserts,
	models.CategoryBeauty: {
		{Anchor: "gallery", Build: socialGallerySection},
		{Anchor: "social-gallery", Build: bookingSection},
	},
}

var tradeInserts = []insert{
	{Anchor: "hero", Build: emergencyBannerSection},
	{Anchor: "services", Build: estimatorSection},
}

// Compose builds the full ordered section list for the input.
func Compose(in *Input) []Section {
	sections := make([]Section, 0, len(universalFlow)+3)
	for _, build := range universalFlow {
		sections = append(sections, build(in))
	}

	for _, ins := range categoryInserts[in.Category] {
		sections = insertAfter(sections, ins.Anchor, ins.Build(in))
	}
	return sections
}

// insertAfter places s directly after the section with the anchor ID,
// or appends before the footer if the anchor is missing.
func insertAfter(sections []Section, anchor string, s Section) []Section {
	for i, existing := range sections {
		if existing.ID == anchor {
			out := make([]Section, 0, len(sections)+1)
			out = append(out, sections[:i+1]...)
			out = append(out, s)
			out = append(out, sections[i+1:]...)
			return out
		}
	}
	// Anchor not found: keep the section, slot it before the footer.
	if n := len(sections); n > 0 && sections[n-1].ID == "footer" {
		out := append(sections[:n-1:n-1], s, sections[n-1])
		return out
	}
	return append(sections, s)
}

// esc escapes business-derived text for interpolation into markup and
// attribute values.
func esc(s string) string {
	return html.EscapeString(s)
}
