// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Category is the closed business-type classification that drives theme
// selection, section composition, and generated copy.
type Category string

const (
	CategoryRestaurant     Category = "restaurant"
	CategoryPlumbing       Category = "plumbing"
	CategoryBeauty         Category = "beauty"
	CategoryAuto           Category = "auto"
	CategoryCleaning       Category = "cleaning"
	CategoryElectrical     Category = "electrical"
	CategoryConstruction   Category = "construction"
	CategoryRetail         Category = "retail"
	CategoryDental         Category = "dental"
	CategoryMedical        Category = "medical"
	CategoryGeneralService Category = "general-service"
)

// AllCategories lists every category in classification precedence order.
var AllCategories = []Category{
	CategoryRestaurant,
	CategoryPlumbing,
	CategoryBeauty,
	CategoryAuto,
	CategoryCleaning,
	CategoryElectrical,
	CategoryConstruction,
	CategoryRetail,
	CategoryDental,
	CategoryMedical,
	CategoryGeneralService,
}

// IsServiceTrade returns true for the hands-on trade categories that get
// the emergency-contact banner and cost-estimate calculator sections.
func (c Category) IsServiceTrade() bool {
	switch c {
	case CategoryPlumbing, CategoryElectrical, CategoryCleaning, CategoryConstruction:
		return true
	}
	return false
}

// LayoutVariant selects one of the structurally distinct hero/about
// arrangements. A business always maps to the same variant so regenerated
// previews keep a consistent appearance.
type LayoutVariant string

const (
	VariantClassic   LayoutVariant = "classic"   // centered hero, stacked copy
	VariantSplit     LayoutVariant = "split"     // image/text side by side
	VariantFullBleed LayoutVariant = "fullbleed" // full-width image with badge + feature strip
)

// Theme is the palette, typography, and style bundle associated with a
// category. Themes are statically defined, one per category.
type Theme struct {
	Name        string `json:"name"`
	Primary     string `json:"primary"`
	Secondary   string `json:"secondary"`
	Accent      string `json:"accent"`
	Gradient    string `json:"gradient"`
	Text        string `json:"text"`
	Light       string `json:"light"`
	Dark        string `json:"dark"`
	HeadingFont string `json:"heading_font"`
	BodyFont    string `json:"body_font"`
	AccentFont  string `json:"accent_font"`
	Style       string `json:"style"` // e.g. "elegant", "industrial"
}

// Testimonial is a single customer review rendered in the reviews section.
type Testimonial struct {
	Name   string `json:"name"`
	Rating int    `json:"rating"` // 1-5
	Text   string `json:"text"`
}

// DayHours is one row of the opening-hours table. A slice keeps the
// week in display order, which a map would not.
type DayHours struct {
	Day   string `json:"day"`
	Hours string `json:"hours"`
}

// ImageBundle holds the image URLs used by the composed page. The bundle is
// all-AI or all-stock: mixing the two looks jarring across the three slots.
type ImageBundle struct {
	Hero        string   `json:"hero"`
	Service     string   `json:"service"`
	Team        string   `json:"team"`
	Gallery     []string `json:"gallery,omitempty"`
	AIGenerated bool     `json:"ai_generated"`
}

// GeneratedContent is the full copy package for one business. Every field is
// always populated — when the AI call fails, deterministic per-category
// fallback copy fills the same shape.
type GeneratedContent struct {
	Tagline      string        `json:"tagline"`
	Description  string        `json:"description"`
	Services     []string      `json:"services"`
	Testimonials []Testimonial `json:"testimonials"`
	Hours        []DayHours    `json:"hours"`
	Category     Category      `json:"category"`
	Images       *ImageBundle  `json:"images,omitempty"`
	AIGenerated  bool          `json:"ai_generated"`
}
