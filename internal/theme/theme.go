// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package theme maps categories to their static visual themes and selects
// the structural layout variant for a business.
package theme

import (
	"sitespark/internal/models"
)

// themes is the static category → theme table. One theme per category; the
// general theme doubles as the fallback for anything unrecognized.
var themes = map[models.Category]models.Theme{
	models.CategoryRestaurant: {
		Name:        "warm-bistro",
		Primary:     "#9a3412",
		Secondary:   "#451a03",
		Accent:      "#f59e0b",
		Gradient:    "linear-gradient(135deg, #451a03 0%, #9a3412 100%)",
		Text:        "#292524",
		Light:       "#fef3c7",
		Dark:        "#1c1917",
		HeadingFont: "'Playfair Display', Georgia, serif",
		BodyFont:    "'Lato', 'Helvetica Neue', sans-serif",
		AccentFont:  "'Dancing Script', cursive",
		Style:       "elegant",
	},
	models.CategoryPlumbing: {
		Name:        "trade-blue",
		Primary:     "#1d4ed8",
		Secondary:   "#1e3a8a",
		Accent:      "#f97316",
		Gradient:    "linear-gradient(135deg, #1e3a8a 0%, #1d4ed8 100%)",
		Text:        "#1f2937",
		Light:       "#eff6ff",
		Dark:        "#111827",
		HeadingFont: "'Oswald', 'Arial Narrow', sans-serif",
		BodyFont:    "'Open Sans', Arial, sans-serif",
		AccentFont:  "'Oswald', sans-serif",
		Style:       "industrial",
	},
	models.CategoryBeauty: {
		Name:        "rose-studio",
		Primary:     "#be185d",
		Secondary:   "#831843",
		Accent:      "#e9b8c8",
		Gradient:    "linear-gradient(135deg, #831843 0%, #be185d 100%)",
		Text:        "#3f3f46",
		Light:       "#fdf2f8",
		Dark:        "#27272a",
		HeadingFont: "'Cormorant Garamond', Georgia, serif",
		BodyFont:    "'Montserrat', 'Helvetica Neue', sans-serif",
		AccentFont:  "'Great Vibes', cursive",
		Style:       "luxurious",
	},
	models.CategoryAuto: {
		Name:        "garage-steel",
		Primary:     "#b91c1c",
		Secondary:   "#18181b",
		Accent:      "#facc15",
		Gradient:    "linear-gradient(135deg, #18181b 0%, #b91c1c 100%)",
		Text:        "#27272a",
		Light:       "#f4f4f5",
		Dark:        "#09090b",
		HeadingFont: "'Russo One', 'Arial Black', sans-serif",
		BodyFont:    "'Roboto', Arial, sans-serif",
		AccentFont:  "'Russo One', sans-serif",
		Style:       "bold",
	},
	models.CategoryCleaning: {
		Name:        "fresh-mint",
		Primary:     "#0d9488",
		Secondary:   "#115e59",
		Accent:      "#a7f3d0",
		Gradient:    "linear-gradient(135deg, #115e59 0%, #0d9488 100%)",
		Text:        "#134e4a",
		Light:       "#f0fdfa",
		Dark:        "#042f2e",
		HeadingFont: "'Poppins', 'Helvetica Neue', sans-serif",
		BodyFont:    "'Nunito', Verdana, sans-serif",
		AccentFont:  "'Poppins', sans-serif",
		Style:       "fresh",
	},
	models.CategoryElectrical: {
		Name:        "live-wire",
		Primary:     "#ca8a04",
		Secondary:   "#1e293b",
		Accent:      "#fde047",
		Gradient:    "linear-gradient(135deg, #1e293b 0%, #ca8a04 100%)",
		Text:        "#1e293b",
		Light:       "#fefce8",
		Dark:        "#0f172a",
		HeadingFont: "'Oswald', 'Arial Narrow', sans-serif",
		BodyFont:    "'Source Sans 3', Arial, sans-serif",
		AccentFont:  "'Oswald', sans-serif",
		Style:       "industrial",
	},
	models.CategoryConstruction: {
		Name:        "hard-hat",
		Primary:     "#d97706",
		Secondary:   "#292524",
		Accent:      "#fbbf24",
		Gradient:    "linear-gradient(135deg, #292524 0%, #d97706 100%)",
		Text:        "#292524",
		Light:       "#fffbeb",
		Dark:        "#1c1917",
		HeadingFont: "'Archivo Black', 'Arial Black', sans-serif",
		BodyFont:    "'Inter', Arial, sans-serif",
		AccentFont:  "'Archivo Black', sans-serif",
		Style:       "rugged",
	},
	models.CategoryRetail: {
		Name:        "shopfront",
		Primary:     "#7c3aed",
		Secondary:   "#4c1d95",
		Accent:      "#fbbf24",
		Gradient:    "linear-gradient(135deg, #4c1d95 0%, #7c3aed 100%)",
		Text:        "#3f3f46",
		Light:       "#f5f3ff",
		Dark:        "#2e1065",
		HeadingFont: "'Poppins', 'Helvetica Neue', sans-serif",
		BodyFont:    "'Inter', Arial, sans-serif",
		AccentFont:  "'Caveat', cursive",
		Style:       "playful",
	},
	models.CategoryDental: {
		Name:        "bright-smile",
		Primary:     "#0284c7",
		Secondary:   "#075985",
		Accent:      "#7dd3fc",
		Gradient:    "linear-gradient(135deg, #075985 0%, #0284c7 100%)",
		Text:        "#0c4a6e",
		Light:       "#f0f9ff",
		Dark:        "#082f49",
		HeadingFont: "'Quicksand', 'Helvetica Neue', sans-serif",
		BodyFont:    "'Nunito Sans', Verdana, sans-serif",
		AccentFont:  "'Quicksand', sans-serif",
		Style:       "clinical",
	},
	models.CategoryMedical: {
		Name:        "calm-care",
		Primary:     "#0f766e",
		Secondary:   "#134e4a",
		Accent:      "#5eead4",
		Gradient:    "linear-gradient(135deg, #134e4a 0%, #0f766e 100%)",
		Text:        "#115e59",
		Light:       "#f0fdfa",
		Dark:        "#042f2e",
		HeadingFont: "'Merriweather', Georgia, serif",
		BodyFont:    "'Source Sans 3', Arial, sans-serif",
		AccentFont:  "'Merriweather', serif",
		Style:       "trustworthy",
	},
	models.CategoryGeneralService: {
		Name:        "versatile-slate",
		Primary:     "#334155",
		Secondary:   "#0f172a",
		Accent:      "#38bdf8",
		Gradient:    "linear-gradient(135deg, #0f172a 0%, #334155 100%)",
		Text:        "#1e293b",
		Light:       "#f8fafc",
		Dark:        "#020617",
		HeadingFont: "'Inter', 'Helvetica Neue', sans-serif",
		BodyFont:    "'Inter', Arial, sans-serif",
		AccentFont:  "'Inter', sans-serif",
		Style:       "modern",
	},
}

// ForCategory returns the static theme for a category. Unknown categories
// get the general-service theme so selection is total.
func ForCategory(c models.Category) models.Theme {
	if t, ok := themes[c]; ok {
		return t
	}
	return themes[models.CategoryGeneralService]
}
