// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package assemble

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"sitespark/internal/compose"
	"sitespark/internal/models"
	"sitespark/internal/theme"
)

func testDocument(t *testing.T, variant models.LayoutVariant) string {
	t.Helper()
	b := &models.Business{
		ID:    uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8"),
		Name:  "Joe's Pizza",
		City:  "Austin",
		State: "TX",
	}
	sections := []compose.Section{
		{ID: "nav", HTML: `<nav class="nav">nav</nav>`},
		{ID: "hero", HTML: `<header id="hero">hero</header>`},
		{ID: "footer", HTML: `<footer id="footer">footer</footer>`},
	}
	return Document(b, theme.ForCategory(models.CategoryRestaurant),
		models.CategoryRestaurant, variant, "Fresh pizza in Austin, TX.", sections)
}

func TestTemplateTag(t *testing.T) {
	tests := []struct {
		category models.Category
		variant  models.LayoutVariant
		want     string
	}{
		{models.CategoryRestaurant, models.VariantSplit, "restaurant-split"},
		{models.CategoryPlumbing, models.VariantClassic, "plumbing-classic"},
		{models.CategoryGeneralService, models.VariantFullBleed, "general-service-fullbleed"},
	}
	for _, tt := range tests {
		if got := TemplateTag(tt.category, tt.variant); got != tt.want {
			t.Errorf("TemplateTag(%q, %q) = %q, want %q", tt.category, tt.variant, got, tt.want)
		}
	}
}

// TestDocumentStructure checks the skeleton: doctype, head metadata, the
// template-used marker, sections in order, and the script block.
func TestDocumentStructure(t *testing.T) {
	doc := testDocument(t, models.VariantClassic)

	for _, want := range []string{
		"<!DOCTYPE html>",
		`<meta charset="utf-8">`,
		`<meta name="viewport"`,
		"<title>Joe&#39;s Pizza | Austin, TX</title>",
		`<meta name="description" content="Fresh pizza in Austin, TX.">`,
		`<meta name="template-used" content="restaurant-classic">`,
		"<style>",
		"</style>",
		"<script>",
		"</script>",
		"</html>",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q", want)
		}
	}

	// Sections appear in order.
	nav := strings.Index(doc, `<nav class="nav">`)
	hero := strings.Index(doc, `<header id="hero">`)
	footer := strings.Index(doc, `<footer id="footer">`)
	if nav == -1 || hero == -1 || footer == -1 || !(nav < hero && hero < footer) {
		t.Errorf("sections out of order: nav=%d hero=%d footer=%d", nav, hero, footer)
	}

	// Script follows the last section.
	script := strings.Index(doc, "<script>")
	if script < footer {
		t.Error("script block should come after the sections")
	}
}

// TestDocumentThemeVariables: the :root block carries the theme palette
// so the static stylesheet picks it up.
func TestDocumentThemeVariables(t *testing.T) {
	doc := testDocument(t, models.VariantClassic)
	th := theme.ForCategory(models.CategoryRestaurant)

	for name, val := range map[string]string{
		"--color-primary":   th.Primary,
		"--color-secondary": th.Secondary,
		"--color-accent":    th.Accent,
		"--color-dark":      th.Dark,
		"--font-heading":    th.HeadingFont,
		"--font-body":       th.BodyFont,
	} {
		if !strings.Contains(doc, name+": "+val+";") {
			t.Errorf("document missing theme variable %s: %s", name, val)
		}
	}
}

// TestDocumentVariantKnobs: layout variants change the CSS knobs, not
// the markup.
func TestDocumentVariantKnobs(t *testing.T) {
	tests := []struct {
		variant models.LayoutVariant
		radius  string
	}{
		{models.VariantClassic, "--btn-radius: 8px;"},
		{models.VariantSplit, "--btn-radius: 999px;"},
		{models.VariantFullBleed, "--btn-radius: 2px;"},
	}
	for _, tt := range tests {
		doc := testDocument(t, tt.variant)
		if !strings.Contains(doc, tt.radius) {
			t.Errorf("variant %q: document missing %q", tt.variant, tt.radius)
		}
	}
}

// TestDocumentLightboxStartsHidden: the gallery lightbox is emitted
// with the hidden attribute, but the author rule `.lightbox { display:
// flex }` would win over the UA's `[hidden] { display: none }` and
// paint a full-viewport overlay on load. The stylesheet must carry an
// explicit override so the attribute keeps working.
func TestDocumentLightboxStartsHidden(t *testing.T) {
	doc := testDocument(t, models.VariantClassic)

	if !strings.Contains(doc, ".lightbox {") {
		t.Fatal("document missing the .lightbox rule")
	}
	if !strings.Contains(doc, ".lightbox[hidden] { display: none; }") {
		t.Error("stylesheet missing the .lightbox[hidden] override; the overlay would be visible on load")
	}
}

// TestDocumentSelfContained: no references to local asset files; the
// document must render from a single HTML string.
func TestDocumentSelfContained(t *testing.T) {
	doc := testDocument(t, models.VariantClassic)

	for _, banned := range []string{`<link rel="stylesheet"`, `<script src=`} {
		if strings.Contains(doc, banned) {
			t.Errorf("document references external asset: found %q", banned)
		}
	}
}

// TestDocumentEscapesMetadata: business-derived head content is escaped.
func TestDocumentEscapesMetadata(t *testing.T) {
	b := &models.Business{
		ID:   uuid.New(),
		Name: `<script>alert(1)</script>`,
	}
	doc := Document(b, theme.ForCategory(models.CategoryGeneralService),
		models.CategoryGeneralService, models.VariantClassic, `"quoted" & <desc>`, nil)

	if strings.Contains(doc, "<script>alert(1)</script>") {
		t.Error("unescaped business name in head")
	}
	if !strings.Contains(doc, "&lt;script&gt;alert(1)&lt;/script&gt;") {
		t.Error("escaped business name not found in title")
	}
	if !strings.Contains(doc, "&#34;quoted&#34; &amp; &lt;desc&gt;") {
		t.Error("description not escaped in meta attribute")
	}
}
