// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package compose

import (
	"fmt"

	"sitespark/internal/models"
)

// heroSection renders one of three structurally distinct hero layouts
// selected by the layout variant. All three share the same inputs; only
// arrangement differs.
func heroSection(in *Input) Section {
	switch in.Variant {
	case models.VariantSplit:
		return heroSplit(in)
	case models.VariantFullBleed:
		return heroFullBleed(in)
	default:
		return heroClassic(in)
	}
}

// heroClassic: centered copy over a dimmed background image.
func heroClassic(in *Input) Section {
	return Section{ID: "hero", HTML: fmt.Sprintf(`
<section id="hero" class="hero hero-classic" style="background-image:linear-gradient(rgba(0,0,0,.55),rgba(0,0,0,.55)),url('%s')">
  <div class="hero-inner reveal">
    <h1>%s</h1>
    <p class="hero-tagline">%s</p>
    <div class="hero-actions">
      <a class="btn btn-primary" href="#contact">Get in Touch</a>
      <a class="btn btn-outline" href="#services">Our Services</a>
    </div>
  </div>
</section>`,
		esc(in.Images.Hero), esc(in.Business.Name), esc(in.Content.Tagline))}
}

// heroSplit: copy on the left, image card on the right.
func heroSplit(in *Input) Section {
	location := in.Business.Location()
	return Section{ID: "hero", HTML: fmt.Sprintf(`
<section id="hero" class="hero hero-split">
  <div class="hero-split-copy reveal">
    <p class="hero-kicker">%s</p>
    <h1>%s</h1>
    <p class="hero-tagline">%s</p>
    <div class="hero-actions">
      <a class="btn btn-primary" href="#contact">Get in Touch</a>
      <a class="btn btn-ghost" href="#about">Learn More</a>
    </div>
  </div>
  <div class="hero-split-media reveal">
    <img src="%s" alt="%s" loading="eager">
  </div>
</section>`,
		esc(location), esc(in.Business.Name), esc(in.Content.Tagline),
		esc(in.Images.Hero), esc(in.Business.Name))}
}

// heroFullBleed: full-width image with a floating badge and a feature
// strip along the bottom edge.
func heroFullBleed(in *Input) Section {
	features := ""
	for i, svc := range in.Content.Services {
		if i == 3 {
			break
		}
		features += fmt.Sprintf(`<span class="hero-feature">%s</span>`, esc(svc))
	}
	return Section{ID: "hero", HTML: fmt.Sprintf(`
<section id="hero" class="hero hero-fullbleed" style="background-image:url('%s')">
  <div class="hero-overlay"></div>
  <div class="hero-badge reveal">
    <span class="hero-badge-style">%s</span>
    <h1>%s</h1>
    <p class="hero-tagline">%s</p>
    <a class="btn btn-primary" href="#contact">Get in Touch</a>
  </div>
  <div class="hero-feature-strip">%s</div>
</section>`,
		esc(in.Images.Hero), esc(in.Theme.Style), esc(in.Business.Name),
		esc(in.Content.Tagline), features)}
}
