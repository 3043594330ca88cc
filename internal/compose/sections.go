// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package compose

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// navSection: fixed top bar with anchor links and a mobile toggle.
func navSection(in *Input) Section {
	return Section{ID: "nav", HTML: fmt.Sprintf(`
<nav id="nav" class="nav">
  <div class="nav-inner">
    <a class="nav-brand" href="#hero">%s</a>
    <button class="nav-toggle" aria-label="Toggle menu" aria-expanded="false">&#9776;</button>
    <ul class="nav-links">
      <li><a href="#about">About</a></li>
      <li><a href="#services">Services</a></li>
      <li><a href="#gallery">Gallery</a></li>
      <li><a href="#reviews">Reviews</a></li>
      <li><a class="nav-cta" href="#contact">Contact</a></li>
    </ul>
  </div>
</nav>`, esc(in.Business.Name))}
}

// trustSection: the signal bar under the hero, with animated counters.
func trustSection(in *Input) Section {
	return Section{ID: "trust", HTML: `
<section id="trust" class="trust">
  <div class="trust-inner reveal">
    <div class="trust-item"><span class="counter" data-target="500">0</span><span class="trust-label">Happy Customers</span></div>
    <div class="trust-item"><span class="counter" data-target="10">0</span><span class="trust-label">Years in Business</span></div>
    <div class="trust-item"><span class="counter" data-target="100">0</span><span class="trust-label">% Satisfaction</span></div>
    <div class="trust-item"><span class="trust-badge">Licensed &amp; Insured</span></div>
  </div>
</section>`}
}

// engagementSection: the about block with the generated description and a
// direct call prompt. Doubles as the #about anchor target.
func engagementSection(in *Input) Section {
	return Section{ID: "about", HTML: fmt.Sprintf(`
<section id="about" class="about">
  <div class="about-inner reveal">
    <h2>About %s</h2>
    <p class="about-description">%s</p>
    <div class="about-cta">
      <p>Ready to get started?</p>
      <a class="btn btn-primary" href="tel:%s">Call %s</a>
    </div>
  </div>
</section>`,
		esc(in.Business.Name), esc(in.Content.Description),
		esc(telHref(in.Business.Phone)), esc(displayPhone(in.Business.Phone)))}
}

// servicesSection: responsive card grid of the generated service list.
func servicesSection(in *Input) Section {
	var cards strings.Builder
	for i, svc := range in.Content.Services {
		fmt.Fprintf(&cards, `
    <div class="service-card reveal" style="transition-delay:%dms">
      <img src="%s" alt="%s" loading="lazy">
      <h3>%s</h3>
    </div>`, i*80, esc(in.Images.Service), esc(svc), esc(svc))
	}
	return Section{ID: "services", HTML: fmt.Sprintf(`
<section id="services" class="services">
  <div class="section-head reveal"><h2>Our Services</h2></div>
  <div class="services-grid">%s
  </div>
</section>`, cards.String())}
}

// gallerySection: photo grid with lightbox triggers.
func gallerySection(in *Input) Section {
	photos := append([]string{in.Images.Hero, in.Images.Service, in.Images.Team}, in.Images.Gallery...)
	var items strings.Builder
	for _, p := range photos {
		fmt.Fprintf(&items, `
    <button class="gallery-item lightbox-trigger" data-full="%s">
      <img src="%s" alt="%s photo" loading="lazy">
    </button>`, esc(p), esc(p), esc(in.Business.Name))
	}
	return Section{ID: "gallery", HTML: fmt.Sprintf(`
<section id="gallery" class="gallery">
  <div class="section-head reveal"><h2>Gallery</h2></div>
  <div class="gallery-grid reveal">%s
  </div>
  <div class="lightbox" hidden><img src="" alt="Enlarged photo"><button class="lightbox-close" aria-label="Close">&times;</button></div>
</section>`, items.String())}
}

// testimonialsSection: review cards with star ratings.
func testimonialsSection(in *Input) Section {
	var cards strings.Builder
	for _, t := range in.Content.Testimonials {
		fmt.Fprintf(&cards, `
    <figure class="review-card reveal">
      <div class="review-stars" aria-label="%d out of 5 stars">%s</div>
      <blockquote>%s</blockquote>
      <figcaption>&mdash; %s</figcaption>
    </figure>`, t.Rating, stars(t.Rating), esc(t.Text), esc(t.Name))
	}
	return Section{ID: "reviews", HTML: fmt.Sprintf(`
<section id="reviews" class="reviews">
  <div class="section-head reveal"><h2>What Our Customers Say</h2></div>
  <div class="reviews-grid">%s
  </div>
</section>`, cards.String())}
}

// contactSection: address, phone, hours table, and an embedded map query.
func contactSection(in *Input) Section {
	b := in.Business

	var hoursRows strings.Builder
	for _, h := range in.Content.Hours {
		fmt.Fprintf(&hoursRows, `
      <tr><td>%s</td><td>%s</td></tr>`, esc(h.Day), esc(h.Hours))
	}

	email := ""
	if b.Email != nil && *b.Email != "" {
		email = fmt.Sprintf(`<p class="contact-line"><a href="mailto:%s">%s</a></p>`, esc(*b.Email), esc(*b.Email))
	}

	mapQuery := url.QueryEscape(strings.TrimSpace(strings.Join([]string{b.Name, b.Address, b.City, b.State, b.Zip}, " ")))

	return Section{ID: "contact", HTML: fmt.Sprintf(`
<section id="contact" class="contact">
  <div class="section-head reveal"><h2>Visit Us</h2></div>
  <div class="contact-grid">
    <div class="contact-info reveal">
      <p class="contact-line">%s<br>%s, %s %s</p>
      <p class="contact-line"><a href="tel:%s">%s</a></p>
      %s
      <table class="hours-table">%s
      </table>
    </div>
    <div class="contact-map reveal">
      <iframe title="Map to %s" src="https://www.google.com/maps?q=%s&output=embed" loading="lazy" referrerpolicy="no-referrer-when-downgrade"></iframe>
    </div>
  </div>
  <form class="contact-form reveal" data-ack="Thanks! We&#39;ll be in touch shortly.">
    <h3>Send Us a Message</h3>
    <input type="text" name="name" placeholder="Your name" required>
    <input type="email" name="email" placeholder="Your email" required>
    <textarea name="message" rows="4" placeholder="How can we help?" required></textarea>
    <button type="submit" class="btn btn-primary">Send Message</button>
  </form>
</section>`,
		esc(b.Address), esc(b.City), esc(b.State), esc(b.Zip),
		esc(telHref(b.Phone)), esc(displayPhone(b.Phone)),
		email, hoursRows.String(), esc(b.Name), mapQuery)}
}

// footerSection: closing bar with the claim prompt for the preview.
func footerSection(in *Input) Section {
	return Section{ID: "footer", HTML: fmt.Sprintf(`
<footer id="footer" class="footer">
  <div class="footer-inner">
    <p class="footer-brand">%s</p>
    <p class="footer-note">%s, %s</p>
    <p class="footer-claim">This website preview was created for %s. Like what you see? Claim it from the link in your email.</p>
  </div>
</footer>`,
		esc(in.Business.Name), esc(in.Business.City), esc(in.Business.State), esc(in.Business.Name))}
}

// stars renders a 1-5 rating as filled and empty star glyphs.
func stars(rating int) string {
	if rating < 1 {
		rating = 1
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat("&#9733;", rating) + strings.Repeat("&#9734;", 5-rating)
}

// displayPhone formats a raw phone string for display using libphonenumber
// (national format for US numbers). Unparseable input is shown as is.
func displayPhone(raw string) string {
	num, err := phonenumbers.Parse(raw, "US")
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return raw
	}
	return phonenumbers.Format(num, phonenumbers.NATIONAL)
}

// telHref builds the tel: target in E.164 where possible.
func telHref(raw string) string {
	num, err := phonenumbers.Parse(raw, "US")
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return strings.Map(func(r rune) rune {
			if r >= '0' && r <= '9' || r == '+' {
				return r
			}
			return -1
		}, raw)
	}
	return phonenumbers.Format(num, phonenumbers.E164)
}
