// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package assemble serializes composed page sections into one
// self-contained HTML document: head metadata, a stylesheet driven by
// theme CSS custom properties, the section fragments in order, and the
// client-side interactivity script. The document renders standalone with
// no build step and no external assets beyond image URLs.
package assemble

import (
	"fmt"
	"html"
	"strings"

	"sitespark/internal/compose"
	"sitespark/internal/models"
)

// TemplateTag returns the "template used" bookkeeping tag for a category
// and layout variant, e.g. "restaurant-split".
func TemplateTag(category models.Category, variant models.LayoutVariant) string {
	return fmt.Sprintf("%s-%s", category, variant)
}

// Document builds the final self-contained HTML document. The template
// tag is embedded as a meta element so downstream tooling can discover
// which category/variant produced a stored artifact.
func Document(b *models.Business, t models.Theme, category models.Category, variant models.LayoutVariant, desc string, sections []compose.Section) string {
	var sb strings.Builder

	title := b.Name
	if loc := b.Location(); loc != "" {
		title += " | " + loc
	}

	sb.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	sb.WriteString("<meta charset=\"utf-8\">\n")
	sb.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	fmt.Fprintf(&sb, "<title>%s</title>\n", html.EscapeString(title))
	fmt.Fprintf(&sb, "<meta name=\"description\" content=\"%s\">\n", html.EscapeString(desc))
	fmt.Fprintf(&sb, "<meta name=\"generator\" content=\"sitespark\">\n")
	fmt.Fprintf(&sb, "<meta name=\"template-used\" content=\"%s\">\n", html.EscapeString(TemplateTag(category, variant)))
	fmt.Fprintf(&sb, "<style>\n%s\n%s</style>\n", themeVars(t, variant), stylesheet)
	sb.WriteString("</head>\n<body>\n")

	for _, s := range sections {
		sb.WriteString(s.HTML)
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "<script>\n%s</script>\n", script)
	sb.WriteString("</body>\n</html>\n")
	return sb.String()
}

// themeVars renders the :root custom-property block from the theme plus
// the variant-dependent knobs (button radius, grid density, animation
// pacing).
func themeVars(t models.Theme, variant models.LayoutVariant) string {
	radius, columns, pace := "8px", "3", "0.6s"
	switch variant {
	case models.VariantSplit:
		radius, columns, pace = "999px", "2", "0.8s"
	case models.VariantFullBleed:
		radius, columns, pace = "2px", "4", "0.45s"
	}

	return fmt.Sprintf(`:root {
  --color-primary: %s;
  --color-secondary: %s;
  --color-accent: %s;
  --gradient: %s;
  --color-text: %s;
  --color-light: %s;
  --color-dark: %s;
  --font-heading: %s;
  --font-body: %s;
  --font-accent: %s;
  --btn-radius: %s;
  --grid-columns: %s;
  --reveal-pace: %s;
}`,
		t.Primary, t.Secondary, t.Accent, t.Gradient, t.Text, t.Light, t.Dark,
		t.HeadingFont, t.BodyFont, t.AccentFont, radius, columns, pace)
}

// stylesheet is the full static stylesheet; everything theme- or
// variant-specific flows through the custom properties above.
const stylesheet = `* { margin: 0; padding: 0; box-sizing: border-box; }
html { scroll-behavior: smooth; }
body { font-family: var(--font-body); color: var(--color-text); background: #fff; line-height: 1.6; }
h1, h2, h3 { font-family: var(--font-heading); line-height: 1.2; }
h2 { font-size: 2rem; margin-bottom: .5rem; }
img { max-width: 100%; display: block; }
section { padding: 4rem 1.5rem; }
.section-head { text-align: center; max-width: 640px; margin: 0 auto 2.5rem; }
.section-head p { opacity: .75; }
.btn { display: inline-block; padding: .75rem 1.75rem; border: 2px solid transparent; border-radius: var(--btn-radius); font-weight: 600; text-decoration: none; cursor: pointer; transition: transform .15s, opacity .15s; }
.btn:hover { transform: translateY(-2px); opacity: .92; }
.btn-primary { background: var(--color-primary); color: #fff; }
.btn-outline { border-color: #fff; color: #fff; }
.btn-ghost { border-color: var(--color-primary); color: var(--color-primary); }
.btn-emergency { background: var(--color-accent); color: var(--color-dark); font-weight: 700; }
.reveal { opacity: 0; transform: translateY(24px); transition: opacity var(--reveal-pace) ease, transform var(--reveal-pace) ease; }
.reveal.visible { opacity: 1; transform: none; }

.nav { position: fixed; top: 0; left: 0; right: 0; z-index: 50; background: var(--color-dark); }
.nav-inner { max-width: 1100px; margin: 0 auto; padding: .85rem 1.5rem; display: flex; align-items: center; justify-content: space-between; }
.nav-brand { font-family: var(--font-heading); font-size: 1.25rem; color: #fff; text-decoration: none; }
.nav-links { display: flex; gap: 1.5rem; list-style: none; }
.nav-links a { color: #fff; text-decoration: none; font-size: .95rem; }
.nav-cta { color: var(--color-accent) !important; font-weight: 700; }
.nav-toggle { display: none; background: none; border: 0; color: #fff; font-size: 1.5rem; cursor: pointer; }

.hero { min-height: 85vh; display: flex; align-items: center; justify-content: center; margin-top: 3.25rem; background-size: cover; background-position: center; }
.hero h1 { font-size: clamp(2.25rem, 6vw, 4rem); }
.hero-tagline { font-family: var(--font-accent); font-size: 1.35rem; margin: 1rem 0 1.75rem; }
.hero-actions { display: flex; gap: 1rem; justify-content: center; flex-wrap: wrap; }
.hero-classic { text-align: center; color: #fff; }
.hero-classic .hero-inner { max-width: 760px; padding: 2rem; }
.hero-split { background: var(--gradient); color: #fff; gap: 3rem; padding: 6rem 1.5rem 4rem; flex-wrap: wrap; }
.hero-split-copy { max-width: 480px; }
.hero-kicker { text-transform: uppercase; letter-spacing: .2em; font-size: .8rem; color: var(--color-accent); }
.hero-split-media img { border-radius: 16px; box-shadow: 0 24px 48px rgba(0,0,0,.35); max-width: 440px; }
.hero-fullbleed { position: relative; color: #fff; }
.hero-overlay { position: absolute; inset: 0; background: linear-gradient(rgba(0,0,0,.25), rgba(0,0,0,.7)); }
.hero-badge { position: relative; background: rgba(0,0,0,.55); border: 1px solid var(--color-accent); padding: 2.5rem; text-align: center; max-width: 560px; }
.hero-badge-style { text-transform: uppercase; letter-spacing: .25em; font-size: .75rem; color: var(--color-accent); }
.hero-feature-strip { position: absolute; bottom: 0; left: 0; right: 0; display: flex; justify-content: center; gap: 2rem; padding: 1rem; background: rgba(0,0,0,.65); flex-wrap: wrap; }
.hero-feature { font-size: .9rem; }

.trust { background: var(--color-dark); color: #fff; padding: 2.5rem 1.5rem; }
.trust-inner { max-width: 1000px; margin: 0 auto; display: flex; justify-content: space-around; flex-wrap: wrap; gap: 1.5rem; text-align: center; }
.counter { font-size: 2.25rem; font-weight: 800; color: var(--color-accent); display: block; }
.trust-label { font-size: .85rem; opacity: .8; }
.trust-badge { border: 1px solid var(--color-accent); padding: .5rem 1rem; border-radius: var(--btn-radius); }

.about { background: var(--color-light); text-align: center; }
.about-inner { max-width: 720px; margin: 0 auto; }
.about-description { margin: 1.25rem 0 2rem; font-size: 1.1rem; }
.about-cta p { font-weight: 600; margin-bottom: .75rem; }

.emergency { background: var(--color-accent); color: var(--color-dark); padding: 1.25rem 1.5rem; }
.emergency-inner { max-width: 1000px; margin: 0 auto; display: flex; align-items: center; justify-content: center; gap: 1.5rem; flex-wrap: wrap; }
.emergency-pulse { width: 12px; height: 12px; border-radius: 50%; background: var(--color-dark); animation: pulse 1.2s infinite; }
@keyframes pulse { 0%,100% { opacity: 1; } 50% { opacity: .25; } }

.services-grid { max-width: 1100px; margin: 0 auto; display: grid; grid-template-columns: repeat(var(--grid-columns), 1fr); gap: 1.5rem; }
.service-card { border-radius: 12px; overflow: hidden; box-shadow: 0 8px 24px rgba(0,0,0,.08); background: #fff; }
.service-card img { height: 160px; width: 100%; object-fit: cover; }
.service-card h3 { padding: 1rem 1.25rem; font-size: 1.05rem; }

.menu { background: var(--color-light); }
.menu-list { max-width: 720px; margin: 0 auto; }
.menu-item { padding: 1.25rem 0; border-bottom: 1px dashed var(--color-primary); }
.menu-item-head { display: flex; align-items: baseline; gap: .75rem; }
.menu-dots { flex: 1; border-bottom: 2px dotted currentColor; opacity: .35; }
.menu-price { font-family: var(--font-heading); color: var(--color-primary); font-weight: 700; }

.estimator-card { max-width: 480px; margin: 0 auto; background: var(--color-light); padding: 2rem; border-radius: 12px; display: grid; gap: 1rem; }
.estimator-card label { font-weight: 600; display: grid; gap: .35rem; }
.estimator-card select { padding: .6rem; border: 1px solid #cbd5e1; border-radius: 6px; font: inherit; }
.estimator-result { font-size: 1.15rem; }
.estimator-total { color: var(--color-primary); font-size: 1.5rem; }

.gallery-grid { max-width: 1100px; margin: 0 auto; display: grid; grid-template-columns: repeat(var(--grid-columns), 1fr); gap: .75rem; }
.gallery-item { border: 0; padding: 0; cursor: zoom-in; border-radius: 8px; overflow: hidden; background: none; }
.gallery-item img { height: 200px; width: 100%; object-fit: cover; transition: transform .3s; }
.gallery-item:hover img { transform: scale(1.05); }
.lightbox { position: fixed; inset: 0; z-index: 100; background: rgba(0,0,0,.9); display: flex; align-items: center; justify-content: center; }
.lightbox[hidden] { display: none; }
.lightbox img { max-height: 88vh; max-width: 92vw; }
.lightbox-close { position: absolute; top: 1rem; right: 1.5rem; background: none; border: 0; color: #fff; font-size: 2.5rem; cursor: pointer; }

.social-grid { max-width: 900px; margin: 0 auto; display: grid; grid-template-columns: repeat(3, 1fr); gap: .5rem; }
.social-tile { position: relative; border-radius: 6px; overflow: hidden; }
.social-tile img { height: 220px; width: 100%; object-fit: cover; }
.social-likes { position: absolute; bottom: .5rem; right: .6rem; color: #fff; font-size: .85rem; text-shadow: 0 1px 4px rgba(0,0,0,.8); }

.reviews { background: var(--gradient); color: #fff; }
.reviews-grid { max-width: 1100px; margin: 0 auto; display: grid; grid-template-columns: repeat(var(--grid-columns), 1fr); gap: 1.5rem; }
.review-card { background: rgba(255,255,255,.1); border-radius: 12px; padding: 1.75rem; }
.review-stars { color: var(--color-accent); letter-spacing: .15em; margin-bottom: .75rem; }
.review-card blockquote { font-style: italic; margin-bottom: 1rem; }

.contact-grid { max-width: 1000px; margin: 0 auto 2.5rem; display: grid; grid-template-columns: 1fr 1fr; gap: 2.5rem; }
.contact-line { margin-bottom: .75rem; font-size: 1.05rem; }
.contact-line a { color: var(--color-primary); }
.hours-table { margin-top: 1.25rem; width: 100%; border-collapse: collapse; }
.hours-table td { padding: .35rem 0; border-bottom: 1px solid var(--color-light); }
.hours-table td:last-child { text-align: right; }
.contact-map iframe { width: 100%; height: 100%; min-height: 320px; border: 0; border-radius: 12px; }
.contact-form, .reservation-form, .booking-form { max-width: 560px; margin: 0 auto; display: grid; gap: .85rem; }
.contact-form input, .contact-form textarea, .reservation-form input, .reservation-form select, .booking-form input, .booking-form select { padding: .7rem .9rem; border: 1px solid #cbd5e1; border-radius: 6px; font: inherit; width: 100%; }
.form-row { display: flex; gap: .85rem; }
.form-hint { text-align: center; font-size: .9rem; opacity: .75; }
.form-ack { text-align: center; font-weight: 600; color: var(--color-primary); padding: 1rem; }

.reservation, .booking { background: var(--color-light); }

.footer { background: var(--color-dark); color: #fff; text-align: center; padding: 2.5rem 1.5rem; }
.footer-brand { font-family: var(--font-heading); font-size: 1.35rem; }
.footer-note { opacity: .7; margin: .5rem 0 1rem; }
.footer-claim { font-size: .85rem; opacity: .6; max-width: 520px; margin: 0 auto; }

@media (max-width: 820px) {
  .services-grid, .gallery-grid, .reviews-grid { grid-template-columns: 1fr 1fr; }
  .contact-grid { grid-template-columns: 1fr; }
  .nav-toggle { display: block; }
  .nav-links { display: none; position: absolute; top: 100%; left: 0; right: 0; background: var(--color-dark); flex-direction: column; padding: 1rem 1.5rem; }
  .nav-links.open { display: flex; }
}
@media (max-width: 540px) {
  .services-grid, .gallery-grid, .reviews-grid, .social-grid { grid-template-columns: 1fr; }
  .form-row { flex-direction: column; }
}
`

// script is the client-side interactivity block: scroll-triggered reveal,
// mobile nav toggle, numeric counters, gallery lightbox, cost estimator,
// and the form-submit acknowledgement. Previews have no backend, so form
// submissions only acknowledge locally.
const script = `(function () {
  // Scroll-triggered reveal.
  var io = new IntersectionObserver(function (entries) {
    entries.forEach(function (e) {
      if (e.isIntersecting) { e.target.classList.add('visible'); io.unobserve(e.target); }
    });
  }, { threshold: 0.15 });
  document.querySelectorAll('.reveal').forEach(function (el) { io.observe(el); });

  // Mobile nav toggle.
  var toggle = document.querySelector('.nav-toggle');
  var links = document.querySelector('.nav-links');
  if (toggle && links) {
    toggle.addEventListener('click', function () {
      var open = links.classList.toggle('open');
      toggle.setAttribute('aria-expanded', open ? 'true' : 'false');
    });
    links.addEventListener('click', function () { links.classList.remove('open'); });
  }

  // Numeric counters in the trust bar.
  var counterIO = new IntersectionObserver(function (entries) {
    entries.forEach(function (e) {
      if (!e.isIntersecting) return;
      counterIO.unobserve(e.target);
      var el = e.target, target = parseInt(el.dataset.target, 10) || 0, n = 0;
      var step = Math.max(1, Math.round(target / 40));
      var timer = setInterval(function () {
        n += step;
        if (n >= target) { n = target; clearInterval(timer); }
        el.textContent = n;
      }, 30);
    });
  }, { threshold: 0.5 });
  document.querySelectorAll('.counter').forEach(function (el) { counterIO.observe(el); });

  // Gallery lightbox.
  var lightbox = document.querySelector('.lightbox');
  if (lightbox) {
    var lightboxImg = lightbox.querySelector('img');
    document.querySelectorAll('.lightbox-trigger').forEach(function (btn) {
      btn.addEventListener('click', function () {
        lightboxImg.src = btn.dataset.full;
        lightbox.hidden = false;
      });
    });
    lightbox.addEventListener('click', function () { lightbox.hidden = true; });
  }

  // Cost estimator.
  var estimator = document.querySelector('.estimator-card');
  if (estimator) {
    var rate = parseFloat(estimator.dataset.rate) || 0;
    var size = estimator.querySelector('.estimator-size');
    var urgency = estimator.querySelector('.estimator-urgency');
    var total = estimator.querySelector('.estimator-total');
    var update = function () {
      total.textContent = '$' + Math.round(rate * parseFloat(size.value) * parseFloat(urgency.value));
    };
    size.addEventListener('change', update);
    urgency.addEventListener('change', update);
  }

  // Form-submit acknowledgement (previews have no backend).
  document.querySelectorAll('form[data-ack]').forEach(function (form) {
    form.addEventListener('submit', function (ev) {
      ev.preventDefault();
      var ack = document.createElement('p');
      ack.className = 'form-ack';
      ack.textContent = form.dataset.ack;
      form.replaceWith(ack);
    });
  });
})();
`
