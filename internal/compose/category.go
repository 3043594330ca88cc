// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package compose

import (
	"fmt"
	"strings"

	"sitespark/internal/models"
)

// --- Restaurant ---

// menuItem is one row of the canned menu preview. Real menus arrive after
// the owner claims the site; the preview just has to look plausible.
type menuItem struct {
	name, desc, price string
}

var menuPreview = []menuItem{
	{"House Special", "Our signature dish, made fresh daily", "$14"},
	{"Chef's Choice", "Seasonal ingredients, ask your server", "$16"},
	{"Classic Favorite", "The one our regulars keep coming back for", "$12"},
	{"Garden Fresh", "Crisp, light, and locally sourced", "$10"},
}

// menuSection renders the menu preview for restaurants.
func menuSection(in *Input) Section {
	var rows strings.Builder
	for _, item := range menuPreview {
		fmt.Fprintf(&rows, `
    <div class="menu-item reveal">
      <div class="menu-item-head"><h3>%s</h3><span class="menu-dots"></span><span class="menu-price">%s</span></div>
      <p>%s</p>
    </div>`, item.name, item.price, item.desc)
	}
	return Section{ID: "menu", HTML: fmt.Sprintf(`
<section id="menu" class="menu">
  <div class="section-head reveal"><h2>From Our Menu</h2><p>A taste of what %s has to offer</p></div>
  <div class="menu-list">%s
  </div>
</section>`, esc(in.Business.Name), rows.String())}
}

// reservationSection renders the table reservation form.
func reservationSection(in *Input) Section {
	return Section{ID: "reservation", HTML: fmt.Sprintf(`
<section id="reservation" class="reservation">
  <div class="section-head reveal"><h2>Reserve a Table</h2></div>
  <form class="reservation-form reveal" data-ack="Reservation request received &mdash; we&#39;ll confirm by phone.">
    <div class="form-row">
      <input type="text" name="name" placeholder="Name" required>
      <input type="tel" name="phone" placeholder="Phone" required>
    </div>
    <div class="form-row">
      <input type="date" name="date" required>
      <input type="time" name="time" required>
      <select name="party">
        <option>2 guests</option><option>4 guests</option><option>6 guests</option><option>8+ guests</option>
      </select>
    </div>
    <button type="submit" class="btn btn-primary">Request Reservation</button>
    <p class="form-hint">Or call us at %s</p>
  </form>
</section>`, esc(displayPhone(in.Business.Phone)))}
}

// --- Service trades (plumbing, electrical, cleaning, construction) ---

// emergencyBannerSection renders the 24/7 emergency strip under the hero.
func emergencyBannerSection(in *Input) Section {
	return Section{ID: "emergency", HTML: fmt.Sprintf(`
<section id="emergency" class="emergency">
  <div class="emergency-inner">
    <span class="emergency-pulse" aria-hidden="true"></span>
    <p><strong>24/7 Emergency Service</strong> &mdash; fast response when you need it most</p>
    <a class="btn btn-emergency" href="tel:%s">Call Now: %s</a>
  </div>
</section>`, esc(telHref(in.Business.Phone)), esc(displayPhone(in.Business.Phone)))}
}

// estimateRates gives the calculator a plausible base rate per trade.
var estimateRates = map[models.Category]int{
	models.CategoryPlumbing:     95,
	models.CategoryElectrical:   105,
	models.CategoryCleaning:     45,
	models.CategoryConstruction: 85,
}

// estimatorSection renders the interactive cost-estimate calculator.
// The arithmetic lives in the page script; the section just carries the
// base rate and the job-size options.
func estimatorSection(in *Input) Section {
	rate, ok := estimateRates[in.Category]
	if !ok {
		rate = 75
	}
	return Section{ID: "estimator", HTML: fmt.Sprintf(`
<section id="estimator" class="estimator">
  <div class="section-head reveal"><h2>Estimate Your Cost</h2><p>Ballpark figures &mdash; we confirm every quote in person</p></div>
  <div class="estimator-card reveal" data-rate="%d">
    <label>Job size
      <select class="estimator-size">
        <option value="1">Small (1-2 hours)</option>
        <option value="3">Medium (half day)</option>
        <option value="8">Large (full day)</option>
      </select>
    </label>
    <label>Urgency
      <select class="estimator-urgency">
        <option value="1">Standard</option>
        <option value="1.5">Same day</option>
        <option value="2">Emergency</option>
      </select>
    </label>
    <p class="estimator-result">Estimated: <strong class="estimator-total">$%d</strong></p>
    <a class="btn btn-primary" href="#contact">Get an Exact Quote</a>
  </div>
</section>`, rate, rate)}
}

// --- Beauty ---

// socialGallerySection renders the Instagram-style grid of recent work.
func socialGallerySection(in *Input) Section {
	photos := append([]string{in.Images.Service, in.Images.Team}, in.Images.Gallery...)
	var tiles strings.Builder
	for i, p := range photos {
		if i == 6 {
			break
		}
		fmt.Fprintf(&tiles, `
    <div class="social-tile reveal" style="transition-delay:%dms">
      <img src="%s" alt="Recent work at %s" loading="lazy">
      <span class="social-likes">&hearts; %d</span>
    </div>`, i*60, esc(p), esc(in.Business.Name), 84+i*37)
	}
	return Section{ID: "social-gallery", HTML: fmt.Sprintf(`
<section id="social-gallery" class="social-gallery">
  <div class="section-head reveal"><h2>Recent Work</h2><p>Follow %s for daily inspiration</p></div>
  <div class="social-grid">%s
  </div>
</section>`, esc(in.Business.Name), tiles.String())}
}

// stylists staffs the booking widget. Placeholder roster until the owner
// claims the site and adds their real team.
var stylists = []string{"Alex", "Jordan", "Sam", "No preference"}

// bookingSection renders the appointment booking widget with stylist
// selection.
func bookingSection(in *Input) Section {
	var options strings.Builder
	for _, s := range stylists {
		fmt.Fprintf(&options, `<option>%s</option>`, s)
	}
	return Section{ID: "booking", HTML: fmt.Sprintf(`
<section id="booking" class="booking">
  <div class="section-head reveal"><h2>Book an Appointment</h2></div>
  <form class="booking-form reveal" data-ack="Booking request received &mdash; we&#39;ll text you to confirm.">
    <div class="form-row">
      <input type="text" name="name" placeholder="Name" required>
      <input type="tel" name="phone" placeholder="Phone" required>
    </div>
    <div class="form-row">
      <select name="service">
        <option>Cut &amp; Style</option><option>Color</option><option>Nails</option><option>Spa Treatment</option>
      </select>
      <select name="stylist" aria-label="Choose your stylist">%s</select>
      <input type="date" name="date" required>
    </div>
    <button type="submit" class="btn btn-primary">Request Booking</button>
  </form>
</section>`, options.String())}
}
