// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"fmt"
	"hash/fnv"
	"strings"

	"sitespark/internal/models"
)

// categoryCopy holds the deterministic fallback copy for one category.
// Taglines and descriptions are small pools; the pick for a business is
// derived from a hash of its name so regenerations produce identical copy.
type categoryCopy struct {
	taglines     []string
	descriptions []string
	services     []string
	testimonials []models.Testimonial
	hours        []models.DayHours
}

var weekdayHours = []models.DayHours{
	{Day: "Monday", Hours: "9:00 AM - 6:00 PM"},
	{Day: "Tuesday", Hours: "9:00 AM - 6:00 PM"},
	{Day: "Wednesday", Hours: "9:00 AM - 6:00 PM"},
	{Day: "Thursday", Hours: "9:00 AM - 6:00 PM"},
	{Day: "Friday", Hours: "9:00 AM - 6:00 PM"},
	{Day: "Saturday", Hours: "10:00 AM - 4:00 PM"},
	{Day: "Sunday", Hours: "Closed"},
}

var tradeHours = []models.DayHours{
	{Day: "Monday", Hours: "7:00 AM - 7:00 PM"},
	{Day: "Tuesday", Hours: "7:00 AM - 7:00 PM"},
	{Day: "Wednesday", Hours: "7:00 AM - 7:00 PM"},
	{Day: "Thursday", Hours: "7:00 AM - 7:00 PM"},
	{Day: "Friday", Hours: "7:00 AM - 7:00 PM"},
	{Day: "Saturday", Hours: "8:00 AM - 5:00 PM"},
	{Day: "Sunday", Hours: "Emergency calls only"},
}

var restaurantHours = []models.DayHours{
	{Day: "Monday", Hours: "11:00 AM - 9:00 PM"},
	{Day: "Tuesday", Hours: "11:00 AM - 9:00 PM"},
	{Day: "Wednesday", Hours: "11:00 AM - 9:00 PM"},
	{Day: "Thursday", Hours: "11:00 AM - 10:00 PM"},
	{Day: "Friday", Hours: "11:00 AM - 11:00 PM"},
	{Day: "Saturday", Hours: "11:00 AM - 11:00 PM"},
	{Day: "Sunday", Hours: "12:00 PM - 8:00 PM"},
}

var fallbackCopy = map[models.Category]categoryCopy{
	models.CategoryRestaurant: {
		taglines: []string{
			"Fresh flavors, made from scratch daily",
			"Where every meal feels like home",
			"Good food, good company, great memories",
		},
		descriptions: []string{
			"%s has been serving %s with honest, flavorful cooking made from quality ingredients. From the first bite to the last, our kitchen puts care into every plate — and our dining room treats you like family.",
			"At %s, we believe a great meal brings people together. Our team in %s prepares everything fresh daily, pairing classic recipes with seasonal ingredients you can taste in every dish.",
		},
		services: []string{"Dine-In", "Takeout", "Catering", "Private Events", "Daily Specials", "Online Ordering"},
		testimonials: []models.Testimonial{
			{Name: "Maria G.", Rating: 5, Text: "Absolutely delicious every single time. The staff remembers our order and always greets us with a smile."},
			{Name: "David R.", Rating: 5, Text: "Best spot in the neighborhood. Generous portions and everything tastes homemade."},
			{Name: "Jennifer L.", Rating: 4, Text: "Great atmosphere for a family dinner. The specials are always worth trying."},
		},
		hours: restaurantHours,
	},
	models.CategoryPlumbing: {
		taglines: []string{
			"Fast, honest plumbing — done right the first time",
			"Your trusted local plumbers, day or night",
			"Leaks stop here",
		},
		descriptions: []string{
			"%s provides dependable plumbing services throughout %s. From dripping faucets to full repipes, our licensed technicians show up on time, explain the work up front, and stand behind every repair.",
			"When water goes where it shouldn't, %s is the call to make. We've helped homeowners and businesses across %s with fair pricing, clean workmanship, and straight answers.",
		},
		services: []string{"Emergency Repairs", "Drain Cleaning", "Water Heaters", "Leak Detection", "Fixture Installation", "Sewer Lines"},
		testimonials: []models.Testimonial{
			{Name: "Tom B.", Rating: 5, Text: "Called at 7am with a burst pipe, they were here by 8:30. Professional, fast, and fairly priced."},
			{Name: "Susan K.", Rating: 5, Text: "Finally a plumber who explains what's wrong before charging you. Highly recommend."},
			{Name: "Mike P.", Rating: 4, Text: "Replaced our water heater same day. Clean work and no surprises on the bill."},
		},
		hours: tradeHours,
	},
	models.CategoryBeauty: {
		taglines: []string{
			"Look amazing, feel unstoppable",
			"Your beauty, our passion",
			"Where style meets self-care",
		},
		descriptions: []string{
			"%s is %s's destination for looking and feeling your best. Our talented stylists stay on top of the latest techniques and take the time to understand exactly what you want before picking up the scissors.",
			"Step into %s and leave the rest of the day behind. Serving %s with personalized cuts, color, and care in a relaxed, welcoming studio.",
		},
		services: []string{"Haircuts & Styling", "Color & Highlights", "Manicures & Pedicures", "Facials", "Waxing", "Bridal Packages"},
		testimonials: []models.Testimonial{
			{Name: "Ashley T.", Rating: 5, Text: "My stylist listened to exactly what I wanted and the color came out perfect. I won't go anywhere else."},
			{Name: "Rachel M.", Rating: 5, Text: "Such a relaxing atmosphere, and my nails have never looked better."},
			{Name: "Nicole W.", Rating: 4, Text: "Got my hair done for my wedding here — the whole bridal party looked stunning."},
		},
		hours: weekdayHours,
	},
	models.CategoryAuto: {
		taglines: []string{
			"Honest repairs, fair prices, back on the road fast",
			"Your car's best friend",
			"Service you can trust, mile after mile",
		},
		descriptions: []string{
			"%s keeps %s driving with straightforward diagnostics and quality repairs. Our certified mechanics treat every vehicle like their own and never recommend work you don't need.",
			"From oil changes to engine rebuilds, %s has earned the trust of drivers across %s with transparent estimates and workmanship we stand behind.",
		},
		services: []string{"Oil Changes", "Brake Service", "Engine Diagnostics", "Tire & Alignment", "AC Repair", "State Inspections"},
		testimonials: []models.Testimonial{
			{Name: "Carlos H.", Rating: 5, Text: "They showed me the worn part before replacing it and the final bill matched the estimate. Rare these days."},
			{Name: "Linda F.", Rating: 5, Text: "Fast, friendly, and they didn't try to upsell me on anything. My whole family brings their cars here."},
			{Name: "Greg S.", Rating: 4, Text: "Got my brakes done in a couple hours at a fair price."},
		},
		hours: weekdayHours,
	},
	models.CategoryCleaning: {
		taglines: []string{
			"A cleaner space, a clearer mind",
			"We make clean look easy",
			"Spotless results, every visit",
		},
		descriptions: []string{
			"%s delivers thorough, reliable cleaning for homes and offices across %s. Our bonded and insured team brings their own supplies, follows a detailed checklist, and doesn't call a job done until it shines.",
			"Life's too short to spend your weekends scrubbing. Let %s handle the dirty work — trusted by families and businesses throughout %s.",
		},
		services: []string{"Residential Cleaning", "Office Cleaning", "Deep Cleaning", "Move-In/Move-Out", "Carpet Cleaning", "Window Washing"},
		testimonials: []models.Testimonial{
			{Name: "Patricia D.", Rating: 5, Text: "My house has never looked this good. They get into corners I didn't know existed."},
			{Name: "James O.", Rating: 5, Text: "We use them for our office weekly. Always on time, always thorough."},
			{Name: "Karen V.", Rating: 4, Text: "Booked a move-out clean and got every bit of our deposit back."},
		},
		hours: weekdayHours,
	},
	models.CategoryElectrical: {
		taglines: []string{
			"Powering your home safely",
			"Bright ideas, expert hands",
			"Wired right, guaranteed",
		},
		descriptions: []string{
			"%s handles electrical work across %s the right way — permitted, inspected, and guaranteed. From a single outlet to a full panel upgrade, our licensed electricians put safety first.",
			"Flickering lights or planning a remodel? %s brings decades of combined experience to homes and businesses in %s, with upfront pricing and tidy workmanship.",
		},
		services: []string{"Panel Upgrades", "Lighting Installation", "Outlet & Switch Repair", "Ceiling Fans", "EV Chargers", "Safety Inspections"},
		testimonials: []models.Testimonial{
			{Name: "Robert N.", Rating: 5, Text: "Upgraded our panel and installed an EV charger in one visit. Clean, professional work."},
			{Name: "Diane C.", Rating: 5, Text: "Found and fixed a wiring issue two other companies missed."},
			{Name: "Paul E.", Rating: 4, Text: "Quick response and fair pricing on our lighting project."},
		},
		hours: tradeHours,
	},
	models.CategoryConstruction: {
		taglines: []string{
			"Building your vision, board by board",
			"Quality construction, lasting results",
			"From blueprint to beautiful",
		},
		descriptions: []string{
			"%s builds and remodels throughout %s with craftsmanship that holds up for decades. We keep projects on schedule, on budget, and keep you informed at every stage.",
			"Whether it's a kitchen remodel or a ground-up build, %s brings licensed trades, quality materials, and honest communication to every %s project.",
		},
		services: []string{"Kitchen Remodels", "Bathroom Remodels", "Additions", "Roofing", "Decks & Patios", "General Contracting"},
		testimonials: []models.Testimonial{
			{Name: "Steven A.", Rating: 5, Text: "Our kitchen remodel finished a week early and looks incredible. Communication was excellent throughout."},
			{Name: "Michelle R.", Rating: 5, Text: "They treated our home like their own. The crew cleaned up every single day."},
			{Name: "Frank J.", Rating: 4, Text: "Solid work on our new deck, built to last."},
		},
		hours: tradeHours,
	},
	models.CategoryRetail: {
		taglines: []string{
			"Find something you'll love",
			"Local finds, friendly faces",
			"Shop small, smile big",
		},
		descriptions: []string{
			"%s is %s's neighborhood shop for hand-picked goods you won't find in the big-box stores. Stop in and browse — our staff loves helping you find exactly the right thing.",
			"Every item at %s is chosen with care. We've been part of the %s community for years, and we treat every customer like a neighbor, because they are.",
		},
		services: []string{"In-Store Shopping", "Gift Wrapping", "Special Orders", "Local Delivery", "Gift Cards", "Loyalty Rewards"},
		testimonials: []models.Testimonial{
			{Name: "Emily S.", Rating: 5, Text: "My go-to spot for gifts. They wrap everything beautifully and always have unique finds."},
			{Name: "Brian K.", Rating: 5, Text: "The owners remember your name and what you like. Shopping local at its best."},
			{Name: "Olivia P.", Rating: 4, Text: "Lovely selection and fair prices. I always leave with more than I planned."},
		},
		hours: weekdayHours,
	},
	models.CategoryDental: {
		taglines: []string{
			"Healthy smiles start here",
			"Gentle care for the whole family",
			"Your smile, our specialty",
		},
		descriptions: []string{
			"%s provides comprehensive dental care for families across %s. From routine cleanings to cosmetic work, our gentle team makes every visit comfortable — even for the nervous ones.",
			"A healthy smile changes everything. The team at %s combines modern technology with genuine care, serving patients throughout %s in a calm, welcoming office.",
		},
		services: []string{"Cleanings & Exams", "Fillings", "Crowns & Bridges", "Teeth Whitening", "Invisalign", "Emergency Care"},
		testimonials: []models.Testimonial{
			{Name: "Amanda H.", Rating: 5, Text: "I used to dread the dentist. Not anymore — the whole staff is patient and kind."},
			{Name: "Chris M.", Rating: 5, Text: "Got a same-day appointment for a cracked tooth. Painless and professional."},
			{Name: "Laura B.", Rating: 4, Text: "Great with kids. My six-year-old actually asks when her next checkup is."},
		},
		hours: weekdayHours,
	},
	models.CategoryMedical: {
		taglines: []string{
			"Care you can count on",
			"Your health, our mission",
			"Compassionate care, close to home",
		},
		descriptions: []string{
			"%s delivers attentive, personalized healthcare to %s. Our providers take the time to listen, explain, and build care plans around you — not the clock.",
			"At %s, good medicine starts with a good relationship. We're proud to serve %s with same-week appointments and a team that knows you by name.",
		},
		services: []string{"Preventive Care", "Same-Day Visits", "Chronic Care Management", "Lab Services", "Telehealth", "Wellness Exams"},
		testimonials: []models.Testimonial{
			{Name: "George T.", Rating: 5, Text: "The doctor spent a full half hour with me and answered every question. That never happens anymore."},
			{Name: "Helen W.", Rating: 5, Text: "Friendly front desk, short waits, and thorough care. What more could you ask for."},
			{Name: "Daniel Y.", Rating: 4, Text: "Easy scheduling and the telehealth visits are a lifesaver."},
		},
		hours: weekdayHours,
	},
	models.CategoryGeneralService: {
		taglines: []string{
			"Quality service, every time",
			"Local experts you can rely on",
			"Done right, guaranteed",
		},
		descriptions: []string{
			"%s proudly serves %s with dependable service and honest pricing. Our experienced team takes pride in doing the job right and treating every customer with respect.",
			"Locals turn to %s for reliable, professional service in %s. We show up when we say we will and we don't consider the job finished until you're satisfied.",
		},
		services: []string{"Consultations", "Residential Service", "Commercial Service", "Maintenance Plans", "Free Estimates", "Satisfaction Guarantee"},
		testimonials: []models.Testimonial{
			{Name: "Barbara L.", Rating: 5, Text: "Professional from the first phone call to the finished job. Highly recommended."},
			{Name: "Kevin D.", Rating: 5, Text: "Fair prices and great communication. They earned a repeat customer."},
			{Name: "Sandra M.", Rating: 4, Text: "Showed up on time and did exactly what they promised."},
		},
		hours: weekdayHours,
	},
}

// seoKeywords feed the generation prompt so AI copy lands the search terms
// a category's customers actually use.
var seoKeywords = map[models.Category][]string{
	models.CategoryRestaurant:     {"restaurant near me", "best food in town", "family dining", "fresh ingredients"},
	models.CategoryPlumbing:       {"emergency plumber", "licensed plumber near me", "drain cleaning", "water heater repair"},
	models.CategoryBeauty:         {"hair salon near me", "best stylist", "manicure pedicure", "bridal hair"},
	models.CategoryAuto:           {"auto repair near me", "trusted mechanic", "brake service", "oil change"},
	models.CategoryCleaning:       {"cleaning service near me", "house cleaning", "office cleaning", "deep clean"},
	models.CategoryElectrical:     {"licensed electrician", "electrical repair near me", "panel upgrade", "EV charger installation"},
	models.CategoryConstruction:   {"general contractor near me", "home remodeling", "kitchen remodel", "licensed and insured"},
	models.CategoryRetail:         {"local shop", "unique gifts", "shop small", "boutique near me"},
	models.CategoryDental:         {"dentist near me", "family dentist", "teeth whitening", "emergency dental"},
	models.CategoryMedical:        {"doctor near me", "family medicine", "same day appointment", "primary care"},
	models.CategoryGeneralService: {"local service near me", "trusted professionals", "free estimate", "licensed and insured"},
}

// copyFor returns the fallback pool for a category, defaulting to the
// general-service pool so lookups are total.
func copyFor(category models.Category) categoryCopy {
	if c, ok := fallbackCopy[category]; ok {
		return c
	}
	return fallbackCopy[models.CategoryGeneralService]
}

// Keywords returns the SEO keyword list for a category.
func Keywords(category models.Category) []string {
	if kw, ok := seoKeywords[category]; ok {
		return kw
	}
	return seoKeywords[models.CategoryGeneralService]
}

// pick selects a deterministic pool entry for a business name: the same
// business always gets the same tagline and description on regeneration.
func pick(name string, n int) int {
	h := fnv.New32a()
	h.Write([]byte(strings.ToLower(name)))
	return int(h.Sum32() % uint32(n))
}

// Fallback builds the complete deterministic content package for a
// business. It is pure and side-effect free, so the pipeline can always
// reach it no matter how the AI call failed.
func Fallback(b *models.Business, category models.Category) *models.GeneratedContent {
	cc := copyFor(category)

	location := b.Location()
	if location == "" {
		location = "the local area"
	}

	desc := cc.descriptions[pick(b.Name, len(cc.descriptions))]

	return &models.GeneratedContent{
		Tagline:      cc.taglines[pick(b.Name, len(cc.taglines))],
		Description:  fmt.Sprintf(desc, b.Name, location),
		Services:     append([]string(nil), cc.services...),
		Testimonials: append([]models.Testimonial(nil), cc.testimonials...),
		Hours:        append([]models.DayHours(nil), cc.hours...),
		Category:     category,
		AIGenerated:  false,
	}
}
