// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package classify maps a business name and optional declared industry type
// to one of the closed site categories. Classification is a pure string
// match: no I/O, deterministic, and total — unmatched input resolves to
// general-service, never an error.
package classify

import (
	"strings"

	"sitespark/internal/models"
)

// keywordGroup ties a category to the terms that identify it. Groups are
// tested in order and the first match wins, so more specific trades come
// before broader ones (e.g. "dental" before "medical").
type keywordGroup struct {
	category models.Category
	terms    []string
}

var keywordGroups = []keywordGroup{
	{models.CategoryRestaurant, []string{
		"restaurant", "pizza", "pizzeria", "cafe", "coffee", "diner", "grill",
		"bistro", "bakery", "taco", "burger", "sushi", "bbq", "barbecue",
		"kitchen", "eatery", "deli", "catering", "food", " bar ",
	}},
	{models.CategoryPlumbing, []string{
		"plumb", "drain", "sewer", "rooter", "pipe", "water heater", "leak",
	}},
	{models.CategoryBeauty, []string{
		"salon", "beauty", "hair", "nail", " spa ", "barber", "lash", "brow",
		"makeup", "stylist", "tanning", "waxing",
	}},
	{models.CategoryAuto, []string{
		"auto", " car ", "automotive", "tire", "transmission", "mechanic",
		"muffler", "brake", "collision", "body shop", "oil change", "detailing",
	}},
	{models.CategoryCleaning, []string{
		"clean", "maid", "janitorial", "carpet", "pressure wash", "power wash",
		"window wash",
	}},
	{models.CategoryElectrical, []string{
		"electric", "electrician", "wiring", "lighting", "solar",
	}},
	{models.CategoryConstruction, []string{
		"construction", "contractor", "roofing", "roof", "remodel", "builder",
		"concrete", "masonry", "drywall", "fencing", "paving", "handyman",
		"landscap", "painting",
	}},
	{models.CategoryRetail, []string{
		"shop", "store", "boutique", "market", "retail", "outlet", "emporium",
		"gifts", "furniture", "jewelry",
	}},
	{models.CategoryDental, []string{
		"dental", "dentist", "orthodont", "smile",
	}},
	{models.CategoryMedical, []string{
		"medical", "clinic", "doctor", "health", "pharmacy", "chiropract",
		"physical therapy", "urgent care", "wellness", "pediatric",
	}},
}

// Classify resolves the category for a business name plus its optional
// declared industry type. The declared type participates in matching with
// the same precedence rules as the name.
func Classify(name, declaredType string) models.Category {
	// Padded so boundary-sensitive terms like " spa " and " bar " match at
	// either end of the name.
	haystack := " " + strings.ToLower(name+" "+declaredType) + " "

	for _, group := range keywordGroups {
		for _, term := range group.terms {
			if strings.Contains(haystack, term) {
				return group.category
			}
		}
	}
	return models.CategoryGeneralService
}

// ClassifyBusiness is a convenience wrapper over Classify for a business
// record, using its declared industry type when present.
func ClassifyBusiness(b *models.Business) models.Category {
	declared := ""
	if b.IndustryType != nil {
		declared = *b.IndustryType
	}
	return Classify(b.Name, declared)
}
