// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug provides URL-friendly slug generation from business names,
// plus global-uniqueness resolution against the preview artifact store.
package slug

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

var (
	// nonAlphanumeric matches anything that isn't a letter, digit, or space.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s-]`)
	// multipleHyphens collapses consecutive hyphens into one.
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

// Generate creates a URL-friendly slug from the given string.
// Example: "Joe's Pizza & Grill" → "joes-pizza-grill"
func Generate(s string) string {
	result := strings.ToLower(strings.TrimSpace(s))
	result = nonAlphanumeric.ReplaceAllString(result, "")
	result = strings.ReplaceAll(result, " ", "-")
	result = multipleHyphens.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")
	return result
}

// ExistsFunc reports whether a slug is already taken. The preview store
// satisfies this.
type ExistsFunc func(ctx context.Context, slug string) (bool, error)

// maxAttempts bounds the suffix search; in practice collisions resolve
// within one or two attempts.
const maxAttempts = 1000

// Unique derives a globally unique slug from the business name. On
// collision it appends an incrementing numeric suffix (-2, -3, ...) and
// re-checks until a free slug is found. Existing slugs are never
// overwritten. An empty normalization result falls back to "business".
func Unique(ctx context.Context, name string, exists ExistsFunc) (string, error) {
	base := Generate(name)
	if base == "" {
		base = "business"
	}

	candidate := base
	for i := 2; i <= maxAttempts; i++ {
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("slug existence check: %w", err)
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
	return "", fmt.Errorf("slug: no unique slug found for %q after %d attempts", base, maxAttempts)
}
