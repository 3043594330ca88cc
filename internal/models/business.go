// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Business represents a small-business record imported from lead lists.
// It is the immutable input to the generation pipeline; after a preview is
// generated, only IndustryType and WebsiteURL may be backfilled (and only
// when they were empty to begin with).
type Business struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Address      string     `json:"address"`
	City         string     `json:"city"`
	State        string     `json:"state"`
	Zip          string     `json:"zip"`
	Phone        string     `json:"phone"`
	Email        *string    `json:"email,omitempty"`
	IndustryType *string    `json:"industry_type,omitempty"`
	WebsiteURL   *string    `json:"website_url,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// HasWebsite returns true if the business already has a live website URL on
// record. Such businesses are skipped in batch generation.
func (b *Business) HasWebsite() bool {
	return b.WebsiteURL != nil && *b.WebsiteURL != ""
}

// Location returns the "City, ST" display string, omitting empty parts.
func (b *Business) Location() string {
	switch {
	case b.City != "" && b.State != "":
		return b.City + ", " + b.State
	case b.City != "":
		return b.City
	default:
		return b.State
	}
}
