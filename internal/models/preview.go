// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// PreviewArtifact is the persisted generated website for one business.
// At most one live artifact exists per business: regeneration updates the
// existing row in place rather than inserting a second one. The slug is
// globally unique and drives the public preview URL.
type PreviewArtifact struct {
	ID           uuid.UUID `json:"id"`
	BusinessID   uuid.UUID `json:"business_id"`
	Slug         string    `json:"slug"`
	PreviewURL   string    `json:"preview_url"`
	HTMLContent  string    `json:"html_content"`
	TemplateUsed string    `json:"template_used"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
