// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package theme

import (
	"hash/fnv"

	"github.com/google/uuid"

	"sitespark/internal/models"
)

// variants in selection order. The index for a business is derived from a
// stable hash of its ID, so a business keeps the same layout across
// regenerations instead of drawing from an unseeded random source.
var variants = [...]models.LayoutVariant{
	models.VariantClassic,
	models.VariantSplit,
	models.VariantFullBleed,
}

// VariantFor selects the layout variant for a business by FNV-1a hashing
// its ID. Deterministic: the same business always gets the same variant.
func VariantFor(businessID uuid.UUID) models.LayoutVariant {
	h := fnv.New32a()
	h.Write(businessID[:])
	return variants[h.Sum32()%uint32(len(variants))]
}
