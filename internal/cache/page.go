// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// page.go provides a Valkey-backed cache for rendered preview documents.
// A generated preview is a multi-kilobyte HTML blob that never changes
// between regenerations, so serving it from Valkey skips the Postgres
// read entirely.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// previewKeyPrefix is the Valkey key prefix for cached previews.
	previewKeyPrefix = "preview:"

	// DefaultPreviewTTL is how long a rendered preview stays cached.
	DefaultPreviewTTL = 15 * time.Minute
)

// PreviewCache manages full-document preview caching in Valkey. All
// methods are best-effort: a cache failure is logged and the caller
// falls through to the store.
type PreviewCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPreviewCache creates a preview cache backed by the given Valkey client.
func NewPreviewCache(client *redis.Client, ttl time.Duration) *PreviewCache {
	if ttl == 0 {
		ttl = DefaultPreviewTTL
	}
	return &PreviewCache{client: client, ttl: ttl}
}

// Get retrieves cached HTML for a preview slug.
func (pc *PreviewCache) Get(ctx context.Context, slug string) ([]byte, bool) {
	if pc == nil {
		return nil, false
	}
	val, err := pc.client.Get(ctx, previewKeyPrefix+slug).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("preview cache get error", "slug", slug, "error", err)
		return nil, false
	}
	slog.Debug("preview cache hit", "slug", slug)
	return val, true
}

// Set stores rendered HTML for a preview slug with the configured TTL.
func (pc *PreviewCache) Set(ctx context.Context, slug string, html []byte) {
	if pc == nil {
		return
	}
	if err := pc.client.Set(ctx, previewKeyPrefix+slug, html, pc.ttl).Err(); err != nil {
		slog.Warn("preview cache set error", "slug", slug, "error", err)
	}
}

// Invalidate removes a single preview from the cache by its slug. Called
// on regeneration so the next request serves the fresh document.
func (pc *PreviewCache) Invalidate(ctx context.Context, slug string) {
	if pc == nil {
		return
	}
	if err := pc.client.Del(ctx, previewKeyPrefix+slug).Err(); err != nil {
		slog.Warn("preview cache invalidate error", "slug", slug, "error", err)
	}
	slog.Debug("preview cache invalidated", "slug", slug)
}

// InvalidateAll removes all cached previews by scanning for the prefix.
// Used when themes or section templates change, since any preview could
// be affected.
func (pc *PreviewCache) InvalidateAll(ctx context.Context) {
	if pc == nil {
		return
	}
	var cursor uint64
	var deleted int
	for {
		keys, nextCursor, err := pc.client.Scan(ctx, cursor, previewKeyPrefix+"*", 100).Result()
		if err != nil {
			slog.Warn("preview cache scan error", "error", err)
			return
		}
		if len(keys) > 0 {
			if err := pc.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("preview cache bulk delete error", "error", err)
			}
			deleted += len(keys)
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		slog.Info("preview cache fully cleared", "deleted", deleted)
	}
}
