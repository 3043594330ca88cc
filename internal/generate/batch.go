// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package generate

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"sitespark/internal/models"
)

// BatchSummary reports the outcome of a batch run. One business failing
// never aborts the batch; failures are counted and named.
type BatchSummary struct {
	Total        int      `json:"total"`
	Generated    int      `json:"generated"`
	Skipped      int      `json:"skipped"`
	Failed       int      `json:"failed"`
	SkippedNames []string `json:"skipped_names,omitempty"`
	FailedNames  []string `json:"failed_names,omitempty"`
	Results      []Result `json:"results"`
}

// Batch generates previews for every business that has neither a website
// nor a stored preview. Businesses with an existing preview are reported
// as skipped, not regenerated. Processing is sequential by default; with
// more than one worker configured, businesses run concurrently under a
// bounded pool while results keep the listing order.
func (p *Pipeline) Batch(ctx context.Context, opts Options) (*BatchSummary, error) {
	businesses, err := p.businesses.ListWithoutPreview(ctx)
	if err != nil {
		return nil, fmt.Errorf("list businesses: %w", err)
	}
	processed, err := p.businesses.ListWithPreview(ctx)
	if err != nil {
		return nil, fmt.Errorf("list processed businesses: %w", err)
	}

	start := time.Now()
	results := make([]*Result, len(businesses))
	runErrs := make([]error, len(businesses))

	if p.workers > 1 {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(p.workers)
		for i := range businesses {
			g.Go(func() error {
				results[i], runErrs[i] = p.runOne(gctx, i, &businesses[i], opts)
				// Errors stay per-business; never cancel siblings.
				return nil
			})
		}
		// Only a nil error can come back, but keep the contract honest.
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i := range businesses {
			results[i], runErrs[i] = p.runOne(ctx, i, &businesses[i], opts)
		}
	}

	summary := &BatchSummary{Total: len(businesses) + len(processed)}

	// Already-processed businesses count as skipped; they never run,
	// but a reader of the summary should still see where they went.
	for i := range processed {
		summary.Skipped++
		summary.SkippedNames = append(summary.SkippedNames, processed[i].Name)
		summary.Results = append(summary.Results, Result{
			BusinessID:   processed[i].ID,
			BusinessName: processed[i].Name,
			Skipped:      true,
			SkipReason:   "preview already generated",
		})
	}

	for i, res := range results {
		if runErrs[i] != nil {
			summary.Failed++
			summary.FailedNames = append(summary.FailedNames, businesses[i].Name)
			continue
		}
		summary.Results = append(summary.Results, *res)
		if res.Skipped {
			summary.Skipped++
			summary.SkippedNames = append(summary.SkippedNames, res.BusinessName)
		} else {
			summary.Generated++
		}
	}

	slog.Info("batch run complete",
		"total", summary.Total,
		"generated", summary.Generated,
		"skipped", summary.Skipped,
		"failed", summary.Failed,
		elapsed(start),
	)
	return summary, nil
}

// runOne executes the pipeline for a single batch entry and contains any
// panic so one bad record cannot take down the rest of the run.
func (p *Pipeline) runOne(ctx context.Context, i int, b *models.Business, opts Options) (res *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("generation panicked: %v", r)
			slog.Error("batch entry panicked", "business", b.Name, "panic", r)
		}
	}()

	res, err = p.ForBusiness(ctx, b, opts)
	if err != nil {
		slog.Error("batch entry failed", "index", i, "business", b.Name, "error", err)
	}
	return res, err
}
