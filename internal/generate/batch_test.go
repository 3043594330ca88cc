// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package generate

import (
	"context"
	"slices"
	"strings"
	"testing"

	"github.com/google/uuid"

	"sitespark/internal/models"
	"sitespark/internal/store"
)

func TestBatchGeneratesAndSkips(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	plain := createBusiness(t, db, &models.Business{
		Name:  "Test Batch Bakery " + uuid.NewString()[:8],
		City:  "Austin",
		State: "TX",
	})
	url := "https://batch-live.example.com"
	withSite := createBusiness(t, db, &models.Business{
		Name:       "Test Batch HasSite " + uuid.NewString()[:8],
		City:       "Austin",
		State:      "TX",
		WebsiteURL: &url,
	})

	p := testPipeline(t, db, nil)
	p.workers = 4

	summary, err := p.Batch(ctx, Options{SkipSiteCheck: true})
	if err != nil {
		t.Fatalf("Batch: %v", err)
	}

	// Other rows may exist in a shared database; assert relative to the
	// two businesses this test created.
	if summary.Total < 2 {
		t.Fatalf("total = %d, want at least 2", summary.Total)
	}
	if summary.Generated+summary.Skipped+summary.Failed != summary.Total {
		t.Errorf("counts do not add up: %+v", summary)
	}
	if !slices.Contains(summary.SkippedNames, withSite.Name) {
		t.Errorf("%q should be in skipped names %v", withSite.Name, summary.SkippedNames)
	}
	if slices.Contains(summary.FailedNames, plain.Name) {
		t.Errorf("%q unexpectedly failed", plain.Name)
	}

	preview, err := store.NewPreviewStore(db).FindByBusinessID(ctx, plain.ID)
	if err != nil {
		t.Fatalf("FindByBusinessID: %v", err)
	}
	if preview == nil {
		t.Fatal("batch did not persist a preview for the plain business")
	}
	if !strings.Contains(preview.HTMLContent, "Test Batch Bakery") {
		t.Error("stored HTML missing the business name")
	}

	skipped, err := store.NewPreviewStore(db).FindByBusinessID(ctx, withSite.ID)
	if err != nil {
		t.Fatalf("FindByBusinessID: %v", err)
	}
	if skipped != nil {
		t.Error("skipped business should not get a preview")
	}
}

func TestBatchCountsProcessedAsSkipped(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	b := createBusiness(t, db, &models.Business{
		Name:  "Test Batch Repeat " + uuid.NewString()[:8],
		City:  "Austin",
		State: "TX",
	})

	p := testPipeline(t, db, nil)

	if _, err := p.Batch(ctx, Options{SkipSiteCheck: true}); err != nil {
		t.Fatalf("first Batch: %v", err)
	}

	// The second run must account for the already-generated business as
	// skipped rather than dropping it from the summary.
	summary, err := p.Batch(ctx, Options{SkipSiteCheck: true})
	if err != nil {
		t.Fatalf("second Batch: %v", err)
	}
	if !slices.Contains(summary.SkippedNames, b.Name) {
		t.Errorf("%q should be in skipped names %v", b.Name, summary.SkippedNames)
	}
	var found *Result
	for i := range summary.Results {
		if summary.Results[i].BusinessID == b.ID {
			found = &summary.Results[i]
		}
	}
	if found == nil {
		t.Fatal("already-processed business missing from batch results")
	}
	if !found.Skipped || found.SkipReason != "preview already generated" {
		t.Errorf("result = %+v, want skipped with a processed reason", *found)
	}
}

// panicText blows up on every call, standing in for a provider bug.
type panicText struct{}

func (panicText) Generate(context.Context, string, string) (string, error) {
	panic("provider bug")
}

func TestBatchContainsPanics(t *testing.T) {
	db := testDB(t)

	b := createBusiness(t, db, &models.Business{
		Name:  "Test Batch Panic " + uuid.NewString()[:8],
		City:  "Austin",
		State: "TX",
	})

	p := testPipeline(t, db, panicText{})

	summary, err := p.Batch(context.Background(), Options{SkipSiteCheck: true})
	if err != nil {
		t.Fatalf("a panicking entry must not abort the batch: %v", err)
	}
	if !slices.Contains(summary.FailedNames, b.Name) {
		t.Errorf("%q should be in failed names %v", b.Name, summary.FailedNames)
	}
	if summary.Failed < 1 {
		t.Error("failed count should reflect the panicked entry")
	}
}
