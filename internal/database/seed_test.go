package database

import (
	"testing"
)

func TestSeedIdempotent(t *testing.T) {
	db, err := Connect(testDSN())
	if err != nil {
		t.Skipf("skipping: DB not available: %v", err)
	}
	defer db.Close()

	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	// Seed should be callable safely — it creates data only when the
	// businesses table is empty. We call it twice to verify idempotency.
	// We don't clear the database first because other test packages may be
	// running concurrently against the same database.
	if err := Seed(db); err != nil {
		t.Fatalf("first Seed: %v", err)
	}

	var before int
	if err := db.QueryRow("SELECT COUNT(*) FROM businesses").Scan(&before); err != nil {
		t.Fatalf("count businesses: %v", err)
	}
	if before < 1 {
		t.Fatalf("expected at least 1 business after seeding, got %d", before)
	}

	if err := Seed(db); err != nil {
		t.Fatalf("second Seed: %v", err)
	}

	var after int
	if err := db.QueryRow("SELECT COUNT(*) FROM businesses").Scan(&after); err != nil {
		t.Fatalf("count businesses: %v", err)
	}
	if after != before {
		t.Errorf("second Seed changed row count: before=%d after=%d", before, after)
	}
}
