package database

import (
	"database/sql"
	"fmt"
	"log/slog"
)

// Seed populates the database with initial development data: a handful of
// sample businesses across categories, none of which have a website yet,
// so a batch generation run has something to chew on. No-op if businesses
// already exist.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM businesses").Scan(&count); err != nil {
		return fmt.Errorf("seed check businesses: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	samples := []struct {
		name, address, city, state, zip, phone string
	}{
		{"Joe's Pizza", "512 E 6th St", "Austin", "TX", "78701", "(512) 555-0134"},
		{"Quick Fix Plumbing", "88 Industrial Pkwy", "Round Rock", "TX", "78664", "(512) 555-0187"},
		{"Bella Vita Salon", "2201 S Lamar Blvd", "Austin", "TX", "78704", "(512) 555-0149"},
		{"Precision Auto Repair", "419 W Anderson Ln", "Austin", "TX", "78757", "(512) 555-0122"},
		{"Sparkle Clean Co", "1300 Burnet Rd", "Austin", "TX", "78756", "(512) 555-0163"},
	}

	for _, s := range samples {
		_, err := db.Exec(`
			INSERT INTO businesses (name, address, city, state, zip, phone)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, s.name, s.address, s.city, s.state, s.zip, s.phone)
		if err != nil {
			return fmt.Errorf("seed insert business %q: %w", s.name, err)
		}
	}

	slog.Info("database seeded with sample businesses", "count", len(samples))
	return nil
}
