// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"sitespark/internal/models"
)

// BusinessStore handles all business-record database operations.
type BusinessStore struct {
	db *sql.DB
}

// NewBusinessStore creates a new BusinessStore with the given database connection.
func NewBusinessStore(db *sql.DB) *BusinessStore {
	return &BusinessStore{db: db}
}

const businessColumns = `id, name, address, city, state, zip, phone, email,
       industry_type, website_url, created_at, updated_at`

func scanBusiness(row interface{ Scan(...any) error }) (*models.Business, error) {
	b := &models.Business{}
	err := row.Scan(
		&b.ID, &b.Name, &b.Address, &b.City, &b.State, &b.Zip, &b.Phone,
		&b.Email, &b.IndustryType, &b.WebsiteURL, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// FindByID retrieves a business by its UUID. Returns nil if not found.
func (s *BusinessStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Business, error) {
	b, err := scanBusiness(s.db.QueryRowContext(ctx, `
		SELECT `+businessColumns+`
		FROM businesses WHERE id = $1
	`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find business by id: %w", err)
	}
	return b, nil
}

// ListWithoutPreview returns all businesses that have no preview artifact
// yet, ordered by creation date. This is the input set for batch mode.
func (s *BusinessStore) ListWithoutPreview(ctx context.Context) ([]models.Business, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+businessColumns+`
		FROM businesses b
		WHERE NOT EXISTS (
			SELECT 1 FROM website_previews p WHERE p.business_id = b.id
		)
		ORDER BY b.created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("list businesses without preview: %w", err)
	}
	defer rows.Close()

	var items []models.Business
	for rows.Next() {
		b, err := scanBusiness(rows)
		if err != nil {
			return nil, fmt.Errorf("scan business: %w", err)
		}
		items = append(items, *b)
	}
	return items, rows.Err()
}

// ListWithPreview returns businesses that already have a stored preview.
// The batch run reports these as skipped instead of dropping them from
// the summary.
func (s *BusinessStore) ListWithPreview(ctx context.Context) ([]models.Business, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+businessColumns+`
		FROM businesses b
		WHERE EXISTS (
			SELECT 1 FROM website_previews p WHERE p.business_id = b.id
		)
		ORDER BY b.created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("list businesses with preview: %w", err)
	}
	defer rows.Close()

	var items []models.Business
	for rows.Next() {
		b, err := scanBusiness(rows)
		if err != nil {
			return nil, fmt.Errorf("scan business: %w", err)
		}
		items = append(items, *b)
	}
	return items, rows.Err()
}

// Create inserts a new business and returns it with the generated ID.
// Used by the CSV importer and by tests.
func (s *BusinessStore) Create(ctx context.Context, b *models.Business) (*models.Business, error) {
	created, err := scanBusiness(s.db.QueryRowContext(ctx, `
		INSERT INTO businesses (name, address, city, state, zip, phone, email, industry_type, website_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+businessColumns+`
	`, b.Name, b.Address, b.City, b.State, b.Zip, b.Phone, b.Email, b.IndustryType, b.WebsiteURL))
	if err != nil {
		return nil, fmt.Errorf("create business: %w", err)
	}
	return created, nil
}

// BackfillGenerated writes the derived industry type and discovered website
// URL after generation. Existing values are kept in place: the industry
// type is only set when the operator never declared one, and empty
// arguments leave their column untouched.
func (s *BusinessStore) BackfillGenerated(ctx context.Context, id uuid.UUID, industryType, websiteURL string) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE businesses SET
			industry_type = COALESCE(industry_type, NULLIF($1, '')),
			website_url   = COALESCE(website_url, NULLIF($2, '')),
			updated_at    = NOW()
		WHERE id = $3
	`, industryType, websiteURL, id)
	if err != nil {
		return fmt.Errorf("backfill business %s: %w", id, err)
	}
	return nil
}
