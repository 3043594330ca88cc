// generate_test.go exercises the full pipeline against a real database.
// Tests are skipped if PostgreSQL is not available. No AI providers are
// configured, so every run goes through the deterministic fallback path.
package generate

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"sitespark/internal/content"
	"sitespark/internal/database"
	"sitespark/internal/images"
	"sitespark/internal/models"
	"sitespark/internal/store"
)

func testDSN() string {
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "sitespark")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "sitespark")
	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("pgx", testDSN())
	if err != nil {
		t.Skipf("skipping integration test: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// testPipeline builds a fallback-only pipeline: no AI, no site check, no
// cache, no object storage.
func testPipeline(t *testing.T, db *sql.DB, text content.TextGenerator) *Pipeline {
	t.Helper()
	return New(Config{
		Businesses: store.NewBusinessStore(db),
		Previews:   store.NewPreviewStore(db),
		Content:    content.NewGenerator(text),
		Images:     images.NewProvider(nil, nil),
		BaseURL:    "http://localhost:8080",
	})
}

func createBusiness(t *testing.T, db *sql.DB, b *models.Business) *models.Business {
	t.Helper()
	created, err := store.NewBusinessStore(db).Create(context.Background(), b)
	if err != nil {
		t.Fatalf("create business: %v", err)
	}
	t.Cleanup(func() {
		db.Exec("DELETE FROM businesses WHERE id = $1", created.ID)
	})
	return created
}

func TestPipelineRestaurantPreview(t *testing.T) {
	db := testDB(t)
	p := testPipeline(t, db, nil)
	ctx := context.Background()

	b := createBusiness(t, db, &models.Business{
		Name:  "Testini's Pizza " + uuid.NewString()[:8],
		City:  "Austin",
		State: "TX",
		Phone: "+15125550134",
	})

	res, err := p.ForBusinessID(ctx, b.ID, Options{SkipSiteCheck: true})
	if err != nil {
		t.Fatalf("ForBusinessID: %v", err)
	}
	if res.Skipped {
		t.Fatalf("unexpectedly skipped: %s", res.SkipReason)
	}
	if res.Category != models.CategoryRestaurant {
		t.Errorf("category = %s, want restaurant", res.Category)
	}
	if res.Slug == "" || res.PreviewURL == "" {
		t.Errorf("missing slug/url: %+v", res)
	}
	if !strings.HasPrefix(res.TemplateUsed, "restaurant-") {
		t.Errorf("template_used = %q, want restaurant-*", res.TemplateUsed)
	}
	if res.AIContent || res.AIImages {
		t.Error("no AI configured, flags should be false")
	}

	stored, err := store.NewPreviewStore(db).FindBySlug(ctx, res.Slug)
	if err != nil {
		t.Fatalf("FindBySlug: %v", err)
	}
	if stored == nil {
		t.Fatal("artifact not persisted")
	}
	for _, marker := range []string{
		"<!DOCTYPE html>",
		`section id="menu"`,
		`section id="reservation"`,
		`content="sitespark"`,
	} {
		if !strings.Contains(stored.HTMLContent, marker) {
			t.Errorf("stored HTML missing %q", marker)
		}
	}
	if strings.Contains(stored.HTMLContent, `section id="emergency"`) {
		t.Error("restaurant preview should not carry the emergency banner")
	}

	// The classified category is backfilled onto the business record.
	got, err := store.NewBusinessStore(db).FindByID(ctx, b.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.IndustryType == nil || *got.IndustryType != "restaurant" {
		t.Errorf("industry_type = %v, want restaurant", got.IndustryType)
	}
}

func TestPipelineTradePreviewHasEstimator(t *testing.T) {
	db := testDB(t)
	p := testPipeline(t, db, nil)
	ctx := context.Background()

	b := createBusiness(t, db, &models.Business{
		Name:  "Testflow Plumbing " + uuid.NewString()[:8],
		City:  "Austin",
		State: "TX",
		Phone: "+15125550135",
	})

	res, err := p.ForBusiness(ctx, b, Options{SkipSiteCheck: true})
	if err != nil {
		t.Fatalf("ForBusiness: %v", err)
	}
	stored, err := store.NewPreviewStore(db).FindBySlug(ctx, res.Slug)
	if err != nil || stored == nil {
		t.Fatalf("FindBySlug: %v, %v", stored, err)
	}
	for _, marker := range []string{`section id="emergency"`, `section id="estimator"`} {
		if !strings.Contains(stored.HTMLContent, marker) {
			t.Errorf("plumbing HTML missing %q", marker)
		}
	}
}

func TestPipelineSkipsBusinessWithWebsite(t *testing.T) {
	db := testDB(t)
	p := testPipeline(t, db, nil)

	url := "https://already-live.example.com"
	b := createBusiness(t, db, &models.Business{
		Name:       "Test Has Site " + uuid.NewString()[:8],
		City:       "Austin",
		State:      "TX",
		WebsiteURL: &url,
	})

	res, err := p.ForBusiness(context.Background(), b, Options{})
	if err != nil {
		t.Fatalf("ForBusiness: %v", err)
	}
	if !res.Skipped {
		t.Fatal("expected skip for business with a website")
	}
	if res.Slug != "" {
		t.Errorf("skip should not mint a slug, got %q", res.Slug)
	}
}

func TestPipelineUnknownBusiness(t *testing.T) {
	db := testDB(t)
	p := testPipeline(t, db, nil)

	res, err := p.ForBusinessID(context.Background(), uuid.New(), Options{})
	if err != nil {
		t.Fatalf("ForBusinessID: %v", err)
	}
	if res != nil {
		t.Errorf("expected nil result for unknown business, got %+v", res)
	}
}

func TestPipelineRegenerationKeepsSlug(t *testing.T) {
	db := testDB(t)
	p := testPipeline(t, db, nil)
	ctx := context.Background()

	b := createBusiness(t, db, &models.Business{
		Name:  "Test Regen Salon " + uuid.NewString()[:8],
		City:  "Austin",
		State: "TX",
	})

	first, err := p.ForBusiness(ctx, b, Options{SkipSiteCheck: true})
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, err := p.ForBusiness(ctx, b, Options{SkipSiteCheck: true})
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if second.Slug != first.Slug {
		t.Errorf("regeneration changed the slug: %q vs %q", second.Slug, first.Slug)
	}

	count, err := store.NewPreviewStore(db).CountAll(ctx)
	if err != nil {
		t.Fatalf("CountAll: %v", err)
	}
	_ = count // one row per business is enforced by the unique constraint

	stored, err := store.NewPreviewStore(db).FindByBusinessID(ctx, b.ID)
	if err != nil || stored == nil {
		t.Fatalf("FindByBusinessID: %v, %v", stored, err)
	}
	if stored.Slug != first.Slug {
		t.Errorf("stored slug = %q, want %q", stored.Slug, first.Slug)
	}
}

// failingText simulates a provider outage on every call.
type failingText struct{}

func (failingText) Generate(context.Context, string, string) (string, error) {
	return "", errors.New("provider unavailable")
}

func TestPipelineSurvivesAIFailure(t *testing.T) {
	db := testDB(t)
	p := testPipeline(t, db, failingText{})
	ctx := context.Background()

	b := createBusiness(t, db, &models.Business{
		Name:  "Test Outage Electric " + uuid.NewString()[:8],
		City:  "Austin",
		State: "TX",
	})

	res, err := p.ForBusiness(ctx, b, Options{SkipSiteCheck: true})
	if err != nil {
		t.Fatalf("AI outage must not fail generation: %v", err)
	}
	if res.Skipped {
		t.Fatalf("unexpectedly skipped: %s", res.SkipReason)
	}
	if res.AIContent {
		t.Error("fallback content should report ai_content=false")
	}
	stored, err := store.NewPreviewStore(db).FindBySlug(ctx, res.Slug)
	if err != nil || stored == nil {
		t.Fatalf("FindBySlug: %v, %v", stored, err)
	}
	if !strings.Contains(stored.HTMLContent, b.Name[:strings.Index(b.Name, " Electric")]) {
		t.Error("fallback HTML should carry the business name")
	}
}

func TestMetaDescription(t *testing.T) {
	short := "A cozy neighborhood pizzeria."
	if got := metaDescription(short); got != short {
		t.Errorf("short description changed: %q", got)
	}

	long := strings.Repeat("word ", 60)
	got := metaDescription(long)
	if len(got) > maxMetaDescription+len("…") {
		t.Errorf("trimmed description too long: %d bytes", len(got))
	}
	if !strings.HasSuffix(got, "…") {
		t.Errorf("trimmed description should end with ellipsis: %q", got)
	}
	if strings.Contains(got, "  ") || strings.HasSuffix(got, " …") {
		t.Errorf("rough trim boundary: %q", got)
	}

	// A spaceless multibyte description must be cut on a rune
	// boundary, never mid-character.
	multibyte := strings.Repeat("é", 120)
	got = metaDescription(multibyte)
	if !utf8.ValidString(got) {
		t.Errorf("trimmed description is not valid UTF-8: %q", got)
	}
	if !strings.HasSuffix(got, "…") {
		t.Errorf("trimmed multibyte description should end with ellipsis: %q", got)
	}
}
