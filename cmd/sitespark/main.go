// Package main is the entry point for the sitespark preview server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"sitespark/internal/ai"
	"sitespark/internal/cache"
	"sitespark/internal/config"
	"sitespark/internal/content"
	"sitespark/internal/database"
	"sitespark/internal/generate"
	"sitespark/internal/handlers"
	"sitespark/internal/images"
	"sitespark/internal/imaging"
	"sitespark/internal/router"
	"sitespark/internal/sitecheck"
	"sitespark/internal/storage"
	"sitespark/internal/store"
)

func main() {
	// Optional .env for local development; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	// Structured logger — outputs JSON in production, text in development.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Valkey for the preview document cache.
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()
	previewCache := cache.NewPreviewCache(valkeyClient, cache.DefaultPreviewTTL)

	// Initialize data stores.
	businessStore := store.NewBusinessStore(db)
	previewStore := store.NewPreviewStore(db)

	// Connect to S3-compatible object storage (optional — without it,
	// previews use stock imagery only).
	var storageClient *storage.Client
	if cfg.S3Endpoint != "" && cfg.S3AccessKey != "" {
		storageClient, err = storage.New(
			cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
			cfg.S3Bucket, cfg.S3PublicURL,
		)
		if err != nil {
			slog.Error("failed to initialize S3 storage", "error", err)
			os.Exit(1)
		}
		if storageClient != nil {
			slog.Info("s3 storage connected",
				"endpoint", cfg.S3Endpoint,
				"bucket", cfg.S3Bucket,
			)
		}
	} else {
		slog.Warn("s3 storage not configured — AI images disabled, using stock imagery")
	}

	// Initialize the AI provider registry with all configured providers.
	aiRegistry := ai.NewRegistry(cfg.AIProvider, map[string]ai.ProviderConfig{
		"openai":  {APIKey: cfg.OpenAIKey, Model: cfg.OpenAIModel, ModelImage: cfg.OpenAIModelImage, BaseURL: cfg.OpenAIBaseURL},
		"gemini":  {APIKey: cfg.GeminiKey, Model: cfg.GeminiModel, ModelImage: cfg.GeminiModelImage, BaseURL: cfg.GeminiBaseURL},
		"claude":  {APIKey: cfg.ClaudeKey, Model: cfg.ClaudeModel, BaseURL: cfg.ClaudeBaseURL},
		"mistral": {APIKey: cfg.MistralKey, Model: cfg.MistralModel, BaseURL: cfg.MistralBaseURL},
	})

	slog.Info("ai providers initialized",
		"active", aiRegistry.ActiveName(),
		"available", aiRegistry.Available(),
	)

	// Content and image generation. Both degrade to curated fallbacks
	// when no provider is usable.
	var textGen content.TextGenerator
	var imageGen images.ImageGenerator
	if len(aiRegistry.Available()) > 0 {
		textGen = aiRegistry
		if aiRegistry.SupportsImageGeneration() {
			imageGen = aiRegistry
		}
	} else {
		slog.Warn("no ai providers configured — all content from curated fallbacks")
	}
	contentGen := content.NewGenerator(textGen)
	var uploader images.Uploader
	if storageClient != nil {
		uploader = storageClient
	}
	if imageGen != nil && uploader != nil {
		// libvips converts provider output to WebP before hosting.
		imaging.Startup(0)
		defer imaging.Shutdown()
	}
	imageProvider := images.NewProvider(imageGen, uploader)

	// Website-existence pre-check (optional).
	checker := sitecheck.New(cfg.SearchAPIKey, cfg.SearchEngineID)
	if !checker.Enabled() {
		slog.Warn("site check not configured — generating for all businesses")
	}

	pipeline := generate.New(generate.Config{
		Businesses: businessStore,
		Previews:   previewStore,
		Content:    contentGen,
		Images:     imageProvider,
		Checker:    checker,
		Cache:      previewCache,
		BaseURL:    cfg.BaseURL,
		Workers:    cfg.BatchWorkers,
	})

	// Create handler groups with their dependencies.
	genHandlers := handlers.NewGenerate(pipeline)
	previewHandlers := handlers.NewPreview(previewStore, previewCache)

	// Set up the Chi router with all middleware and routes.
	r := router.New(cfg.APIKey, genHandlers, previewHandlers)

	// Create the HTTP server. WriteTimeout must accommodate batch
	// generation runs that wait on LLM and image responses.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Minute,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
