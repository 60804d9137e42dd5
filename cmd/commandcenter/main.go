// CommandCenter server — operational control plane for an off-grid solar
// installation: telemetry pollers, knowledge base sync, and the agent
// query pipeline behind a REST API.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/offgrid-ops/commandcenter/pkg/agent"
	"github.com/offgrid-ops/commandcenter/pkg/api"
	"github.com/offgrid-ops/commandcenter/pkg/cache"
	"github.com/offgrid-ops/commandcenter/pkg/cleanup"
	"github.com/offgrid-ops/commandcenter/pkg/config"
	"github.com/offgrid-ops/commandcenter/pkg/contextmgr"
	"github.com/offgrid-ops/commandcenter/pkg/conversation"
	"github.com/offgrid-ops/commandcenter/pkg/database"
	"github.com/offgrid-ops/commandcenter/pkg/kb"
	"github.com/offgrid-ops/commandcenter/pkg/llm"
	"github.com/offgrid-ops/commandcenter/pkg/services"
	"github.com/offgrid-ops/commandcenter/pkg/telemetry"
	"github.com/offgrid-ops/commandcenter/pkg/version"
	"github.com/offgrid-ops/commandcenter/pkg/websearch"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	}

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}
	slog.Info("Starting CommandCenter",
		"version", version.Full(),
		"http_port", cfg.HTTPPort,
		"config_dir", *configDir)

	// 2. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Cache: Redis when configured, otherwise a no-op that always misses.
	var bundleCache cache.Cache = cache.NewNoopCache()
	if cfg.Cache.URL != "" {
		redisCache, cacheErr := cache.NewRedisCache(ctx, cfg.Cache.URL)
		if cacheErr != nil {
			slog.Warn("Cache unavailable, bundles will be uncached", "error", cacheErr)
		} else {
			bundleCache = redisCache
		}
	}
	defer func() { _ = bundleCache.Close() }()

	// 4. Knowledge base
	provider := kb.NewHTTPProvider(cfg.KB.ProviderBaseURL, cfg.KB.ProviderToken)
	embedder := kb.NewOpenAIEmbedder(cfg.LLM, cfg.Embedding)
	kbService, err := kb.NewService(ctx, dbClient, provider, embedder, cfg.KB)
	if err != nil {
		slog.Error("Failed to initialize knowledge base", "error", err)
		os.Exit(1)
	}
	syncScheduler := kb.NewScheduler(kbService, cfg.KB.SyncInterval)
	syncScheduler.Start(ctx)
	defer syncScheduler.Stop()

	// 5. Conversations, executions, retention
	conversations := conversation.NewService(dbClient.Client)
	executions := services.NewExecutionService(dbClient.Client)
	retention := cleanup.NewService(cfg.Retention, conversations)
	retention.Start(ctx)
	defer retention.Stop()

	// 6. Telemetry pollers
	telemetryService := telemetry.NewService(dbClient)
	pollerHealth := make(map[telemetry.Vendor]*telemetry.HealthState)
	var pollers []*telemetry.Poller

	startPoller := func(client telemetry.VendorClient, vc config.VendorConfig) {
		limiter := telemetry.NewHourlyLimiter(vc.RateLimitPerHour)
		health := telemetry.NewHealthState(client.Vendor(), cfg.Telemetry.MaxConsecutiveFailures, cfg.Telemetry.StaleWindow, limiter)
		poller := telemetry.NewPoller(client, telemetryService, limiter, health, vc.PollInterval)
		poller.Start(ctx)
		pollerHealth[client.Vendor()] = health
		pollers = append(pollers, poller)
	}
	if cfg.Telemetry.SolArk.BaseURL != "" {
		startPoller(telemetry.NewSolArkClient(cfg.Telemetry.SolArk), cfg.Telemetry.SolArk)
	}
	if cfg.Telemetry.Victron.BaseURL != "" {
		startPoller(telemetry.NewVictronClient(cfg.Telemetry.Victron), cfg.Telemetry.Victron)
	}
	defer func() {
		for _, p := range pollers {
			p.Stop()
		}
	}()
	slog.Info("Telemetry pollers started", "count", len(pollers))

	// 7. Context manager and agent pipeline
	contextManager := contextmgr.NewManager(cfg, bundleCache, kbService, conversations)
	llmClient := llm.NewOpenAIClient(cfg.LLM)
	deps := &agent.Deps{
		Telemetry:   telemetryService,
		KB:          kbService,
		Web:         websearch.NewClient(cfg.WebSearch),
		StaleWindow: cfg.Telemetry.StaleWindow,
		KBThreshold: cfg.KB.SimilarityThreshold,
		WebTimeout:  cfg.WebSearch.CallTimeout,
	}
	manager := agent.NewManager(cfg, llmClient, deps, contextManager.Classifier())
	orchestrator := agent.NewOrchestrator(cfg, contextManager, manager, conversations, executions)
	slog.Info("Agent pipeline initialized")

	// 8. HTTP server
	server := api.NewServer(cfg, dbClient, orchestrator, conversations, executions, kbService, telemetryService, pollerHealth)
	errCh := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil {
			errCh <- err
		}
	}()

	// 9. Wait for shutdown signal or server failure
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("HTTP server failed", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
