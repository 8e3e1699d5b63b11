// Spark serving layer — terminates the widget and admin HTTP surfaces,
// runs the per-turn conversation pipeline, and owns the background
// worker pool for analytics and CRM work.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/trykin/spark/pkg/api"
	"github.com/trykin/spark/pkg/cleanup"
	"github.com/trykin/spark/pkg/config"
	"github.com/trykin/spark/pkg/crm"
	"github.com/trykin/spark/pkg/database"
	"github.com/trykin/spark/pkg/ingestion"
	"github.com/trykin/spark/pkg/llm"
	"github.com/trykin/spark/pkg/preflight"
	"github.com/trykin/spark/pkg/ratelimit"
	"github.com/trykin/spark/pkg/retrieval"
	"github.com/trykin/spark/pkg/services"
	"github.com/trykin/spark/pkg/settling"
	"github.com/trykin/spark/pkg/spark"
	"github.com/trykin/spark/pkg/tasks"
	"github.com/trykin/spark/pkg/version"
)

const (
	poolWorkers    = 4
	poolQueueDepth = 256
	poolTaskLimit  = 30 * time.Second

	shutdownTimeout = 10 * time.Second
)

func main() {
	// Load .env if present; containerized deployments inject env directly
	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	logger.Info("Starting Spark",
		"version", version.Full(),
		"host", cfg.Host,
		"port", cfg.Port,
		"preflight_mode", cfg.PreflightMode,
		"primary_model", cfg.PrimaryModel)

	// 2. Database (runs pending migrations)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		logger.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logger.Error("Error closing database client", "error", err)
		}
	}()
	logger.Info("Connected to PostgreSQL database")

	// 3. Model access and domain services
	llmClient := llm.NewClient(cfg, logger)

	clientService := services.NewClientService(dbClient.Client)
	sessionService := services.NewSessionService(dbClient.Client, dbClient.DB(), logger, cfg.SessionTimeout)
	leadService := services.NewLeadService(dbClient.Client)
	knowledgeService := services.NewKnowledgeService(dbClient.Client, dbClient.DB(), llmClient)
	eventService := services.NewEventService(dbClient.Client)
	dashboardService := services.NewDashboardService(dbClient.Client, logger)
	logger.Info("Services initialized")

	// 4. Turn pipeline
	retriever := retrieval.NewRetriever(dbClient.DB(), llmClient, logger, cfg.MaxDocChunks, cfg.DocMatchThreshold)
	preflightRunner := preflight.NewRunner(llmClient, retriever, logger)
	promptBuilder := settling.NewBuilder(logger)

	pool := tasks.NewPool(poolWorkers, poolQueueDepth, poolTaskLimit)
	orchestrator := spark.NewOrchestrator(
		cfg, sessionService, preflightRunner, llmClient, eventService, promptBuilder, pool, logger)

	// 5. Retention sweep
	cleanupService := cleanup.NewService(cfg, sessionService, eventService, logger)
	cleanupService.Start(ctx)
	defer cleanupService.Stop()

	// 6. Edge dependencies
	limiter := ratelimit.New()
	crmSyncer := crm.NewSyncer(leadService, logger)
	ingestService := ingestion.NewService(dbClient.Client, dbClient.DB(), llmClient, logger)

	server := api.NewServer(cfg, api.Deps{
		Clients:      clientService,
		Sessions:     sessionService,
		Leads:        leadService,
		Knowledge:    knowledgeService,
		Events:       eventService,
		Dashboard:    dashboardService,
		Ingest:       ingestService,
		CRM:          crmSyncer,
		Orchestrator: orchestrator,
		Limiter:      limiter,
		Pool:         pool,
		DB:           dbClient.DB(),
		Logger:       logger,
	})

	// 7. Serve (non-blocking)
	errCh := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil {
			logger.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	// 8. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		logger.Info("Shutdown signal received", "signal", sig.String())
	case err := <-errCh:
		logger.Error("Server error triggered shutdown", "error", err)
	}

	// 9. Graceful shutdown: stop accepting requests, then drain the
	// background pool so queued analytics and CRM syncs land.
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	done := make(chan struct{})
	go func() {
		pool.Stop()
		close(done)
	}()
	select {
	case <-done:
		logger.Info("Worker pool drained")
	case <-shutdownCtx.Done():
		logger.Warn("Worker pool shutdown timeout exceeded")
	}

	logger.Info("Shutdown complete")
}
