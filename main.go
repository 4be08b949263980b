package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/riftboard/riftboard/internal/cache"
	"github.com/riftboard/riftboard/internal/config"
	"github.com/riftboard/riftboard/internal/database"
	"github.com/riftboard/riftboard/internal/ddragon"
	"github.com/riftboard/riftboard/internal/enricher"
	server "github.com/riftboard/riftboard/internal/http"
	"github.com/riftboard/riftboard/internal/metrics"
	"github.com/riftboard/riftboard/internal/notifier"
	"github.com/riftboard/riftboard/internal/notifier/slack"
	"github.com/riftboard/riftboard/internal/riot"
	"github.com/riftboard/riftboard/internal/roster"
	"github.com/riftboard/riftboard/internal/sheet"
)

const catalogCacheTTL = 24 * time.Hour

func main() {
	// Start profiling timer
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg := config.Load()
	db, dbTeardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken, cfg.MigrationsDir)
	dbInitDuration := time.Since(startTime)
	log.Info("Database initialization time recorded", "duration_ms", dbInitDuration.Milliseconds())
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer func() {
		log.Info("Closing database connection")
		dbTeardown()
	}()

	store := roster.New(db)
	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()
	riotClient := riot.NewClient(cfg.Riot)
	catalog := ddragon.New(cache.New(db, catalogCacheTTL))
	enrich := enricher.New(riotClient, catalog, store, metricsSvc, cfg.Riot.RequestDelay)
	importer := sheet.NewImporter(cfg.Sheet.CSVURL)

	var notify notifier.Notifier = notifier.NewNoop()
	if cfg.Slack.Token != "" {
		notify = slack.NewNotifier(cfg.Slack.Token, cfg.Slack.ChannelID, metricsSvc)
	} else {
		log.Warn("No Slack token configured, notifications are disabled")
	}

	s := server.NewServer(
		store,
		metricsSvc,
		metricsHandler,
		cfg,
		importer,
		enrich,
		notify,
	)

	// --- Record startup time ---
	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	// --- Graceful shutdown setup ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s,
	}

	// Channel to listen for errors coming from the server
	serverErrors := make(chan error, 1)

	// Start the server in a goroutine
	go func() {
		log.Info("Server started", "port", cfg.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)

		// Create a context with a timeout for the shutdown.
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Attempt to gracefully shut down the server.
		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	log.Info("Server process shutting down")
}
