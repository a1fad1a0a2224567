package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/stekloline/analytics-api/docs"
	"github.com/stekloline/analytics-api/internal/config"
	"github.com/stekloline/analytics-api/internal/database"
	"github.com/stekloline/analytics-api/internal/http/handler"
	"github.com/stekloline/analytics-api/internal/http/middleware"
	"github.com/stekloline/analytics-api/internal/http/router"
	"github.com/stekloline/analytics-api/internal/jobs"
	"github.com/stekloline/analytics-api/internal/logger"
	"github.com/stekloline/analytics-api/internal/repository"
	"github.com/stekloline/analytics-api/internal/service"
	"github.com/stekloline/analytics-api/internal/storage"
)

// @title Stekloline Analytics API
// @version 1.0
// @description Analytics and reporting API for glass structure order management

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// Load basic configuration first (for logging setup)
	basicCfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.NewLogger(&basicCfg.Logging, &basicCfg.App)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting application",
		zap.String("app", basicCfg.App.Name),
		zap.String("env", basicCfg.App.Environment),
		zap.Int("port", basicCfg.App.Port),
	)

	if basicCfg.App.Environment == "development" || basicCfg.App.Environment == "local" {
		docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", basicCfg.App.Port)
	}

	// Full configuration with secrets resolved
	cfg, err := config.LoadWithSecrets(ctx, log)
	if err != nil {
		return fmt.Errorf("failed to load secrets: %w", err)
	}

	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	archiveStorage, err := storage.NewStorage(&cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	log.Info("Storage initialized", zap.String("mode", cfg.Storage.Mode))

	// Repositories
	projectRepo := repository.NewProjectRepository(db)
	statusRepo := repository.NewStatusRepository(db)
	settingRepo := repository.NewSettingRepository(db)
	baseCostRepo := repository.NewBaseCostRepository(db)

	// Services
	reportService := service.NewReportService(projectRepo, statusRepo, settingRepo, baseCostRepo, log)
	exportService := service.NewExportService(archiveStorage, log)

	// Middleware and handlers
	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit, log)
	reportHandler := handler.NewReportHandler(reportService, exportService, log)

	rt := router.NewRouter(cfg, log, db, rateLimiter, reportHandler)

	// Nightly export snapshots, opt-in via configuration
	var scheduler *jobs.Scheduler
	if cfg.Export.SnapshotEnabled {
		scheduler = jobs.NewScheduler(log)
		snapshotJob := jobs.NewExportSnapshotJob(settingRepo, reportService, exportService, log, 0)
		if err := snapshotJob.Register(scheduler, cfg.Export.SnapshotSchedule); err != nil {
			log.Error("Failed to register export snapshot job", zap.Error(err))
		} else {
			scheduler.Start()
			log.Info("Scheduler started with export snapshot job",
				zap.String("cron_expr", cfg.Export.SnapshotSchedule))
		}
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      rt.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))

		if scheduler != nil {
			ctx := scheduler.Stop()
			<-ctx.Done()
			log.Info("Scheduler stopped")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Failed to shutdown gracefully", zap.Error(err))
			return err
		}

		log.Info("Server stopped gracefully")
	}

	return nil
}
