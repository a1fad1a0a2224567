package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/stekloline/analytics-api/internal/config"
	"github.com/stekloline/analytics-api/internal/database"
	"github.com/stekloline/analytics-api/internal/http/handler"
	"github.com/stekloline/analytics-api/internal/http/middleware"

	_ "github.com/stekloline/analytics-api/docs" // generated swagger docs
)

type Router struct {
	cfg           *config.Config
	logger        *zap.Logger
	db            *gorm.DB
	rateLimiter   *middleware.RateLimiter
	reportHandler *handler.ReportHandler
}

func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	db *gorm.DB,
	rateLimiter *middleware.RateLimiter,
	reportHandler *handler.ReportHandler,
) *Router {
	return &Router{
		cfg:           cfg,
		logger:        logger,
		db:            db,
		rateLimiter:   rateLimiter,
		reportHandler: reportHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logging(rt.logger))
	r.Use(middleware.SecurityHeaders(&rt.cfg.Security))
	r.Use(middleware.CORS(&rt.cfg.CORS, rt.cfg.App.Environment, rt.logger))
	r.Use(rt.rateLimiter.Limit)

	// Liveness probe
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Database health with pool statistics
	r.Get("/health/db", func(w http.ResponseWriter, r *http.Request) {
		stats, err := database.Stats(rt.db)
		if err == nil {
			err = database.HealthCheck(r.Context(), rt.db)
		}
		w.Header().Set("Content-Type", "application/json")
		if err != nil {
			rt.logger.Error("Database health check failed", zap.Error(err))
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status":  "unhealthy",
				"error":   err.Error(),
				"service": "database",
			})
			return
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  "healthy",
			"service": "database",
			"stats":   stats,
		})
	})

	// Readiness probe
	r.Get("/health/ready", func(w http.ResponseWriter, r *http.Request) {
		checks := make(map[string]interface{})
		status := "healthy"
		code := http.StatusOK

		if err := database.HealthCheck(r.Context(), rt.db); err != nil {
			rt.logger.Error("Database health check failed", zap.Error(err))
			checks["database"] = map[string]interface{}{"status": "unhealthy", "error": err.Error()}
			status = "unhealthy"
			code = http.StatusServiceUnavailable
		} else {
			checks["database"] = map[string]interface{}{"status": "healthy"}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": status,
			"checks": checks,
		})
	})

	// Swagger documentation
	if rt.cfg.Server.EnableSwagger {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
	}

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/reports", func(r chi.Router) {
			r.Get("/sales", rt.reportHandler.GetSalesReport)
			r.Get("/configurations", rt.reportHandler.GetConfigurationReport)
			r.Get("/financial", rt.reportHandler.GetFinancialReport)
			r.Get("/production", rt.reportHandler.GetProductionReport)
			r.Get("/customers", rt.reportHandler.GetCustomerReport)
			r.Get("/export", rt.reportHandler.GetExport)
			r.Get("/export/download", rt.reportHandler.DownloadExport)
		})
	})

	return r
}
