package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
	"github.com/stekloline/analytics-api/internal/config"
	"go.uber.org/zap"
)

// CORS configures cross-origin access for the dashboard frontends that call
// the report endpoints. Origins come from configuration; without any, all
// origins are allowed in development and none in production.
func CORS(cfg *config.CORSConfig, environment string, logger *zap.Logger) func(http.Handler) http.Handler {
	options := cors.Options{
		AllowedMethods:   cfg.AllowedMethods,
		AllowedHeaders:   cfg.AllowedHeaders,
		ExposedHeaders:   cfg.ExposedHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}

	allowAny := func(r *http.Request, origin string) bool { return origin != "" }
	devLike := environment == "development" || environment == "local" || environment == ""

	switch {
	case hasWildcardOrigin(cfg.AllowedOrigins):
		if !devLike {
			logger.Warn("CORS wildcard origin outside development",
				zap.String("environment", environment))
		}
		options.AllowOriginFunc = allowAny
	case len(cfg.AllowedOrigins) > 0:
		options.AllowedOrigins = cfg.AllowedOrigins
		logger.Info("CORS restricted to configured origins",
			zap.Strings("origins", cfg.AllowedOrigins))
	case devLike:
		options.AllowOriginFunc = allowAny
		logger.Info("CORS open to all origins in development")
	default:
		// An empty AllowedOrigins list defaults to "*" inside the cors
		// package, so denial has to go through AllowOriginFunc.
		options.AllowOriginFunc = func(r *http.Request, origin string) bool { return false }
		logger.Warn("CORS has no allowed origins, cross-origin requests will be denied",
			zap.String("environment", environment))
	}

	return cors.Handler(options)
}

func hasWildcardOrigin(origins []string) bool {
	for _, origin := range origins {
		if origin == "*" {
			return true
		}
	}
	return false
}
