package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"golang.org/x/time/rate"

	"github.com/locato-app/locato-api/pkg/middleware"
)

// SetupRouter configures all routes and returns the HTTP handler
func SetupRouter(deps *Dependencies) http.Handler {
	mux := http.NewServeMux()

	registerAPIRoutes(mux, deps)
	registerUtilityRoutes(mux, deps)

	chain := []func(http.Handler) http.Handler{
		middleware.RequestID,
		middleware.Recovery(deps.Logger),
		middleware.Logging(deps.Logger),
	}
	if deps.Config.Server.RateLimitPerSecond > 0 && deps.Config.Server.RateLimitBurst > 0 {
		limiter := rate.NewLimiter(
			rate.Limit(float64(deps.Config.Server.RateLimitPerSecond)),
			deps.Config.Server.RateLimitBurst,
		)
		chain = append(chain, middleware.RateLimit(limiter))
	}

	var handler http.Handler = mux
	for i := len(chain) - 1; i >= 0; i-- {
		handler = chain[i](handler)
	}

	// Enable CORS for browser clients (local frontend)
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5173",
		},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders: []string{
			"Accept-Encoding",
			"Content-Type",
			middleware.RequestIDHeader,
		},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: true,
	})

	return corsHandler.Handler(handler)
}

// registerAPIRoutes registers the search, catalog, and user state routes
func registerAPIRoutes(mux *http.ServeMux, deps *Dependencies) {
	mux.HandleFunc("GET /v1/search", deps.SearchHandler.Search)
	mux.HandleFunc("GET /v1/catalog", deps.SearchHandler.Catalog)

	mux.HandleFunc("GET /v1/favorites", deps.UserStateHandler.Favorites)
	mux.HandleFunc("PUT /v1/favorites", deps.UserStateHandler.ReplaceFavorites)
	mux.HandleFunc("POST /v1/favorites/toggle", deps.UserStateHandler.ToggleFavorite)

	mux.HandleFunc("GET /v1/restaurants/{id}/reviews", deps.UserStateHandler.Reviews)
	mux.HandleFunc("POST /v1/restaurants/{id}/reviews", deps.UserStateHandler.AddReview)

	deps.Logger.Info("API routes configured")
}

// registerUtilityRoutes registers health check, metrics, and other utility routes
func registerUtilityRoutes(mux *http.ServeMux, deps *Dependencies) {
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if deps.DB != nil {
			if err := deps.DB.Health(r.Context()); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				w.Write([]byte("database unhealthy"))
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	deps.Logger.Info("registered health check", "path", "/health")

	mux.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ready"))
	})

	if deps.Config.Observability.MetricsEnabled {
		mux.Handle("/metrics", promhttp.Handler())
		deps.Logger.Info("registered metrics endpoint", "path", "/metrics")
	}
}
