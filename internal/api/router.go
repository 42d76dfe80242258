package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/neexbeast/tripwise/internal/config"
)

// NewRouter builds and returns the Chi router with all routes configured.
// The health endpoint and /metrics are unauthenticated; every other /api route
// requires bearer auth when cfg.APIToken is set. Rate limiting is per IP.
func NewRouter(handlers *Handlers, cfg config.Server, gatherer prometheus.Gatherer, log *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(log))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))
	if cfg.RateLimitPerMinute > 0 {
		r.Use(httprate.LimitByIP(cfg.RateLimitPerMinute, time.Minute))
	}

	r.Get("/api/health", handlers.Health)
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	r.Group(func(r chi.Router) {
		r.Use(BearerAuth(cfg.APIToken))
		r.Get("/api/validate-config", handlers.ValidateConfig)
		r.Post("/api/generate-plan", handlers.GeneratePlan)
		r.Post("/api/ask-question", handlers.AskQuestion)
		r.Get("/api/weather/{destination}", handlers.GetWeather)
		r.Get("/api/country/code/{code}", handlers.GetCountryByCode)
		r.Get("/api/country/{name}", handlers.GetCountry)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "Not found"})
	})

	return r
}
