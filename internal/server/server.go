// Package server exposes the flood engine, risk tables, and report
// generator over HTTP.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"

	"github.com/storm-buster/jal-setu/internal/config"
	"github.com/storm-buster/jal-setu/internal/flood"
	"github.com/storm-buster/jal-setu/internal/report"
)

// Server wires the HTTP routes to the engine and its collaborators.
type Server struct {
	engine  *flood.Engine
	reports *report.Generator
	cfg     config.ServerConfig
	limiter *rate.Limiter
}

// New creates a Server. Rate limiting is disabled when the configured RPS
// is not positive.
func New(cfg config.ServerConfig, engine *flood.Engine, reports *report.Generator) *Server {
	s := &Server{
		engine:  engine,
		reports: reports,
		cfg:     cfg,
	}
	if cfg.RateLimitRPS > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	}
	return s
}

// Router builds the chi router with middleware and all API routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(requestLogger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))
	r.Use(s.rateLimit)

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(api chi.Router) {
		api.Post("/auth/login", s.handleLogin)
		api.Get("/risk-summary", s.handleRiskSummary)
		api.Post("/risk-summary", s.handleRiskSummaryAOI)
		api.Post("/analyze-region", s.handleAnalyzeRegion)
		api.Get("/terrain-profile", s.handleTerrainProfile)
		api.Get("/flood-zones", s.handleFloodZones)
		api.Post("/intersections", s.handleIntersections)
		api.Post("/report", s.handleReport)
	})

	return r
}
