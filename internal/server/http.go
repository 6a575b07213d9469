// Package server wires the HTTP router: middleware, API routes, health
// probes, and the metrics endpoint.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	authzhandler "usip/internal/authz/handler"
	healthhandler "usip/internal/health/handler"
	"usip/internal/server/middleware"
)

// Deps holds the handler dependencies for the router.
type Deps struct {
	// Authz serves the API endpoints (/credential, /userinfo, /role, /collaborators).
	Authz *authzhandler.Server
	// Health serves the liveness and readiness probes.
	Health *healthhandler.Server
	// Logger is used by the request logging middleware. Nil means no request logs.
	Logger *zap.Logger
}

// NewRouter returns the service router with request id, logging, metrics,
// tracing, and panic recovery middleware applied.
func NewRouter(deps Deps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.Tracing("usip"))
	r.Use(chimiddleware.Recoverer)

	deps.Authz.Routes(r)
	deps.Health.Routes(r)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}
