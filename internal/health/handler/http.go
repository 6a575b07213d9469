// Package handler serves liveness and readiness probes.
package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Pinger reports backing-store connectivity (e.g. *sql.DB).
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Server serves /health/live and /health/ready. Readiness pings the backing
// store when one is configured; with in-memory stores there is nothing to
// check and readiness always succeeds.
type Server struct {
	db Pinger
}

// NewServer returns a health server. db may be nil when no database is configured.
func NewServer(db Pinger) *Server {
	return &Server{db: db}
}

// Routes registers the probe endpoints on r.
func (s *Server) Routes(r chi.Router) {
	r.Get("/health/live", s.handleLive)
	r.Get("/health/ready", s.handleReady)
}

func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	writeStatus(w, http.StatusOK, "ok")
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if s.db != nil {
		if err := s.db.PingContext(r.Context()); err != nil {
			writeStatus(w, http.StatusServiceUnavailable, "unavailable")
			return
		}
	}
	writeStatus(w, http.StatusOK, "ok")
}

func writeStatus(w http.ResponseWriter, code int, status string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(struct {
		Status string `json:"status"`
	}{Status: status})
}
