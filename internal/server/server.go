// Package server exposes the HTTP surface: health/status, the collection
// trigger, OIDC login, repository management, and the CSV/JSON traffic
// data endpoints.
package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/ghstats/ghstats/internal/auth"
	"github.com/ghstats/ghstats/internal/collector"
	"github.com/ghstats/ghstats/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// CollectionRunner triggers one collection run (e.g. *collector.Collector).
type CollectionRunner interface {
	Run(ctx context.Context) (collector.Result, error)
}

// Server serves the web surface. Depends only on the Store interface.
type Server struct {
	store        store.Store
	runner       CollectionRunner
	sessions     *auth.SessionManager
	oidc         *auth.OIDC // nil when login is not configured
	collectToken string
	http         *http.Server
	log          *slog.Logger
}

// NewServer returns an HTTP server wired to the given collaborators.
// collectToken guards the collection trigger endpoint; oidc may be nil to
// disable interactive login.
func NewServer(addr string, s store.Store, runner CollectionRunner, sessions *auth.SessionManager, oidc *auth.OIDC, collectToken string) *Server {
	srv := &Server{
		store:        s,
		runner:       runner,
		sessions:     sessions,
		oidc:         oidc,
		collectToken: collectToken,
		log:          slog.Default(),
	}

	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(recoverMiddleware)

	r.Get("/health", srv.handleHealth)
	r.Get("/stats", srv.handleStats)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Post("/admin/collect", srv.handleCollect)

	r.Get("/login", srv.handleLogin)
	r.Get("/oidc/callback", srv.handleOIDCCallback)
	r.Get("/logout", srv.handleLogout)

	// Session-gated data surface.
	r.Group(func(r chi.Router) {
		r.Use(srv.sessionMiddleware)
		r.With(requireRole(auth.Role.CanViewStats)).Get("/data/repostats.csv", srv.handleRepoStatsCSV)
		r.With(requireRole(auth.Role.CanViewStats)).Get("/data/repostats.json", srv.handleRepoStatsJSON)
		r.With(requireRole(auth.Role.CanViewStats)).Get("/data/repostatsweekly.json", srv.handleWeeklyStatsJSON)
		r.With(requireRole(auth.Role.CanViewStats)).Get("/data/repositories.csv", srv.handleRepoListCSV)
		r.With(requireRole(auth.Role.CanViewStats)).Get("/data/repositories.json", srv.handleRepoListJSON)
		r.With(requireRole(auth.Role.CanViewLogs)).Get("/data/systemlogs.json", srv.handleSystemLogJSON)
		r.With(requireRole(auth.Role.IsTenant)).Post("/api/repos", srv.handleAddRepo)
		r.With(requireRole(auth.Role.IsTenant)).Delete("/api/repos/{rid}", srv.handleDeleteRepo)
		r.With(requireRole(auth.Role.CanViewStats)).Post("/api/v1/dashboard_session", srv.handleDashboardSession)
	})

	// Data-token surface for embedded dashboards.
	r.With(srv.dataTokenMiddleware).Get("/api/v1/data/repositorystats.csv", srv.handleRepoStatsCSV)

	srv.http = &http.Server{Addr: addr, Handler: r}
	return srv
}

// Start starts the HTTP server (blocking).
func (s *Server) Start() error {
	return s.http.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.store != nil {
		if err := s.store.Ping(r.Context()); err != nil {
			s.log.Warn("health check failed", "err", err)
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy", "error": err.Error()})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	repos, err := s.store.RepoCount(r.Context())
	if err != nil {
		s.log.Error("stats: repo count", "err", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	trafficDays, err := s.store.TrafficDayCount(r.Context())
	if err != nil {
		s.log.Error("stats: traffic day count", "err", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	lastRun, err := s.store.LastRunCompleted(r.Context())
	if err != nil {
		s.log.Error("stats: last run", "err", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	body := map[string]any{
		"repos":        repos,
		"traffic_days": trafficDays,
	}
	if !lastRun.IsZero() {
		body["last_run_completed"] = lastRun
	}
	writeJSON(w, http.StatusOK, body)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
