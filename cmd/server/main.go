package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ghstats/ghstats/internal/auth"
	"github.com/ghstats/ghstats/internal/collector"
	"github.com/ghstats/ghstats/internal/config"
	"github.com/ghstats/ghstats/internal/github"
	"github.com/ghstats/ghstats/internal/server"
	"github.com/ghstats/ghstats/internal/store"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/robfig/cron/v3"
)

func main() {
	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		slog.Error("DATABASE_URL is required")
		os.Exit(1)
	}
	if cfg.SessionSecret == "" {
		slog.Error("SESSION_SECRET is required")
		os.Exit(1)
	}

	slog.Info("starting", "http_addr", cfg.HTTPAddr, "collect_schedule", cfg.CollectSchedule, "fetch_timeout_sec", cfg.FetchTimeoutSec)

	ctx := context.Background()
	if err := store.Migrate(cfg.DatabaseURL); err != nil {
		slog.Error("run migrations", "err", err)
		os.Exit(1)
	}
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("connect to database", "err", err)
		os.Exit(1)
	}
	defer pool.Close()
	slog.Info("database connected")

	st := store.NewPostgres(pool)
	gh := github.NewClient(time.Duration(cfg.FetchTimeoutSec) * time.Second)
	coll := collector.New(st, gh, nil)

	var sso *auth.OIDC
	if cfg.OIDCIssuer != "" {
		sso, err = auth.NewOIDC(ctx, cfg.OIDCIssuer, cfg.OIDCClientID, cfg.OIDCClientSecret, cfg.BaseURL+"/oidc/callback")
		if err != nil {
			slog.Error("configure oidc", "err", err)
			os.Exit(1)
		}
		slog.Info("oidc login enabled", "issuer", cfg.OIDCIssuer)
	}

	// Scheduled collection runs
	var sched *cron.Cron
	if cfg.CollectSchedule != "" {
		sched = cron.New()
		_, err := sched.AddFunc(cfg.CollectSchedule, func() {
			res, err := coll.Run(ctx)
			if err != nil {
				slog.Error("scheduled collection", "err", err)
				return
			}
			slog.Info("scheduled collection done", "total_repos", res.TotalRepos, "processed_repos", res.ProcessedRepos)
		})
		if err != nil {
			slog.Error("invalid COLLECT_SCHEDULE", "schedule", cfg.CollectSchedule, "err", err)
			os.Exit(1)
		}
		sched.Start()
		slog.Info("collection scheduled", "schedule", cfg.CollectSchedule)
	}

	// HTTP server
	srv := server.NewServer(cfg.HTTPAddr, st, coll, auth.NewSessionManager(cfg.SessionSecret), sso, cfg.CollectToken)
	go func() {
		slog.Info("http server listening", "addr", cfg.HTTPAddr)
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			slog.Error("http server", "err", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	slog.Info("shutting down", "signal", "received")

	if sched != nil {
		<-sched.Stop().Done()
		slog.Info("scheduler stopped")
	}
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Warn("http server shutdown", "err", err)
	} else {
		slog.Info("http server stopped")
	}
}
