package collector

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	runsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ghstats_collect_runs_total",
		Help: "Completed collection runs.",
	})
	reposProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ghstats_collect_repos_processed_total",
		Help: "Repositories whose traffic was fetched and merged.",
	})
	repoFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ghstats_collect_repo_failures_total",
		Help: "Repository fetches that failed and were skipped.",
	})
)
