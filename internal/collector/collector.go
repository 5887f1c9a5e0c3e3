// Package collector implements the traffic collection run: for every
// tenant, fetch view/clone traffic for each registered repository and
// merge it into storage, recording one run-log entry per tenant.
package collector

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/ghstats/ghstats/internal/github"
	"github.com/ghstats/ghstats/internal/store"
)

// Result is the outcome of one collection run across all tenants.
type Result struct {
	TotalRepos     int
	ProcessedRepos int
}

// Collector runs traffic collection. Depends only on the Store interface,
// a TrafficFetcher, and a CredentialResolver.
type Collector struct {
	store   store.Store
	fetcher github.TrafficFetcher
	creds   CredentialResolver
	log     *slog.Logger
}

// New returns a collector. Pass nil creds to resolve credentials from the
// tenant records in the given store.
func New(s store.Store, f github.TrafficFetcher, creds CredentialResolver) *Collector {
	if creds == nil {
		creds = NewStoreCredentials(s)
	}
	return &Collector{store: s, fetcher: f, creds: creds, log: slog.Default()}
}

// Run performs one complete collection pass over all tenants.
//
// Failure handling: a repository fetch error is recorded in the tenant's
// run-log entry and collection continues with the next repository; a
// tenant credential error produces a zero-progress run-log entry and
// collection continues with the next tenant; any storage error aborts the
// whole run and is returned to the caller.
func (c *Collector) Run(ctx context.Context) (Result, error) {
	var res Result
	tenants, err := c.store.ListTenants(ctx)
	if err != nil {
		return res, fmt.Errorf("list tenants: %w", err)
	}
	c.log.Info("collection run starting", "tenants", len(tenants))

	for _, tenant := range tenants {
		cred, err := c.creds.Resolve(ctx, tenant.ID)
		if err != nil {
			c.log.Warn("resolve tenant credentials", "tenant", tenant.ID, "err", err)
			if lerr := c.logTenantFailure(ctx, tenant.ID, err); lerr != nil {
				return res, fmt.Errorf("tenant %d: log credential failure: %w", tenant.ID, lerr)
			}
			continue
		}
		repos, err := c.store.ListTenantRepos(ctx, tenant.ID)
		if err != nil {
			return res, fmt.Errorf("tenant %d: list repos: %w", tenant.ID, err)
		}
		processed, err := c.collectTenant(ctx, tenant.ID, cred, repos, &res)
		if err != nil {
			return res, err
		}
		c.log.Info("tenant collected", "tenant", tenant.ID, "processed", processed, "total", len(repos))
	}

	runsTotal.Inc()
	c.log.Info("collection run completed", "total_repos", res.TotalRepos, "processed_repos", res.ProcessedRepos)
	return res, nil
}

// collectTenant processes one tenant's repositories inside a single
// transaction so traffic merges and the run-log entry commit together.
func (c *Collector) collectTenant(ctx context.Context, tenantID int64, cred github.Credential, repos []store.Repo, res *Result) (int, error) {
	tx, err := c.store.BeginTenant(ctx)
	if err != nil {
		return 0, fmt.Errorf("tenant %d: begin: %w", tenantID, err)
	}

	processed := 0
	var failed []string
	for _, repo := range repos {
		res.TotalRepos++
		traffic, err := c.fetcher.FetchTraffic(ctx, repo.OrgName, repo.Name, cred)
		if err != nil {
			c.log.Warn("fetch traffic", "tenant", tenantID, "repo", repo.OrgName+"/"+repo.Name, "rid", repo.ID, "err", err)
			failed = append(failed, strconv.FormatInt(repo.ID, 10))
			repoFailures.Inc()
			continue
		}
		if len(traffic.Views) > 0 {
			if err := tx.MergeTraffic(ctx, repo.ID, toDays(traffic.Views), store.KindViews); err != nil {
				_ = tx.Rollback(ctx)
				return processed, fmt.Errorf("tenant %d: merge views for repo %d: %w", tenantID, repo.ID, err)
			}
		}
		if len(traffic.Clones) > 0 {
			if err := tx.MergeTraffic(ctx, repo.ID, toDays(traffic.Clones), store.KindClones); err != nil {
				_ = tx.Rollback(ctx)
				return processed, fmt.Errorf("tenant %d: merge clones for repo %d: %w", tenantID, repo.ID, err)
			}
		}
		processed++
		res.ProcessedRepos++
		reposProcessed.Inc()
	}

	entry := &store.RunLogRow{
		TenantID:  tenantID,
		Completed: time.Now().UTC(),
		NumRepos:  processed,
		State:     statusText(processed, len(repos), failed),
	}
	if err := tx.AppendRunLog(ctx, entry); err != nil {
		_ = tx.Rollback(ctx)
		return processed, fmt.Errorf("tenant %d: append run log: %w", tenantID, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return processed, fmt.Errorf("tenant %d: commit: %w", tenantID, err)
	}
	return processed, nil
}

// logTenantFailure records a zero-progress run-log entry for a tenant
// whose credentials could not be resolved.
func (c *Collector) logTenantFailure(ctx context.Context, tenantID int64, cause error) error {
	tx, err := c.store.BeginTenant(ctx)
	if err != nil {
		return err
	}
	entry := &store.RunLogRow{
		TenantID:  tenantID,
		Completed: time.Now().UTC(),
		NumRepos:  0,
		State:     fmt.Sprintf("collect (0/0), tenant error: %v", cause),
	}
	if err := tx.AppendRunLog(ctx, entry); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}

// statusText renders the per-tenant run summary, e.g.
// "collect (3/4), repo errors: 17".
func statusText(processed, total int, failed []string) string {
	s := fmt.Sprintf("collect (%d/%d)", processed, total)
	if len(failed) > 0 {
		s += ", repo errors: " + strings.Join(failed, " ")
	}
	return s
}

func toDays(days []github.TrafficDay) []store.TrafficDay {
	out := make([]store.TrafficDay, 0, len(days))
	for _, d := range days {
		out = append(out, store.TrafficDay{Date: d.Date, Count: d.Count, Uniques: d.Uniques})
	}
	return out
}
