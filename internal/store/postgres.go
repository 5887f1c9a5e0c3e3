package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres implements Store using PostgreSQL. Only this package and main
// use *pgxpool.Pool.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres returns a Store backed by the given pool. Caller must call Close when done.
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

// ListTenants returns every tenant eligible for collection.
func (p *Postgres) ListTenants(ctx context.Context) ([]Tenant, error) {
	rows, err := p.pool.Query(ctx, `SELECT tid, ghuser FROM tenants ORDER BY tid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var tenants []Tenant
	for rows.Next() {
		var t Tenant
		if err := rows.Scan(&t.ID, &t.GHUser); err != nil {
			return nil, err
		}
		tenants = append(tenants, t)
	}
	return tenants, rows.Err()
}

// TenantCredentials returns the GitHub user and access token for a tenant.
// Used only by the default credential resolver.
func (p *Postgres) TenantCredentials(ctx context.Context, tenantID int64) (string, string, error) {
	var user, token string
	err := p.pool.QueryRow(ctx, `SELECT ghuser, ghtoken FROM tenants WHERE tid = $1`, tenantID).Scan(&user, &token)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", "", fmt.Errorf("tenant %d: no credentials", tenantID)
	}
	return user, token, err
}

// ListTenantRepos returns the repositories owned by a tenant.
func (p *Postgres) ListTenantRepos(ctx context.Context, tenantID int64) ([]Repo, error) {
	rows, err := p.pool.Query(ctx, `
		SELECT r.rid, g.username, r.rname
		FROM tenantrepos tr
		JOIN repos r ON r.rid = tr.rid
		JOIN ghorgusers g ON g.oid = r.oid
		WHERE tr.tid = $1
		ORDER BY r.rid
	`, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var repos []Repo
	for rows.Next() {
		var r Repo
		if err := rows.Scan(&r.ID, &r.OrgName, &r.Name); err != nil {
			return nil, err
		}
		repos = append(repos, r)
	}
	return repos, rows.Err()
}

// BeginTenant opens one tenant's collection transaction.
func (p *Postgres) BeginTenant(ctx context.Context) (TenantTx, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	return &tenantTx{tx: tx}, nil
}

type tenantTx struct {
	tx pgx.Tx
}

func (t *tenantTx) MergeTraffic(ctx context.Context, repoID int64, days []TrafficDay, kind Kind) error {
	if len(days) == 0 {
		return nil
	}
	sql, err := mergeSQL(kind, len(days))
	if err != nil {
		return err
	}
	_, err = t.tx.Exec(ctx, sql, mergeArgs(repoID, days)...)
	return err
}

func (t *tenantTx) AppendRunLog(ctx context.Context, entry *RunLogRow) error {
	_, err := t.tx.Exec(ctx, `
		INSERT INTO systemlog (tid, completed, numrepos, state)
		VALUES ($1, $2, $3, $4)
	`, entry.TenantID, entry.Completed, entry.NumRepos, entry.State)
	return err
}

func (t *tenantTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *tenantTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

const statsSelect = `
	SELECT r.rid, g.username, r.rname, t.tdate, t.viewcount, t.vuniques, t.clonecount, t.cuniques
	FROM repotraffic t
	JOIN repos r ON r.rid = t.rid
	JOIN ghorgusers g ON g.oid = r.oid
	JOIN tenantrepos tr ON tr.rid = r.rid
	JOIN admintenantreporoles ar ON ar.tid = tr.tid
	JOIN adminusers au ON au.aid = ar.aid
	WHERE au.email = $1
	ORDER BY r.rid, t.tdate`

// TrafficStats returns the daily traffic rows visible to a user.
func (p *Postgres) TrafficStats(ctx context.Context, email string) ([]TrafficStatRow, error) {
	rows, err := p.pool.Query(ctx, statsSelect, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []TrafficStatRow
	for rows.Next() {
		var s TrafficStatRow
		if err := rows.Scan(&s.RepoID, &s.OrgName, &s.RepoName, &s.Date, &s.ViewCount, &s.VUniques, &s.CloneCount, &s.CUniques); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// WeeklyTrafficStats returns traffic grouped by repository and ISO work week.
func (p *Postgres) WeeklyTrafficStats(ctx context.Context, email string) ([]WeeklyStatRow, error) {
	rows, err := p.pool.Query(ctx, `
		SELECT r.rid, g.username, r.rname, to_char(t.tdate, 'IYYY-IW') AS workweek,
		       SUM(t.viewcount), SUM(t.vuniques), SUM(t.clonecount), SUM(t.cuniques)
		FROM repotraffic t
		JOIN repos r ON r.rid = t.rid
		JOIN ghorgusers g ON g.oid = r.oid
		JOIN tenantrepos tr ON tr.rid = r.rid
		JOIN admintenantreporoles ar ON ar.tid = tr.tid
		JOIN adminusers au ON au.aid = ar.aid
		WHERE au.email = $1
		GROUP BY r.rid, g.username, r.rname, to_char(t.tdate, 'IYYY-IW')
		ORDER BY r.rid, workweek
	`, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []WeeklyStatRow
	for rows.Next() {
		var s WeeklyStatRow
		if err := rows.Scan(&s.RepoID, &s.OrgName, &s.RepoName, &s.WorkWeek, &s.ViewCount, &s.VUniques, &s.CloneCount, &s.CUniques); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// ListReposForEmail returns the repositories visible to a user.
func (p *Postgres) ListReposForEmail(ctx context.Context, email string) ([]RepoListRow, error) {
	rows, err := p.pool.Query(ctx, `
		SELECT DISTINCT r.rid, g.username, r.rname
		FROM repos r
		JOIN ghorgusers g ON g.oid = r.oid
		JOIN tenantrepos tr ON tr.rid = r.rid
		JOIN admintenantreporoles ar ON ar.tid = tr.tid
		JOIN adminusers au ON au.aid = ar.aid
		WHERE au.email = $1
		ORDER BY r.rid
	`, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []RepoListRow
	for rows.Next() {
		var r RepoListRow
		if err := rows.Scan(&r.RepoID, &r.OrgName, &r.RepoName); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// RecentRunLog returns run-log entries from the last N days, newest first.
func (p *Postgres) RecentRunLog(ctx context.Context, days int) ([]RunLogRow, error) {
	rows, err := p.pool.Query(ctx, `
		SELECT tid, completed, numrepos, state
		FROM systemlog
		WHERE completed > now() - make_interval(days => $1)
		ORDER BY completed DESC, tid ASC
	`, days)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []RunLogRow
	for rows.Next() {
		var e RunLogRow
		if err := rows.Scan(&e.TenantID, &e.Completed, &e.NumRepos, &e.State); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// RoleForEmail returns the role bitmask for a user, 0 if unknown.
func (p *Postgres) RoleForEmail(ctx context.Context, email string) (int, error) {
	var role int
	err := p.pool.QueryRow(ctx, `
		SELECT ar.role FROM adminroles ar
		JOIN adminusers au ON au.aid = ar.aid
		WHERE au.email = $1
	`, email).Scan(&role)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	return role, err
}

// AddRepo registers a repository for the tenant the user holds the tenant
// role for, creating the org/user row on demand. Returns the new repo id.
func (p *Postgres) AddRepo(ctx context.Context, email, orgName, repoName string) (int64, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	var tenantID int64
	err = tx.QueryRow(ctx, `
		SELECT ar.tid
		FROM admintenantreporoles ar
		JOIN adminusers au ON au.aid = ar.aid
		WHERE au.email = $1 AND ar.role & 4 > 0
		LIMIT 1
	`, email).Scan(&tenantID)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("no tenant for %s", email)
	}
	if err != nil {
		return 0, err
	}

	var orgID int64
	err = tx.QueryRow(ctx, `
		INSERT INTO ghorgusers (username) VALUES ($1)
		ON CONFLICT (username) DO UPDATE SET username = EXCLUDED.username
		RETURNING oid
	`, orgName).Scan(&orgID)
	if err != nil {
		return 0, err
	}

	var repoID int64
	err = tx.QueryRow(ctx, `
		INSERT INTO repos (rname, oid) VALUES ($1, $2) RETURNING rid
	`, repoName, orgID).Scan(&repoID)
	if err != nil {
		return 0, err
	}
	if _, err := tx.Exec(ctx, `INSERT INTO tenantrepos (tid, rid) VALUES ($1, $2)`, tenantID, repoID); err != nil {
		return 0, err
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return repoID, nil
}

// DeleteRepo removes a repository, its tenant link, role grants, and
// collected traffic.
func (p *Postgres) DeleteRepo(ctx context.Context, repoID int64) error {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, stmt := range []string{
		`DELETE FROM repotraffic WHERE rid = $1`,
		`DELETE FROM admintenantreporoles WHERE rid = $1`,
		`DELETE FROM tenantrepos WHERE rid = $1`,
		`DELETE FROM repos WHERE rid = $1`,
	} {
		if _, err := tx.Exec(ctx, stmt, repoID); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

// RepoCount returns the number of registered repositories.
func (p *Postgres) RepoCount(ctx context.Context) (int64, error) {
	var n int64
	err := p.pool.QueryRow(ctx, `SELECT COUNT(*) FROM repos`).Scan(&n)
	return n, err
}

// TrafficDayCount returns the number of (repo, day) traffic rows collected.
func (p *Postgres) TrafficDayCount(ctx context.Context) (int64, error) {
	var n int64
	err := p.pool.QueryRow(ctx, `SELECT COUNT(*) FROM repotraffic`).Scan(&n)
	return n, err
}

// LastRunCompleted returns the completion time of the most recent run-log
// entry, or the zero time when no run has completed yet.
func (p *Postgres) LastRunCompleted(ctx context.Context) (time.Time, error) {
	var t time.Time
	err := p.pool.QueryRow(ctx, `SELECT completed FROM systemlog ORDER BY completed DESC LIMIT 1`).Scan(&t)
	if errors.Is(err, pgx.ErrNoRows) {
		return time.Time{}, nil
	}
	return t, err
}

// Ping checks the database connection.
func (p *Postgres) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}
