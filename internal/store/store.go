package store

//go:generate go run go.uber.org/mock/mockgen -destination store_mock.gen.go -package store . Store,TenantTx

import (
	"context"
	"time"
)

// Store is the persistence interface. Collector, server, and auth depend
// only on this interface. Only main and this package use *pgxpool.Pool.
type Store interface {
	// Collection reads.
	ListTenants(ctx context.Context) ([]Tenant, error)
	TenantCredentials(ctx context.Context, tenantID int64) (user, token string, err error)
	ListTenantRepos(ctx context.Context, tenantID int64) ([]Repo, error)

	// BeginTenant opens the transactional scope for one tenant's
	// collection: all traffic merges plus the run-log append commit
	// together or not at all.
	BeginTenant(ctx context.Context) (TenantTx, error)

	// Web surface reads.
	TrafficStats(ctx context.Context, email string) ([]TrafficStatRow, error)
	WeeklyTrafficStats(ctx context.Context, email string) ([]WeeklyStatRow, error)
	ListReposForEmail(ctx context.Context, email string) ([]RepoListRow, error)
	RecentRunLog(ctx context.Context, days int) ([]RunLogRow, error)
	RoleForEmail(ctx context.Context, email string) (int, error)

	// Repository management.
	AddRepo(ctx context.Context, email, orgName, repoName string) (int64, error)
	DeleteRepo(ctx context.Context, repoID int64) error

	// Service status.
	RepoCount(ctx context.Context) (int64, error)
	TrafficDayCount(ctx context.Context) (int64, error)
	LastRunCompleted(ctx context.Context) (time.Time, error)
	Ping(ctx context.Context) error
}

// TenantTx is one tenant's unit of work during a collection run.
type TenantTx interface {
	// MergeTraffic upserts one day-keyed series for a repository:
	// insert-if-absent, update-if-strictly-greater per (repo, date).
	// The whole series is applied as a single statement.
	MergeTraffic(ctx context.Context, repoID int64, days []TrafficDay, kind Kind) error
	// AppendRunLog records the tenant's run outcome. Append-only.
	AppendRunLog(ctx context.Context, entry *RunLogRow) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Tenant is a row from the tenants table (credential omitted; see
// TenantCredentials).
type Tenant struct {
	ID     int64
	GHUser string
}

// Repo identifies one monitored repository.
type Repo struct {
	ID      int64
	OrgName string
	Name    string
}

// TrafficDay is the row shape for one day of one traffic kind.
type TrafficDay struct {
	Date    time.Time
	Count   int64
	Uniques int64
}

// RunLogRow is the row shape for systemlog.
type RunLogRow struct {
	TenantID  int64
	Completed time.Time
	NumRepos  int
	State     string
}

// TrafficStatRow is one day of merged traffic joined with its repository.
type TrafficStatRow struct {
	RepoID     int64
	OrgName    string
	RepoName   string
	Date       time.Time
	ViewCount  int64
	VUniques   int64
	CloneCount int64
	CUniques   int64
}

// WeeklyStatRow aggregates traffic per repository and ISO work week.
type WeeklyStatRow struct {
	RepoID     int64
	OrgName    string
	RepoName   string
	WorkWeek   string // e.g. "2024-03"
	ViewCount  int64
	VUniques   int64
	CloneCount int64
	CUniques   int64
}

// RepoListRow is one repository visible to a user.
type RepoListRow struct {
	RepoID   int64
	OrgName  string
	RepoName string
}
