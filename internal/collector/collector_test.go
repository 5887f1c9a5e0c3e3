package collector

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ghstats/ghstats/internal/github"
	"github.com/ghstats/ghstats/internal/store"
	"go.uber.org/mock/gomock"
)

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func trafficFor(views, clones []github.TrafficDay) *github.Traffic {
	return &github.Traffic{Views: views, Clones: clones}
}

func TestRun_MergesViewsAndClones(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	mockStore := store.NewMockStore(ctrl)
	mockTx := store.NewMockTenantTx(ctrl)
	mockFetcher := github.NewMockTrafficFetcher(ctrl)

	mockStore.EXPECT().ListTenants(ctx).Return([]store.Tenant{{ID: 100, GHUser: "octo"}}, nil)
	mockStore.EXPECT().TenantCredentials(ctx, int64(100)).Return("octo", "tok", nil)
	mockStore.EXPECT().ListTenantRepos(ctx, int64(100)).Return([]store.Repo{{ID: 1, OrgName: "octo", Name: "proj"}}, nil)
	mockStore.EXPECT().BeginTenant(ctx).Return(mockTx, nil)

	views := []github.TrafficDay{{Date: day("2024-01-01"), Count: 5, Uniques: 3}}
	clones := []github.TrafficDay{{Date: day("2024-01-01"), Count: 2, Uniques: 1}}
	mockFetcher.EXPECT().FetchTraffic(ctx, "octo", "proj", github.Credential{Username: "octo", Token: "tok"}).
		Return(trafficFor(views, clones), nil)

	mockTx.EXPECT().MergeTraffic(ctx, int64(1), []store.TrafficDay{{Date: day("2024-01-01"), Count: 5, Uniques: 3}}, store.KindViews).Return(nil)
	mockTx.EXPECT().MergeTraffic(ctx, int64(1), []store.TrafficDay{{Date: day("2024-01-01"), Count: 2, Uniques: 1}}, store.KindClones).Return(nil)

	var entry *store.RunLogRow
	mockTx.EXPECT().AppendRunLog(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e *store.RunLogRow) error {
		entry = e
		return nil
	})
	mockTx.EXPECT().Commit(ctx).Return(nil)

	res, err := New(mockStore, mockFetcher, nil).Run(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if res.TotalRepos != 1 || res.ProcessedRepos != 1 {
		t.Errorf("result want 1/1 got %d/%d", res.ProcessedRepos, res.TotalRepos)
	}
	if entry == nil {
		t.Fatal("AppendRunLog was not called")
	}
	if entry.TenantID != 100 || entry.NumRepos != 1 {
		t.Errorf("entry want tenant=100 numrepos=1 got tenant=%d numrepos=%d", entry.TenantID, entry.NumRepos)
	}
	if entry.State != "collect (1/1)" {
		t.Errorf("state want collect (1/1) got %q", entry.State)
	}
	if entry.Completed.IsZero() {
		t.Error("entry.Completed must be set")
	}
}

func TestRun_SkipsEmptySeries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	mockStore := store.NewMockStore(ctrl)
	mockTx := store.NewMockTenantTx(ctrl)
	mockFetcher := github.NewMockTrafficFetcher(ctrl)

	mockStore.EXPECT().ListTenants(ctx).Return([]store.Tenant{{ID: 100}}, nil)
	mockStore.EXPECT().TenantCredentials(ctx, int64(100)).Return("u", "t", nil)
	mockStore.EXPECT().ListTenantRepos(ctx, int64(100)).Return([]store.Repo{{ID: 1, OrgName: "o", Name: "r"}}, nil)
	mockStore.EXPECT().BeginTenant(ctx).Return(mockTx, nil)

	// Views present, clones empty: merge must only run for views.
	views := []github.TrafficDay{{Date: day("2024-01-01"), Count: 5, Uniques: 3}}
	mockFetcher.EXPECT().FetchTraffic(ctx, "o", "r", gomock.Any()).Return(trafficFor(views, nil), nil)
	mockTx.EXPECT().MergeTraffic(ctx, int64(1), gomock.Any(), store.KindViews).Return(nil)
	mockTx.EXPECT().AppendRunLog(ctx, gomock.Any()).Return(nil)
	mockTx.EXPECT().Commit(ctx).Return(nil)

	res, err := New(mockStore, mockFetcher, nil).Run(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if res.ProcessedRepos != 1 {
		t.Errorf("processed want 1 got %d", res.ProcessedRepos)
	}
}

func TestRun_RepoFailureIsolated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	mockStore := store.NewMockStore(ctrl)
	mockTx := store.NewMockTenantTx(ctrl)
	mockFetcher := github.NewMockTrafficFetcher(ctrl)

	repos := []store.Repo{
		{ID: 1, OrgName: "o", Name: "a"},
		{ID: 2, OrgName: "o", Name: "b"},
		{ID: 3, OrgName: "o", Name: "c"},
	}
	mockStore.EXPECT().ListTenants(ctx).Return([]store.Tenant{{ID: 7}}, nil)
	mockStore.EXPECT().TenantCredentials(ctx, int64(7)).Return("u", "t", nil)
	mockStore.EXPECT().ListTenantRepos(ctx, int64(7)).Return(repos, nil)
	mockStore.EXPECT().BeginTenant(ctx).Return(mockTx, nil)

	views := []github.TrafficDay{{Date: day("2024-01-01"), Count: 1, Uniques: 1}}
	mockFetcher.EXPECT().FetchTraffic(ctx, "o", "a", gomock.Any()).Return(trafficFor(views, nil), nil)
	mockFetcher.EXPECT().FetchTraffic(ctx, "o", "b", gomock.Any()).Return(nil, github.ErrBadCredentials)
	mockFetcher.EXPECT().FetchTraffic(ctx, "o", "c", gomock.Any()).Return(trafficFor(views, nil), nil)
	mockTx.EXPECT().MergeTraffic(ctx, int64(1), gomock.Any(), store.KindViews).Return(nil)
	mockTx.EXPECT().MergeTraffic(ctx, int64(3), gomock.Any(), store.KindViews).Return(nil)

	var entry *store.RunLogRow
	mockTx.EXPECT().AppendRunLog(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e *store.RunLogRow) error {
		entry = e
		return nil
	})
	mockTx.EXPECT().Commit(ctx).Return(nil)

	res, err := New(mockStore, mockFetcher, nil).Run(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if res.TotalRepos != 3 || res.ProcessedRepos != 2 {
		t.Errorf("result want 2/3 got %d/%d", res.ProcessedRepos, res.TotalRepos)
	}
	if entry.NumRepos != 2 {
		t.Errorf("entry.NumRepos want 2 got %d", entry.NumRepos)
	}
	if entry.State != "collect (2/3), repo errors: 2" {
		t.Errorf("state want failed repo 2 listed got %q", entry.State)
	}
}

func TestRun_TenantCredentialFailureIsolated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	mockStore := store.NewMockStore(ctrl)
	failTx := store.NewMockTenantTx(ctrl)
	okTx := store.NewMockTenantTx(ctrl)
	mockFetcher := github.NewMockTrafficFetcher(ctrl)
	mockCreds := NewMockCredentialResolver(ctrl)

	mockStore.EXPECT().ListTenants(ctx).Return([]store.Tenant{{ID: 1}, {ID: 2}}, nil)

	// Tenant 1 cannot log in; tenant 2 still runs.
	mockCreds.EXPECT().Resolve(ctx, int64(1)).Return(github.Credential{}, errors.New("vault: no token"))
	mockStore.EXPECT().BeginTenant(ctx).Return(failTx, nil)
	var failEntry *store.RunLogRow
	failTx.EXPECT().AppendRunLog(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e *store.RunLogRow) error {
		failEntry = e
		return nil
	})
	failTx.EXPECT().Commit(ctx).Return(nil)

	mockCreds.EXPECT().Resolve(ctx, int64(2)).Return(github.Credential{Username: "u", Token: "t"}, nil)
	mockStore.EXPECT().ListTenantRepos(ctx, int64(2)).Return([]store.Repo{{ID: 9, OrgName: "o", Name: "r"}}, nil)
	mockStore.EXPECT().BeginTenant(ctx).Return(okTx, nil)
	views := []github.TrafficDay{{Date: day("2024-01-01"), Count: 1, Uniques: 1}}
	mockFetcher.EXPECT().FetchTraffic(ctx, "o", "r", gomock.Any()).Return(trafficFor(views, nil), nil)
	okTx.EXPECT().MergeTraffic(ctx, int64(9), gomock.Any(), store.KindViews).Return(nil)
	okTx.EXPECT().AppendRunLog(ctx, gomock.Any()).Return(nil)
	okTx.EXPECT().Commit(ctx).Return(nil)

	res, err := New(mockStore, mockFetcher, mockCreds).Run(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if res.ProcessedRepos != 1 {
		t.Errorf("processed want 1 got %d", res.ProcessedRepos)
	}
	if failEntry == nil {
		t.Fatal("no run-log entry for failed tenant")
	}
	if failEntry.TenantID != 1 || failEntry.NumRepos != 0 {
		t.Errorf("fail entry want tenant=1 numrepos=0 got tenant=%d numrepos=%d", failEntry.TenantID, failEntry.NumRepos)
	}
	if !strings.Contains(failEntry.State, "tenant error") {
		t.Errorf("fail entry state want tenant error got %q", failEntry.State)
	}
}

func TestRun_StorageFailureAbortsRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	mockStore := store.NewMockStore(ctrl)
	mockTx := store.NewMockTenantTx(ctrl)
	mockFetcher := github.NewMockTrafficFetcher(ctrl)

	mockStore.EXPECT().ListTenants(ctx).Return([]store.Tenant{{ID: 1}, {ID: 2}}, nil)
	mockStore.EXPECT().TenantCredentials(ctx, int64(1)).Return("u", "t", nil)
	mockStore.EXPECT().ListTenantRepos(ctx, int64(1)).Return([]store.Repo{{ID: 1, OrgName: "o", Name: "r"}}, nil)
	mockStore.EXPECT().BeginTenant(ctx).Return(mockTx, nil)

	views := []github.TrafficDay{{Date: day("2024-01-01"), Count: 1, Uniques: 1}}
	mockFetcher.EXPECT().FetchTraffic(ctx, "o", "r", gomock.Any()).Return(trafficFor(views, nil), nil)

	storageErr := errors.New("connection reset")
	mockTx.EXPECT().MergeTraffic(ctx, int64(1), gomock.Any(), store.KindViews).Return(storageErr)
	mockTx.EXPECT().Rollback(ctx).Return(nil)
	// Tenant 2 must never be reached.

	_, err := New(mockStore, mockFetcher, nil).Run(ctx)
	if !errors.Is(err, storageErr) {
		t.Fatalf("want storage error got %v", err)
	}
}

func TestStatusText(t *testing.T) {
	if got := statusText(3, 3, nil); got != "collect (3/3)" {
		t.Errorf("want collect (3/3) got %q", got)
	}
	if got := statusText(1, 3, []string{"2", "5"}); got != "collect (1/3), repo errors: 2 5" {
		t.Errorf("want failed ids listed got %q", got)
	}
}
