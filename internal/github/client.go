package github

//go:generate go run go.uber.org/mock/mockgen -destination client_mock.gen.go -package github . TrafficFetcher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const trafficAPIFmt = "https://api.github.com/repos/%s/%s/traffic/%s"

var (
	ErrBadCredentials = errors.New("bad credentials")
	ErrNotFound       = errors.New("not found")
	ErrRateLimited    = errors.New("rate limited")
)

// TrafficFetcher fetches view and clone traffic for one repository
// (used by the collector).
type TrafficFetcher interface {
	FetchTraffic(ctx context.Context, owner, repo string, cred Credential) (*Traffic, error)
}

// Client implements TrafficFetcher using the GitHub traffic API.
// BaseURL is optional; when set (e.g. in tests) it replaces the default API host.
type Client struct {
	httpClient *http.Client
	BaseURL    string // for tests: e.g. httptest.Server.URL
	log        *slog.Logger
}

// NewClient returns a traffic API client. Calls time out after the given
// duration and surface as transient errors.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		log:        slog.Default(),
	}
}

func (c *Client) trafficURL(owner, repo, kind string) string {
	if c.BaseURL != "" {
		return fmt.Sprintf("%s/repos/%s/%s/traffic/%s", strings.TrimSuffix(c.BaseURL, "/"), owner, repo, kind)
	}
	return fmt.Sprintf(trafficAPIFmt, owner, repo, kind)
}

// FetchTraffic fetches the view and clone series for owner/repo using the
// tenant's credential. Read-only; the API returns its rolling window, which
// is treated as opaque. Returns ErrBadCredentials, ErrNotFound or
// ErrRateLimited for the corresponding API responses; transport errors and
// 5xx responses get one retry before propagating.
func (c *Client) FetchTraffic(ctx context.Context, owner, repo string, cred Credential) (*Traffic, error) {
	views, err := c.fetchSeries(ctx, owner, repo, "views", cred)
	if err != nil {
		return nil, err
	}
	clones, err := c.fetchSeries(ctx, owner, repo, "clones", cred)
	if err != nil {
		return nil, err
	}
	return &Traffic{Views: views, Clones: clones}, nil
}

func (c *Client) fetchSeries(ctx context.Context, owner, repo, kind string, cred Credential) ([]TrafficDay, error) {
	days, err := c.fetchOnce(ctx, owner, repo, kind, cred)
	if err == nil {
		return days, nil
	}
	if errors.Is(err, ErrBadCredentials) || errors.Is(err, ErrNotFound) {
		return nil, err
	}
	// Transient: one retry, then give up. Repeated collection runs are
	// the real retry mechanism since merges are idempotent.
	c.log.Warn("traffic fetch failed, retrying once", "repo", owner+"/"+repo, "kind", kind, "err", err)
	return c.fetchOnce(ctx, owner, repo, kind, cred)
}

func (c *Client) fetchOnce(ctx context.Context, owner, repo, kind string, cred Credential) ([]TrafficDay, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.trafficURL(owner, repo, kind), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if cred.Token != "" {
		req.Header.Set("Authorization", "token "+cred.Token)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		var api apiTrafficResponse
		if err := json.Unmarshal(body, &api); err != nil {
			return nil, err
		}
		stats := api.Views
		if kind == "clones" {
			stats = api.Clones
		}
		days := make([]TrafficDay, 0, len(stats))
		for _, s := range stats {
			days = append(days, TrafficDay{
				Date:    s.Timestamp.UTC().Truncate(24 * time.Hour),
				Count:   s.Count,
				Uniques: s.Uniques,
			})
		}
		return days, nil
	case http.StatusUnauthorized:
		return nil, ErrBadCredentials
	case http.StatusNotFound:
		return nil, ErrNotFound
	case http.StatusForbidden:
		if resp.Header.Get("X-RateLimit-Remaining") == "0" {
			if reset := resp.Header.Get("X-RateLimit-Reset"); reset != "" {
				if ts, _ := strconv.ParseInt(reset, 10, 64); ts > 0 {
					until := time.Until(time.Unix(ts, 0))
					if until > 0 && until < 5*time.Minute {
						c.log.Info("rate limited, backing off", "until", time.Unix(ts, 0))
						time.Sleep(until)
					}
				}
			}
			return nil, ErrRateLimited
		}
		// 403 without quota exhaustion: the credential lacks push access
		// to the repository, which the traffic API requires.
		return nil, ErrBadCredentials
	default:
		return nil, fmt.Errorf("traffic API %s: %s", kind, resp.Status)
	}
}
