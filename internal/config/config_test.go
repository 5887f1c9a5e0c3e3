package config

import (
	"os"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	os.Clearenv()
	cfg := Load()
	if cfg.HTTPAddr != DefaultHTTPAddr {
		t.Errorf("HTTPAddr want %s got %s", DefaultHTTPAddr, cfg.HTTPAddr)
	}
	if cfg.CollectSchedule != DefaultCollectSchedule {
		t.Errorf("CollectSchedule want %s got %s", DefaultCollectSchedule, cfg.CollectSchedule)
	}
	if cfg.FetchTimeoutSec != DefaultFetchTimeoutSec {
		t.Errorf("FetchTimeoutSec want %d got %d", DefaultFetchTimeoutSec, cfg.FetchTimeoutSec)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	os.Clearenv()
	os.Setenv("DATABASE_URL", "postgres://local/db")
	os.Setenv("HTTP_ADDR", ":9090")
	os.Setenv("COLLECT_TOKEN", "hook-secret")
	os.Setenv("COLLECT_SCHEDULE", "*/15 * * * *")
	os.Setenv("FETCH_TIMEOUT_SEC", "10")
	os.Setenv("SESSION_SECRET", "session-secret")
	cfg := Load()
	if cfg.DatabaseURL != "postgres://local/db" {
		t.Errorf("DatabaseURL want postgres://local/db got %s", cfg.DatabaseURL)
	}
	if cfg.HTTPAddr != ":9090" {
		t.Errorf("HTTPAddr want :9090 got %s", cfg.HTTPAddr)
	}
	if cfg.CollectToken != "hook-secret" {
		t.Errorf("CollectToken want hook-secret got %s", cfg.CollectToken)
	}
	if cfg.CollectSchedule != "*/15 * * * *" {
		t.Errorf("CollectSchedule want */15 * * * * got %s", cfg.CollectSchedule)
	}
	if cfg.FetchTimeoutSec != 10 {
		t.Errorf("FetchTimeoutSec want 10 got %d", cfg.FetchTimeoutSec)
	}
	if cfg.SessionSecret != "session-secret" {
		t.Errorf("SessionSecret want session-secret got %s", cfg.SessionSecret)
	}
}

func TestLoad_EmptyScheduleDisables(t *testing.T) {
	os.Clearenv()
	os.Setenv("COLLECT_SCHEDULE", "")
	cfg := Load()
	if cfg.CollectSchedule != "" {
		t.Errorf("CollectSchedule want empty got %s", cfg.CollectSchedule)
	}
}

func TestLoad_InvalidValuesUseDefaults(t *testing.T) {
	os.Clearenv()
	os.Setenv("FETCH_TIMEOUT_SEC", "invalid")
	cfg := Load()
	if cfg.FetchTimeoutSec != DefaultFetchTimeoutSec {
		t.Errorf("FetchTimeoutSec want default %d got %d", DefaultFetchTimeoutSec, cfg.FetchTimeoutSec)
	}
	os.Setenv("FETCH_TIMEOUT_SEC", "0")
	cfg = Load()
	if cfg.FetchTimeoutSec != DefaultFetchTimeoutSec {
		t.Errorf("FetchTimeoutSec want default %d got %d", DefaultFetchTimeoutSec, cfg.FetchTimeoutSec)
	}
}
