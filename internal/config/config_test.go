package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.Port != "4000" {
		t.Fatalf("port = %q", cfg.Port)
	}
	if cfg.PollInterval != 5*time.Minute {
		t.Fatalf("poll interval = %v", cfg.PollInterval)
	}
	if cfg.Provider != "merged" {
		t.Fatalf("provider = %q", cfg.Provider)
	}
	if cfg.Archive.Path != "data/matches.json" {
		t.Fatalf("archive path = %q", cfg.Archive.Path)
	}
	if cfg.Sheets.SheetName != "Results" || cfg.Sheets.Query != "SELECT P" {
		t.Fatalf("sheets = %+v", cfg.Sheets)
	}
	if !cfg.Snapshots.AdminDailyToken {
		t.Fatal("admin gate should default on")
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Port != "9090" {
		t.Fatalf("metrics = %+v", cfg.Metrics)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("POLL_INTERVAL", "30s")
	t.Setenv("PROVIDER", "fixture")
	t.Setenv("SHEETS_SPREADSHEET_ID", "abc123")
	t.Setenv("ADMIN_DAILY_TOKEN_ENABLED", "false")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("port = %q", cfg.Port)
	}
	if cfg.PollInterval != 30*time.Second {
		t.Fatalf("poll interval = %v", cfg.PollInterval)
	}
	if cfg.Provider != "fixture" {
		t.Fatalf("provider = %q", cfg.Provider)
	}
	if cfg.Sheets.SpreadsheetID != "abc123" {
		t.Fatalf("spreadsheet = %q", cfg.Sheets.SpreadsheetID)
	}
	if cfg.Snapshots.AdminDailyToken {
		t.Fatal("admin gate should be off")
	}
}

func TestDurationEnvFallsBackOnGarbage(t *testing.T) {
	t.Setenv("POLL_INTERVAL", "soon")
	if got := Load().PollInterval; got != 5*time.Minute {
		t.Fatalf("poll interval = %v, want default", got)
	}

	t.Setenv("POLL_INTERVAL", "-10s")
	if got := Load().PollInterval; got != 5*time.Minute {
		t.Fatalf("non-positive interval = %v, want default", got)
	}
}

func TestBoolEnvVariants(t *testing.T) {
	cases := map[string]bool{
		"1": true, "true": true, "YES": true,
		"0": false, "false": false, "no": false,
		"maybe": true, // unparseable keeps the default
	}
	for raw, want := range cases {
		t.Setenv("METRICS_ENABLED", raw)
		if got := Load().Metrics.Enabled; got != want {
			t.Fatalf("METRICS_ENABLED=%q -> %v, want %v", raw, got, want)
		}
	}
}
