package server

import (
	"fmt"
	"strings"
	"testing"

	"tt-league-service/internal/config"
	"tt-league-service/internal/providers/archive"
	"tt-league-service/internal/providers/fixture"
	"tt-league-service/internal/providers/sheets"
	"tt-league-service/internal/testutil"
)

func TestSelectProviderByName(t *testing.T) {
	cfg := config.Config{
		Archive: config.ArchiveConfig{Path: "data/matches.json"},
		Sheets:  config.SheetsConfig{SpreadsheetID: "abc"},
	}

	cfg.Provider = "fixture"
	if _, ok := selectProvider(cfg, nil).(*fixture.Provider); !ok {
		t.Fatalf("fixture selection = %T", selectProvider(cfg, nil))
	}

	cfg.Provider = "archive"
	if _, ok := selectProvider(cfg, nil).(*archive.Provider); !ok {
		t.Fatalf("archive selection = %T", selectProvider(cfg, nil))
	}

	cfg.Provider = "sheets"
	if _, ok := selectProvider(cfg, nil).(*sheets.Client); !ok {
		t.Fatalf("sheets selection = %T", selectProvider(cfg, nil))
	}

	cfg.Provider = "merged"
	if typeName := fmt.Sprintf("%T", selectProvider(cfg, nil)); !strings.Contains(typeName, "merged") {
		t.Fatalf("merged selection = %s", typeName)
	}
}

func TestFactoryWrapsWithRateLimitAndRetry(t *testing.T) {
	factory := newProviderFactory(nil, nil)
	built := factory.build(config.Config{Provider: "fixture"})
	if typeName := fmt.Sprintf("%T", built); !strings.Contains(typeName, "retrying") {
		t.Fatalf("outermost wrapper = %s, want the retrying provider", typeName)
	}
}

func TestNormalizeProviderName(t *testing.T) {
	if got := normalizeProviderName("Sheets", nil); got != "sheets" {
		t.Fatalf("explicit name = %q", got)
	}
	if got := normalizeProviderName("", testutil.GoodProvider{}); !strings.Contains(got, "goodprovider") {
		t.Fatalf("derived name = %q", got)
	}
	if got := normalizeProviderName("", nil); got != "provider" {
		t.Fatalf("fallback name = %q", got)
	}
}
