package config

import (
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", "/home/bob")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.LogPath != "/home/bob/.local/share/folio/debug.log" {
		t.Fatalf("unexpected log path %q", cfg.LogPath)
	}
	if cfg.Addr != ":8080" {
		t.Fatalf("expected default addr :8080, got %q", cfg.Addr)
	}
	if !cfg.AltScreen {
		t.Fatal("expected alt screen by default")
	}
	if strings.Contains(cfg.Location, "#") {
		t.Fatalf("default location must not carry a fragment, got %q", cfg.Location)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("FOLIO_LOCATION", "folio://portfolio/#test")
	t.Setenv("FOLIO_ADDR", "127.0.0.1:9000")
	t.Setenv("FOLIO_ALT_SCREEN", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Location != "folio://portfolio/#test" {
		t.Fatalf("unexpected location %q", cfg.Location)
	}
	if cfg.Addr != "127.0.0.1:9000" {
		t.Fatalf("unexpected addr %q", cfg.Addr)
	}
	if cfg.AltScreen {
		t.Fatal("expected alt screen disabled")
	}
}

func TestParseEnvError(t *testing.T) {
	t.Setenv("FOLIO_ALT_SCREEN", "not-a-bool")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
