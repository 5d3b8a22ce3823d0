package config

import (
	"strings"
	"testing"
	"time"

	"golang.org/x/text/language"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Lanes != "6" || cfg.Attempts != "6" || cfg.WindLimit != "2.0" || cfg.ByPlace != "3" {
		t.Fatalf("unexpected form defaults %+v", cfg)
	}
	if cfg.Format != "yaml" || cfg.LogFile != "trackside.log" || cfg.Debug {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.RefreshInterval != 50*time.Millisecond {
		t.Fatalf("expected 50ms refresh, got %s", cfg.RefreshInterval)
	}
	if cfg.LanguageTag() != language.English {
		t.Fatalf("expected English, got %s", cfg.LanguageTag())
	}
}

func TestLanguageTag(t *testing.T) {
	if got := (Config{Lang: "de-CH"}).LanguageTag(); got != language.MustParse("de-CH") {
		t.Fatalf("expected de-CH, got %s", got)
	}
	if got := (Config{Lang: "not a tag!"}).LanguageTag(); got != language.English {
		t.Fatalf("expected English fallback, got %s", got)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("TRACKSIDE_LANES", "8")
	t.Setenv("TRACKSIDE_FORMAT", "json")
	t.Setenv("TRACKSIDE_DEBUG", "true")
	t.Setenv("TRACKSIDE_REFRESH_INTERVAL", "100ms")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Lanes != "8" || cfg.Format != "json" || !cfg.Debug || cfg.RefreshInterval != 100*time.Millisecond {
		t.Fatalf("unexpected config %+v", cfg)
	}
	d := cfg.FormDefaults()
	if d.Lanes != "8" || d.Kind != "track" || d.Attempts != "6" {
		t.Fatalf("unexpected form defaults %+v", d)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := map[string]string{
		"TRACKSIDE_DEBUG":            "maybe",
		"TRACKSIDE_REFRESH_INTERVAL": "0s",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := Load()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), "parse env:") {
				t.Fatalf("expected parse env prefix, got %v", err)
			}
		})
	}
}
