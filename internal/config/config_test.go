package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Listen != ":8080" {
		t.Errorf("expected default listen :8080, got %q", cfg.Server.Listen)
	}
	if cfg.DataSource.Provider != "yahoo" {
		t.Errorf("expected default provider yahoo, got %q", cfg.DataSource.Provider)
	}
	if len(cfg.Symbols) != 10 {
		t.Errorf("expected 10 default symbols, got %d", len(cfg.Symbols))
	}
	if cfg.Chart.ShortWindow != 20 || cfg.Chart.LongWindow != 200 {
		t.Errorf("expected default windows 20/200, got %d/%d", cfg.Chart.ShortWindow, cfg.Chart.LongWindow)
	}
	if cfg.Chart.ViewPoints != 252 {
		t.Errorf("expected default view_points 252, got %d", cfg.Chart.ViewPoints)
	}
	if cfg.Chart.LookbackYears != 3 {
		t.Errorf("expected default lookback_years 3, got %d", cfg.Chart.LookbackYears)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults must validate: %v", err)
	}
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := `
server:
  listen: ":9000"
symbols: [AAPL, MSFT]
chart:
  short_window: 10
  long_window: 50
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("LISTEN_ADDR", ":9999")
	t.Setenv("SHORT_WINDOW", "5")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Listen != ":9999" {
		t.Errorf("env must override file, got %q", cfg.Server.Listen)
	}
	if cfg.Chart.ShortWindow != 5 {
		t.Errorf("expected SHORT_WINDOW override 5, got %d", cfg.Chart.ShortWindow)
	}
	if cfg.Chart.LongWindow != 50 {
		t.Errorf("expected file value 50, got %d", cfg.Chart.LongWindow)
	}
	if len(cfg.Symbols) != 2 {
		t.Errorf("expected 2 symbols from file, got %d", len(cfg.Symbols))
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg, _ := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty listen", func(c *Config) { c.Server.Listen = "" }},
		{"unknown provider", func(c *Config) { c.DataSource.Provider = "bloomberg" }},
		{"alphavantage without key", func(c *Config) { c.DataSource.Provider = "alphavantage" }},
		{"no symbols", func(c *Config) { c.Symbols = nil }},
		{"zero short window", func(c *Config) { c.Chart.ShortWindow = 0 }},
		{"negative long window", func(c *Config) { c.Chart.LongWindow = -1 }},
		{"short exceeds long", func(c *Config) { c.Chart.ShortWindow = 300 }},
		{"zero view points", func(c *Config) { c.Chart.ViewPoints = 0 }},
		{"zero lookback", func(c *Config) { c.Chart.LookbackYears = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
