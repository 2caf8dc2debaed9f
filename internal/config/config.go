package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Listen string `yaml:"listen"`
	} `yaml:"server"`
	DataSource struct {
		Provider string `yaml:"provider"` // yahoo | alphavantage | mock
		BaseURL  string `yaml:"base_url"`
		APIKey   string `yaml:"api_key"`
	} `yaml:"data_source"`
	Symbols []string `yaml:"symbols"`
	Chart   struct {
		ShortWindow   int `yaml:"short_window"`
		LongWindow    int `yaml:"long_window"`
		ViewPoints    int `yaml:"view_points"`
		LookbackYears int `yaml:"lookback_years"`
	} `yaml:"chart"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.Server.Listen = v
	}
	if v := os.Getenv("DATA_PROVIDER"); v != "" {
		cfg.DataSource.Provider = v
	}
	if v := os.Getenv("DATA_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("DATA_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("SHORT_WINDOW"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Chart.ShortWindow = n
		}
	}
	if v := os.Getenv("LONG_WINDOW"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Chart.LongWindow = n
		}
	}

	// Defaults
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.DataSource.Provider == "" {
		cfg.DataSource.Provider = "yahoo"
	}
	if len(cfg.Symbols) == 0 {
		cfg.Symbols = []string{
			"AAPL", "GOOG", "MSFT", "AMZN", "TSLA",
			"NVDA", "META", "CRM", "JPM", "XOM",
		}
	}
	if cfg.Chart.ShortWindow == 0 {
		cfg.Chart.ShortWindow = 20
	}
	if cfg.Chart.LongWindow == 0 {
		cfg.Chart.LongWindow = 200
	}
	if cfg.Chart.ViewPoints == 0 {
		cfg.Chart.ViewPoints = 252
	}
	if cfg.Chart.LookbackYears == 0 {
		cfg.Chart.LookbackYears = 3
	}

	return cfg, nil
}

// Validate checks that all required fields are set and consistent.
func (c *Config) Validate() error {
	if c.Server.Listen == "" {
		return fmt.Errorf("server.listen is required")
	}
	switch c.DataSource.Provider {
	case "yahoo", "mock":
	case "alphavantage":
		if c.DataSource.BaseURL == "" || c.DataSource.APIKey == "" {
			return fmt.Errorf("data_source.base_url and api_key are required for alphavantage")
		}
	default:
		return fmt.Errorf("unknown data_source.provider %q", c.DataSource.Provider)
	}
	if len(c.Symbols) == 0 {
		return fmt.Errorf("symbols must not be empty")
	}
	if c.Chart.ShortWindow <= 0 || c.Chart.LongWindow <= 0 {
		return fmt.Errorf("chart windows must be positive")
	}
	if c.Chart.ShortWindow > c.Chart.LongWindow {
		return fmt.Errorf("chart.short_window must not exceed chart.long_window")
	}
	if c.Chart.ViewPoints <= 0 {
		return fmt.Errorf("chart.view_points must be positive")
	}
	if c.Chart.LookbackYears <= 0 {
		return fmt.Errorf("chart.lookback_years must be positive")
	}
	return nil
}
