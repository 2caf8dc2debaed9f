package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"stockboard/internal/collector"
	"stockboard/internal/config"
	"stockboard/internal/metrics"
	"stockboard/internal/pipeline"
	"stockboard/internal/server"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] stockboard starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init fetcher
	var fetcher collector.Fetcher
	switch cfg.DataSource.Provider {
	case "alphavantage":
		fetcher = collector.NewAlphaVantageFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	case "mock":
		fetcher = &collector.MockFetcher{Price: 100}
	default:
		yf := collector.NewYahooFetcher(cfg.Proxy)
		if cfg.DataSource.BaseURL != "" {
			yf.BaseURL = cfg.DataSource.BaseURL
		}
		fetcher = yf
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	// Metrics + memoized fetcher
	met := metrics.New(prometheus.DefaultRegisterer)
	cached := collector.NewCachingFetcher(fetcher, met)

	// Pipeline
	pipe := pipeline.New(cached, cfg.Chart.ShortWindow, cfg.Chart.LongWindow, cfg.Chart.ViewPoints, met)

	// HTTP server
	srv := server.New(cfg.Server.Listen, pipe, cfg.Symbols, cfg.Chart.LookbackYears, met)
	srv.Start()

	log.Println("[INFO] stockboard is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Stop(ctx); err != nil {
		log.Printf("[WARN] shutdown: %v", err)
	}
	log.Println("[INFO] stockboard stopped")
}
