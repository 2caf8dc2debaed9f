package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"stockboard/internal/calculator"
	"stockboard/internal/chart"
	"stockboard/internal/collector"
	"stockboard/internal/metrics"
	"stockboard/internal/model"
)

// ErrInvalidDateRange indicates start >= end. Surfaced before any fetch.
var ErrInvalidDateRange = errors.New("start date must be before end date")

// Pipeline runs the fetch -> smooth -> truncate -> build sequence for one
// user interaction. It holds no per-request state; every run produces fresh
// entities that are discarded after rendering.
type Pipeline struct {
	Fetcher     collector.Fetcher
	ShortWindow int
	LongWindow  int
	ViewPoints  int // trailing points kept for rendering, e.g. 252
	Metrics     *metrics.Metrics
}

// New creates a Pipeline. met may be nil.
func New(fetcher collector.Fetcher, shortWindow, longWindow, viewPoints int, met *metrics.Metrics) *Pipeline {
	return &Pipeline{
		Fetcher:     fetcher,
		ShortWindow: shortWindow,
		LongWindow:  longWindow,
		ViewPoints:  viewPoints,
		Metrics:     met,
	}
}

// Run executes the full pipeline and returns the chart specification.
// Errors: ErrInvalidDateRange, collector.ErrNoData, chart.ErrEmptySeries,
// or a wrapped fetch failure. The fetcher is never invoked on an invalid
// range; the chart builder is never invoked without data.
func (p *Pipeline) Run(ctx context.Context, symbol string, start, end time.Time) (*model.ChartSpec, error) {
	if !start.Before(end) {
		return nil, ErrInvalidDateRange
	}

	runStart := time.Now()

	fetchStart := time.Now()
	series, err := p.Fetcher.FetchDaily(ctx, symbol, start, end)
	if p.Metrics != nil {
		p.Metrics.FetchDur.Observe(time.Since(fetchStart).Seconds())
	}
	if err != nil {
		if errors.Is(err, collector.ErrNoData) {
			return nil, err
		}
		return nil, fmt.Errorf("fetch %s: %w", symbol, err)
	}
	if series.Len() == 0 {
		return nil, fmt.Errorf("%w: %s", collector.ErrNoData, symbol)
	}

	shortSMA, longSMA, err := calculator.Smooth(series, p.ShortWindow, p.LongWindow)
	if err != nil {
		return nil, fmt.Errorf("smooth %s: %w", symbol, err)
	}

	// Render only the trailing view window (one trading year by default).
	series = calculator.LastN(series, p.ViewPoints)
	shortSMA = calculator.LastNMA(shortSMA, p.ViewPoints)
	longSMA = calculator.LastNMA(longSMA, p.ViewPoints)

	spec, err := chart.Build(series, shortSMA, longSMA, symbol)
	if err != nil {
		return nil, err
	}

	if p.Metrics != nil {
		p.Metrics.PipelineDur.Observe(time.Since(runStart).Seconds())
	}
	return spec, nil
}
