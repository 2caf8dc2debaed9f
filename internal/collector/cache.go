package collector

import (
	"context"
	"sync"
	"time"

	"stockboard/internal/metrics"
	"stockboard/internal/model"
)

type seriesKey struct {
	symbol string
	start  int64
	end    int64
}

// CachingFetcher memoizes successful fetches of the wrapped Fetcher, keyed
// by (symbol, start, end). Unbounded, cleared manually; repeated identical
// calls within a session return the stored series without a network
// round-trip. Errors are never cached.
type CachingFetcher struct {
	next Fetcher
	met  *metrics.Metrics

	mu      sync.Mutex
	entries map[seriesKey]model.PriceSeries
}

// NewCachingFetcher wraps next with in-process memoization. met may be nil.
func NewCachingFetcher(next Fetcher, met *metrics.Metrics) *CachingFetcher {
	return &CachingFetcher{
		next:    next,
		met:     met,
		entries: make(map[seriesKey]model.PriceSeries),
	}
}

func (c *CachingFetcher) Name() string { return c.next.Name() }

func (c *CachingFetcher) FetchDaily(ctx context.Context, symbol string, start, end time.Time) (model.PriceSeries, error) {
	key := seriesKey{symbol: symbol, start: start.Unix(), end: end.Unix()}

	c.mu.Lock()
	if series, ok := c.entries[key]; ok {
		c.mu.Unlock()
		if c.met != nil {
			c.met.CacheHits.Inc()
		}
		return series, nil
	}
	c.mu.Unlock()

	if c.met != nil {
		c.met.CacheMisses.Inc()
	}
	series, err := c.next.FetchDaily(ctx, symbol, start, end)
	if err != nil {
		return model.PriceSeries{}, err
	}

	c.mu.Lock()
	c.entries[key] = series
	c.mu.Unlock()
	return series, nil
}

// Clear drops all memoized entries.
func (c *CachingFetcher) Clear() {
	c.mu.Lock()
	c.entries = make(map[seriesKey]model.PriceSeries)
	c.mu.Unlock()
}

// Size returns the number of memoized entries.
func (c *CachingFetcher) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
