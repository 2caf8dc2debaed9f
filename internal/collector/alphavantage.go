package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"stockboard/internal/model"
)

// AlphaVantageFetcher implements Fetcher using the Alpha Vantage REST API.
// Selected by config when a base URL and API key are provided.
type AlphaVantageFetcher struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewAlphaVantageFetcher creates a new fetcher with optional proxy support.
func NewAlphaVantageFetcher(baseURL, apiKey, proxyURL string) *AlphaVantageFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &AlphaVantageFetcher{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *AlphaVantageFetcher) Name() string { return "alphavantage" }

// avDailyResponse is the expected JSON shape of TIME_SERIES_DAILY_ADJUSTED.
type avDailyResponse struct {
	TimeSeries map[string]avDailyBar `json:"Time Series (Daily)"`
	ErrorMsg   string                `json:"Error Message"`
	Note       string                `json:"Note"`
}

type avDailyBar struct {
	Close         string `json:"4. close"`
	AdjustedClose string `json:"5. adjusted close"`
}

// FetchDaily retrieves daily adjusted closes for [start, end].
func (f *AlphaVantageFetcher) FetchDaily(ctx context.Context, symbol string, start, end time.Time) (model.PriceSeries, error) {
	endpoint := fmt.Sprintf("%s/query?function=TIME_SERIES_DAILY_ADJUSTED&symbol=%s&outputsize=full&apikey=%s",
		f.BaseURL, url.QueryEscape(symbol), url.QueryEscape(f.APIKey))

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return model.PriceSeries{}, err
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return model.PriceSeries{}, fmt.Errorf("alphavantage fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.PriceSeries{}, fmt.Errorf("alphavantage read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return model.PriceSeries{}, fmt.Errorf("alphavantage: status %d, body: %s", resp.StatusCode, string(body))
	}

	var daily avDailyResponse
	if err := json.Unmarshal(body, &daily); err != nil {
		return model.PriceSeries{}, fmt.Errorf("alphavantage decode: %w", err)
	}
	if daily.ErrorMsg != "" {
		return model.PriceSeries{}, fmt.Errorf("alphavantage api error: %s", daily.ErrorMsg)
	}
	if daily.Note != "" {
		return model.PriceSeries{}, fmt.Errorf("alphavantage throttled: %s", daily.Note)
	}
	if len(daily.TimeSeries) == 0 {
		return model.PriceSeries{}, fmt.Errorf("%w: %s", ErrNoData, symbol)
	}

	points := make([]model.PricePoint, 0, len(daily.TimeSeries))
	for day, bar := range daily.TimeSeries {
		d, err := time.ParseInLocation("2006-01-02", day, time.UTC)
		if err != nil {
			continue
		}
		if d.Before(start) || d.After(end) {
			continue
		}
		raw := bar.AdjustedClose
		if raw == "" {
			raw = bar.Close
		}
		c, err := strconv.ParseFloat(raw, 64)
		if err != nil || c == 0 {
			continue
		}
		points = append(points, model.PricePoint{Date: d, Close: c})
	}
	if len(points) == 0 {
		return model.PriceSeries{}, fmt.Errorf("%w: %s", ErrNoData, symbol)
	}

	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })
	return model.PriceSeries{Symbol: symbol, Points: points, FetchedAt: time.Now()}, nil
}
