package collector

import (
	"context"
	"time"

	"stockboard/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Price  float64
	Series []model.PricePoint
	Err    error
	Calls  int
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDaily(_ context.Context, symbol string, start, end time.Time) (model.PriceSeries, error) {
	m.Calls++
	if m.Err != nil {
		return model.PriceSeries{}, m.Err
	}
	if m.Series != nil {
		return model.PriceSeries{Symbol: symbol, Points: m.Series, FetchedAt: time.Now()}, nil
	}
	return model.PriceSeries{
		Symbol:    symbol,
		Points:    GenerateMockPoints(m.Price, start, end),
		FetchedAt: time.Now(),
	}, nil
}

// GenerateMockPoints produces one point per weekday in [start, end] with a
// mild linear drift around basePrice.
func GenerateMockPoints(basePrice float64, start, end time.Time) []model.PricePoint {
	var points []model.PricePoint
	i := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		points = append(points, model.PricePoint{
			Date:  d,
			Close: basePrice * (1 + float64(i)*0.001),
		})
		i++
	}
	return points
}
