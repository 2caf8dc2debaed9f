package model

import "time"

// PricePoint is one trading day's adjusted closing price.
type PricePoint struct {
	Date  time.Time
	Close float64
}

// PriceSeries holds the adjusted close history for one symbol,
// ordered by strictly increasing date.
type PriceSeries struct {
	Symbol    string
	Points    []PricePoint
	FetchedAt time.Time
}

// Len returns the number of points in the series.
func (s PriceSeries) Len() int { return len(s.Points) }

// MAPoint is one entry of a moving-average series. Value is nil for the
// first (window-1) entries where insufficient history exists.
type MAPoint struct {
	Date  time.Time
	Value *float64
}

// MASeries is a rolling-mean series aligned index-for-index with the
// price series it was derived from.
type MASeries struct {
	Window int
	Points []MAPoint
}
