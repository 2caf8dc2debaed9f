package collector

import (
	"context"
	"errors"
	"time"

	"stockboard/internal/model"
)

// ErrNoData indicates the upstream source had no rows for the requested
// symbol and date range. Callers branch on it; it is not a fetch failure.
var ErrNoData = errors.New("no data for symbol in range")

// Fetcher retrieves the daily adjusted close series for a symbol over
// [start, end]. Callers must ensure start < end before calling.
type Fetcher interface {
	FetchDaily(ctx context.Context, symbol string, start, end time.Time) (model.PriceSeries, error)
	Name() string
}
