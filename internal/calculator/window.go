package calculator

import "stockboard/internal/model"

// LastN returns the trailing n points of the series, or the whole series
// when it is shorter than n.
func LastN(series model.PriceSeries, n int) model.PriceSeries {
	if n <= 0 || len(series.Points) <= n {
		return series
	}
	series.Points = series.Points[len(series.Points)-n:]
	return series
}

// LastNMA returns the trailing n points of a moving-average series, keeping
// its alignment with a price series truncated the same way.
func LastNMA(series model.MASeries, n int) model.MASeries {
	if n <= 0 || len(series.Points) <= n {
		return series
	}
	series.Points = series.Points[len(series.Points)-n:]
	return series
}
