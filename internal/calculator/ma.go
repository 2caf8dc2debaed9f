package calculator

import (
	"errors"

	"stockboard/internal/model"
)

// RollingSMA computes the simple moving average of the series over the given
// window. The result has the same length and date positions as the input;
// the first (window-1) entries are nil because insufficient history exists.
func RollingSMA(points []model.PricePoint, window int) (model.MASeries, error) {
	if window <= 0 {
		return model.MASeries{}, errors.New("window must be positive")
	}

	out := model.MASeries{
		Window: window,
		Points: make([]model.MAPoint, len(points)),
	}

	sum := 0.0
	for i, p := range points {
		sum += p.Close
		if i >= window {
			sum -= points[i-window].Close
		}
		out.Points[i] = model.MAPoint{Date: p.Date}
		if i >= window-1 {
			v := sum / float64(window)
			out.Points[i].Value = &v
		}
	}
	return out, nil
}

// Smooth computes the short- and long-window simple moving averages of the
// series. No ordering is enforced between the two windows.
func Smooth(series model.PriceSeries, shortWindow, longWindow int) (model.MASeries, model.MASeries, error) {
	shortSMA, err := RollingSMA(series.Points, shortWindow)
	if err != nil {
		return model.MASeries{}, model.MASeries{}, err
	}
	longSMA, err := RollingSMA(series.Points, longWindow)
	if err != nil {
		return model.MASeries{}, model.MASeries{}, err
	}
	return shortSMA, longSMA, nil
}
