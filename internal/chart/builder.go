package chart

import (
	"errors"
	"fmt"

	"stockboard/internal/model"
)

// ErrEmptySeries indicates there is nothing to render.
var ErrEmptySeries = errors.New("no data available for plotting")

// Trace colors, matching the dashboard page palette.
const (
	priceColor    = "#007acc"
	shortSMAColor = "#20fc03"
	longSMAColor  = "#fc0303"
)

const dateLayout = "2006-01-02"

// Build assembles the plotly figure for one symbol: the raw price trace,
// the two moving-average traces, and an x axis with the five range-selector
// shortcuts (1m, 6m, YTD, 1y, all).
func Build(series model.PriceSeries, shortSMA, longSMA model.MASeries, title string) (*model.ChartSpec, error) {
	if len(series.Points) == 0 {
		return nil, ErrEmptySeries
	}

	spec := &model.ChartSpec{
		Data: []model.Trace{
			priceTrace(series, title),
			maTrace(shortSMA, shortSMAColor),
			maTrace(longSMA, longSMAColor),
		},
		Layout: model.Layout{
			Title: title,
			XAxis: model.Axis{
				Title:         "Date",
				Type:          "date",
				RangeSelector: &model.RangeSelector{Buttons: rangeButtons()},
				RangeSlider:   &model.RangeSlider{Visible: false},
			},
			YAxis:       model.Axis{Title: "Price"},
			Height:      600,
			PlotBGColor: "#f5f5f5",
			PaperColor:  "#f0f4f8",
			Font:        &model.Font{Color: "#1f2e3d"},
		},
	}
	return spec, nil
}

func priceTrace(series model.PriceSeries, name string) model.Trace {
	x := make([]string, len(series.Points))
	y := make([]*float64, len(series.Points))
	for i, p := range series.Points {
		x[i] = p.Date.Format(dateLayout)
		v := p.Close
		y[i] = &v
	}
	return model.Trace{
		X:    x,
		Y:    y,
		Mode: "lines",
		Name: name,
		Line: model.LineStyle{Color: priceColor},
	}
}

func maTrace(ma model.MASeries, color string) model.Trace {
	x := make([]string, len(ma.Points))
	y := make([]*float64, len(ma.Points))
	for i, p := range ma.Points {
		x[i] = p.Date.Format(dateLayout)
		y[i] = p.Value // nil before the window fills; renders as a gap
	}
	return model.Trace{
		X:    x,
		Y:    y,
		Mode: "lines",
		Name: fmt.Sprintf("%d-day SMA", ma.Window),
		Line: model.LineStyle{Color: color},
	}
}

func rangeButtons() []model.RangeButton {
	return []model.RangeButton{
		{Count: 1, Label: "1m", Step: "month", StepMode: "backward"},
		{Count: 6, Label: "6m", Step: "month", StepMode: "backward"},
		{Count: 1, Label: "YTD", Step: "year", StepMode: "todate"},
		{Count: 1, Label: "1y", Step: "year", StepMode: "backward"},
		{Step: "all"},
	}
}
