package model

// ChartSpec is a plotly-compatible figure: handed as-is to Plotly.newPlot
// by the dashboard page. Rebuilt on every interaction, no identity.
type ChartSpec struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace is a single line series on the chart.
type Trace struct {
	X    []string   `json:"x"`
	Y    []*float64 `json:"y"` // nil entries render as gaps
	Mode string     `json:"mode"`
	Name string     `json:"name"`
	Line LineStyle  `json:"line"`
}

// LineStyle controls trace styling.
type LineStyle struct {
	Color string `json:"color,omitempty"`
}

// Layout holds chart-level presentation settings.
type Layout struct {
	Title       string `json:"title"`
	XAxis       Axis   `json:"xaxis"`
	YAxis       Axis   `json:"yaxis"`
	Height      int    `json:"height,omitempty"`
	PlotBGColor string `json:"plot_bgcolor,omitempty"`
	PaperColor  string `json:"paper_bgcolor,omitempty"`
	Font        *Font  `json:"font,omitempty"`
}

// Font sets the layout-wide font.
type Font struct {
	Color string `json:"color,omitempty"`
}

// Axis describes one chart axis.
type Axis struct {
	Title         string         `json:"title"`
	Type          string         `json:"type,omitempty"`
	RangeSelector *RangeSelector `json:"rangeselector,omitempty"`
	RangeSlider   *RangeSlider   `json:"rangeslider,omitempty"`
}

// RangeSelector is the horizontal row of date-range shortcut buttons.
type RangeSelector struct {
	Buttons []RangeButton `json:"buttons"`
}

// RangeButton is one preset time-window shortcut.
type RangeButton struct {
	Count    int    `json:"count,omitempty"`
	Label    string `json:"label,omitempty"`
	Step     string `json:"step"`
	StepMode string `json:"stepmode,omitempty"`
}

// RangeSlider toggles the plotly range slider under the x axis.
type RangeSlider struct {
	Visible bool `json:"visible"`
}
