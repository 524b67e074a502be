package schema

// ChartSpec is a Plotly-compatible figure: a list of traces plus a layout.
// It is serialized as-is and handed to Plotly.newPlot on the dashboard page.
type ChartSpec struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace is one named data series of a chart.
type Trace struct {
	Type    string    `json:"type"`           // bar or scatter
	Name    string    `json:"name"`           // Legend entry, the borough name
	X       []any     `json:"x"`              // Category labels or numeric levels
	Y       []float64 `json:"y"`              // Ratios or health indices
	Mode    string    `json:"mode,omitempty"` // markers for scatter traces
	Opacity float64   `json:"opacity,omitempty"`
	Marker  *Marker   `json:"marker,omitempty"`
}

// Marker styles scatter points.
type Marker struct {
	Size int         `json:"size"`
	Line *MarkerLine `json:"line,omitempty"`
}

// MarkerLine outlines a marker.
type MarkerLine struct {
	Width float64 `json:"width"`
	Color string  `json:"color"`
}

// Layout holds the axis configuration and styling of a chart.
type Layout struct {
	XAxis        Axis   `json:"xaxis"`
	YAxis        Axis   `json:"yaxis"`
	Margin       Margin `json:"margin"`
	Legend       Legend `json:"legend"`
	PaperBGColor string `json:"paper_bgcolor"`
	PlotBGColor  string `json:"plot_bgcolor"`
	BarMode      string `json:"barmode,omitempty"`
	HoverMode    string `json:"hovermode,omitempty"`
}

// Axis configures one chart axis.
type Axis struct {
	Title    AxisTitle `json:"title"`
	TickVals []any     `json:"tickvals,omitempty"`
	TickText []string  `json:"ticktext,omitempty"`
	Range    []float64 `json:"range,omitempty"`
}

// AxisTitle is the label of an axis.
type AxisTitle struct {
	Text string `json:"text"`
}

// Margin is the plot margin in pixels.
type Margin struct {
	L int `json:"l"`
	B int `json:"b"`
	T int `json:"t"`
	R int `json:"r"`
}

// Legend positions the chart legend in paper coordinates.
type Legend struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// SpeciesList is the payload behind the species selector.
type SpeciesList struct {
	Species []string `json:"species"`
	Default string   `json:"default"`
}
