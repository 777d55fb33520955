package chart

// Figure is a Plotly figure: the trace list and the layout. It marshals to
// the JSON object accepted by Plotly.newPlot and Plotly.toImage.
type Figure struct {
	Data   []Series `json:"data"`
	Layout Layout   `json:"layout"`
}

// Series is one scatter trace drawn as a line
type Series struct {
	Type string    `json:"type"`
	Mode string    `json:"mode"`
	Name string    `json:"name"`
	X    []float64 `json:"x"`
	Y    []float64 `json:"y"`
	Line Line      `json:"line"`
}

// Line holds the trace styling
type Line struct {
	Color string  `json:"color"`
	Dash  string  `json:"dash"`
	Width float64 `json:"width"`
}

// Layout holds the chart title and axes
type Layout struct {
	Title    Text   `json:"title"`
	XAxis    Axis   `json:"xaxis"`
	YAxis    Axis   `json:"yaxis"`
	Template string `json:"template,omitempty"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
}

// Axis is an axis with a title
type Axis struct {
	Title Text `json:"title"`
}

// Text wraps a plain label the way Plotly expects it
type Text struct {
	Text string `json:"text"`
}

const (
	DashSolid = "solid"
	DashDot   = "dot"

	XAxisTitle = "Wavelength (nm)"
	YAxisTitle = "Relative Responsivity"
)
