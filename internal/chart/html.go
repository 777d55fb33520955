package chart

import (
	"fmt"
	"html/template"
	"io"
)

const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<script src="{{.PlotlyURL}}"></script>
<style>
  html, body { margin: 0; height: 100%; }
  #{{.DivID}} { width: 100%; height: 100%; }
</style>
</head>
<body>
<div id="{{.DivID}}"></div>
<script>
  var figure = {{.Figure}};
  Plotly.newPlot({{.DivID}}, figure.data, figure.layout, {responsive: true});
</script>
</body>
</html>
`

// DivID is the element the chart is drawn into
const DivID = "spectral-chart"

var pageTmpl = template.Must(template.New("chart").Parse(htmlTemplate))

type pageData struct {
	Title     string
	PlotlyURL string
	DivID     string
	Figure    *Figure
}

// WriteHTML writes a standalone interactive document that loads plotly.js
// from plotlyURL and draws fig.
func WriteHTML(w io.Writer, fig *Figure, plotlyURL string) error {
	if fig == nil {
		return fmt.Errorf("nil figure")
	}
	data := pageData{
		Title:     fig.Layout.Title.Text,
		PlotlyURL: plotlyURL,
		DivID:     DivID,
		Figure:    fig,
	}
	if err := pageTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render chart html: %w", err)
	}
	return nil
}
