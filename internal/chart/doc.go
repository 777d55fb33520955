// Package chart turns resampled curves into a Plotly figure and renders it
// as an interactive HTML document.
//
// Every curve contributes two traces in a fixed colour: a dotted, thicker
// raw trace (response times the configured scale) and a solid normalized
// trace peaking at 100.
package chart
