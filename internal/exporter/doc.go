// Package exporter writes the chart artifacts of a run.
//
// An Exporter renders a static image through an ImageBackend, writes the
// interactive HTML document and, on request, the resampled curves as CSV
// or XLSX. ChromeBackend is the production ImageBackend: it drives a
// headless Chrome over the DevTools protocol and calls Plotly.toImage.
//
// Image failures never stop an export. They surface as an ExportFailure in
// Result.ImageErr together with a remediation hint on stderr.
//
// Example usage:
//
//	backend := exporter.NewChromeBackend("ws://127.0.0.1:9222", plotlyURL, 30*time.Second, logger)
//	exp := exporter.New(backend, exporter.Options{
//		Dir:         "images/plotly",
//		Basename:    "sensor",
//		ImageFormat: "svg",
//		PlotlyURL:   plotlyURL,
//	})
//	result, err := exp.Export(ctx, fig, curves)
package exporter
