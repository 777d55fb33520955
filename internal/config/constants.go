package config

import "time"

const (
	AppName = "spectral"

	// EnvPrefix namespaces every environment variable, e.g. SPECTRAL_OUTPUT_DIR
	EnvPrefix = "SPECTRAL"

	DefaultReferenceDir = "data/LiCOR"
	DefaultChannelDir   = "data/RGB"
	DefaultOutputDir    = "images/plotly"
	DefaultBasename     = "sensor"

	// DefaultBackendURL is the DevTools endpoint of a locally running headless Chrome
	DefaultBackendURL    = "ws://127.0.0.1:9222"
	DefaultExportTimeout = 30 * time.Second
	DefaultPlotlyURL     = "https://cdn.plot.ly/plotly-2.35.2.min.js"
)
