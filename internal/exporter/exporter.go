package exporter

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"spectralcli/internal/chart"
	pipeerrors "spectralcli/internal/errors"
	"spectralcli/internal/files"
	"spectralcli/pkg/contracts/domain"
)

// RemediationHint is printed when the static image could not be produced
const RemediationHint = `static image export failed; the interactive HTML chart is still written.
To enable image export start a headless browser with remote debugging, e.g.
  chromium --headless --remote-debugging-port=9222
or rerun with --launch-browser, or pass --no-image to skip the image.`

// Options configures an Exporter
type Options struct {
	Dir         string
	Basename    string
	ImageFormat string
	PlotlyURL   string
	// DataFormats selects the resampled-data exports, "csv" and/or "xlsx"
	DataFormats []string
	// Stderr receives the remediation hint, os.Stderr when nil
	Stderr io.Writer
	Logger *slog.Logger
}

// Result lists what an export produced
type Result struct {
	ImagePath string
	HTMLPath  string
	// ImageErr is the ExportFailure of the static image, nil on success or
	// when no backend is configured
	ImageErr  error
	DataPaths []string
}

// ImageWritten reports whether the static image exists
func (r *Result) ImageWritten() bool {
	return r.ImagePath != "" && r.ImageErr == nil
}

// Exporter writes the chart artifacts: static image, HTML and optional data
type Exporter struct {
	backend ImageBackend
	manager *files.Manager
	opts    Options
	logger  *slog.Logger
}

// New creates an exporter. A nil backend disables the static image.
func New(backend ImageBackend, opts Options) *Exporter {
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.ImageFormat == "" {
		opts.ImageFormat = "svg"
	}
	return &Exporter{
		backend: backend,
		manager: files.NewManager(opts.Dir),
		opts:    opts,
		logger:  opts.Logger.With(slog.String("component", "exporter")),
	}
}

// ImageName returns the static image file name
func (e *Exporter) ImageName() string {
	return e.opts.Basename + "." + e.opts.ImageFormat
}

// HTMLName returns the interactive chart file name
func (e *Exporter) HTMLName() string {
	return e.opts.Basename + ".html"
}

// Export writes the static image, then the HTML document, then the data
// files. A failed image is reported in Result.ImageErr and does not stop
// the export; any other failure is returned.
func (e *Exporter) Export(ctx context.Context, fig *chart.Figure, curves []domain.ResampledCurve) (*Result, error) {
	if err := e.manager.EnsureDirectory(); err != nil {
		return nil, pipeerrors.Wrap(pipeerrors.KindOutput, "export", err)
	}

	result := &Result{}

	if e.backend != nil {
		result.ImagePath = e.manager.Path(e.ImageName())
		// an image from an earlier run must not survive a failed render
		if err := e.manager.Remove(e.ImageName()); err != nil {
			return nil, pipeerrors.Wrap(pipeerrors.KindOutput, "export_image", err)
		}
		if err := e.backend.RenderImage(ctx, fig, result.ImagePath); err != nil {
			result.ImageErr = pipeerrors.NewExportError(result.ImagePath, err)
			e.logger.WarnContext(ctx, "Static image export failed",
				slog.String("path", result.ImagePath),
				slog.String("error", err.Error()))
			fmt.Fprintln(e.opts.Stderr, RemediationHint)
		} else {
			e.logger.InfoContext(ctx, "Static image written", slog.String("path", result.ImagePath))
		}
	}

	htmlPath, err := e.manager.WriteFile(e.HTMLName(), func(w io.Writer) error {
		return chart.WriteHTML(w, fig, e.opts.PlotlyURL)
	})
	if err != nil {
		return result, pipeerrors.Wrap(pipeerrors.KindOutput, "export_html", err)
	}
	result.HTMLPath = htmlPath
	e.logger.InfoContext(ctx, "Interactive chart written", slog.String("path", htmlPath))

	for _, format := range e.opts.DataFormats {
		path, err := e.exportData(DataFormat(format), curves)
		if err != nil {
			return result, pipeerrors.Wrap(pipeerrors.KindOutput, "export_data", err)
		}
		result.DataPaths = append(result.DataPaths, path)
		e.logger.InfoContext(ctx, "Resampled data written",
			slog.String("path", path),
			slog.String("format", format))
	}

	return result, nil
}

// DataName returns the file name of a resampled-data export
func (e *Exporter) DataName(format DataFormat) string {
	return e.opts.Basename + "_resampled." + string(format)
}

func (e *Exporter) exportData(format DataFormat, curves []domain.ResampledCurve) (string, error) {
	switch format {
	case DataFormatCSV:
		return WriteResampledCSV(e.manager, e.DataName(format), curves)
	case DataFormatXLSX:
		return WriteResampledXLSX(e.manager, e.DataName(format), curves)
	default:
		return "", fmt.Errorf("unsupported data format %q", format)
	}
}
