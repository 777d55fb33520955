package pipeline

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"spectralcli/internal/chart"
	"spectralcli/internal/config"
	apperrors "spectralcli/internal/errors"
	"spectralcli/internal/exporter"
	"spectralcli/internal/files"
	"spectralcli/internal/infrastructure"
	"spectralcli/internal/sensor"
	"spectralcli/internal/spectrum"
	"spectralcli/pkg/contracts/domain"
)

// Stage names, used for spans, metrics and error reporting
const (
	StageLoadReference = "load_reference"
	StageLoadChannels  = "load_channels"
	StageExtract       = "extract_curves"
	StageResample      = "resample"
	StageRender        = "render"
	StageExport        = "export"
)

// Report summarizes a completed run
type Report struct {
	RunID     string
	Curves    []domain.ResampledCurve
	ImagePath string
	HTMLPath  string
	DataPaths []string
	// ImageErr is the ExportFailure of the static image, if any
	ImageErr error
	Duration time.Duration
}

// Processor runs load, resample, render and export once per Run call
type Processor struct {
	cfg      *config.Config
	backend  exporter.ImageBackend
	loader   *sensor.Loader
	exporter *exporter.Exporter

	logger    *slog.Logger
	stderr    io.Writer
	telemetry *infrastructure.Providers
	tracer    trace.Tracer
	metrics   *infrastructure.PipelineMetrics
}

// Option configures a Processor
type Option func(*Processor)

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(p *Processor) {
		p.logger = logger
	}
}

// WithStderr sets where user-facing hints are printed
func WithStderr(w io.Writer) Option {
	return func(p *Processor) {
		p.stderr = w
	}
}

// WithTelemetry records spans and metrics on the given providers
func WithTelemetry(providers *infrastructure.Providers) Option {
	return func(p *Processor) {
		p.telemetry = providers
	}
}

// New creates a processor. When backend is nil and image export is enabled,
// a ChromeBackend is built from cfg.Export.
func New(cfg *config.Config, backend exporter.ImageBackend, opts ...Option) (*Processor, error) {
	p := &Processor{
		cfg:     cfg,
		backend: backend,
		logger:  slog.Default(),
		stderr:  os.Stderr,
		tracer:  tracenoop.NewTracerProvider().Tracer(infrastructure.MeterName),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = infrastructure.WithComponent(p.logger, "pipeline")

	meter := metricnoop.NewMeterProvider().Meter(infrastructure.MeterName)
	if p.telemetry != nil {
		p.tracer = p.telemetry.Tracer
		meter = p.telemetry.Meter
	}
	metrics, err := infrastructure.CreatePipelineMetrics(meter)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindConfig, "telemetry", err)
	}
	p.metrics = metrics

	if !cfg.Export.Enabled {
		p.backend = nil
	} else if p.backend == nil {
		chrome := exporter.NewChromeBackend(cfg.Export.BackendURL, cfg.Export.PlotlyURL, cfg.Export.Timeout, p.logger)
		chrome.Launch = cfg.Export.LaunchBrowser
		chrome.Width = cfg.Export.Width
		chrome.Height = cfg.Export.Height
		p.backend = chrome
	}

	p.loader = sensor.NewLoader(files.NewDiscovery(""), p.logger)
	p.exporter = exporter.New(p.backend, exporter.Options{
		Dir:         cfg.Output.Dir,
		Basename:    cfg.Output.Basename,
		ImageFormat: cfg.Output.ImageFormat,
		PlotlyURL:   cfg.Export.PlotlyURL,
		DataFormats: cfg.Export.DataFormats,
		Stderr:      p.stderr,
		Logger:      p.logger,
	})
	return p, nil
}

// Run executes the pipeline. A LoadFailure aborts before anything is
// written. A failed static image is reported in Report.ImageErr while the
// HTML is still written and Run returns no error.
func (p *Processor) Run(ctx context.Context) (*Report, error) {
	ctx = infrastructure.EnsureTraceID(ctx)
	runID := infrastructure.GetTraceID(ctx)
	logger := p.logger.With(slog.String("run_id", runID))
	start := time.Now()

	ctx, span := p.tracer.Start(ctx, "spectral.run",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("run.id", runID),
			attribute.String("input.reference_dir", p.cfg.Input.ReferenceDir),
			attribute.String("input.channel_dir", p.cfg.Input.ChannelDir),
		))
	defer span.End()

	logger.InfoContext(ctx, "Pipeline started",
		slog.String("reference_dir", p.cfg.Input.ReferenceDir),
		slog.String("channel_dir", p.cfg.Input.ChannelDir),
		slog.String("output_dir", p.cfg.Output.Dir))

	report, err := p.run(ctx, logger)
	outcome := "success"
	switch {
	case err != nil:
		outcome = string(apperrors.KindOf(err))
		if outcome == "" {
			outcome = "error"
		}
	case report.ImageErr != nil:
		outcome = "partial"
	}
	p.metrics.Runs.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))

	if err != nil {
		infrastructure.RecordError(ctx, err)
		logger.ErrorContext(ctx, "Pipeline failed",
			slog.String("error", err.Error()),
			slog.String("kind", outcome))
		return nil, err
	}

	report.RunID = runID
	report.Duration = time.Since(start)
	logger.InfoContext(ctx, "Pipeline completed",
		slog.Int("curves", len(report.Curves)),
		slog.String("html", report.HTMLPath),
		slog.Bool("image_written", report.ImageErr == nil && report.ImagePath != ""),
		slog.Duration("duration", report.Duration))
	return report, nil
}

func (p *Processor) run(ctx context.Context, logger *slog.Logger) (*Report, error) {
	var refTable, chTable *sensor.Table
	if err := p.stage(ctx, StageLoadReference, func(ctx context.Context) (err error) {
		refTable, err = p.loader.LoadDir(ctx, StageLoadReference, p.cfg.Input.ReferenceDir)
		return err
	}); err != nil {
		return nil, err
	}
	if err := p.stage(ctx, StageLoadChannels, func(ctx context.Context) (err error) {
		chTable, err = p.loader.LoadDir(ctx, StageLoadChannels, p.cfg.Input.ChannelDir)
		return err
	}); err != nil {
		return nil, err
	}

	var curves []domain.Curve
	if err := p.stage(ctx, StageExtract, func(ctx context.Context) error {
		ref, err := sensor.ReferenceCurve(refTable)
		if err != nil {
			return apperrors.NewLoadError(StageExtract, p.cfg.Input.ReferenceDir, err)
		}
		channels, err := sensor.ChannelCurves(chTable)
		if err != nil {
			return apperrors.NewLoadError(StageExtract, p.cfg.Input.ChannelDir, err)
		}
		curves = append([]domain.Curve{ref}, channels...)
		return nil
	}); err != nil {
		return nil, err
	}

	var resampled []domain.ResampledCurve
	if err := p.stage(ctx, StageResample, func(ctx context.Context) (err error) {
		resampled, err = spectrum.ResampleAll(curves)
		if err != nil {
			return apperrors.Wrap(apperrors.KindResample, StageResample, err)
		}
		for _, c := range resampled {
			p.metrics.CurvesResampled.Add(ctx, 1, metric.WithAttributes(attribute.String("channel", string(c.Channel))))
			p.metrics.SamplesResampled.Add(ctx, int64(c.Len()))
			logger.DebugContext(ctx, "Resampled curve",
				slog.String("channel", string(c.Channel)),
				slog.Float64("min", c.Min),
				slog.Float64("max", c.Max),
				slog.Float64("step", c.Step),
				slog.Int("samples", c.SampleCount))
		}
		return nil
	}); err != nil {
		return nil, err
	}

	var fig *chart.Figure
	if err := p.stage(ctx, StageRender, func(ctx context.Context) (err error) {
		fig, err = chart.Build(resampled, p.style())
		return apperrors.Wrap(apperrors.KindRender, StageRender, err)
	}); err != nil {
		return nil, err
	}

	var result *exporter.Result
	if err := p.stage(ctx, StageExport, func(ctx context.Context) (err error) {
		result, err = p.exporter.Export(ctx, fig, resampled)
		return err
	}); err != nil {
		return nil, err
	}
	if result.ImageErr != nil {
		p.metrics.ExportFailures.Add(ctx, 1)
	}

	return &Report{
		Curves:    resampled,
		ImagePath: result.ImagePath,
		HTMLPath:  result.HTMLPath,
		DataPaths: result.DataPaths,
		ImageErr:  result.ImageErr,
	}, nil
}

func (p *Processor) stage(ctx context.Context, name string, fn func(ctx context.Context) error) error {
	ctx, span := p.tracer.Start(ctx, "spectral."+name,
		trace.WithAttributes(attribute.String("stage", name)))
	defer span.End()

	start := time.Now()
	err := fn(ctx)
	p.metrics.RecordStage(ctx, name, time.Since(start), err)
	infrastructure.RecordError(ctx, err)
	return err
}

func (p *Processor) style() chart.Style {
	return chart.Style{
		Title:          p.cfg.Chart.Title,
		ReferenceScale: p.cfg.Chart.ReferenceScale,
		ChannelScale:   p.cfg.Chart.ChannelScale,
		Width:          p.cfg.Export.Width,
		Height:         p.cfg.Export.Height,
	}
}
