package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"spectralcli/internal/config"
	apperrors "spectralcli/internal/errors"
	"spectralcli/internal/infrastructure"
	"spectralcli/internal/pipeline"
	"spectralcli/pkg/contracts"
)

type rootFlags struct {
	configFile    string
	referenceDir  string
	channelDir    string
	outputDir     string
	basename      string
	format        string
	backendURL    string
	timeout       time.Duration
	noImage       bool
	launchBrowser bool
	dataFormats   []string
	logLevel      string
}

func newRootCmd() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:   "spectral",
		Short: "Resample and plot spectral response curves",
		Long: "spectral loads reference and four-channel sensor calibration CSVs,\n" +
			"resamples every response curve onto a uniform wavelength grid and\n" +
			"writes a static image plus an interactive HTML chart.",
		Version:       contracts.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runProcess(cmd, &flags)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.configFile, "config", "c", "", "YAML configuration file")
	f.StringVar(&flags.referenceDir, "reference-dir", config.DefaultReferenceDir, "Directory of reference sensor CSV files")
	f.StringVar(&flags.channelDir, "channel-dir", config.DefaultChannelDir, "Directory of multi-channel sensor CSV files")
	f.StringVarP(&flags.outputDir, "output-dir", "o", config.DefaultOutputDir, "Output directory")
	f.StringVar(&flags.basename, "basename", config.DefaultBasename, "Base name of the output files")
	f.StringVar(&flags.format, "format", "svg", "Static image format: svg, png, jpeg or webp")
	f.StringVar(&flags.backendURL, "backend-url", config.DefaultBackendURL, "DevTools endpoint of the headless browser")
	f.DurationVar(&flags.timeout, "timeout", config.DefaultExportTimeout, "Static image export timeout")
	f.BoolVar(&flags.noImage, "no-image", false, "Skip the static image, write only the HTML chart")
	f.BoolVar(&flags.launchBrowser, "launch-browser", false, "Launch a headless browser instead of connecting to --backend-url")
	f.StringSliceVar(&flags.dataFormats, "data-formats", nil, "Also export resampled curves: csv, xlsx")
	f.StringVar(&flags.logLevel, "log-level", "info", "Log level: debug, info, warn, error")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), contracts.GetFullVersionString())
		},
	}
}

// resolveConfig loads the configuration and applies the flags the user set
// explicitly
func resolveConfig(cmd *cobra.Command, flags *rootFlags) (*config.Config, error) {
	cfg, err := config.Load(flags.configFile)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindConfig, "config", err)
	}

	changed := cmd.Flags().Changed
	if changed("reference-dir") {
		cfg.Input.ReferenceDir = flags.referenceDir
	}
	if changed("channel-dir") {
		cfg.Input.ChannelDir = flags.channelDir
	}
	if changed("output-dir") {
		cfg.Output.Dir = flags.outputDir
	}
	if changed("basename") {
		cfg.Output.Basename = flags.basename
	}
	if changed("format") {
		cfg.Output.ImageFormat = flags.format
	}
	if changed("backend-url") {
		cfg.Export.BackendURL = flags.backendURL
	}
	if changed("timeout") {
		cfg.Export.Timeout = flags.timeout
	}
	if changed("launch-browser") {
		cfg.Export.LaunchBrowser = flags.launchBrowser
	}
	if changed("no-image") {
		cfg.Export.Enabled = !flags.noImage
	}
	if changed("data-formats") {
		cfg.Export.DataFormats = flags.dataFormats
	}
	if changed("log-level") {
		cfg.Logging.Level = flags.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, apperrors.Wrap(apperrors.KindConfig, "config", err)
	}
	return cfg, nil
}

func runProcess(cmd *cobra.Command, flags *rootFlags) error {
	cfg, err := resolveConfig(cmd, flags)
	if err != nil {
		return err
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return apperrors.Wrap(apperrors.KindConfig, "logging", err)
	}
	defer infrastructure.CloseLogFile()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	ctx = infrastructure.EnsureTraceID(ctx)

	providers, err := infrastructure.InitializeOTel(ctx, cfg.Telemetry, logger)
	if err != nil {
		return apperrors.Wrap(apperrors.KindConfig, "telemetry", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := providers.Shutdown(shutdownCtx); err != nil {
			logger.Warn("Telemetry shutdown failed", slog.String("error", err.Error()))
		}
	}()

	processor, err := pipeline.New(cfg, nil,
		pipeline.WithLogger(logger),
		pipeline.WithStderr(cmd.ErrOrStderr()),
		pipeline.WithTelemetry(providers))
	if err != nil {
		return err
	}

	report, runErr := processor.Run(ctx)

	if cfg.Telemetry.MetricsFile != "" {
		if err := providers.WriteMetrics(cfg.Telemetry.MetricsFile); err != nil {
			logger.WarnContext(ctx, "Failed to write metrics", slog.String("error", err.Error()))
		}
	}
	if runErr != nil {
		return runErr
	}

	out := cmd.OutOrStdout()
	if report.ImageErr == nil && report.ImagePath != "" {
		fmt.Fprintln(out, report.ImagePath)
	}
	fmt.Fprintln(out, report.HTMLPath)
	for _, p := range report.DataPaths {
		fmt.Fprintln(out, p)
	}
	return nil
}
