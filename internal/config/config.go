package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Input     InputConfig     `yaml:"input" envconfig:"INPUT"`
	Output    OutputConfig    `yaml:"output" envconfig:"OUTPUT"`
	Export    ExportConfig    `yaml:"export" envconfig:"EXPORT"`
	Chart     ChartConfig     `yaml:"chart" envconfig:"CHART"`
	Logging   LoggingConfig   `yaml:"logging" envconfig:"LOGGING"`
	Telemetry TelemetryConfig `yaml:"telemetry" envconfig:"TELEMETRY"`
}

// InputConfig names the directories scanned for sensor CSV files
type InputConfig struct {
	ReferenceDir string `yaml:"reference_dir" envconfig:"REFERENCE_DIR" validate:"required"`
	ChannelDir   string `yaml:"channel_dir" envconfig:"CHANNEL_DIR" validate:"required"`
}

// OutputConfig controls where the chart artifacts are written
type OutputConfig struct {
	Dir         string `yaml:"dir" envconfig:"DIR" validate:"required"`
	Basename    string `yaml:"basename" envconfig:"BASENAME" validate:"required,excludesall=/\\"`
	ImageFormat string `yaml:"image_format" envconfig:"IMAGE_FORMAT" validate:"oneof=svg png jpeg webp"`
}

// ExportConfig configures the static image backend and the optional data exports
type ExportConfig struct {
	Enabled       bool          `yaml:"enabled" envconfig:"ENABLED"`
	BackendURL    string        `yaml:"backend_url" envconfig:"BACKEND_URL" validate:"omitempty,url"`
	LaunchBrowser bool          `yaml:"launch_browser" envconfig:"LAUNCH_BROWSER"`
	Timeout       time.Duration `yaml:"timeout" envconfig:"TIMEOUT" validate:"gt=0"`
	PlotlyURL     string        `yaml:"plotly_url" envconfig:"PLOTLY_URL" validate:"required,url"`
	Width         int           `yaml:"width" envconfig:"WIDTH" validate:"gt=0"`
	Height        int           `yaml:"height" envconfig:"HEIGHT" validate:"gt=0"`
	DataFormats   []string      `yaml:"data_formats" envconfig:"DATA_FORMATS" validate:"dive,oneof=csv xlsx"`
}

// ChartConfig holds the raw-trace scale factors and the chart title
type ChartConfig struct {
	Title          string  `yaml:"title" envconfig:"TITLE"`
	ReferenceScale float64 `yaml:"reference_scale" envconfig:"REFERENCE_SCALE" validate:"gt=0"`
	ChannelScale   float64 `yaml:"channel_scale" envconfig:"CHANNEL_SCALE" validate:"gt=0"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn warning error"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" validate:"required_unless=Output console"`
}

// TelemetryConfig contains OpenTelemetry configuration
type TelemetryConfig struct {
	TraceExporter  string  `yaml:"trace_exporter" envconfig:"TRACE_EXPORTER" validate:"oneof=none stdout file"`
	TraceFile      string  `yaml:"trace_file" envconfig:"TRACE_FILE" validate:"required_if=TraceExporter file"`
	SampleRatio    float64 `yaml:"sample_ratio" envconfig:"SAMPLE_RATIO" validate:"gte=0,lte=1"`
	MetricExporter string  `yaml:"metric_exporter" envconfig:"METRIC_EXPORTER" validate:"oneof=none prometheus"`
	MetricsFile    string  `yaml:"metrics_file" envconfig:"METRICS_FILE"`
}

// Load builds the configuration from defaults, an optional YAML file and
// SPECTRAL_* environment variables, in increasing order of precedence.
func Load(configFile string) (*Config, error) {
	cfg := Default()

	if configFile != "" {
		if err := loadFromFile(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	// Fields without a matching variable keep their current value.
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// loadFromFile overlays the YAML file onto cfg
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// Validate checks struct constraints
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return err
	}
	if c.Export.Enabled && !c.Export.LaunchBrowser && c.Export.BackendURL == "" {
		return fmt.Errorf("export.backend_url is required when launch_browser is disabled")
	}
	return nil
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Input: InputConfig{
			ReferenceDir: DefaultReferenceDir,
			ChannelDir:   DefaultChannelDir,
		},
		Output: OutputConfig{
			Dir:         DefaultOutputDir,
			Basename:    DefaultBasename,
			ImageFormat: "svg",
		},
		Export: ExportConfig{
			Enabled:    true,
			BackendURL: DefaultBackendURL,
			Timeout:    DefaultExportTimeout,
			PlotlyURL:  DefaultPlotlyURL,
			Width:      1200,
			Height:     700,
		},
		Chart: ChartConfig{
			Title:          "Spectral response",
			ReferenceScale: 100,
			ChannelScale:   1,
		},
		Logging: LoggingConfig{
			Level:    "info",
			Output:   "console",
			FilePath: "logs/spectral.log",
		},
		Telemetry: TelemetryConfig{
			TraceExporter:  "none",
			SampleRatio:    1.0,
			MetricExporter: "none",
		},
	}
}
