// Package config provides configuration loading and validation.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Input     InputConfig     `mapstructure:"input"`
	Output    OutputConfig    `mapstructure:"output"`
	Detection DetectionConfig `mapstructure:"detection"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
	LogLevel    string `mapstructure:"log_level"`
}

// InputConfig holds rate-table input settings.
type InputConfig struct {
	Path     string `mapstructure:"path"`
	Encoding string `mapstructure:"encoding"` // "auto", "utf-8", "utf-16"
}

// OutputConfig holds result output settings.
type OutputConfig struct {
	Path    string `mapstructure:"path"`
	TUIMode bool   `mapstructure:"-"` // Set at runtime, not from config file
}

// DetectionConfig holds arbitrage detection configuration.
type DetectionConfig struct {
	MaxDimension   int      `mapstructure:"max_dimension"`
	ProgressPerSec float64  `mapstructure:"progress_per_sec"`
	CurrencyLabels []string `mapstructure:"currency_labels"`
	RejectBadRates bool     `mapstructure:"reject_bad_rates"`
}

// TelemetryConfig holds observability configuration.
type TelemetryConfig struct {
	Enabled        bool   `mapstructure:"enabled"`
	ServiceName    string `mapstructure:"service_name"`
	OTLPEndpoint   string `mapstructure:"otlp_endpoint"`
	PrometheusPort int    `mapstructure:"prometheus_port"`
}

// Load loads configuration from file and environment variables.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables
	v.SetEnvPrefix("SCAN")
	v.AutomaticEnv()

	// Bind env vars to config keys
	bindEnvVars(v)

	// Set defaults
	setDefaults(v)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, use env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func bindEnvVars(v *viper.Viper) {
	// App
	v.BindEnv("app.name", "SCAN_APP_NAME", "SERVICE_NAME")
	v.BindEnv("app.environment", "SCAN_ENVIRONMENT", "ENVIRONMENT")
	v.BindEnv("app.log_level", "SCAN_LOG_LEVEL", "LOG_LEVEL")

	// Input
	v.BindEnv("input.path", "SCAN_INPUT_PATH")
	v.BindEnv("input.encoding", "SCAN_INPUT_ENCODING")

	// Output
	v.BindEnv("output.path", "SCAN_OUTPUT_PATH")

	// Detection
	v.BindEnv("detection.max_dimension", "SCAN_MAX_DIMENSION")
	v.BindEnv("detection.currency_labels", "SCAN_CURRENCY_LABELS")

	// Telemetry
	v.BindEnv("telemetry.enabled", "SCAN_OTEL_ENABLED", "OTEL_ENABLED")
	v.BindEnv("telemetry.service_name", "SCAN_OTEL_SERVICE_NAME", "OTEL_SERVICE_NAME")
	v.BindEnv("telemetry.otlp_endpoint", "SCAN_OTEL_ENDPOINT", "OTEL_EXPORTER_OTLP_ENDPOINT")
}

func setDefaults(v *viper.Viper) {
	// App defaults
	v.SetDefault("app.name", "arbitrage-scanner")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.log_level", "info")

	// Input defaults
	v.SetDefault("input.encoding", "auto")

	// Output defaults
	v.SetDefault("output.path", "arb_chains.txt")

	// Detection defaults. The scan enumerates N!/(N-K)! paths per table, so
	// the dimension cap is the only thing bounding runtime.
	v.SetDefault("detection.max_dimension", 10)
	v.SetDefault("detection.progress_per_sec", 2.0)
	v.SetDefault("detection.reject_bad_rates", false)

	// Telemetry defaults
	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.service_name", "arbitrage-scanner")
	v.SetDefault("telemetry.prometheus_port", 9090)
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Input.Path == "" {
		return fmt.Errorf("input.path is required")
	}
	if c.Output.Path == "" {
		return fmt.Errorf("output.path is required")
	}
	if c.Detection.MaxDimension < 2 {
		return fmt.Errorf("detection.max_dimension must be at least 2, got %d", c.Detection.MaxDimension)
	}
	switch c.Input.Encoding {
	case "auto", "utf-8", "utf-16":
	default:
		return fmt.Errorf("invalid input.encoding: %s", c.Input.Encoding)
	}
	return nil
}
