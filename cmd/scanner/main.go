// Package main is the entry point for the FX arbitrage scanner.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/fxlab/arbitrage-scanner/business/detection"
	detectionDI "github.com/fxlab/arbitrage-scanner/business/detection/di"
	"github.com/fxlab/arbitrage-scanner/business/rates"
	"github.com/fxlab/arbitrage-scanner/internal/apm"
	"github.com/fxlab/arbitrage-scanner/internal/config"
	"github.com/fxlab/arbitrage-scanner/internal/logger"
	"github.com/fxlab/arbitrage-scanner/internal/metrics"
	"github.com/fxlab/arbitrage-scanner/internal/monolith"
	"github.com/fxlab/arbitrage-scanner/pkg/ui"
)

var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

func main() {
	// Load .env file if present (ignore error if not found)
	_ = godotenv.Load()

	// Parse flags
	configPath := flag.String("config", "", "Path to configuration file")
	inputPath := flag.String("input", "", "Path to the rate table file (overrides config)")
	outputPath := flag.String("output", "", "Path to the results file (overrides config)")
	cliMode := flag.Bool("cli", false, "Run in CLI mode with logs (no TUI)")
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showVersion {
		fmt.Printf("arbitrage-scanner %s (commit: %s, built: %s)\n", version, commit, buildDate)
		os.Exit(0)
	}

	// TUI is the default, CLI is for piping and debugging
	tuiMode := !*cliMode

	// The input file may also be given as a positional argument
	input := *inputPath
	if input == "" && flag.NArg() > 0 {
		input = flag.Arg(0)
	}

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		if !tuiMode {
			fmt.Fprintf(os.Stderr, "received shutdown signal: %v\n", sig)
		}
		cancel()
	}()

	if err := run(ctx, *configPath, input, *outputPath, tuiMode); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath, inputPath, outputPath string, tuiMode bool) error {
	// Load configuration; flag overrides land before validation
	if inputPath != "" {
		os.Setenv("SCAN_INPUT_PATH", inputPath)
	}
	if outputPath != "" {
		os.Setenv("SCAN_OUTPUT_PATH", outputPath)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Set TUI mode in config so modules know
	cfg.Output.TUIMode = tuiMode

	// Setup logger (suppressed in TUI mode, stderr otherwise)
	logLevel := logger.LevelInfo
	switch cfg.App.LogLevel {
	case "debug":
		logLevel = logger.LevelDebug
	case "warn":
		logLevel = logger.LevelWarn
	case "error":
		logLevel = logger.LevelError
	}

	var log *logger.Logger
	if tuiMode {
		log = logger.New(io.Discard, logLevel, cfg.App.Name, apm.TraceIDFromContext)
	} else {
		log = logger.New(os.Stderr, logLevel, cfg.App.Name, apm.TraceIDFromContext)
		log.Info(ctx, "starting FX arbitrage scanner",
			"version", version,
			"environment", cfg.App.Environment,
		)
	}

	// Initialize observability if enabled
	var traceProvider apm.TraceProvider
	if cfg.Telemetry.Enabled {
		if cfg.Telemetry.ServiceName != "" {
			os.Setenv("OTEL_SERVICE_NAME", cfg.Telemetry.ServiceName)
		}
		if cfg.Telemetry.OTLPEndpoint != "" {
			os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", cfg.Telemetry.OTLPEndpoint)
		}

		traceProvider = apm.NewTraceProvider(apm.ZipkinProvider, log)
		log.Info(ctx, "tracing initialized", "provider", "zipkin", "endpoint", cfg.Telemetry.OTLPEndpoint)

		metrics.NewMetricProvider(
			metrics.WithServiceName(cfg.Telemetry.ServiceName),
			metrics.WithProviderConfig(metrics.ProviderCfg{
				Provider: metrics.PrometheusProvider,
			}),
		)

		port := cfg.Telemetry.PrometheusPort
		if port == 0 {
			port = 9090
		}
		go metrics.ServePrometheusMetrics(metrics.WithPort(strconv.Itoa(port)))
		log.Info(ctx, "prometheus metrics server started", "port", port)
	}
	defer func() {
		if traceProvider != nil {
			traceProvider.Stop()
		}
	}()

	// Create monolith (application container)
	mono, err := monolith.New(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to create monolith: %w", err)
	}

	// Define modules in dependency order
	modules := []monolith.Module{
		&rates.Module{},     // Must be first - provides the table stream
		&detection.Module{}, // Depends on rates
	}

	// Register all module services
	if err := mono.RegisterModules(modules...); err != nil {
		return fmt.Errorf("failed to register modules: %w", err)
	}

	if err := mono.StartModules(ctx, modules...); err != nil {
		return fmt.Errorf("failed to start modules: %w", err)
	}

	scanner := detectionDI.GetScanner(mono.Services())

	if tuiMode {
		return runTUI(ctx, mono, func() error { return scanner.Run(ctx) })
	}

	return scanner.Run(ctx)
}

func runTUI(ctx context.Context, mono monolith.Monolith, scan func() error) error {
	p := tea.NewProgram(ui.New(mono.Currencies()), tea.WithAltScreen())
	ui.Program = p

	// Run the scan in the background; the reporter streams results in
	errCh := make(chan error, 1)
	go func() {
		if err := scan(); err != nil {
			ui.Send(ui.ErrorMsg{Error: err})
			errCh <- err
			return
		}
		errCh <- nil
	}()

	// Run TUI (blocking)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	select {
	case err := <-errCh:
		return err
	default:
		return nil
	}
}
