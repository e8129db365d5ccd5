package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
)

// CLIConfig holds command-line configuration
type CLIConfig struct {
	ConfigPath  string
	LogLevel    string
	LogFormat   string
	Debug       bool
	Rounds      int
	MetricsPort int
	ShowVersion bool
	ShowHelp    bool
	Validate    bool
}

func parseFlags() *CLIConfig {
	cfg := &CLIConfig{}

	// Define flags with environment variable fallback
	flag.StringVar(&cfg.ConfigPath, "config",
		getEnv("CONTAINERS_CONFIG", "configs/containers.yaml"),
		"Path to container manifest (env: CONTAINERS_CONFIG)")

	flag.StringVar(&cfg.ConfigPath, "c",
		getEnv("CONTAINERS_CONFIG", "configs/containers.yaml"),
		"Path to container manifest (env: CONTAINERS_CONFIG)")

	flag.StringVar(&cfg.LogLevel, "log-level",
		getEnv("CONTAINERS_LOG_LEVEL", "info"),
		"Log level: debug, info, warn, error (env: CONTAINERS_LOG_LEVEL)")

	flag.StringVar(&cfg.LogFormat, "log-format",
		getEnv("CONTAINERS_LOG_FORMAT", "json"),
		"Log format: json, text (env: CONTAINERS_LOG_FORMAT)")

	flag.BoolVar(&cfg.Debug, "debug",
		getEnvBool("CONTAINERS_DEBUG", false),
		"Enable debug mode (env: CONTAINERS_DEBUG)")

	flag.IntVar(&cfg.Rounds, "rounds",
		getEnvInt("CONTAINERS_ROUNDS", 10),
		"Synthetic traffic rounds per container (env: CONTAINERS_ROUNDS)")

	flag.IntVar(&cfg.MetricsPort, "metrics-port",
		getEnvInt("CONTAINERS_METRICS_PORT", 0),
		"Prometheus metrics port, 0 to disable (env: CONTAINERS_METRICS_PORT)")

	flag.BoolVar(&cfg.ShowVersion, "version", false, "Show version information")
	flag.BoolVar(&cfg.ShowVersion, "v", false, "Show version information")
	flag.BoolVar(&cfg.ShowHelp, "help", false, "Show help information")
	flag.BoolVar(&cfg.ShowHelp, "h", false, "Show help information")
	flag.BoolVar(&cfg.Validate, "validate", false, "Validate manifest and exit")

	// Custom usage
	flag.Usage = func() {
		printDetailedHelp()
	}

	flag.Parse()

	// Override log level if debug is set
	if cfg.Debug {
		cfg.LogLevel = "debug"
	}

	return cfg
}

func validateFlags(cfg *CLIConfig) error {
	// Skip validation for special flags
	if cfg.ShowVersion || cfg.ShowHelp {
		return nil
	}

	// Validate manifest file exists
	if _, err := os.Stat(cfg.ConfigPath); err != nil {
		return fmt.Errorf("manifest not found: %s", cfg.ConfigPath)
	}

	// Validate log level
	validLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLevels, cfg.LogLevel) {
		return fmt.Errorf("invalid log level: %s", cfg.LogLevel)
	}

	// Validate log format
	validFormats := []string{"json", "text"}
	if !contains(validFormats, cfg.LogFormat) {
		return fmt.Errorf("invalid log format: %s", cfg.LogFormat)
	}

	if cfg.Rounds < 1 {
		return fmt.Errorf("invalid rounds: %d", cfg.Rounds)
	}

	// Validate metrics port
	if cfg.MetricsPort < 0 || cfg.MetricsPort > 65535 {
		return fmt.Errorf("invalid metrics port: %d", cfg.MetricsPort)
	}

	return nil
}

func printDetailedHelp() {
	_, _ = fmt.Fprintf(os.Stderr, `%s - Fixed-capacity container toolkit

Usage: %s [options]

Options:
`, appName, os.Args[0])
	flag.PrintDefaults()
	_, _ = fmt.Fprintf(os.Stderr, `
Examples:
  # Exercise the containers declared in a manifest
  %s --config=/path/to/containers.yaml

  # Run with debug logging
  %s --log-level=debug --log-format=text

  # Serve Prometheus metrics after exercising
  %s --metrics-port=9090

  # Validate a manifest only
  %s --validate

Version: %s
Build: %s
`, os.Args[0], os.Args[0], os.Args[0], os.Args[0], Version, BuildTime)
}

// Environment variable helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// Utility function to check if slice contains string
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
