// Package main implements the command-line entry point for the container
// library. It loads a YAML manifest, builds the declared containers,
// exercises them with synthetic traffic, and reports their statistics,
// optionally serving Prometheus metrics over HTTP.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/RobertoRoos/custom-containers/bounded"
	"github.com/RobertoRoos/custom-containers/config"
	"github.com/RobertoRoos/custom-containers/fifo"
	"github.com/RobertoRoos/custom-containers/metric"
	"github.com/RobertoRoos/custom-containers/stats"
)

// Build information constants
const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "containers"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := run(); err != nil {
		slog.Error("Application failed", "error", err, "exit_code", 1)
		os.Exit(1)
	}
}

func run() error {
	cliCfg := parseFlags()
	if err := validateFlags(cliCfg); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	if cliCfg.ShowVersion {
		fmt.Printf("%s version %s\n", appName, Version)
		return nil
	}

	if cliCfg.ShowHelp {
		printDetailedHelp()
		return nil
	}

	logger := setupLogger(cliCfg.LogLevel, cliCfg.LogFormat)
	slog.SetDefault(logger)

	slog.Info("Starting containers",
		"version", Version,
		"build_time", BuildTime,
		"config_path", cliCfg.ConfigPath)

	cfg, err := config.Load(cliCfg.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if cliCfg.Validate {
		slog.Info("Configuration is valid", "containers", len(cfg.Containers))
		return nil
	}

	registry := metric.NewRegistry()

	summaries, err := exerciseContainers(cfg, registry, cliCfg.Rounds)
	if err != nil {
		return err
	}

	if err := reportSummaries(summaries); err != nil {
		return err
	}

	if cliCfg.MetricsPort > 0 {
		return serveMetrics(registry, cliCfg.MetricsPort)
	}

	return nil
}

// exerciseContainers builds every container in the manifest and drives
// synthetic traffic through it so statistics and metrics have data.
func exerciseContainers(
	cfg *config.Config,
	registry *metric.Registry,
	rounds int,
) (map[string]stats.Summary, error) {
	summaries := make(map[string]stats.Summary, len(cfg.Containers))

	for _, def := range cfg.Containers {
		slog.Debug("Building container",
			"name", def.Name, "kind", def.Kind, "capacity", def.Capacity)

		var st *stats.Statistics

		switch def.Kind {
		case config.KindFifo:
			q, err := config.NewFifo[int](def, registry)
			if err != nil {
				return nil, fmt.Errorf("build container %s: %w", def.Name, err)
			}
			exerciseFifo(q, rounds)
			st = q.Stats()

		case config.KindBounded:
			buf, err := config.NewBounded[int](def, registry)
			if err != nil {
				return nil, fmt.Errorf("build container %s: %w", def.Name, err)
			}
			exerciseBounded(buf, rounds)
			st = buf.Stats()
		}

		summaries[def.Name] = st.Snapshot()
		slog.Info("Container exercised",
			"name", def.Name,
			"writes", st.Writes(),
			"reads", st.Reads(),
			"rejects", st.Rejects())
	}

	return summaries, nil
}

// exerciseFifo pushes batches through the queue with periodic drains,
// forcing the cursors through several wraparounds.
func exerciseFifo(q *fifo.Fifo[int], rounds int) {
	batch := make([]int, q.Capacity())

	for round := 0; round < rounds; round++ {
		for i := 0; i < q.Capacity(); i++ {
			if err := q.Push(round*q.Capacity() + i); err != nil {
				break
			}
		}

		// Drain most of the queue one element at a time
		for q.Size() > 1 {
			if _, err := q.Pop(); err != nil {
				break
			}
		}

		// Bulk round trip over the wrap boundary
		n := q.Free()
		if err := q.PushList(batch[:n]); err == nil {
			_, _ = q.PopList(batch, 0)
		}
	}
}

// exerciseBounded grows the buffer to capacity and shrinks it back,
// deliberately overshooting to record rejects.
func exerciseBounded(buf *bounded.Buffer[int], rounds int) {
	for round := 0; round < rounds; round++ {
		for i := 0; i <= buf.Capacity(); i++ {
			_ = buf.PushBack(round + i)
		}

		for v := range buf.Values() {
			_ = v
		}

		for !buf.Empty() {
			_, _ = buf.PopBack()
		}
	}
}

// reportSummaries writes per-container statistics as JSON to stdout.
func reportSummaries(summaries map[string]stats.Summary) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(summaries); err != nil {
		return fmt.Errorf("encode statistics: %w", err)
	}
	return nil
}

// serveMetrics runs the Prometheus endpoint until a shutdown signal arrives.
func serveMetrics(registry *metric.Registry, port int) error {
	server := metric.NewServer(port, "/metrics", registry)

	signalCtx, signalCancel := signal.NotifyContext(
		context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer signalCancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	slog.Info("Metrics server started", "address", server.Address())

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("metrics server: %w", err)
		}
	case <-signalCtx.Done():
		slog.Info("Received shutdown signal")
		if err := server.Stop(); err != nil {
			return fmt.Errorf("stop metrics server: %w", err)
		}
	}

	slog.Info("Shutdown complete")
	return nil
}
