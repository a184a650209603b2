// Command limbo runs a standalone holding server: it speaks just enough
// of the Java Edition protocol to carry a client through handshake,
// login, configuration, and into a static Play world, per spec §6's
// "CLI" surface - a single binary with -c/--config and repeatable -v.
package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/go-mclib/limbo/internal/blockmapping"
	"github.com/go-mclib/limbo/internal/config"
	"github.com/go-mclib/limbo/internal/handlers"
	"github.com/go-mclib/limbo/internal/metrics"
	"github.com/go-mclib/limbo/internal/packetid"
	"github.com/go-mclib/limbo/internal/registry"
	"github.com/go-mclib/limbo/internal/server"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string
	var verbosity int
	var metricsBind string

	cmd := &cobra.Command{
		Use:          "limbo",
		Short:        "A minimal Minecraft holding server",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(configPath, verbosity, metricsBind)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "limbo.toml", "path to the TOML configuration file")
	flags.CountVarP(&verbosity, "verbose", "v", "increase log verbosity (repeatable)")
	flags.StringVar(&metricsBind, "metrics-bind", "", "address to serve Prometheus metrics on (disabled if empty)")

	return cmd
}

// run wires config -> server state -> deps -> accept loop. Any error
// here - a malformed config, a failed bind, a bad schematic - is spec
// §6's "non-zero on config or bind failure": it's returned up to main,
// which exits non-zero without ever starting to accept connections.
func run(configPath string, verbosity int, metricsBind string) error {
	log := newLogger(verbosity)

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("limbo: load config: %w", err)
	}

	mapping, report := blockmapping.StaticMapping()
	registries := registry.StaticManager()
	packetIDs := packetid.StaticRegistry()

	state, err := cfg.BuildServerState(mapping)
	if err != nil {
		return fmt.Errorf("limbo: build server state: %w", err)
	}

	var sink handlers.Metrics
	if metricsBind != "" {
		m := metrics.New()
		sink = m
		go serveMetrics(log, metricsBind, m)
	}

	deps := handlers.NewDeps(state, registries, mapping, report, packetIDs, nil, sink, log)
	srv := server.New(deps)

	if err := srv.ListenAndServe(cfg.Bind); err != nil {
		return fmt.Errorf("limbo: %w", err)
	}
	return nil
}

func newLogger(verbosity int) *logrus.Logger {
	log := logrus.New()
	switch {
	case verbosity >= 2:
		log.SetLevel(logrus.TraceLevel)
	case verbosity == 1:
		log.SetLevel(logrus.DebugLevel)
	default:
		log.SetLevel(logrus.InfoLevel)
	}
	return log
}

func serveMetrics(log *logrus.Logger, bind string, sink *metrics.Sink) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", sink.Handler())
	log.WithField("addr", bind).Info("metrics listening")
	if err := http.ListenAndServe(bind, mux); err != nil {
		log.WithError(err).Error("metrics server stopped")
	}
}
