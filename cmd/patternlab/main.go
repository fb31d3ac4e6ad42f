package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajitpratap0/patternlab/internal/demo"
	"github.com/ajitpratap0/patternlab/pkg/config"
	"github.com/ajitpratap0/patternlab/pkg/logger"
	"github.com/ajitpratap0/patternlab/pkg/metrics"
	"github.com/ajitpratap0/patternlab/pkg/pool"
)

var version = "0.1.0"

// app carries state shared by every subcommand once the root pre-run has
// loaded configuration.
type app struct {
	configFile string
	logLevel   string
	cfg        *config.AppConfig
	log        *zap.Logger
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load() // Ignore error if .env doesn't exist

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "patternlab",
		Short: "patternlab - design pattern walkthroughs",
		Long: `patternlab walks through creational, structural and behavioural design
patterns: a bounded object pool, builders and prototypes, factories,
decorated employees, a composite organisation driven through a facade, an
observed animal ecosystem with commands and a request chain, and a
cafeteria with swappable cooking services.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	root.PersistentFlags().StringVarP(&a.configFile, "config", "c", "", "Path to YAML configuration file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides the config file")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "patternlab v%s\n", version)
			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	})

	root.AddCommand(
		a.demoCmd("pool", "Borrow and return people through the shared object pool", func(r *demo.Runner, cmd *cobra.Command) error {
			return r.Pool(cmd.Context())
		}),
		a.demoCmd("builder", "Build, copy and preset people", func(r *demo.Runner, cmd *cobra.Command) error {
			return r.Builder(cmd.Context())
		}),
		a.demoCmd("zoo", "Create animals and plants by name and by ecosystem", func(r *demo.Runner, cmd *cobra.Command) error {
			return r.Zoo(cmd.Context())
		}),
		a.demoCmd("ecosystem", "Observe animals, run undoable commands and route requests", func(r *demo.Runner, cmd *cobra.Command) error {
			return r.Ecosystem(cmd.Context())
		}),
		a.demoCmd("all", "Run every walkthrough", func(r *demo.Runner, cmd *cobra.Command) error {
			return r.All(cmd.Context())
		}),
	)

	var enhanceJSON bool
	enhance := a.demoCmd("enhance", "Layer enhancements on an employee", func(r *demo.Runner, cmd *cobra.Command) error {
		return r.Enhance(cmd.Context(), enhanceJSON)
	})
	enhance.Flags().BoolVar(&enhanceJSON, "json", false, "Print the result as JSON")

	var orgJSON bool
	org := a.demoCmd("org", "Build a sample organisation through the facade", func(r *demo.Runner, cmd *cobra.Command) error {
		return r.Org(cmd.Context(), orgJSON)
	})
	org.Flags().BoolVar(&orgJSON, "json", false, "Print only the organisation statistics as JSON")

	var cafeteriaJSON bool
	cafe := a.demoCmd("cafeteria", "Cook, inspect and serve dishes", func(r *demo.Runner, cmd *cobra.Command) error {
		return r.Cafeteria(cmd.Context(), cafeteriaJSON)
	})
	cafe.Flags().BoolVar(&cafeteriaJSON, "json", false, "Print only the dish statuses as JSON")

	root.AddCommand(enhance, org, cafe, a.configCmd(), a.metricsCmd())
	return root
}

func (a *app) setup() error {
	cfg, err := config.Load(a.configFile)
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	log, err := logger.New(cfg.LoggerConfig())
	if err != nil {
		return fmt.Errorf("logger error: %w", err)
	}
	a.cfg = cfg
	a.log = log.With(zap.String("component", "patternlab-cli"))
	return nil
}

func (a *app) demoCmd(use, short string, run func(*demo.Runner, *cobra.Command) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.log.Debug("running demo", zap.String("demo", use))
			r := demo.New(cmd.OutOrStdout(), a.cfg, demo.WithLogger(a.log), demo.WithRegistry(pool.Default))
			return run(r, cmd)
		},
	}
}

func (a *app) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.Marshal(a.cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	})
	return cmd
}

// metricsCmd runs every walkthrough silently and prints the patternlab
// metrics it produced in the Prometheus text format.
func (a *app) metricsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "metrics",
		Short: "Run every walkthrough and print the collected metrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := demo.New(io.Discard, a.cfg, demo.WithLogger(a.log), demo.WithRegistry(pool.Default), demo.WithDelay(0))
			if err := r.All(cmd.Context()); err != nil {
				return err
			}
			return metrics.WriteText(cmd.OutOrStdout(), prometheus.DefaultGatherer)
		},
	}
}
