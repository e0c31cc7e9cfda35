package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/youwol/flux-core/internal/engine"
	"github.com/youwol/flux-core/internal/logging"
	"github.com/youwol/flux-core/internal/transport"
	"github.com/youwol/flux-core/pipeline"
)

type ExitCode int

const (
	exitCodeSuccess ExitCode = 0
	exitCodeError   ExitCode = 1
)

func Run() ExitCode {
	if err := newRootCmd().Execute(); err != nil {
		return exitCodeError
	}
	return exitCodeSuccess
}

func newRootCmd() *cobra.Command {
	var (
		manifest string
		verbose  bool
	)
	root := &cobra.Command{
		Use:           "flux-pipeline",
		Short:         "Serve and inspect the flux-core pipeline factory.",
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts := logging.FromEnv()
			if verbose {
				opts.Level = "debug"
			}
			logging.Configure(opts)
		},
	}
	root.PersistentFlags().StringVarP(&manifest, "manifest", "m", "manifest.yml", "host manifest naming the factory and its options")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "set debug logging level")

	root.AddCommand(
		newGetCmd(&manifest),
		newFactoriesCmd(),
		newServeCmd(&manifest),
		newHealthCmd(),
	)
	return root
}

func newGetCmd(manifest *string) *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Build the pipeline once and print it as YAML.",
		RunE: func(cmd *cobra.Command, args []string) error {
			name, f, _, err := engine.LoadFactory(*manifest)
			if err != nil {
				return err
			}
			logging.L().Debug("resolving pipeline", "factory", name)
			res := <-pipeline.Async(cmd.Context(), f, nil, nil)
			if res.Err != nil {
				return fmt.Errorf("pipeline %s: %w", name, res.Err)
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(res.Pipeline); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}

func newFactoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "factories",
		Short: "List registered pipeline factories.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, n := range pipeline.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
		},
	}
}

func newServeCmd(manifest *string) *cobra.Command {
	var grpcPort, metricsPort int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Host the factory behind a gRPC health endpoint and /metrics.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			e, err := engine.Bootstrap(ctx, engine.Config{
				Manifest:    *manifest,
				GRPCPort:    grpcPort,
				MetricsPort: metricsPort,
			})
			if err != nil {
				return fmt.Errorf("bootstrap: %w", err)
			}
			if err := e.Run(ctx); err != nil {
				return fmt.Errorf("engine: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&grpcPort, "grpc-port", 0, "gRPC port (overrides manifest)")
	cmd.Flags().IntVar(&metricsPort, "metrics-port", 0, "metrics port (overrides manifest)")
	return cmd
}

func newHealthCmd() *cobra.Command {
	var (
		addr    string
		service string
		timeout time.Duration
	)
	cmd := &cobra.Command{
		Use:   "health",
		Short: "Query a running server's health status.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			st, err := transport.Check(ctx, addr, service)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), st.String())
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "localhost:7070", "server address")
	cmd.Flags().StringVar(&service, "service", "", "service name (empty for the whole server)")
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "request timeout")
	return cmd
}
