// Command saturnlog runs a saturnlog program to completion and prints
// every saturated model it finds.
package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	saturnlog "github.com/cobbled/saturnlog"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "saturnlog",
		Short: "A bottom-up solver for a Datalog dialect with functional relations and choice",
	}
	root.AddCommand(newRunCmd())
	return root
}

func newRunCmd() *cobra.Command {
	var (
		trace       bool
		timeout     time.Duration
		maxModels   int
		metricsAddr string
	)

	cmd := &cobra.Command{
		Use:   "run <program-file>",
		Short: "Parse, compile, and saturate a program file, printing every model found",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			saturnlog.SetTraceLogging(trace)

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening program file: %w", err)
			}
			defer f.Close()

			prog, err := saturnlog.ParseProgram(f)
			if err != nil {
				return fmt.Errorf("compiling program: %w", err)
			}

			var driverOpts []saturnlog.DriverOption
			if maxModels > 0 {
				driverOpts = append(driverOpts, saturnlog.WithMaxModels(maxModels))
			}

			var reg *prometheus.Registry
			if metricsAddr != "" {
				reg = prometheus.NewRegistry()
				metrics := saturnlog.NewMetrics(reg)
				driverOpts = append(driverOpts, saturnlog.WithMetrics(metrics))

				mux := http.NewServeMux()
				mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
				go http.ListenAndServe(metricsAddr, mux)
			}

			driver := saturnlog.NewDriver(prog, driverOpts...)
			ticker := saturnlog.StartDeadline(driver, timeout, 50*time.Millisecond)
			defer ticker.Stop()

			models := driver.Run()
			ticker.Stop()

			for i, m := range models {
				fmt.Fprintf(cmd.OutOrStdout(), "--- model %d ---\n%s", i+1, m.Dump())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d model(s)\n", len(models))

			if len(models) == 0 {
				return fmt.Errorf("no saturated model found")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&trace, "trace", "v", false, "enable step-by-step debug logging")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "wall-clock search timeout (0 disables)")
	cmd.Flags().IntVar(&maxModels, "max-models", 0, "stop after this many saturated models (0 = unbounded)")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "address to serve Prometheus /metrics on (empty disables)")
	return cmd
}
