package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tenantfinder/internal/config"
	"tenantfinder/internal/discovery"
	"tenantfinder/pkg/domain"
	"tenantfinder/pkg/probe"
)

// findCommand constructs the 'find' subcommand that runs a discovery in the
// foreground and prints the result.
func findCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find <tenant-id>",
		Short: "Discovers the endpoints and implementation tenants of a tenant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			maxIndex, _ := cmd.Flags().GetInt("max-index")
			strategy, _ := cmd.Flags().GetString("strategy")
			timeout, _ := cmd.Flags().GetDuration("timeout")
			asJSON, _ := cmd.Flags().GetBool("json")

			options := discovery.NewOptions(cfg)
			if strategy != "" {
				if strategy != config.StrategyEarlyStop && strategy != config.StrategyExhaustive {
					return fmt.Errorf("unknown strategy %q", strategy)
				}
				options.Strategy = discovery.Strategy(strategy)
			}

			engine, err := newEngine(cfg, nil, options)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			result, err := engine.Discover(probe.WithTimeout(ctx, timeout), args[0], maxIndex)
			if err != nil {
				return fmt.Errorf("could not discover tenant: %w", err)
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")

				return enc.Encode(result) //nolint: wrapcheck
			}

			printResult(cmd.OutOrStdout(), result)

			return nil
		},
	}

	cmd.Flags().Int("max-index", 0, "Highest implementation tenant index to probe (0 uses the configured default)")
	cmd.Flags().String("strategy", "", "Implementation tenant scan strategy: early-stop or exhaustive")
	cmd.Flags().Duration("timeout", 0, "Per-probe timeout (e.g. 2s)")
	cmd.Flags().Bool("json", false, "Print the result as JSON")

	return cmd
}

func printResult(w io.Writer, result *domain.TenantDiscoveryResult) {
	if !result.Found() {
		_, _ = fmt.Fprintln(w, "No Production URL found.")

		return
	}

	_, _ = fmt.Fprintf(w, "Data Center: %s\n", result.DataCenter)
	_, _ = fmt.Fprintf(w, "Production URL: %s\n", result.ProductionURL)
	if result.SandboxURL == "" {
		_, _ = fmt.Fprintln(w, "No Sandbox URL found for this Data Center.")

		return
	}
	_, _ = fmt.Fprintf(w, "Sandbox URL: %s\n", result.SandboxURL)
	_, _ = fmt.Fprintf(w, "Preview URL: %s\n", result.PreviewURL)
	_, _ = fmt.Fprintf(w, "Customer Central URL: %s\n", result.CentralURL)

	if len(result.ImplementationTenants) == 0 {
		_, _ = fmt.Fprintln(w, "No implementation tenants found.")

		return
	}
	_, _ = fmt.Fprintln(w, "Implementation tenants:")
	for _, impl := range result.ImplementationTenants {
		_, _ = fmt.Fprintf(w, "  %s %s\n", impl.Label, impl.URL)
	}
}
