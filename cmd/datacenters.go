package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tenantfinder/internal/config"
)

// dataCentersCommand constructs the 'datacenters' subcommand that prints the
// registry in priority order.
func dataCentersCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "datacenters",
		Short: "Lists the data centers probed for every tenant",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := newRegistry(cfg)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, dc := range registry.Enumerate() {
				_, _ = fmt.Fprintf(w, "%-6s %-16s %s\n", dc.ID, dc.Name, dc.ProductionTemplate)
				_, _ = fmt.Fprintf(w, "%-6s %-16s %s\n", "", "", dc.SandboxTemplate)
			}

			return nil
		},
	}
}

