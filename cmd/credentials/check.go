package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonwraymond/credentials/health"
)

var errCheckFailed = errors.New("credentials check failed")

func newCheckCommand(cfg *cliConfig) *cobra.Command {
	var (
		jsonOutput bool
		timeout    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check that the Secretfile parses and Vault is usable",
		Long: `Parse the Secretfile and, when it references Vault, check that Vault is
reachable, unsealed, and accepts this process's credentials.

Exits non-zero when a check is unhealthy. No secret is read.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, shutdown, err := cfg.client(ctx, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer shutdown()

			agg := health.NewAggregator(health.AggregatorConfig{Timeout: timeout, Sequential: true})
			agg.Register(client.Checkers()...)
			report := agg.Run(ctx)

			out := cmd.OutOrStdout()
			if jsonOutput {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(health.NewReportResponse(report)); err != nil {
					return err
				}
			} else {
				for _, r := range report.Results {
					fmt.Fprintf(out, "%-10s %-9s %s\n", r.Name, r.Status, r.Message)
					if r.Error != nil {
						fmt.Fprintf(out, "%-10s %-9s %v\n", "", "", r.Error)
					}
				}
			}

			if report.Status == health.StatusUnhealthy {
				return fmt.Errorf("%w: %w", errCheckFailed, report.Failed())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the report as JSON")
	cmd.Flags().DurationVar(&timeout, "timeout", health.DefaultTimeout, "Time allowed for all checks")
	return cmd
}
