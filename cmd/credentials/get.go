package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGetCommand(cfg *cliConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "get NAME...",
		Short: "Print NAME=value for each name",
		Long: `Resolve each name and print it as NAME=value, one per line.

Stops at the first name that cannot be resolved.

Examples:
  credentials get DB_USER DB_PASSWORD
  eval "$(credentials get API_KEY | sed 's/^/export /')"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, shutdown, err := cfg.client(ctx, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer shutdown()

			for _, name := range args {
				value, err := client.Var(ctx, name)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", name, value)
			}
			return nil
		},
	}
}
