package main

import (
	"github.com/spf13/cobra"
)

func newFileCommand(cfg *cliConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "file NAME PATH",
		Short: "Write the value of NAME to PATH",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, shutdown, err := cfg.client(ctx, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer shutdown()

			return client.File(ctx, args[0], args[1])
		},
	}
}
