package main

import (
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/sustainastock/sustainastock-ui/internal/bootstrap"
)

func newCheckAPICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check-api",
		Short: "Check that the inventory API answers at the configured base URL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := bootstrap.NewAPIClient(bootstrap.APIClientConfig{
				API:    a.cfg.API,
				Auth:   a.cfg.Auth,
				Logger: a.logger,
			})
			if err != nil {
				return err
			}

			ctx, cancel := a.withTimeout(cmd.Context())
			defer cancel()

			start := time.Now()
			if err := client.Ping(ctx); err != nil {
				return fmt.Errorf("inventory api at %s: %w", client.BaseURL(), err)
			}
			printLine(cmd.OutOrStdout(), pterm.Success.Sprintfln("inventory api at %s is reachable (%s)",
				client.BaseURL(), time.Since(start).Round(time.Millisecond)))
			return nil
		},
	}
}
