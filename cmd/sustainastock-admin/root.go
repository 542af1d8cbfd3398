package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/sustainastock/sustainastock-ui/config"
	"github.com/sustainastock/sustainastock-ui/internal/bootstrap"
)

const defaultCommandTimeout = 30 * time.Second

// rootOptions lets tests replace the environment-backed config loader.
type rootOptions struct {
	LoadConfig func() (config.AppConfig, error)
}

// app carries what every subcommand needs once the root has loaded config.
type app struct {
	cfg     config.AppConfig
	logger  *slog.Logger
	timeout time.Duration
}

func newRootCmd(opts rootOptions) *cobra.Command {
	load := opts.LoadConfig
	if load == nil {
		load = bootstrap.LoadConfig
	}

	a := &app{}
	var (
		noColor bool
		verbose bool
	)

	root := &cobra.Command{
		Use:   "sustainastock-admin",
		Short: "Operator tooling for the SustainaStock dashboard",
		Long: `sustainastock-admin inspects tokens, checks the inventory API and downloads
usage reports using the same configuration (environment and .env) as the
dashboard server.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if noColor {
				pterm.DisableStyling()
			}
			cfg, err := load()
			if err != nil {
				return err
			}
			a.cfg = cfg

			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			return nil
		},
	}

	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log API calls to stderr")
	root.PersistentFlags().DurationVar(&a.timeout, "timeout", defaultCommandTimeout, "Timeout for API calls")

	root.AddCommand(newDecodeTokenCmd(a))
	root.AddCommand(newCheckAPICmd(a))
	root.AddCommand(newExportReportCmd(a))
	return root
}

// withTimeout bounds a command's API calls by the --timeout flag.
func (a *app) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.timeout)
}

func printLine(w io.Writer, s string) {
	_, _ = io.WriteString(w, s)
}
