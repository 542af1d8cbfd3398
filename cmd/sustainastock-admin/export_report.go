package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/sustainastock/sustainastock-ui/internal/bootstrap"
	"github.com/sustainastock/sustainastock-ui/internal/domain/model"
	"github.com/sustainastock/sustainastock-ui/internal/service"
)

type exportReportOptions struct {
	Token  string
	Format model.ReportFormat
	Out    string
}

func parseExportReportOptions(token, format, out string) (exportReportOptions, error) {
	f, ok := model.ParseReportFormat(format)
	if !ok {
		return exportReportOptions{}, fmt.Errorf("unknown report format %q (want pdf or excel)", format)
	}
	return exportReportOptions{
		Token:  strings.TrimSpace(token),
		Format: f,
		Out:    strings.TrimSpace(out),
	}, nil
}

func newExportReportCmd(a *app) *cobra.Command {
	var token, format, out string
	cmd := &cobra.Command{
		Use:   "export-report",
		Short: "Download the usage report (pdf or excel) to a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := parseExportReportOptions(token, format, out)
			if err != nil {
				return err
			}
			if opts.Token, err = resolveToken(cmd, opts.Token); err != nil {
				return err
			}

			client, err := bootstrap.NewAPIClient(bootstrap.APIClientConfig{
				API:    a.cfg.API,
				Auth:   a.cfg.Auth,
				Logger: a.logger,
			})
			if err != nil {
				return err
			}
			reports := service.NewInventoryService(service.InventoryServiceOptions{
				API:    client,
				Logger: a.logger,
			})

			ctx, cancel := a.withTimeout(cmd.Context())
			defer cancel()

			file, err := reports.ExportReport(ctx, opts.Token, opts.Format)
			if err != nil {
				return err
			}

			dest := opts.Out
			if dest == "" {
				dest = file.Filename
			}
			if dir := filepath.Dir(dest); dir != "." {
				if err := os.MkdirAll(dir, 0o750); err != nil {
					return fmt.Errorf("create output dir: %w", err)
				}
			}
			if err := os.WriteFile(dest, file.Body, 0o600); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
			printLine(cmd.OutOrStdout(), pterm.Success.Sprintfln("wrote %d bytes (%s) to %s",
				len(file.Body), file.ContentType, dest))
			return nil
		},
	}
	cmd.Flags().StringVar(&token, "token", "", "Bearer token (prompted or read from stdin when omitted)")
	cmd.Flags().StringVarP(&format, "format", "f", string(model.ReportFormatPDF), "Report format: pdf or excel")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (defaults to report.pdf or report.xlsx)")
	return cmd
}
