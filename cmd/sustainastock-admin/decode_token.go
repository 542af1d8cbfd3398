package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sustainastock/sustainastock-ui/internal/bootstrap"
	domainauth "github.com/sustainastock/sustainastock-ui/internal/domain/auth"
)

// sessionView is the printable form of a derived session.
type sessionView struct {
	Username  string `json:"username"             yaml:"username"`
	Name      string `json:"name"                 yaml:"name"`
	Role      string `json:"role"                 yaml:"role"`
	Admin     bool   `json:"admin"                yaml:"admin"`
	Subject   string `json:"subject,omitempty"    yaml:"subject,omitempty"`
	ExpiresAt string `json:"expires_at,omitempty" yaml:"expires_at,omitempty"`
	Expired   bool   `json:"expired"              yaml:"expired"`
}

func newSessionView(sess domainauth.Session, now time.Time) sessionView {
	v := sessionView{
		Username: sess.Username,
		Name:     sess.DisplayName(),
		Role:     string(sess.Role),
		Admin:    sess.IsAdmin(),
		Subject:  sess.Subject,
	}
	if !sess.ExpiresAt.IsZero() {
		v.ExpiresAt = sess.ExpiresAt.UTC().Format(time.RFC3339)
		v.Expired = sess.ExpiresAt.Before(now)
	}
	return v
}

func newDecodeTokenCmd(a *app) *cobra.Command {
	var (
		token  string
		output string
	)
	cmd := &cobra.Command{
		Use:   "decode-token",
		Short: "Show the session the dashboard derives from a bearer token",
		Long: `Decodes the token payload with the configured claim expressions, the same
way the dashboard does for the access_token cookie. The signature is not
verified.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tok, err := resolveToken(cmd, token)
			if err != nil {
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
			bundle, err := bootstrap.BuildAuth(bootstrap.AuthConfig{
				Auth:   a.cfg.Auth,
				API:    client,
				Logger: a.logger,
			})
			if err != nil {
				return err
			}
			sess, err := bundle.Service.DecodeToken(tok)
			if err != nil {
				return err
			}
			return writeSession(cmd.OutOrStdout(), newSessionView(sess, time.Now()), output)
		},
	}
	cmd.Flags().StringVar(&token, "token", "", "Bearer token (prompted or read from stdin when omitted)")
	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format: table, json or yaml")
	return cmd
}

func writeSession(w io.Writer, v sessionView, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		b, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		_, err = w.Write(b)
		return err
	case "table", "":
		expires := "never"
		if v.ExpiresAt != "" {
			expires = v.ExpiresAt
			if v.Expired {
				expires += " (expired)"
			}
		}
		table, err := pterm.DefaultTable.WithData(pterm.TableData{
			{"Username", v.Username},
			{"Name", v.Name},
			{"Role", v.Role},
			{"Expires", expires},
		}).Srender()
		if err != nil {
			return err
		}
		printLine(w, table+"\n")
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want table, json or yaml)", format)
	}
}
