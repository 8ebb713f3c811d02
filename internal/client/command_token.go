package client

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-run-watch/models"
	"github.com/spf13/cobra"
)

func (c *cli) newTokenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Manage the stored bearer token",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "set <token>",
			Short: "Store a bearer token",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := c.app.services.Credentials.Save(cmd.Context(), args[0]); err != nil {
					return fmt.Errorf("save token: %w", err)
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Token saved")
				return nil
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Remove the stored bearer token",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				if err := c.app.services.Credentials.Clear(cmd.Context()); err != nil {
					return fmt.Errorf("clear token: %w", err)
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Token cleared")
				return nil
			},
		},
		&cobra.Command{
			Use:   "show",
			Short: "Describe the token in effect",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				token, _ := c.app.services.Credentials.Credential(cmd.Context())
				info, err := c.app.services.Credentials.Describe(cmd.Context())
				if err != nil {
					return fmt.Errorf("describe token: %w", err)
				}

				renderCredential(cmd.OutOrStdout(), token, info)
				return nil
			},
		},
	)

	return cmd
}

// maskToken keeps the first characters of a token for recognition.
func maskToken(token string) string {
	const visible = 6
	if token == "" {
		return "-"
	}
	if len(token) <= visible {
		return "******"
	}
	return token[:visible] + "…"
}

func credentialExpiry(info models.CredentialInfo) string {
	if info.ExpiresAt == nil {
		return "-"
	}
	expiry := info.ExpiresAt.UTC().Format(time.RFC3339)
	if info.Expired {
		expiry += " (expired)"
	}
	return expiry
}
