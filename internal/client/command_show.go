package client

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-run-watch/internal/service"
	"github.com/spf13/cobra"
)

func (c *cli) newShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show [run-id]",
		Short: "Print a run and its steps once",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := c.app.services.Runs.Details(cmd.Context(), runIDArg(args))
			if err != nil {
				if errors.Is(err, service.ErrInvalidRunID) {
					return fmt.Errorf("%w (use `runwatch runs` to list recent runs)", err)
				}
				return fmt.Errorf("load run: %w", err)
			}

			renderRunDetails(cmd.OutOrStdout(), snap)
			return nil
		},
	}
}

func (c *cli) newRunsCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recent runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			runs, err := c.app.services.Runs.List(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("list runs: %w", err)
			}

			renderRunList(cmd.OutOrStdout(), runs)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to list")
	return cmd
}

func (c *cli) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print build information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationNoApp: "true"},
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), c.buildInfo.String())
		},
	}
}
