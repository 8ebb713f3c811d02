package client

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-run-watch/internal/config"
	"github.com/MKhiriev/go-run-watch/internal/logger"
	"github.com/MKhiriev/go-run-watch/models"
	"github.com/spf13/cobra"
)

const (
	loggerRole = "runwatch"

	// annotationNoApp marks commands that run without config, store or
	// transports.
	annotationNoApp = "runwatch/no-app"
)

type cli struct {
	buildInfo  models.AppBuildInfo
	buildToken string

	root  *cobra.Command
	flags *config.Flags
	app   *App
}

// NewCLI builds the runwatch command tree.
func NewCLI(buildInfo models.AppBuildInfo, buildToken string) Client {
	return newCLI(buildInfo, buildToken)
}

func newCLI(buildInfo models.AppBuildInfo, buildToken string) *cli {
	c := &cli{buildInfo: buildInfo, buildToken: buildToken}

	root := &cobra.Command{
		Use:   "runwatch",
		Short: "Follow compliance workflow runs from the terminal",
		Long: `runwatch shows the live status of a compliance workflow run.

It follows a run over the backend push channel when a token is available and
falls back to polling the REST API otherwise.

Examples:
  runwatch watch 123          # live view of run 123
  runwatch show 123           # one-shot details as tables
  runwatch runs --limit 20    # recent runs
  runwatch token set <token>  # store the bearer token`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.initApp,
	}
	c.flags = config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		c.newWatchCommand(),
		c.newShowCommand(),
		c.newRunsCommand(),
		c.newTokenCommand(),
		c.newVersionCommand(),
	)

	c.root = root
	return c
}

// Run implements [Client].
func (c *cli) Run(ctx context.Context, args []string) error {
	defer c.close()

	c.root.SetArgs(args)
	return c.root.ExecuteContext(ctx)
}

func (c *cli) setOutput(w io.Writer) {
	c.root.SetOut(w)
	c.root.SetErr(w)
}

func (c *cli) initApp(cmd *cobra.Command, _ []string) error {
	if cmd.Annotations[annotationNoApp] == "true" {
		return nil
	}

	cfg, err := config.GetClientConfig(c.flags)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	log := logger.NewClientLogger(loggerRole, cfg.App.LogFile)
	log.Debug().Str("command", cmd.CommandPath()).Msg("starting")

	app, err := NewApp(cmd.Context(), cfg, c.buildToken, log)
	if err != nil {
		log.Error().Err(err).Msg("init client app error")
		return err
	}
	c.app = app
	return nil
}

func (c *cli) close() {
	if c.app == nil {
		return
	}
	if err := c.app.Close(); err != nil {
		c.app.logger.Warn().Err(err).Msg("close local storage")
	}
	c.app = nil
}

// parseRunID parses a run id argument. Anything that is not a positive
// integer yields 0, which the services report as an unavailable run.
func parseRunID(arg string) int64 {
	id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil || id <= 0 {
		return 0
	}
	return id
}

// runIDArg returns the run id given as the first argument; a missing id is
// treated like an invalid one.
func runIDArg(args []string) int64 {
	if len(args) == 0 {
		return 0
	}
	return parseRunID(args[0])
}
