package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-run-watch/internal/service"
	"github.com/MKhiriev/go-run-watch/internal/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func (c *cli) newWatchCommand() *cobra.Command {
	var (
		plain     bool
		untilDone bool
	)

	cmd := &cobra.Command{
		Use:   "watch [run-id]",
		Short: "Follow a run live",
		Long: `Follow a run and its steps as they change.

On a terminal an interactive viewer is shown (j/k select a step, r refreshes,
c copies the step payload, q quits). Otherwise one line is printed per change
until interrupted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runID := runIDArg(args)

			client := c.app.services.NewRunSyncClient()
			defer client.Close()

			out := cmd.OutOrStdout()
			if !plain && !untilDone && isTerminal(out) {
				return tui.New(client, c.buildInfo, c.app.logger).Watch(cmd.Context(), runID)
			}
			return watchPlain(cmd.Context(), client, runID, out, untilDone)
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Print one line per change instead of the interactive viewer")
	cmd.Flags().BoolVar(&untilDone, "until-done", false, "Exit once the run reaches a final status (implies --plain)")

	return cmd
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// watchPlain prints a line whenever the published snapshot changes in a
// visible way. It returns when ctx is done, the client is closed or, with
// untilDone, the run is final.
func watchPlain(ctx context.Context, client service.RunSyncClient, runID int64, w io.Writer, untilDone bool) error {
	updates := client.Subscribe()
	defer client.Unsubscribe(updates)

	if err := client.Start(ctx, runID); err != nil {
		if errors.Is(err, service.ErrInvalidRunID) {
			return fmt.Errorf("%w (use `runwatch runs` to list recent runs)", err)
		}
		return err
	}

	var last string
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-updates:
			if !ok {
				return nil
			}

			snap := client.Snapshot()
			if line := snapshotLine(snap); line != last {
				_, _ = fmt.Fprintln(w, line)
				last = line
			}
			if untilDone && snap.Terminal() {
				return nil
			}
		}
	}
}

func snapshotLine(snap service.RunSnapshot) string {
	parts := []string{fmt.Sprintf("run %d", snap.RunID)}

	if snap.Run != nil {
		parts = append(parts, "status="+string(snap.Run.Status))
	}
	parts = append(parts, "mode="+snap.Mode.String(), fmt.Sprintf("steps=%d", len(snap.Steps)))

	if n := len(snap.Steps); n > 0 {
		lastStep := snap.Steps[n-1]
		parts = append(parts, fmt.Sprintf("last=%s:%s", lastStep.Step, lastStep.Status))
	}
	if snap.FallbackUsed() {
		parts = append(parts, "fallback=yes")
	}
	if reason, ok := snap.FailureReason(); ok {
		parts = append(parts, "reason="+strconv.Quote(reason))
	}
	if snap.Loading {
		parts = append(parts, "loading")
	}
	if snap.Err != nil {
		parts = append(parts, "error="+strconv.Quote(snap.ErrText()))
	}

	return strings.Join(parts, " ")
}
