package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/liftoff/internal/app"
	"github.com/five82/liftoff/internal/launch"
	"github.com/five82/liftoff/internal/state"
)

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id|flight-number>",
		Short: "Print the details of one launch",
		Long: `Fetch the latest launches once and print the details of the launch
matching the given id or flight number (for example 187 or #187).`,
		Args:          usageArgs(cobra.ExactArgs(1)),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, rootOpts, args[0])
		},
	}

	return cmd
}

func runShow(cmd *cobra.Command, opts *RootOptions, ref string) error {
	comps, done, err := session(opts)
	if err != nil {
		return err
	}
	defer done()

	machine := state.NewMachine()
	snap, err := app.Refresh(cmd.Context(), machine, comps.Fetcher)
	if err != nil {
		return WrapExitError(ExitFailure, "fetch launches", err)
	}

	id, ok := findLaunch(snap.Launches, ref)
	if !ok || !machine.Select(id) {
		return NewExitError(ExitFailure, fmt.Sprintf("launch %q not found in the latest %d launches", ref, len(snap.Launches)))
	}
	selected := machine.Snapshot().Selected

	if opts.Format == "json" {
		return writeJSON(cmd.OutOrStdout(), selected)
	}
	return writeLaunchDetail(cmd.OutOrStdout(), selected, comps.Enricher)
}

// findLaunch matches ref against ids first, then flight numbers.
func findLaunch(launches []launch.Launch, ref string) (string, bool) {
	ref = strings.TrimSpace(ref)
	for _, l := range launches {
		if l.ID == ref {
			return l.ID, true
		}
	}
	n, err := strconv.Atoi(strings.TrimPrefix(ref, "#"))
	if err != nil {
		return "", false
	}
	for _, l := range launches {
		if l.FlightNumber == n {
			return l.ID, true
		}
	}
	return "", false
}
