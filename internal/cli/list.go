package cli

import (
	"github.com/spf13/cobra"

	"github.com/five82/liftoff/internal/app"
	"github.com/five82/liftoff/internal/launch"
	"github.com/five82/liftoff/internal/state"
)

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	var upcoming bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the latest launches",
		Long: `Fetch the latest launches once and print them, newest first.

Text output is a table; --format json prints the enriched records.`,
		Args:          usageArgs(cobra.NoArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, rootOpts, upcoming)
		},
	}

	cmd.Flags().BoolVar(&upcoming, "upcoming", false, "only show upcoming launches")

	return cmd
}

func runList(cmd *cobra.Command, opts *RootOptions, upcomingOnly bool) error {
	comps, done, err := session(opts)
	if err != nil {
		return err
	}
	defer done()

	snap, err := app.Refresh(cmd.Context(), state.NewMachine(), comps.Fetcher)
	if err != nil {
		return WrapExitError(ExitFailure, "fetch launches", err)
	}

	launches := snap.Launches
	if upcomingOnly {
		filtered := make([]launch.Launch, 0, len(launches))
		for _, l := range launches {
			if l.Upcoming {
				filtered = append(filtered, l)
			}
		}
		launches = filtered
	}

	if opts.Format == "json" {
		return writeJSON(cmd.OutOrStdout(), launches)
	}
	return writeLaunchTable(cmd.OutOrStdout(), launches)
}
