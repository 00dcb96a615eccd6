package cli

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/five82/liftoff/internal/app"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	PrefsPath  string
	Format     string // "text" | "json"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the liftoff command tree. Without a subcommand it
// starts the TUI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "liftoff",
		Short: "liftoff - SpaceX launches in your terminal",
		Long: `Browse recent and upcoming SpaceX launches.

Run without a subcommand to open the interactive viewer, or use list and
show to print launches for scripts.`,
		Args:          usageArgs(cobra.NoArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			comps, err := app.Load(opts.ConfigPath)
			if err != nil {
				return WrapExitError(ExitCommandError, "startup", err)
			}
			return app.Start(cmd.Context(), comps, app.Options{
				ConfigPath: opts.ConfigPath,
				PrefsPath:  opts.PrefsPath,
			})
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file (default ~/.config/liftoff/config.toml)")
	cmd.PersistentFlags().StringVar(&opts.PrefsPath, "prefs", "", "preferences file (default ~/.config/liftoff/prefs.toml)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format for list and show (json|text)")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return WrapExitError(ExitCommandError, "usage", err)
	})

	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewShowCommand(opts))

	return cmd
}

// session loads config and routes the default logger to the log file for a
// one-shot command. The returned func closes the log.
func session(opts *RootOptions) (app.Components, func(), error) {
	comps, err := app.Load(opts.ConfigPath)
	if err != nil {
		return app.Components{}, nil, WrapExitError(ExitCommandError, "startup", err)
	}
	logger, closeLog, err := app.OpenLog(comps.Config)
	if err != nil {
		return app.Components{}, nil, WrapExitError(ExitCommandError, "startup", err)
	}
	prev := slog.Default()
	slog.SetDefault(logger)
	return comps, func() {
		slog.SetDefault(prev)
		_ = closeLog()
	}, nil
}
