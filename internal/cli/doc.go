// Package cli defines the liftoff command tree.
//
// The root command opens the TUI. The list and show subcommands perform a
// single fetch through the same state machine the TUI uses and print the
// result as text or JSON. Errors carry an exit code via ExitError:
// ExitFailure for fetch failures and unknown launches, ExitCommandError for
// usage and configuration problems.
package cli
