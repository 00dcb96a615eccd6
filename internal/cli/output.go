package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/five82/liftoff/internal/launch"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Fetch failed or the requested launch was not found
	ExitCommandError = 2 // Usage or configuration error
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil and ExitFailure if the error is not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// usageArgs tags positional argument errors as usage errors.
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return WrapExitError(ExitCommandError, "usage", err)
		}
		return nil
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// writeLaunchTable prints one row per launch in collection order.
func writeLaunchTable(w io.Writer, launches []launch.Launch) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "FLIGHT\tSTATUS\tDATE\tCOUNTDOWN\tMISSION\tROCKET\tLAUNCHPAD")
	for _, l := range launches {
		countdown := l.Countdown
		if countdown == "" {
			countdown = "-"
		}
		fmt.Fprintf(tw, "#%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			l.FlightNumber, l.Status(), l.FormattedDate, countdown,
			l.DisplayName(), l.RocketName, l.LaunchpadName)
	}
	return tw.Flush()
}

// writeLaunchDetail prints every known fact about l, one per line.
func writeLaunchDetail(w io.Writer, l launch.Launch, enricher launch.Enricher) error {
	fmt.Fprintln(w, l.DisplayName())

	tw := newTable(w)
	row := func(label, value string) {
		if value = strings.TrimSpace(value); value != "" {
			fmt.Fprintf(tw, "%s\t%s\n", label, value)
		}
	}

	row("Status:", string(l.Status()))
	row("Date:", enricher.LongDate(l))
	row("Flight:", fmt.Sprintf("#%d", l.FlightNumber))
	row("Countdown:", l.Countdown)

	if l.RocketName != launch.UnknownRocket {
		rocket := l.RocketName
		if l.Rocket != nil && strings.TrimSpace(l.Rocket.Type) != "" {
			rocket += " (" + l.Rocket.Type + ")"
		}
		row("Rocket:", rocket)
	}

	if l.LaunchpadName != launch.UnknownLaunchpad {
		row("Launch Site:", l.LaunchpadName)
		if pad := l.Launchpad; pad != nil {
			row("Full Name:", pad.FullName)
			row("Location:", joinNonEmpty(", ", pad.Locality, pad.Region))
		}
	}

	if l.PayloadSummary != launch.NoPayloadInfo {
		row("Payloads:", l.PayloadSummary)
	}
	for _, p := range l.Payloads {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			continue
		}
		var facts []string
		if t := strings.TrimSpace(p.Type); t != "" {
			facts = append(facts, t)
		}
		if p.MassKg != nil {
			facts = append(facts, enricher.Format.Mass(*p.MassKg))
		}
		item := "- " + name
		if len(facts) > 0 {
			item += ": " + strings.Join(facts, ", ")
		}
		fmt.Fprintf(tw, "\t%s\n", item)
	}

	image, ok := l.Image(launch.DetailView)
	if !ok {
		image = "none"
	}
	row("Image:", image)

	if l.Links != nil {
		row("Webcast:", l.Links.Webcast)
		row("Article:", l.Links.Article)
		row("Wikipedia:", l.Links.Wikipedia)
	}
	if l.Rocket != nil {
		row("Rocket Info:", l.Rocket.Wikipedia)
	}
	row("Details:", l.Details)

	return tw.Flush()
}

func joinNonEmpty(sep string, values ...string) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, sep)
}
