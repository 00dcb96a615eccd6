// Package ui provides the Bubble Tea terminal interface for liftoff.
//
// # Architecture Overview
//
// Model is the root tea.Model. It owns no launch data of its own: every
// transition goes through a *state.Machine and the model re-reads a snapshot
// afterwards. Network work never runs inside Update; fetches, image probes,
// config reloads and log reads are tea.Cmds that report back with messages.
//
// # Package Structure
//
//   - app.go: Model, Options, Update/View and Run
//   - commands.go: messages and the commands that produce them
//   - grid.go: responsive card grid and cursor movement
//   - detail.go: scrollable detail view built on bubbles/viewport
//   - images.go: per-URL image load state fed by HEAD probes
//   - header.go: status bar and per-phase command bar
//   - screens.go: loading spinner and error screen
//   - help.go, diagnostics.go: overlays
//   - theme.go, style_helpers.go: colors and background-safe rendering
//
// # Phases
//
// The content area follows the machine phase:
//
//   - Loading: spinner; only quit, help, theme and diagnostics keys act
//   - Error: message with r (Try Again) and R (Reload)
//   - Browsing: grid of cards, arrows or hjkl to move, enter to open
//   - Detail: one launch, esc or backspace to go back
//
// R is the full reload: the Reload callback re-reads configuration and
// rebuilds the fetcher before the next fetch starts.
//
// # Live Values
//
// A one-second tick updates the model clock. Countdowns are recomputed from
// the stored launch time on every render, and the header shows how long ago
// the collection was fetched.
//
// # Images
//
// Terminals cannot show the mission patch itself, so the image line shows
// the resolved URL and whether it answered a HEAD probe. A failed probe
// degrades that one image to the "🚀 Mission Patch" placeholder and never
// reaches the state machine.
package ui
