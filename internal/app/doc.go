// Package app is the composition root for liftoff.
//
// # Overview
//
// Run wires configuration, logging, the API client and the state machine to
// the TUI and blocks until the user quits:
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       ├─────> config.Load()        Read ~/.config/liftoff/config.toml
//	       ├─────> OpenLog()            slog text handler on log_file
//	       ├─────> Build()              spacex.Client → launch.Fetcher
//	       ├─────> prefs.Load()         Saved theme
//	       └─────> ui.Run()             Start TUI (blocks)
//
// There is no background poller. Every fetch is user initiated: once at
// start-up and again whenever the user refreshes.
//
// # Components
//
//   - app.go: Build, Load, Run and Start
//   - refresh.go: Refresh, a single fetch driven through the state machine,
//     used by the non-interactive commands
//   - logging.go: OpenLog
//
// # Reload
//
// The UI's full reload calls back into Load, so edits to the config file
// (API URL, locale, time zone, timeout) take effect without restarting. The
// log destination is fixed for the life of the process.
//
// # Error Handling
//
// Fatal errors returned from Run:
//   - Invalid configuration
//   - Log file cannot be created
//   - Client initialization failure (malformed api_url)
//
// Fetch failures are never fatal; the UI shows them and offers a retry.
package app
