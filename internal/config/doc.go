// Package config loads liftoff's TOML configuration.
//
// # Configuration Discovery
//
// Load follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/liftoff/config.toml
//  3. If the file doesn't exist, use the defaults
//  4. If the file exists but a field is blank, use that field's default
//
// # TOML Format
//
//	api_url = "https://api.spacexdata.com"
//	locale = "en-US"
//	timezone = "Local"
//	request_timeout = "0s"
//	log_file = "~/.local/state/liftoff/liftoff.log"
//	log_level = "info"
//
// Every field is optional. timezone takes an IANA name; request_timeout is a
// Go duration where zero means no deadline; log_level is any slog level name.
// Tilde expansion applies to the config path and log_file.
//
// # Error Handling
//
// Load returns errors for unreadable files, invalid TOML (prefixed "parse
// config:") and values that do not parse (prefixed "config:"). A missing file
// is not an error.
package config
