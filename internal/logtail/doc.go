// Package logtail reads back liftoff's own log for the diagnostics overlay.
//
// Read returns the last N lines of a file with a ring buffer, so memory stays
// O(N) however large the log grows. A missing file is not an error; it only
// means nothing has been logged yet.
//
// Parse understands the key=value lines written by slog.TextHandler:
//
//	time=2024-03-01T12:00:00.000Z level=INFO msg="fetch complete" seq=2 count=30
//
// time, level and msg are lifted into Entry fields and every other pair is
// kept in order as an Attr. Quoted values are unescaped. Anything that does
// not parse, such as a panic trace, is returned verbatim as the message.
package logtail
