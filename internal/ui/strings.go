package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// truncate shortens value to fit limit terminal cells, adding an ellipsis.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return ""
	}
	if runewidth.StringWidth(value) <= limit {
		return value
	}
	if limit <= 3 {
		return runewidth.Truncate(value, limit, "")
	}
	return runewidth.Truncate(value, limit, "...")
}

// truncateMiddle keeps both ends of value, which suits URLs and paths.
func truncateMiddle(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 || runewidth.StringWidth(value) <= limit {
		return value
	}
	if limit <= 5 {
		return runewidth.Truncate(value, limit, "")
	}
	runes := []rune(value)
	keep := limit - 1
	endLen := keep * 2 / 3
	startLen := keep - endLen
	if startLen+endLen >= len(runes) {
		return value
	}
	return string(runes[:startLen]) + "…" + string(runes[len(runes)-endLen:])
}

// padRight pads s with spaces to width terminal cells.
func padRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}
