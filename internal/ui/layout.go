package ui

import "time"

// Grid sizing.
const (
	// CardMinWidth is the narrowest card, borders included.
	CardMinWidth = 40

	// CardHeight is the fixed card height, borders included.
	CardHeight = 12

	// CardDetailsLimit caps the description excerpt shown on a card.
	CardDetailsLimit = 100

	// LayoutCompactWidth is the threshold below which the header drops labels.
	LayoutCompactWidth = 100
)

// Chrome is the number of lines taken by the header and command bar.
const Chrome = 2

// Timing constants.
const (
	// TickInterval drives countdowns and relative timestamps.
	TickInterval = time.Second

	// DiagnosticsLines is how much of the log the overlay reads.
	DiagnosticsLines = 200
)
